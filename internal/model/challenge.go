package model

import (
	"time"
)

type ChallengePrize struct {
	Position    int     `json:"position"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

type Challenge struct {
	ID          uint64           `gorm:"primaryKey" json:"id"`
	Title       string           `gorm:"type:varchar(100);not null" json:"title"`
	Description string           `gorm:"type:varchar(500);not null" json:"description"`
	Theme       string           `gorm:"type:varchar(20);not null" json:"theme"`
	Difficulty  string           `gorm:"type:varchar(10);default:medium" json:"difficulty"`
	Duration    int              `gorm:"not null" json:"duration"` // days, 1-30
	StartDate   time.Time        `gorm:"not null" json:"startDate"`
	EndDate     time.Time        `gorm:"not null;index:idx_challenge_end" json:"endDate"`
	Rules       []string         `gorm:"type:json;serializer:json" json:"rules"`
	Prizes      []ChallengePrize `gorm:"type:json;serializer:json" json:"prizes"`
	IsActive    bool             `gorm:"type:tinyint(1);not null;default:1" json:"isActive"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func (Challenge) TableName() string {
	return "challenges"
}

type ChallengeParticipant struct {
	ChallengeID uint64    `gorm:"primaryKey" json:"challengeId"`
	UserID      uint64    `gorm:"primaryKey;index:idx_participant_user" json:"userId"`
	JoinedAt    time.Time `json:"joinedAt"`
}

func (ChallengeParticipant) TableName() string {
	return "challenge_participants"
}
