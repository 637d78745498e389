package model

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	FoodID    uint64    `gorm:"not null;index:idx_comment_food" json:"foodId"`
	Text      string    `gorm:"type:varchar(500);not null" json:"text"`
	LikeCount int64     `gorm:"not null;default:0" json:"likeCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
