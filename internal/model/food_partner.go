package model

import (
	"time"
)

type FoodPartner struct {
	ID          uint64   `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"type:varchar(100);not null" json:"name"`
	ContactName string   `gorm:"type:varchar(50);not null" json:"contactName"`
	Phone       string   `gorm:"type:varchar(30);not null" json:"phone"`
	Address     string   `gorm:"type:varchar(200);not null" json:"address"`
	Email       string   `gorm:"type:varchar(255);not null;uniqueIndex:idx_partner_email" json:"email"`
	Password    string   `gorm:"type:varchar(255);not null" json:"-"`
	Logo        string   `gorm:"type:varchar(500)" json:"logo"`
	Description string   `gorm:"type:varchar(500)" json:"description"`
	Cuisine     []string `gorm:"type:json;serializer:json" json:"cuisine"`
	LocationLng float64  `gorm:"index:idx_partner_location" json:"-"`
	LocationLat float64  `gorm:"index:idx_partner_location" json:"-"`
	Rating      float64  `gorm:"not null;default:0" json:"rating"`
	TotalReviews int64   `gorm:"not null;default:0" json:"totalReviews"`

	// FollowersCount is denormalized; user_follows is the source of truth
	// and the reconcile job re-derives this value.
	FollowersCount int64 `gorm:"not null;default:0" json:"followersCount"`
	TotalVideos    int64 `gorm:"not null;default:0" json:"totalVideos"`

	IsVerified bool       `gorm:"type:tinyint(1);not null;default:0" json:"isVerified"`
	IsActive   bool       `gorm:"type:tinyint(1);not null;default:1" json:"isActive"`
	LastLogin  *time.Time `json:"lastLogin"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (FoodPartner) TableName() string {
	return "food_partners"
}
