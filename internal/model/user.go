package model

import (
	"time"
)

// Preferences are merged field-by-field: an omitted slice in an update
// leaves the stored one untouched.
type Preferences struct {
	Cuisines            []string `json:"cuisines"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	FavoriteIngredients []string `json:"favoriteIngredients"`
}

type User struct {
	ID          uint64      `gorm:"primaryKey" json:"id"`
	FullName    string      `gorm:"type:varchar(50);not null" json:"fullName"`
	Email       string      `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_email" json:"email"`
	Password    string      `gorm:"type:varchar(255);not null" json:"-"`
	Avatar      string      `gorm:"type:varchar(500)" json:"avatar"`
	Bio         string      `gorm:"type:varchar(200)" json:"bio"`
	Location    string      `gorm:"type:varchar(255)" json:"location"`
	Preferences Preferences `gorm:"type:json;serializer:json" json:"preferences"`
	IsActive    bool        `gorm:"type:tinyint(1);not null;default:1" json:"isActive"`
	LastLogin   *time.Time  `json:"lastLogin"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
