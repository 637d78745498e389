package model

import (
	"time"
)

type FoodLike struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	FoodID    uint64    `gorm:"primaryKey;index:idx_like_food" json:"foodId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (FoodLike) TableName() string {
	return "food_likes"
}
