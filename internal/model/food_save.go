package model

import (
	"time"
)

type FoodSave struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	FoodID    uint64    `gorm:"primaryKey;index:idx_save_food" json:"foodId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (FoodSave) TableName() string {
	return "food_saves"
}
