package model

// FoodTag holds one lowercase tag of a food. Tags live in their own table so
// suggestion queries can group and count them.
type FoodTag struct {
	FoodID uint64 `gorm:"primaryKey" json:"foodId"`
	Tag    string `gorm:"primaryKey;type:varchar(50);index:idx_tag" json:"tag"`
}

func (FoodTag) TableName() string {
	return "food_tags"
}
