package model

import (
	"time"
)

type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

type Food struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(100);not null" json:"name"`
	Video       string  `gorm:"type:varchar(500);not null" json:"video"` // storage key, upload handled externally
	Thumbnail   string  `gorm:"type:varchar(500)" json:"thumbnail"`
	Description string  `gorm:"type:varchar(500)" json:"description"`

	Ingredients     []Ingredient    `gorm:"type:json;serializer:json" json:"ingredients"`
	Cuisine         string          `gorm:"type:varchar(30);index:idx_food_cuisine;default:Other" json:"cuisine"`
	DietaryInfo     []string        `gorm:"type:json;serializer:json" json:"dietaryInfo"`
	Difficulty      string          `gorm:"type:varchar(10);default:Medium" json:"difficulty"`
	CookingTime     int             `json:"cookingTime"` // minutes, 1-480
	Servings        int             `gorm:"default:1" json:"servings"`
	NutritionalInfo NutritionalInfo `gorm:"type:json;serializer:json" json:"nutritionalInfo"`
	Price           float64         `json:"price"`

	FoodPartnerID uint64  `gorm:"not null;index:idx_food_partner" json:"foodPartnerId"`
	LocationLng   float64 `gorm:"index:idx_food_location" json:"-"`
	LocationLat   float64 `gorm:"index:idx_food_location" json:"-"`

	LikeCount     int64 `gorm:"not null;default:0" json:"likeCount"`
	SavesCount    int64 `gorm:"not null;default:0" json:"savesCount"`
	CommentsCount int64 `gorm:"not null;default:0" json:"commentsCount"`
	ViewCount     int64 `gorm:"not null;default:0" json:"viewCount"`

	AverageRating float64 `gorm:"not null;default:0" json:"averageRating"`
	TotalRatings  int64   `gorm:"not null;default:0" json:"totalRatings"`

	IsActive      bool       `gorm:"type:tinyint(1);not null;default:1;index:idx_food_active" json:"isActive"`
	IsFeatured    bool       `gorm:"type:tinyint(1);not null;default:0" json:"isFeatured"`
	FeaturedUntil *time.Time `json:"featuredUntil"`

	CreatedAt time.Time `gorm:"index:idx_food_created" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Partner FoodPartner `gorm:"foreignKey:FoodPartnerID;references:ID" json:"-"`
	Tags    []FoodTag   `gorm:"foreignKey:FoodID;references:ID" json:"-"`
}

func (Food) TableName() string {
	return "foods"
}

// EngagementScore is the trending/relevance ranking signal. It is derived on
// read and never persisted. Keep the weights in sync with the SQL expression
// in repository.engagementExpr.
func (f *Food) EngagementScore() float64 {
	return float64(f.LikeCount)*2 + float64(f.SavesCount)*3 + float64(f.CommentsCount)*4 + float64(f.ViewCount)*0.1
}
