package dto

import (
	"time"

	"reeldine/internal/model"
)

type FoodDTO struct {
	ID              uint64                `json:"id"`
	Name            string                `json:"name"`
	Video           string                `json:"video"`
	Thumbnail       string                `json:"thumbnail,omitempty"`
	Description     string                `json:"description"`
	Ingredients     []model.Ingredient    `json:"ingredients"`
	Cuisine         string                `json:"cuisine"`
	DietaryInfo     []string              `json:"dietaryInfo"`
	Difficulty      string                `json:"difficulty"`
	CookingTime     int                   `json:"cookingTime"`
	Servings        int                   `json:"servings"`
	NutritionalInfo model.NutritionalInfo `json:"nutritionalInfo"`
	Price           float64               `json:"price"`
	Tags            []string              `json:"tags"`
	Location        [2]float64            `json:"location"` // [lng, lat]

	LikeCount     int64 `json:"likeCount"`
	SavesCount    int64 `json:"savesCount"`
	CommentsCount int64 `json:"commentsCount"`
	ViewCount     int64 `json:"viewCount"`

	AverageRating   float64  `json:"averageRating"`
	TotalRatings    int64    `json:"totalRatings"`
	EngagementScore float64  `json:"engagementScore"`
	Distance        *float64 `json:"distance,omitempty"` // km from search center

	FoodPartner *PartnerSummaryDTO `json:"foodPartner,omitempty"`

	IsFeatured bool      `json:"isFeatured"`
	CreatedAt  time.Time `json:"createdAt"`
}

type FoodCreateDTO struct {
	Name            string                `json:"name" validate:"required,max=100"`
	Video           string                `json:"video" validate:"required"`
	Thumbnail       string                `json:"thumbnail"`
	Description     string                `json:"description" validate:"max=500"`
	Ingredients     []model.Ingredient    `json:"ingredients"`
	Cuisine         string                `json:"cuisine"`
	DietaryInfo     []string              `json:"dietaryInfo"`
	Difficulty      string                `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	CookingTime     int                   `json:"cookingTime" validate:"omitempty,min=1,max=480"`
	Servings        int                   `json:"servings" validate:"omitempty,min=1,max=50"`
	NutritionalInfo model.NutritionalInfo `json:"nutritionalInfo"`
	Price           float64               `json:"price" validate:"omitempty,min=0"`
	Tags            []string              `json:"tags"`
	Lng             float64               `json:"lng"`
	Lat             float64               `json:"lat"`
}

type FoodPageDTO struct {
	Foods      []*FoodDTO `json:"foods"`
	Pagination Pagination `json:"pagination"`
}

type LikeResultDTO struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

type SaveResultDTO struct {
	Saved      bool  `json:"saved"`
	SavesCount int64 `json:"savesCount"`
}
