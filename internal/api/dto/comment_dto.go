package dto

import "time"

type CommentCreateDTO struct {
	FoodID uint64 `json:"foodId" validate:"required"`
	Text   string `json:"text" validate:"required,max=500"`
}

type CommentUpdateDTO struct {
	Text string `json:"text" validate:"required,max=500"`
}

type CommentDTO struct {
	ID        uint64          `json:"id"`
	FoodID    uint64          `json:"foodId"`
	Text      string          `json:"text"`
	LikeCount int64           `json:"likeCount"`
	User      *UserSummaryDTO `json:"user"`
	CreatedAt time.Time       `json:"createdAt"`
}

type CommentPageDTO struct {
	Comments   []*CommentDTO `json:"comments"`
	Pagination Pagination    `json:"pagination"`
}

type CommentLikeResultDTO struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}
