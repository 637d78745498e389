package dto

import "reeldine/internal/model"

type ChallengePageDTO struct {
	Challenges []*model.Challenge `json:"challenges"`
	Pagination Pagination         `json:"pagination"`
}
