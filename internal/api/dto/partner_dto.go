package dto

type PartnerSummaryDTO struct {
	ID             uint64   `json:"id"`
	Name           string   `json:"name"`
	Logo           string   `json:"logo"`
	Description    string   `json:"description"`
	Cuisine        []string `json:"cuisine"`
	Rating         float64  `json:"rating"`
	FollowersCount int64    `json:"followersCount"`
	TotalVideos    int64    `json:"totalVideos"`
	IsVerified     bool     `json:"isVerified"`
}

type PartnerSearchItemDTO struct {
	PartnerSummaryDTO
	TotalReviews int64      `json:"totalReviews"`
	Location     [2]float64 `json:"location"` // [lng, lat]
	Distance     *float64   `json:"distance,omitempty"`
}

type PartnerSearchResultDTO struct {
	Partners   []*PartnerSearchItemDTO `json:"partners"`
	Pagination Pagination              `json:"pagination"`
}
