package dto

type UserSummaryDTO struct {
	ID       uint64   `json:"id"`
	FullName string   `json:"fullName"`
	Avatar   string   `json:"avatar"`
	Bio      string   `json:"bio"`
	Location string   `json:"location"`
	Cuisines []string `json:"cuisines,omitempty"`
}
