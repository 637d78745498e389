package dto

// PreferencesUpdateDTO merges only provided sub-fields; a nil slice leaves
// the stored value untouched.
type PreferencesUpdateDTO struct {
	Cuisines            *[]string `json:"cuisines"`
	DietaryRestrictions *[]string `json:"dietaryRestrictions"`
	FavoriteIngredients *[]string `json:"favoriteIngredients"`
}

type FollowResultDTO struct {
	FollowingCount int64 `json:"followingCount"`
}

type FollowStatusDTO struct {
	IsFollowing    bool  `json:"isFollowing"`
	FollowingCount int64 `json:"followingCount"`
}

type FollowingPageDTO struct {
	Following  []*PartnerSummaryDTO `json:"following"`
	Pagination Pagination           `json:"pagination"`
}

type FollowersPageDTO struct {
	Followers  []*UserSummaryDTO `json:"followers"`
	Pagination Pagination        `json:"pagination"`
}

type SocialStatsDTO struct {
	Following struct {
		Count         int64   `json:"count"`
		TotalVideos   int64   `json:"totalVideos"`
		AverageRating float64 `json:"averageRating"`
	} `json:"following"`
	Preferences interface{} `json:"preferences"`
}
