package dto

type RecipeSuggestionRequestDTO struct {
	Ingredients         []string `json:"ingredients" validate:"required,min=1"`
	Cuisine             string   `json:"cuisine"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
}

type RecipeSuggestionDTO struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	CookingTime int      `json:"cookingTime"`
	Difficulty  string   `json:"difficulty"`
}

type AIStatusDTO struct {
	Enabled bool   `json:"enabled"`
	Model   string `json:"model,omitempty"`
}
