package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"reeldine/internal/api/config"
	"reeldine/internal/api/dto"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

type AIService interface {
	SuggestRecipes(ctx context.Context, req *dto.RecipeSuggestionRequestDTO) ([]*dto.RecipeSuggestionDTO, error)
	Status() *dto.AIStatusDTO
}

type AIServiceImpl struct {
	client *resty.Client
	cfg    config.AIConfig
}

func NewAIService(cfg config.AIConfig) AIService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	return &AIServiceImpl{client: client, cfg: cfg}
}

func (s *AIServiceImpl) Status() *dto.AIStatusDTO {
	status := &dto.AIStatusDTO{Enabled: s.cfg.URL != ""}
	if status.Enabled {
		status.Model = s.cfg.Model
	}
	return status
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

const suggestionPrompt = `Suggest up to 3 recipes as a JSON array. Each item:
{"name","description","ingredients":[],"steps":[],"cookingTime":minutes,"difficulty":"Easy|Medium|Hard"}.
Respond with the JSON array only.`

// SuggestRecipes asks the configured model for recipe ideas and falls back
// to a locally built suggestion when the model is unreachable or answers
// with something unparsable.
func (s *AIServiceImpl) SuggestRecipes(ctx context.Context, req *dto.RecipeSuggestionRequestDTO) ([]*dto.RecipeSuggestionDTO, error) {
	if s.cfg.URL == "" {
		return fallbackSuggestions(req), nil
	}

	suggestions, err := s.askModel(ctx, req)
	if err != nil {
		slog.WarnContext(ctx, "recipe suggestion model call failed", "error", err)
		return fallbackSuggestions(req), nil
	}
	return suggestions, nil
}

func (s *AIServiceImpl) askModel(ctx context.Context, req *dto.RecipeSuggestionRequestDTO) ([]*dto.RecipeSuggestionDTO, error) {
	var sb strings.Builder
	sb.WriteString("Ingredients: ")
	sb.WriteString(strings.Join(req.Ingredients, ", "))
	if req.Cuisine != "" {
		sb.WriteString("\nCuisine: ")
		sb.WriteString(req.Cuisine)
	}
	if len(req.DietaryRestrictions) > 0 {
		sb.WriteString("\nDietary restrictions: ")
		sb.WriteString(strings.Join(req.DietaryRestrictions, ", "))
	}

	var parsed chatResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model: s.cfg.Model,
			Messages: []chatMessage{
				{Role: "system", Content: suggestionPrompt},
				{Role: "user", Content: sb.String()},
			},
		}).
		SetResult(&parsed).
		Post("/chat/completions")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errors.New("model returned status " + resp.Status())
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("model returned no choices")
	}

	content := extractJSONArray(parsed.Choices[0].Message.Content)
	var suggestions []*dto.RecipeSuggestionDTO
	if err = json.Unmarshal([]byte(content), &suggestions); err != nil {
		return nil, err
	}
	if len(suggestions) == 0 {
		return nil, errors.New("model returned empty suggestions")
	}
	return suggestions, nil
}

// extractJSONArray tolerates models that wrap the array in prose or fences.
func extractJSONArray(content string) string {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start >= 0 && end > start {
		return content[start : end+1]
	}
	return content
}

func fallbackSuggestions(req *dto.RecipeSuggestionRequestDTO) []*dto.RecipeSuggestionDTO {
	main := "your ingredients"
	if len(req.Ingredients) > 0 {
		main = req.Ingredients[0]
	}
	cuisine := req.Cuisine
	if cuisine == "" {
		cuisine = "home-style"
	}
	return []*dto.RecipeSuggestionDTO{
		{
			Name:        "Quick " + cuisine + " stir-fry with " + main,
			Description: "A fast one-pan dish built around what you already have.",
			Ingredients: req.Ingredients,
			Steps: []string{
				"Prep and chop all ingredients.",
				"Heat oil in a large pan over high heat.",
				"Stir-fry the ingredients, firmest first.",
				"Season to taste and serve hot.",
			},
			CookingTime: 20,
			Difficulty:  "Easy",
		},
	}
}
