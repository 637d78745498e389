package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"reeldine/internal/api/dto"
	"reeldine/internal/pkg/consts"
	"reeldine/internal/pkg/redis"
	"reeldine/internal/repository"

	"github.com/goccy/go-json"
)

type SearchService interface {
	SearchFoods(ctx context.Context, q *dto.FoodSearchQuery) (*dto.FoodSearchResultDTO, bool, error)
	SearchPartners(ctx context.Context, q *dto.PartnerSearchQuery) (*dto.PartnerSearchResultDTO, bool, error)
	Suggestions(ctx context.Context, prefix, kind string) (*dto.SuggestionsDTO, error)
}

type SearchServiceImpl struct {
	foodRepo    repository.FoodRepo
	partnerRepo repository.PartnerRepo
}

func NewSearchService(foodRepo repository.FoodRepo, partnerRepo repository.PartnerRepo) SearchService {
	return &SearchServiceImpl{foodRepo: foodRepo, partnerRepo: partnerRepo}
}

// cacheKeyFor derives a stable key from the normalized query so equivalent
// requests share one cache entry.
func cacheKeyFor(prefix string, q interface{}) string {
	raw, err := json.Marshal(q)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return prefix + hex.EncodeToString(sum[:16])
}

func (s *SearchServiceImpl) SearchFoods(ctx context.Context, q *dto.FoodSearchQuery) (*dto.FoodSearchResultDTO, bool, error) {
	if q.SortBy == "distance" && q.Center == nil {
		return nil, false, ErrGeoRequired
	}

	key := cacheKeyFor(consts.SearchFoodKey, q)
	if key != "" {
		var cached dto.FoodSearchResultDTO
		if err := redis.GetJSON(ctx, key, &cached); err == nil {
			return &cached, true, nil
		}
	}

	foods, total, err := s.foodRepo.SearchFoods(ctx, q)
	if err != nil {
		slog.ErrorContext(ctx, "search foods", "error", err)
		return nil, false, UnExpectedError
	}

	items := toFoodDTOs(foods, q.Center)
	if q.SortBy == "distance" {
		// the SQL order is newest-first; rank the fetched page by distance
		sort.SliceStable(items, func(i, j int) bool {
			return *items[i].Distance < *items[j].Distance
		})
	}

	result := &dto.FoodSearchResultDTO{
		Foods:      items,
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}
	result.Filters.Applied = appliedFiltersFor(q)

	if key != "" {
		if err = redis.SetJSON(ctx, key, result, consts.SearchCacheTTL); err != nil {
			slog.WarnContext(ctx, "cache search result", "error", err)
		}
	}
	return result, false, nil
}

func (s *SearchServiceImpl) SearchPartners(ctx context.Context, q *dto.PartnerSearchQuery) (*dto.PartnerSearchResultDTO, bool, error) {
	key := cacheKeyFor(consts.SearchPartnerKey, q)
	if key != "" {
		var cached dto.PartnerSearchResultDTO
		if err := redis.GetJSON(ctx, key, &cached); err == nil {
			return &cached, true, nil
		}
	}

	partners, total, err := s.partnerRepo.SearchPartners(ctx, q)
	if err != nil {
		slog.ErrorContext(ctx, "search partners", "error", err)
		return nil, false, UnExpectedError
	}

	items := make([]*dto.PartnerSearchItemDTO, 0, len(partners))
	for _, p := range partners {
		items = append(items, toPartnerSearchItemDTO(p, q.Center))
	}

	result := &dto.PartnerSearchResultDTO{
		Partners:   items,
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}

	if key != "" {
		if err = redis.SetJSON(ctx, key, result, consts.SearchCacheTTL); err != nil {
			slog.WarnContext(ctx, "cache search result", "error", err)
		}
	}
	return result, false, nil
}

// suggestionLimit caps each suggestion category.
const suggestionLimit = 5

// Suggestions assembles autocomplete candidates from food names, partner
// names and tags matching the prefix. Prefixes shorter than two characters
// yield an empty list; kind narrows the categories ("foods", "partners",
// "tags", anything else means all).
func (s *SearchServiceImpl) Suggestions(ctx context.Context, prefix, kind string) (*dto.SuggestionsDTO, error) {
	prefix = strings.TrimSpace(prefix)
	out := make([]*dto.SuggestionDTO, 0, 3*suggestionLimit)
	if len([]rune(prefix)) < 2 {
		return &dto.SuggestionsDTO{Suggestions: out}, nil
	}
	if kind == "" {
		kind = "all"
	}

	if kind == "all" || kind == "foods" {
		foods, err := s.foodRepo.SuggestFoods(ctx, prefix, suggestionLimit)
		if err != nil {
			slog.ErrorContext(ctx, "suggest foods", "error", err)
			return nil, UnExpectedError
		}
		for _, f := range foods {
			tags := make([]string, 0, len(f.Tags))
			for _, t := range f.Tags {
				tags = append(tags, t.Tag)
			}
			out = append(out, &dto.SuggestionDTO{
				Type:     "food",
				Text:     f.Name,
				Category: f.Cuisine,
				Tags:     tags,
			})
		}
	}

	if kind == "all" || kind == "partners" {
		partners, err := s.partnerRepo.SuggestPartners(ctx, prefix, suggestionLimit)
		if err != nil {
			slog.ErrorContext(ctx, "suggest partners", "error", err)
			return nil, UnExpectedError
		}
		for _, p := range partners {
			out = append(out, &dto.SuggestionDTO{
				Type:     "partner",
				Text:     p.Name,
				Category: strings.Join(p.Cuisine, ", "),
			})
		}
	}

	if kind == "all" || kind == "tags" {
		tags, err := s.foodRepo.SuggestTags(ctx, prefix, suggestionLimit)
		if err != nil {
			slog.ErrorContext(ctx, "suggest tags", "error", err)
			return nil, UnExpectedError
		}
		for _, t := range tags {
			out = append(out, &dto.SuggestionDTO{
				Type:     "tag",
				Text:     t.Tag,
				Category: "tag",
			})
		}
	}

	return &dto.SuggestionsDTO{Suggestions: out}, nil
}

func appliedFiltersFor(q *dto.FoodSearchQuery) dto.AppliedFilters {
	applied := dto.AppliedFilters{
		Query:               q.Text,
		Cuisine:             q.Cuisines,
		Rating:              q.MinRating,
		Ingredients:         q.Ingredients,
		DietaryRestrictions: q.Dietary,
	}
	if q.PriceMin != nil {
		applied.PriceRange = formatPriceRange(q.PriceMin, q.PriceMax)
	}
	if q.Center != nil {
		applied.Coordinates = []float64{q.Center.Lng, q.Center.Lat}
		applied.Radius = q.RadiusKm
	}
	return applied
}

func formatPriceRange(min, max *float64) string {
	lo := strconv.FormatFloat(*min, 'f', -1, 64)
	if max == nil {
		return lo
	}
	return lo + "-" + strconv.FormatFloat(*max, 'f', -1, 64)
}
