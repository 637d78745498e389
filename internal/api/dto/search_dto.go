package dto

import (
	"strconv"
	"strings"

	"reeldine/internal/pkg/consts"
	"reeldine/internal/pkg/geo"
)

// FoodSearchRequest is the raw query-string shape of GET /search/foods.
// Optional numeric filters are deliberately lenient: a value that fails to
// parse means "filter absent", never a validation error.
type FoodSearchRequest struct {
	Q                   string `form:"q"`
	Cuisine             string `form:"cuisine"`
	Lat                 string `form:"lat"`
	Lng                 string `form:"lng"`
	Radius              string `form:"radius"`
	PriceRange          string `form:"priceRange"`
	Rating              string `form:"rating"`
	Ingredients         string `form:"ingredients"`
	DietaryRestrictions string `form:"dietaryRestrictions"`
	SortBy              string `form:"sortBy"`
	Page                string `form:"page"`
	Limit               string `form:"limit"`
}

// FoodSearchQuery is the normalized plan: every optional filter is an
// explicit field, present only when supplied and parseable.
type FoodSearchQuery struct {
	Text        string      `json:"q,omitempty"`
	Cuisines    []string    `json:"cuisine,omitempty"`
	Center      *geo.Point  `json:"-"`
	CenterLng   *float64    `json:"lng,omitempty"`
	CenterLat   *float64    `json:"lat,omitempty"`
	RadiusKm    float64     `json:"radius,omitempty"`
	PriceMin    *float64    `json:"priceMin,omitempty"`
	PriceMax    *float64    `json:"priceMax,omitempty"`
	MinRating   *float64    `json:"rating,omitempty"`
	Ingredients []string    `json:"ingredients,omitempty"`
	Dietary     []string    `json:"dietaryRestrictions,omitempty"`
	SortBy      string      `json:"sortBy,omitempty"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
}

func (r *FoodSearchRequest) Normalize() *FoodSearchQuery {
	q := &FoodSearchQuery{
		Text:        strings.TrimSpace(r.Q),
		Cuisines:    splitList(r.Cuisine),
		Ingredients: splitList(r.Ingredients),
		Dietary:     splitList(r.DietaryRestrictions),
		SortBy:      r.SortBy,
		RadiusKm:    consts.DefaultSearchRadiusKm,
	}

	if lat, lng, ok := parseLatLng(r.Lat, r.Lng); ok {
		q.Center = &geo.Point{Lng: lng, Lat: lat}
		q.CenterLng = &lng
		q.CenterLat = &lat
	}
	if rad, err := strconv.ParseFloat(r.Radius, 64); err == nil && rad > 0 {
		q.RadiusKm = rad
	}
	q.PriceMin, q.PriceMax = parsePriceRange(r.PriceRange)
	if rating, err := strconv.ParseFloat(r.Rating, 64); err == nil {
		q.MinRating = &rating
	}
	q.Page, q.Limit = normalizePage(r.Page, r.Limit)

	return q
}

// PartnerSearchRequest is the raw query-string shape of GET /search/partners.
type PartnerSearchRequest struct {
	Q          string `form:"q"`
	Cuisine    string `form:"cuisine"`
	Lat        string `form:"lat"`
	Lng        string `form:"lng"`
	Radius     string `form:"radius"`
	Rating     string `form:"rating"`
	IsVerified string `form:"isVerified"`
	Page       string `form:"page"`
	Limit      string `form:"limit"`
}

type PartnerSearchQuery struct {
	Text       string     `json:"q,omitempty"`
	Cuisines   []string   `json:"cuisine,omitempty"`
	Center     *geo.Point `json:"-"`
	CenterLng  *float64   `json:"lng,omitempty"`
	CenterLat  *float64   `json:"lat,omitempty"`
	RadiusKm   float64    `json:"radius,omitempty"`
	MinRating  *float64   `json:"rating,omitempty"`
	IsVerified *bool      `json:"isVerified,omitempty"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}

func (r *PartnerSearchRequest) Normalize() *PartnerSearchQuery {
	q := &PartnerSearchQuery{
		Text:     strings.TrimSpace(r.Q),
		Cuisines: splitList(r.Cuisine),
		RadiusKm: consts.DefaultSearchRadiusKm,
	}

	if lat, lng, ok := parseLatLng(r.Lat, r.Lng); ok {
		q.Center = &geo.Point{Lng: lng, Lat: lat}
		q.CenterLng = &lng
		q.CenterLat = &lat
	}
	if rad, err := strconv.ParseFloat(r.Radius, 64); err == nil && rad > 0 {
		q.RadiusKm = rad
	}
	if rating, err := strconv.ParseFloat(r.Rating, 64); err == nil {
		q.MinRating = &rating
	}
	if r.IsVerified != "" {
		verified := r.IsVerified == "true"
		q.IsVerified = &verified
	}
	q.Page, q.Limit = normalizePage(r.Page, r.Limit)

	return q
}

// AppliedFilters echoes the effective filters back to the caller.
type AppliedFilters struct {
	Query               string     `json:"query,omitempty"`
	Cuisine             []string   `json:"cuisine,omitempty"`
	PriceRange          string     `json:"priceRange,omitempty"`
	Rating              *float64   `json:"rating,omitempty"`
	Ingredients         []string   `json:"ingredients,omitempty"`
	DietaryRestrictions []string   `json:"dietaryRestrictions,omitempty"`
	Coordinates         []float64  `json:"coordinates"` // [lng, lat], null when absent
	Radius              float64    `json:"radius,omitempty"`
}

type FoodSearchResultDTO struct {
	Foods      []*FoodDTO `json:"foods"`
	Pagination Pagination `json:"pagination"`
	Filters    struct {
		Applied AppliedFilters `json:"applied"`
	} `json:"filters"`
}

type SuggestionDTO struct {
	Type     string   `json:"type"` // food | partner | tag
	Text     string   `json:"text"`
	Category string   `json:"category"`
	Tags     []string `json:"tags,omitempty"`
}

type SuggestionsDTO struct {
	Suggestions []*SuggestionDTO `json:"suggestions"`
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseLatLng(latStr, lngStr string) (lat, lng float64, ok bool) {
	if latStr == "" || lngStr == "" {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// parsePriceRange accepts either a single floor ("10") or an inclusive
// "min-max" pair ("10-25").
func parsePriceRange(s string) (min, max *float64) {
	if s == "" {
		return nil, nil
	}
	parts := strings.SplitN(s, "-", 2)
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, nil
	}
	min = &lo
	if len(parts) == 2 {
		if hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
			max = &hi
		}
	}
	return min, max
}

func normalizePage(pageStr, limitStr string) (page, limit int) {
	page = consts.DefaultPage
	limit = consts.DefaultPageSize
	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
		limit = l
	}
	if limit > consts.MaxPageSize {
		limit = consts.MaxPageSize
	}
	return page, limit
}
