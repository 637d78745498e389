package service

import (
	"context"
	"errors"
	"testing"

	"reeldine/internal/api/dto"
	"reeldine/internal/model"
	"reeldine/internal/pkg/geo"
	"reeldine/internal/repository"

	"gorm.io/gorm"
)

func newSearchFixture(t *testing.T) (SearchService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewSearchService(repository.NewFoodRepo(db), repository.NewPartnerRepo(db))
	return svc, db
}

// Manhattan-ish coordinates a few km apart.
var (
	centerPoint = geo.Point{Lng: -73.9857, Lat: 40.7484}
	nearPoint   = geo.Point{Lng: -73.9772, Lat: 40.7527} // ~1 km
	farPoint    = geo.Point{Lng: -73.9442, Lat: 40.8116} // ~8 km
)

func seedSearchData(t *testing.T, db *gorm.DB) {
	t.Helper()
	partner := seedPartner(t, db, "pastaplace", 4.5, centerPoint.Lng, centerPoint.Lat)

	seedFood(t, db, &model.Food{
		Name: "Truffle Carbonara", Description: "creamy roman classic",
		Cuisine: "Italian", Price: 18, AverageRating: 4.8,
		FoodPartnerID: partner.ID,
		LocationLng:   nearPoint.Lng, LocationLat: nearPoint.Lat,
		LikeCount: 50, ViewCount: 1000,
	}, "pasta", "truffle")

	seedFood(t, db, &model.Food{
		Name: "Margherita Pizza", Description: "wood fired",
		Cuisine: "Italian", Price: 12, AverageRating: 4.2,
		FoodPartnerID: partner.ID,
		LocationLng:   farPoint.Lng, LocationLat: farPoint.Lat,
		LikeCount: 200, ViewCount: 5000,
	}, "pizza")

	seedFood(t, db, &model.Food{
		Name: "Pad Thai", Description: "street style noodles",
		Cuisine: "Thai", Price: 9, AverageRating: 3.9,
		FoodPartnerID: partner.ID,
		LocationLng:   nearPoint.Lng, LocationLat: nearPoint.Lat,
	}, "noodles", "spicy")

	inactive := seedFood(t, db, &model.Food{
		Name: "Retired Dish", Cuisine: "Italian", Price: 10,
		FoodPartnerID: partner.ID,
	})
	if err := db.Model(&model.Food{}).Where("id = ?", inactive.ID).
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}
}

func foodQuery() *dto.FoodSearchQuery {
	return &dto.FoodSearchQuery{Page: 1, Limit: 20, RadiusKm: 10}
}

func TestSearchFoodsExcludesInactive(t *testing.T) {
	svc, db := newSearchFixture(t)
	seedSearchData(t, db)

	result, cached, err := svc.SearchFoods(context.Background(), foodQuery())
	if err != nil {
		t.Fatalf("SearchFoods: %v", err)
	}
	if cached {
		t.Error("first query must not be served from cache")
	}
	if result.Pagination.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", result.Pagination.TotalItems)
	}
	for _, f := range result.Foods {
		if f.Name == "Retired Dish" {
			t.Error("inactive food leaked into results")
		}
	}
}

func TestSearchFoodsTextMatchesNameDescriptionAndTags(t *testing.T) {
	svc, db := newSearchFixture(t)
	seedSearchData(t, db)

	tests := []struct {
		text string
		want string
	}{
		{"carbonara", "Truffle Carbonara"}, // name
		{"street style", "Pad Thai"},       // description
		{"spicy", "Pad Thai"},              // tag
	}
	for _, tt := range tests {
		q := foodQuery()
		q.Text = tt.text
		result, _, err := svc.SearchFoods(context.Background(), q)
		if err != nil {
			t.Fatalf("SearchFoods(%q): %v", tt.text, err)
		}
		if len(result.Foods) != 1 || result.Foods[0].Name != tt.want {
			t.Errorf("text %q: got %d results, want exactly %q", tt.text, len(result.Foods), tt.want)
		}
	}
}

func TestSearchFoodsFilters(t *testing.T) {
	svc, db := newSearchFixture(t)
	seedSearchData(t, db)
	ctx := context.Background()

	q := foodQuery()
	q.Cuisines = []string{"Italian"}
	result, _, err := svc.SearchFoods(ctx, q)
	if err != nil {
		t.Fatalf("cuisine filter: %v", err)
	}
	if result.Pagination.TotalItems != 2 {
		t.Errorf("cuisine filter TotalItems = %d, want 2", result.Pagination.TotalItems)
	}

	q = foodQuery()
	min, max := 10.0, 15.0
	q.PriceMin, q.PriceMax = &min, &max
	result, _, err = svc.SearchFoods(ctx, q)
	if err != nil {
		t.Fatalf("price filter: %v", err)
	}
	if len(result.Foods) != 1 || result.Foods[0].Name != "Margherita Pizza" {
		t.Errorf("price filter returned %d foods", len(result.Foods))
	}

	q = foodQuery()
	rating := 4.0
	q.MinRating = &rating
	result, _, err = svc.SearchFoods(ctx, q)
	if err != nil {
		t.Fatalf("rating filter: %v", err)
	}
	if result.Pagination.TotalItems != 2 {
		t.Errorf("rating filter TotalItems = %d, want 2", result.Pagination.TotalItems)
	}
}

func TestSearchFoodsGeoFilter(t *testing.T) {
	svc, db := newSearchFixture(t)
	seedSearchData(t, db)

	q := foodQuery()
	q.Center = &centerPoint
	q.RadiusKm = 3
	result, _, err := svc.SearchFoods(context.Background(), q)
	if err != nil {
		t.Fatalf("geo filter: %v", err)
	}
	// the pizza sits ~8 km out and must be excluded
	if result.Pagination.TotalItems != 2 {
		t.Errorf("geo filter TotalItems = %d, want 2", result.Pagination.TotalItems)
	}
	for _, f := range result.Foods {
		if f.Distance == nil {
			t.Fatalf("food %q missing distance", f.Name)
		}
		if *f.Distance > 3 {
			t.Errorf("food %q at %.2f km escaped the 3 km radius", f.Name, *f.Distance)
		}
	}
}

func TestSearchFoodsDistanceSort(t *testing.T) {
	svc, db := newSearchFixture(t)
	seedSearchData(t, db)

	q := foodQuery()
	q.SortBy = "distance"
	if _, _, err := svc.SearchFoods(context.Background(), q); !errors.Is(err, ErrGeoRequired) {
		t.Fatalf("distance sort without center: err = %v, want ErrGeoRequired", err)
	}

	q.Center = &centerPoint
	result, _, err := svc.SearchFoods(context.Background(), q)
	if err != nil {
		t.Fatalf("distance sort: %v", err)
	}
	for i := 1; i < len(result.Foods); i++ {
		if *result.Foods[i-1].Distance > *result.Foods[i].Distance {
			t.Errorf("results not ordered by distance at index %d", i)
		}
	}
}

func TestSearchFoodsTrendingSort(t *testing.T) {
	svc, db := newSearchFixture(t)
	seedSearchData(t, db)

	q := foodQuery()
	q.SortBy = "trending"
	result, _, err := svc.SearchFoods(context.Background(), q)
	if err != nil {
		t.Fatalf("trending sort: %v", err)
	}
	for i := 1; i < len(result.Foods); i++ {
		if result.Foods[i-1].EngagementScore < result.Foods[i].EngagementScore {
			t.Errorf("results not ordered by engagement at index %d", i)
		}
	}
	if result.Foods[0].Name != "Margherita Pizza" {
		t.Errorf("top trending = %q, want Margherita Pizza", result.Foods[0].Name)
	}
}

func TestSearchFoodsPagination(t *testing.T) {
	svc, db := newSearchFixture(t)
	seedSearchData(t, db)

	q := foodQuery()
	q.Limit = 2
	result, _, err := svc.SearchFoods(context.Background(), q)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(result.Foods) != 2 || result.Pagination.TotalPages != 2 || !result.Pagination.HasNext {
		t.Errorf("page 1: len=%d totalPages=%d hasNext=%v",
			len(result.Foods), result.Pagination.TotalPages, result.Pagination.HasNext)
	}

	q.Page = 2
	result, _, err = svc.SearchFoods(context.Background(), q)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(result.Foods) != 1 || result.Pagination.HasNext || !result.Pagination.HasPrev {
		t.Errorf("page 2: len=%d hasNext=%v hasPrev=%v",
			len(result.Foods), result.Pagination.HasNext, result.Pagination.HasPrev)
	}
}

func TestSearchFoodsAppliedFilters(t *testing.T) {
	svc, db := newSearchFixture(t)
	seedSearchData(t, db)

	q := foodQuery()
	q.Text = "pizza"
	q.Cuisines = []string{"Italian"}
	q.Center = &centerPoint
	min := 10.0
	q.PriceMin = &min
	result, _, err := svc.SearchFoods(context.Background(), q)
	if err != nil {
		t.Fatalf("SearchFoods: %v", err)
	}

	applied := result.Filters.Applied
	if applied.Query != "pizza" || len(applied.Cuisine) != 1 {
		t.Errorf("applied echo wrong: %+v", applied)
	}
	if applied.PriceRange != "10" {
		t.Errorf("applied.PriceRange = %q, want \"10\"", applied.PriceRange)
	}
	if len(applied.Coordinates) != 2 || applied.Coordinates[0] != centerPoint.Lng {
		t.Errorf("applied.Coordinates = %v", applied.Coordinates)
	}
	if applied.Radius != 10 {
		t.Errorf("applied.Radius = %v, want 10 with a geo center", applied.Radius)
	}

	noGeo, _, err := svc.SearchFoods(context.Background(), foodQuery())
	if err != nil {
		t.Fatalf("SearchFoods without center: %v", err)
	}
	if noGeo.Filters.Applied.Radius != 0 {
		t.Errorf("applied.Radius = %v without a geo center, want 0",
			noGeo.Filters.Applied.Radius)
	}
	if noGeo.Filters.Applied.Coordinates != nil {
		t.Errorf("applied.Coordinates = %v without a geo center, want nil",
			noGeo.Filters.Applied.Coordinates)
	}
}

func TestSearchPartners(t *testing.T) {
	svc, db := newSearchFixture(t)
	seedPartner(t, db, "verifiedsushi", 4.9, nearPoint.Lng, nearPoint.Lat)
	seedPartner(t, db, "plainburger", 3.1, farPoint.Lng, farPoint.Lat)
	if err := db.Model(&model.FoodPartner{}).Where("name = ?", "verifiedsushi").
		Update("is_verified", true).Error; err != nil {
		t.Fatalf("verify: %v", err)
	}

	q := &dto.PartnerSearchQuery{Page: 1, Limit: 20, RadiusKm: 10}
	verified := true
	q.IsVerified = &verified
	result, _, err := svc.SearchPartners(context.Background(), q)
	if err != nil {
		t.Fatalf("SearchPartners: %v", err)
	}
	if len(result.Partners) != 1 || result.Partners[0].Name != "verifiedsushi" {
		t.Errorf("verified filter returned %d partners", len(result.Partners))
	}
}

func TestSuggestions(t *testing.T) {
	svc, db := newSearchFixture(t)
	seedSearchData(t, db)
	seedPartner(t, db, "Pad Kitchen", 4.0, nearPoint.Lng, nearPoint.Lat)

	result, err := svc.Suggestions(context.Background(), "pad", "all")
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	kinds := map[string]bool{}
	for _, s := range result.Suggestions {
		kinds[s.Type] = true
	}
	if !kinds["food"] || !kinds["partner"] {
		t.Errorf("expected food and partner suggestions, got %+v", result.Suggestions)
	}

	partnersOnly, err := svc.Suggestions(context.Background(), "pad", "partners")
	if err != nil {
		t.Fatalf("partners only: %v", err)
	}
	for _, s := range partnersOnly.Suggestions {
		if s.Type != "partner" {
			t.Errorf("type filter leaked %q suggestion", s.Type)
		}
	}
	if len(partnersOnly.Suggestions) == 0 {
		t.Error("expected a partner suggestion for prefix pad")
	}

	for _, short := range []string{"", "   ", "p"} {
		empty, err := svc.Suggestions(context.Background(), short, "all")
		if err != nil {
			t.Fatalf("prefix %q: %v", short, err)
		}
		if len(empty.Suggestions) != 0 {
			t.Errorf("prefix %q must yield no suggestions", short)
		}
	}
}
