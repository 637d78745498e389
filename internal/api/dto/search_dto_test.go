package dto

import (
	"reflect"
	"testing"

	"reeldine/internal/pkg/consts"
)

func TestFoodSearchNormalizeDefaults(t *testing.T) {
	q := (&FoodSearchRequest{}).Normalize()

	if q.Page != consts.DefaultPage || q.Limit != consts.DefaultPageSize {
		t.Errorf("default pagination = (%d, %d)", q.Page, q.Limit)
	}
	if q.RadiusKm != consts.DefaultSearchRadiusKm {
		t.Errorf("default radius = %v", q.RadiusKm)
	}
	if q.Center != nil || q.PriceMin != nil || q.PriceMax != nil || q.MinRating != nil {
		t.Error("expected all optional filters absent")
	}
}

func TestFoodSearchNormalizeLenientNumbers(t *testing.T) {
	// unparsable numerics mean "filter absent", never an error
	q := (&FoodSearchRequest{
		Lat:    "not-a-number",
		Lng:    "-73.98",
		Rating: "high",
		Radius: "-5",
		Page:   "zero",
		Limit:  "9999",
	}).Normalize()

	if q.Center != nil {
		t.Error("partial coordinates must not produce a center")
	}
	if q.MinRating != nil {
		t.Error("unparsable rating must be dropped")
	}
	if q.RadiusKm != consts.DefaultSearchRadiusKm {
		t.Errorf("non-positive radius must fall back to default, got %v", q.RadiusKm)
	}
	if q.Page != consts.DefaultPage {
		t.Errorf("unparsable page must fall back, got %d", q.Page)
	}
	if q.Limit != consts.MaxPageSize {
		t.Errorf("oversized limit must clamp to %d, got %d", consts.MaxPageSize, q.Limit)
	}
}

func TestFoodSearchNormalizeCoordinates(t *testing.T) {
	q := (&FoodSearchRequest{Lat: "40.74", Lng: "-73.98", Radius: "2.5"}).Normalize()
	if q.Center == nil {
		t.Fatal("expected center")
	}
	if q.Center.Lat != 40.74 || q.Center.Lng != -73.98 {
		t.Errorf("center = %+v", *q.Center)
	}
	if q.RadiusKm != 2.5 {
		t.Errorf("radius = %v", q.RadiusKm)
	}
}

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		in      string
		min     *float64
		max     *float64
	}{
		{"", nil, nil},
		{"abc", nil, nil},
		{"10", f(10), nil},
		{"10-25", f(10), f(25)},
		{" 5 - 7.5 ", f(5), f(7.5)},
		{"10-abc", f(10), nil},
	}
	for _, tt := range tests {
		min, max := parsePriceRange(tt.in)
		if !floatPtrEq(min, tt.min) || !floatPtrEq(max, tt.max) {
			t.Errorf("parsePriceRange(%q) = (%v, %v), want (%v, %v)", tt.in, min, max, tt.min, tt.max)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" italian, thai ,,mexican ")
	want := []string{"italian", "thai", "mexican"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitList = %v, want %v", got, want)
	}
	if splitList("") != nil {
		t.Error("empty input must yield nil")
	}
}

func TestPaginationMath(t *testing.T) {
	p := NewPagination(2, 20, 45)
	if p.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("HasNext=%v HasPrev=%v", p.HasNext, p.HasPrev)
	}

	last := NewPagination(3, 20, 45)
	if last.HasNext {
		t.Error("last page must not have next")
	}
}

func f(v float64) *float64 { return &v }

func floatPtrEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
