package repository

import (
	"fmt"

	"reeldine/internal/api/dto"
	"reeldine/internal/pkg/geo"

	"gorm.io/gorm"
)

// engagementExpr mirrors model.Food.EngagementScore for SQL-side ordering.
const engagementExpr = "(like_count * 2 + saves_count * 3 + comments_count * 4 + view_count * 0.1)"

// distanceExpr computes the great-circle distance in km between a row's
// location columns and a bound center (haversine, Earth radius 6371 km).
// Placeholder order: lat, lat, lng.
const distanceExpr = "(2 * 6371 * ASIN(SQRT(" +
	"POWER(SIN(RADIANS(location_lat - ?) / 2), 2) + " +
	"COS(RADIANS(?)) * COS(RADIANS(location_lat)) * " +
	"POWER(SIN(RADIANS(location_lng - ?) / 2), 2))))"

// applyGeoFilter restricts rows to radiusKm around center. The bounding box
// is an index-friendly prefilter; the haversine predicate is exact.
func applyGeoFilter(tx *gorm.DB, center geo.Point, radiusKm float64) *gorm.DB {
	minLat, maxLat, minLng, maxLng := geo.BoundingBox(center, radiusKm)
	tx = tx.Where("location_lat BETWEEN ? AND ?", minLat, maxLat).
		Where("location_lng BETWEEN ? AND ?", minLng, maxLng)
	return tx.Where(distanceExpr+" <= ?", center.Lat, center.Lat, center.Lng, radiusKm)
}

// distanceOrderSQL inlines the center into an ORDER BY term. The values are
// floats parsed by us, never raw request text.
func distanceOrderSQL(center geo.Point) string {
	return fmt.Sprintf("(2 * 6371 * ASIN(SQRT("+
		"POWER(SIN(RADIANS(location_lat - %.8f) / 2), 2) + "+
		"COS(RADIANS(%.8f)) * COS(RADIANS(location_lat)) * "+
		"POWER(SIN(RADIANS(location_lng - %.8f) / 2), 2)))) ASC",
		center.Lat, center.Lat, center.Lng)
}

func likePattern(s string) string {
	return "%" + s + "%"
}

func prefixPattern(s string) string {
	return s + "%"
}

// resolveFoodOrder maps a sort key onto ORDER BY clauses. Distance sorting
// keeps the newest-first primary order; the service re-sorts the fetched
// page by exact distance afterwards.
func resolveFoodOrder(tx *gorm.DB, q *dto.FoodSearchQuery) *gorm.DB {
	switch q.SortBy {
	case "newest":
		tx = tx.Order("created_at DESC")
	case "oldest":
		tx = tx.Order("created_at ASC")
	case "rating":
		tx = tx.Order("average_rating DESC")
	case "price_low":
		tx = tx.Order("price ASC")
	case "price_high":
		tx = tx.Order("price DESC")
	case "trending":
		tx = tx.Order(engagementExpr + " DESC")
	case "distance":
		tx = tx.Order("created_at DESC")
	default: // relevance
		tx = tx.Order(engagementExpr + " DESC").Order("created_at DESC")
	}
	return tx
}
