package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle math.
const EarthRadiusKm = 6371.0

// Point is a WGS84 coordinate. JSON and wire order is [longitude, latitude]
// per the GeoJSON convention.
type Point struct {
	Lng float64
	Lat float64
}

// Haversine returns the great-circle distance between two points in km.
func Haversine(a, b Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// BoundingBox returns the min/max latitude and longitude delimiting a square
// that fully contains the radius around center. It is a cheap, index-friendly
// prefilter; callers still apply the exact great-circle predicate.
func BoundingBox(center Point, radiusKm float64) (minLat, maxLat, minLng, maxLng float64) {
	latDelta := radiusKm / 111.045
	minLat = center.Lat - latDelta
	maxLat = center.Lat + latDelta

	cosLat := math.Cos(radians(center.Lat))
	if cosLat < 1e-9 {
		// At the poles every longitude is within range.
		return minLat, maxLat, -180, 180
	}
	lngDelta := radiusKm / (111.320 * cosLat)
	minLng = center.Lng - lngDelta
	maxLng = center.Lng + lngDelta
	return minLat, maxLat, minLng, maxLng
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
