package geo

import (
	"math"
	"testing"
)

func TestHaversineKnownDistances(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point
		wantKm float64
		tolKm  float64
	}{
		{
			name:   "same point",
			a:      Point{Lng: -73.98, Lat: 40.74},
			b:      Point{Lng: -73.98, Lat: 40.74},
			wantKm: 0,
			tolKm:  0.001,
		},
		{
			name:   "new york to london",
			a:      Point{Lng: -74.0060, Lat: 40.7128},
			b:      Point{Lng: -0.1278, Lat: 51.5074},
			wantKm: 5570,
			tolKm:  20,
		},
		{
			name:   "one degree of latitude",
			a:      Point{Lng: 0, Lat: 0},
			b:      Point{Lng: 0, Lat: 1},
			wantKm: 111.2,
			tolKm:  0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolKm {
				t.Errorf("Haversine() = %.2f km, want %.2f +- %.2f", got, tt.wantKm, tt.tolKm)
			}
		})
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := Point{Lng: 103.85, Lat: 1.29}
	b := Point{Lng: 139.69, Lat: 35.68}
	if d1, d2 := Haversine(a, b), Haversine(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestBoundingBoxContainsRadius(t *testing.T) {
	center := Point{Lng: -73.98, Lat: 40.74}
	radius := 10.0
	minLat, maxLat, minLng, maxLng := BoundingBox(center, radius)

	// points on the circle in the four cardinal directions must fall inside
	for i := 0; i < 360; i += 90 {
		bearing := float64(i) * math.Pi / 180
		p := Point{
			Lat: center.Lat + (radius/111.045)*math.Cos(bearing),
			Lng: center.Lng + (radius/(111.320*math.Cos(center.Lat*math.Pi/180)))*math.Sin(bearing),
		}
		if p.Lat < minLat-1e-9 || p.Lat > maxLat+1e-9 || p.Lng < minLng-1e-9 || p.Lng > maxLng+1e-9 {
			t.Errorf("bearing %d: point %+v outside box [%v,%v]x[%v,%v]", i, p, minLat, maxLat, minLng, maxLng)
		}
	}
}

func TestBoundingBoxNearPole(t *testing.T) {
	_, _, minLng, maxLng := BoundingBox(Point{Lng: 10, Lat: 89.999}, 50)
	if minLng != -180 || maxLng != 180 {
		t.Errorf("expected full longitude range near pole, got [%v, %v]", minLng, maxLng)
	}
}
