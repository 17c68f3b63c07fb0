// ABOUTME: Unit tests for great-circle geometry
// ABOUTME: Tests haversine properties, bearing normalization, and cardinal sectors

package geo

import (
	"math"
	"testing"
)

func TestDistanceKm_IdenticalPoints(t *testing.T) {
	if d := DistanceKm(41.8781, -87.6298, 41.8781, -87.6298); d != 0 {
		t.Errorf("expected 0 for identical points, got %v", d)
	}
	if d := DistanceKm(0, 0, 0, 0); d != 0 {
		t.Errorf("expected 0 at origin, got %v", d)
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Jakarta (-6.2, 106.816) to Bandung (-6.9175, 107.6191) ~ 115-120 km
	d := DistanceKm(-6.2, 106.816, -6.9175, 107.6191)
	if d < 100 || d > 140 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	points := [][4]float64{
		{41.8781, -87.6298, 40.7128, -74.0060},
		{0, 0, 0, 0.001},
		{-33.8688, 151.2093, 51.5074, -0.1278},
	}
	for _, p := range points {
		ab := DistanceKm(p[0], p[1], p[2], p[3])
		ba := DistanceKm(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("asymmetric distance: %v vs %v", ab, ba)
		}
	}
}

func TestDistanceKm_TriangleInequality(t *testing.T) {
	// Chicago, New York, London
	a := [2]float64{41.8781, -87.6298}
	b := [2]float64{40.7128, -74.0060}
	c := [2]float64{51.5074, -0.1278}

	ab := DistanceKm(a[0], a[1], b[0], b[1])
	bc := DistanceKm(b[0], b[1], c[0], c[1])
	ac := DistanceKm(a[0], a[1], c[0], c[1])

	if ac > ab+bc+1e-9 {
		t.Errorf("triangle inequality violated: %v > %v + %v", ac, ab, bc)
	}
}

func TestDistanceKm_Finite(t *testing.T) {
	d := DistanceKm(90, 180, -90, -180)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		t.Errorf("expected finite distance, got %v", d)
	}
}

func TestBearingDegrees(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
	}{
		{"due north", 0, 0, 1, 0, 0},
		{"due east", 0, 0, 0, 1, 90},
		{"due south", 1, 0, 0, 0, 180},
		{"due west", 0, 1, 0, 0, 270},
		{"identical points", 10, 10, 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BearingDegrees(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("expected bearing %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBearingDegrees_Normalized(t *testing.T) {
	b := BearingDegrees(40.7128, -74.0060, 41.8781, -87.6298)
	if b < 0 || b >= 360 {
		t.Errorf("bearing %v outside [0, 360)", b)
	}
}

func TestCardinal(t *testing.T) {
	tests := []struct {
		bearing float64
		want    string
	}{
		{0, "N"},
		{11.24, "N"},
		{11.3, "NNE"},
		{22.5, "NNE"},
		{45, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{348.7, "NNW"},
		{348.8, "N"},
		{359.9, "N"},
		{360, "N"},
	}

	for _, tt := range tests {
		if got := Cardinal(tt.bearing); got != tt.want {
			t.Errorf("Cardinal(%v) = %s, want %s", tt.bearing, got, tt.want)
		}
	}
}
