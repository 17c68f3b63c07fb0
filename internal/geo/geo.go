// ABOUTME: Great-circle geometry over coordinate pairs
// ABOUTME: Haversine distance, initial bearing, and compass cardinal labels

package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for haversine distances.
const EarthRadiusKm = 6371.0

var cardinals = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// DistanceKm returns the great-circle distance in kilometers between two
// coordinate pairs using the haversine formula. Symmetric; 0 for identical
// points.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// BearingDegrees returns the initial bearing from the first point to the
// second, normalized to [0, 360). Identical points yield 0.
func BearingDegrees(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	y := math.Sin(deltaLng) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) -
		math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(deltaLng)

	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// Cardinal maps a bearing in degrees to one of the 16 compass labels,
// rounding to the nearest 22.5-degree sector and wrapping at 360.
func Cardinal(bearing float64) string {
	bearing = math.Mod(math.Mod(bearing, 360)+360, 360)
	idx := int(math.Floor(bearing/22.5+0.5)) % 16
	return cardinals[idx]
}
