// ABOUTME: Sample admission filter and batch smoothing
// ABOUTME: Suppresses GPS jitter and high-uncertainty fixes before they reach a track

package filter

import (
	"github.com/harper/trackrec/internal/geo"
	"github.com/harper/trackrec/internal/models"
)

// DefaultSmoothWindow is the default centered window size for Smooth.
const DefaultSmoothWindow = 3

// Config holds the admission thresholds.
type Config struct {
	// MinDistanceKm is the minimum movement from the last admitted sample.
	// Candidates closer than this are treated as jitter and rejected.
	MinDistanceKm float64

	// MaxAccuracyM is the maximum reported accuracy radius in meters.
	// Candidates reporting a larger (worse) accuracy are rejected.
	MaxAccuracyM float64
}

// DefaultConfig returns the standard admission thresholds.
func DefaultConfig() Config {
	return Config{
		MinDistanceKm: 0.005,
		MaxAccuracyM:  50,
	}
}

// Admit decides whether a candidate sample enters the active track.
// The first sample of a track (last == nil) is always admitted.
func (c Config) Admit(last *models.Sample, candidate models.Sample) bool {
	if last == nil {
		return true
	}
	if candidate.AccuracyM != nil && *candidate.AccuracyM > c.MaxAccuracyM {
		return false
	}
	if geo.DistanceKm(last.Latitude, last.Longitude, candidate.Latitude, candidate.Longitude) < c.MinDistanceKm {
		return false
	}
	return true
}

// Smooth returns a new sequence where each sample's coordinates are replaced
// by the arithmetic mean over a centered window of up to window neighbors.
// The window shrinks at the sequence boundaries. Timestamps and all other
// fields are preserved; the input is not mutated. This is a one-shot
// post-processing transform for already-captured tracks, not part of live
// admission.
func Smooth(samples []models.Sample, window int) []models.Sample {
	out := make([]models.Sample, len(samples))
	copy(out, samples)

	if window <= 1 || len(samples) < 2 {
		return out
	}

	half := window / 2
	for i := range samples {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(samples)-1 {
			hi = len(samples) - 1
		}

		var sumLat, sumLng float64
		for j := lo; j <= hi; j++ {
			sumLat += samples[j].Latitude
			sumLng += samples[j].Longitude
		}
		n := float64(hi - lo + 1)
		out[i].Latitude = sumLat / n
		out[i].Longitude = sumLng / n
	}

	return out
}
