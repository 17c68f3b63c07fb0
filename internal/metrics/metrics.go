// ABOUTME: Derived track metrics computed from admitted samples
// ABOUTME: Current speed, running average speed, and cumulative distance

package metrics

import (
	"time"

	"github.com/harper/trackrec/internal/geo"
	"github.com/harper/trackrec/internal/models"
)

const mpsToKmh = 3.6

// Snapshot holds the derived metrics for one tick. All values are
// recomputed from scratch for each snapshot; there is no hidden accumulator
// state, so reload and resume stay deterministic.
type Snapshot struct {
	CurrentSpeedKmh float64
	AverageSpeedKmh float64
	TotalDistanceKm float64
}

// TotalDistanceKm sums the pairwise haversine distances between
// chronologically adjacent samples.
func TotalDistanceKm(samples []models.Sample) float64 {
	var total float64
	for i := 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		total += geo.DistanceKm(prev.Latitude, prev.Longitude, curr.Latitude, curr.Longitude)
	}
	return total
}

// Compute derives a metrics snapshot from the admitted samples, the
// session start timestamp, and the current wall-clock time.
//
// Current speed prefers the platform-reported speed on the newest sample;
// otherwise it is derived from the two most recent samples, reporting 0 when
// their timestamps coincide. Average speed divides the just-updated total
// distance by the wall-clock hours elapsed since the session started, so it
// never lags one tick behind the total.
func Compute(samples []models.Sample, startedAt, now time.Time) Snapshot {
	snap := Snapshot{
		TotalDistanceKm: TotalDistanceKm(samples),
	}

	snap.CurrentSpeedKmh = currentSpeedKmh(samples)

	elapsedHours := now.Sub(startedAt).Hours()
	if elapsedHours > 0 {
		snap.AverageSpeedKmh = snap.TotalDistanceKm / elapsedHours
	}

	return snap
}

func currentSpeedKmh(samples []models.Sample) float64 {
	if len(samples) == 0 {
		return 0
	}

	last := samples[len(samples)-1]
	if last.SpeedMps != nil {
		return *last.SpeedMps * mpsToKmh
	}

	if len(samples) < 2 {
		return 0
	}

	prev := samples[len(samples)-2]
	dtHours := last.CapturedAt.Sub(prev.CapturedAt).Hours()
	if dtHours <= 0 {
		return 0
	}

	return geo.DistanceKm(prev.Latitude, prev.Longitude, last.Latitude, last.Longitude) / dtHours
}
