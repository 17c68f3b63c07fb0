// ABOUTME: Core data models for samples and tracks
// ABOUTME: Provides validation and constructor functions for creating new entities

package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ValidateCoordinates checks if latitude and longitude are within valid ranges.
func ValidateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return fmt.Errorf("coordinates cannot be NaN")
	}
	if math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return fmt.Errorf("coordinates cannot be infinite")
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateName checks if a track name is valid (non-empty, within length limits).
// Note: This validates the raw input - callers should trim whitespace themselves if needed.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("name cannot be empty or whitespace")
	}
	if len(name) > 255 {
		return fmt.Errorf("name too long (max 255 characters)")
	}
	return nil
}

// Sample represents one raw geolocation fix. Immutable once created.
// AccuracyM is the reported horizontal accuracy radius in meters, when the
// platform provides one. SpeedMps is the platform-reported instantaneous
// speed in m/s, when available.
type Sample struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CapturedAt time.Time `json:"captured_at"`
	AccuracyM  *float64  `json:"accuracy_m,omitempty"`
	SpeedMps   *float64  `json:"speed_mps,omitempty"`
}

// Track is a time-ordered sequence of admitted samples for one recording
// session, with derived summary metrics. A track is mutable only while it is
// the active track of a recording session; once EndedAt is set and the track
// is committed to a store, it is never edited in place.
type Track struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Samples         []Sample   `json:"samples"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	TotalDistanceKm float64    `json:"total_distance_km"`
	AverageSpeedKmh float64    `json:"average_speed_kmh"`
}

// NewSample creates a sample captured at the given time.
func NewSample(lat, lng float64, capturedAt time.Time) Sample {
	return Sample{
		Latitude:   lat,
		Longitude:  lng,
		CapturedAt: capturedAt,
	}
}

// NewTrack creates a new empty track with generated UUID.
func NewTrack(name string, startedAt time.Time) *Track {
	return &Track{
		ID:        uuid.New(),
		Name:      name,
		Samples:   []Sample{},
		StartedAt: startedAt,
	}
}

// PointCount returns the number of admitted samples in the track.
func (t *Track) PointCount() int {
	return len(t.Samples)
}

// Duration returns the recorded span of the track. For a committed track
// this is EndedAt-StartedAt; for an active track it is zero.
func (t *Track) Duration() time.Duration {
	if t.EndedAt == nil {
		return 0
	}
	return t.EndedAt.Sub(t.StartedAt)
}
