// ABOUTME: Unit tests for terminal formatting
// ABOUTME: Tests relative time buckets and track summaries

package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/harper/trackrec/internal/models"
)

func TestFormatRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", time.Now().Add(-30 * time.Second), "just now"},
		{"minutes", time.Now().Add(-5 * time.Minute), "5 minutes ago"},
		{"one minute", time.Now().Add(-90 * time.Second), "1 minute ago"},
		{"hours", time.Now().Add(-3 * time.Hour), "3 hours ago"},
		{"one hour", time.Now().Add(-90 * time.Minute), "1 hour ago"},
		{"days", time.Now().Add(-49 * time.Hour), "2 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRelativeTime(tt.t); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatTrack(t *testing.T) {
	track := models.NewTrack("evening walk", time.Now().Add(-time.Hour))
	track.TotalDistanceKm = 3.21
	track.AverageSpeedKmh = 4.8
	track.Samples = []models.Sample{models.NewSample(0, 0, time.Now())}

	out := FormatTrack(track)
	if !strings.Contains(out, "evening walk") {
		t.Error("expected track name in output")
	}
	if !strings.Contains(out, "3.21 km") {
		t.Error("expected distance in output")
	}

	if got := FormatTrack(nil); !strings.Contains(got, "no track") {
		t.Errorf("expected placeholder for nil track, got %q", got)
	}
}
