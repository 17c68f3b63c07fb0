// ABOUTME: Terminal UI formatting utilities
// ABOUTME: Provides human-readable output for tracks, samples, and metrics

package ui

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harper/trackrec/internal/metrics"
	"github.com/harper/trackrec/internal/models"
)

// FormatTrack formats a committed track for list display.
func FormatTrack(track *models.Track) string {
	if track == nil {
		return color.New(color.Faint).Sprint("(no track)")
	}

	summary := fmt.Sprintf("%.2f km @ %.1f km/h, %d points",
		track.TotalDistanceKm, track.AverageSpeedKmh, track.PointCount())

	return fmt.Sprintf("%s %s - %s (%s)",
		color.New(color.Faint).Sprint(track.ID.String()[:8]),
		color.GreenString(track.Name),
		color.CyanString(summary),
		color.New(color.Faint).Sprint(FormatRelativeTime(track.StartedAt)))
}

// FormatSample formats one sample for per-point display.
func FormatSample(s models.Sample) string {
	coords := fmt.Sprintf("(%.4f, %.4f)", s.Latitude, s.Longitude)
	return fmt.Sprintf("  %s - %s",
		color.CyanString(coords),
		s.CapturedAt.Format("Jan 2, 3:04:05 PM"))
}

// FormatMetrics formats a metrics snapshot for live display.
func FormatMetrics(snap metrics.Snapshot) string {
	return fmt.Sprintf("%s km  %s km/h now  %s km/h avg",
		color.CyanString("%.3f", snap.TotalDistanceKm),
		color.CyanString("%.1f", snap.CurrentSpeedKmh),
		color.CyanString("%.1f", snap.AverageSpeedKmh))
}

// FormatRelativeTime formats a time as relative to now.
func FormatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	// Handle future times (clock skew, bad data)
	if diff < 0 {
		return color.YellowString("in the future")
	}

	if diff < time.Minute {
		return "just now"
	}
	if diff < time.Hour {
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	}
	if diff < 24*time.Hour {
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}
	days := int(diff.Hours() / 24)
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}
