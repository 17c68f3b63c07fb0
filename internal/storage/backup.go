// ABOUTME: Backup and restore functionality for the track collection
// ABOUTME: Round-trips all stored tracks through a versioned YAML document

package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harper/trackrec/internal/models"
	"gopkg.in/yaml.v3"
)

// BackupVersion is the current backup format version.
const BackupVersion = "1.0"

// Backup represents the YAML backup format.
type Backup struct {
	Version    string        `yaml:"version"`
	ExportedAt time.Time     `yaml:"exported_at"`
	Tool       string        `yaml:"tool"`
	Tracks     []TrackBackup `yaml:"tracks"`
}

// TrackBackup represents a track in the backup format.
type TrackBackup struct {
	ID              string         `yaml:"id"`
	Name            string         `yaml:"name"`
	StartedAt       time.Time      `yaml:"started_at"`
	EndedAt         *time.Time     `yaml:"ended_at,omitempty"`
	TotalDistanceKm float64        `yaml:"total_distance_km"`
	AverageSpeedKmh float64        `yaml:"average_speed_kmh"`
	Samples         []SampleBackup `yaml:"samples"`
}

// SampleBackup represents a sample in the backup format.
type SampleBackup struct {
	Latitude   float64   `yaml:"latitude"`
	Longitude  float64   `yaml:"longitude"`
	CapturedAt time.Time `yaml:"captured_at"`
	AccuracyM  *float64  `yaml:"accuracy_m,omitempty"`
	SpeedMps   *float64  `yaml:"speed_mps,omitempty"`
}

// ExportBackup exports all stored tracks to YAML.
func ExportBackup(repo TrackRepository) ([]byte, error) {
	tracks, err := repo.ListTracks()
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}

	backup := Backup{
		Version:    BackupVersion,
		ExportedAt: time.Now().UTC(),
		Tool:       "trackrec",
		Tracks:     make([]TrackBackup, len(tracks)),
	}

	for i, track := range tracks {
		tb := TrackBackup{
			ID:              track.ID.String(),
			Name:            track.Name,
			StartedAt:       track.StartedAt,
			EndedAt:         track.EndedAt,
			TotalDistanceKm: track.TotalDistanceKm,
			AverageSpeedKmh: track.AverageSpeedKmh,
			Samples:         make([]SampleBackup, len(track.Samples)),
		}
		for j, s := range track.Samples {
			tb.Samples[j] = SampleBackup{
				Latitude:   s.Latitude,
				Longitude:  s.Longitude,
				CapturedAt: s.CapturedAt,
				AccuracyM:  s.AccuracyM,
				SpeedMps:   s.SpeedMps,
			}
		}
		backup.Tracks[i] = tb
	}

	return yaml.Marshal(backup)
}

// ImportBackup restores tracks from a YAML backup.
// This is a restore operation; tracks are saved as-is, in backup order.
func ImportBackup(repo TrackRepository, data []byte) error {
	var backup Backup
	if err := yaml.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	if backup.Version != BackupVersion {
		return fmt.Errorf("unsupported backup version: %s (expected %s)", backup.Version, BackupVersion)
	}
	if backup.Tool != "trackrec" {
		return fmt.Errorf("wrong tool: %s (expected trackrec)", backup.Tool)
	}

	for _, tb := range backup.Tracks {
		id, err := uuid.Parse(tb.ID)
		if err != nil {
			return fmt.Errorf("invalid track ID %s: %w", tb.ID, err)
		}

		track := &models.Track{
			ID:              id,
			Name:            tb.Name,
			StartedAt:       tb.StartedAt,
			EndedAt:         tb.EndedAt,
			TotalDistanceKm: tb.TotalDistanceKm,
			AverageSpeedKmh: tb.AverageSpeedKmh,
			Samples:         make([]models.Sample, len(tb.Samples)),
		}
		for j, s := range tb.Samples {
			track.Samples[j] = models.Sample{
				Latitude:   s.Latitude,
				Longitude:  s.Longitude,
				CapturedAt: s.CapturedAt,
				AccuracyM:  s.AccuracyM,
				SpeedMps:   s.SpeedMps,
			}
		}

		if err := repo.SaveTrack(track); err != nil {
			return fmt.Errorf("save track %s: %w", tb.Name, err)
		}
	}

	return nil
}
