// ABOUTME: Repository interface for the durable track collection
// ABOUTME: Enables testability and storage backend swapping

package storage

import (
	"github.com/google/uuid"
	"github.com/harper/trackrec/internal/models"
)

// TrackRepository defines operations on the durable collection of committed
// tracks. Implementations must preserve insertion order in ListTracks and
// must never mutate a track after it has been saved.
type TrackRepository interface {
	SaveTrack(track *models.Track) error
	ListTracks() ([]*models.Track, error)
	GetTrack(id uuid.UUID) (*models.Track, error)
	Close() error
}

// Compile-time interface implementation checks:
// var _ TrackRepository = (*SQLiteStore)(nil) is in sqlite.go;
// the charm KV implementation carries its own check in the charm package.
