// ABOUTME: Track collection persistence over Charm KV
// ABOUTME: Whole-array read-modify-write of a single tracks entry

package charm

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/charm/kv"
	"github.com/google/uuid"
	"github.com/harper/trackrec/internal/models"
	"github.com/harper/trackrec/internal/storage"
)

// Compile-time check that Client implements storage.TrackRepository.
var _ storage.TrackRepository = (*Client)(nil)

// SaveTrack appends an immutable track snapshot to the persisted collection.
// The whole array is loaded, appended to, and stored back under TracksKey.
func (c *Client) SaveTrack(track *models.Track) error {
	return c.Do(func(k *kv.KV) error {
		if k.IsReadOnly() {
			return fmt.Errorf("cannot write: %w", storage.ErrReadOnly)
		}

		tracks, err := readTracks(k)
		if err != nil {
			return err
		}

		for _, existing := range tracks {
			if existing.ID == track.ID {
				return fmt.Errorf("track %s already stored", track.ID)
			}
		}

		tracks = append(tracks, track)
		data, err := json.Marshal(tracks)
		if err != nil {
			return fmt.Errorf("marshal tracks: %w", err)
		}

		if err := k.Set([]byte(TracksKey), data); err != nil {
			return fmt.Errorf("set tracks: %w", err)
		}
		return nil
	})
}

// ListTracks returns all stored tracks in insertion order.
func (c *Client) ListTracks() ([]*models.Track, error) {
	var tracks []*models.Track
	err := c.DoReadOnly(func(k *kv.KV) error {
		var err error
		tracks, err = readTracks(k)
		return err
	})
	return tracks, err
}

// GetTrack returns the track with the given id, or storage.ErrNotFound.
func (c *Client) GetTrack(id uuid.UUID) (*models.Track, error) {
	tracks, err := c.ListTracks()
	if err != nil {
		return nil, err
	}
	for _, track := range tracks {
		if track.ID == id {
			return track, nil
		}
	}
	return nil, storage.ErrNotFound
}

func readTracks(k *kv.KV) ([]*models.Track, error) {
	data, err := k.Get([]byte(TracksKey))
	if err != nil {
		if errors.Is(err, kv.ErrMissingKey) {
			return []*models.Track{}, nil
		}
		return nil, fmt.Errorf("get tracks: %w", err)
	}

	var tracks []*models.Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return nil, fmt.Errorf("unmarshal tracks: %w", err)
	}
	return tracks, nil
}
