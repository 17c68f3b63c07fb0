// ABOUTME: SQLite storage implementation for committed tracks
// ABOUTME: Provides local-only persistence using pure Go SQLite driver

package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/harper/trackrec/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements TrackRepository with a local SQLite database.
// Tracks are insert-only: the row for a committed track is never updated.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// Compile-time check that SQLiteStore implements TrackRepository.
var _ TrackRepository = (*SQLiteStore)(nil)

// DefaultDBPath returns the default database path.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "share", "trackrec", "tracks.db")
}

// NewSQLiteStore creates a new SQLite database at the given path.
// Creates the directory and database file if they don't exist.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil { //nolint:gosec // 0750 is appropriate for user data directory
		return nil, fmt.Errorf("create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}

	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// migrate creates or updates the database schema.
// seq preserves insertion order for ListTracks.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tracks (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			started_at DATETIME NOT NULL,
			ended_at DATETIME,
			total_distance_km REAL NOT NULL,
			average_speed_kmh REAL NOT NULL,
			samples TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tracks_started_at ON tracks(started_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveTrack appends an immutable snapshot of a committed track.
func (s *SQLiteStore) SaveTrack(track *models.Track) error {
	samples, err := json.Marshal(track.Samples)
	if err != nil {
		return fmt.Errorf("marshal samples: %w", err)
	}

	var endedAt sql.NullTime
	if track.EndedAt != nil {
		endedAt = sql.NullTime{Time: *track.EndedAt, Valid: true}
	}

	_, err = s.db.Exec(
		`INSERT INTO tracks (id, name, started_at, ended_at, total_distance_km, average_speed_kmh, samples)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		track.ID.String(), track.Name, track.StartedAt, endedAt,
		track.TotalDistanceKm, track.AverageSpeedKmh, string(samples),
	)
	if err != nil {
		return fmt.Errorf("insert track: %w", err)
	}
	return nil
}

// ListTracks returns all stored tracks in insertion order.
func (s *SQLiteStore) ListTracks() ([]*models.Track, error) {
	rows, err := s.db.Query(
		`SELECT id, name, started_at, ended_at, total_distance_km, average_speed_kmh, samples
		 FROM tracks ORDER BY seq`,
	)
	if err != nil {
		return nil, fmt.Errorf("query tracks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tracks []*models.Track
	for rows.Next() {
		track, err := scanTrack(rows.Scan)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}
	return tracks, rows.Err()
}

// GetTrack returns the track with the given id, or ErrNotFound.
func (s *SQLiteStore) GetTrack(id uuid.UUID) (*models.Track, error) {
	row := s.db.QueryRow(
		`SELECT id, name, started_at, ended_at, total_distance_km, average_speed_kmh, samples
		 FROM tracks WHERE id = ?`,
		id.String(),
	)

	track, err := scanTrack(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return track, err
}

func scanTrack(scan func(dest ...any) error) (*models.Track, error) {
	var idStr, samplesJSON string
	var endedAt sql.NullTime
	var track models.Track

	err := scan(&idStr, &track.Name, &track.StartedAt, &endedAt,
		&track.TotalDistanceKm, &track.AverageSpeedKmh, &samplesJSON)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan track: %w", err)
	}

	track.ID, _ = uuid.Parse(idStr)
	if endedAt.Valid {
		t := endedAt.Time
		track.EndedAt = &t
	}
	if err := json.Unmarshal([]byte(samplesJSON), &track.Samples); err != nil {
		return nil, fmt.Errorf("unmarshal samples: %w", err)
	}
	return &track, nil
}
