// ABOUTME: Tests for MCP server, tools, and resources
// ABOUTME: Verifies MCP integration with the track repository interface

package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harper/trackrec/internal/models"
	"github.com/harper/trackrec/internal/storage"
)

// mockRepo implements storage.TrackRepository for testing.
type mockRepo struct {
	tracks []*models.Track

	saveErr error
	listErr error
	getErr  error
}

func (m *mockRepo) SaveTrack(t *models.Track) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tracks = append(m.tracks, t)
	return nil
}

func (m *mockRepo) ListTracks() ([]*models.Track, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.tracks, nil
}

func (m *mockRepo) GetTrack(id uuid.UUID) (*models.Track, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, t := range m.tracks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *mockRepo) Close() error { return nil }

func storedTrack(name string) *models.Track {
	started := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	track := models.NewTrack(name, started)
	track.Samples = []models.Sample{
		models.NewSample(41.8781, -87.6298, started),
		models.NewSample(41.8881, -87.6198, started.Add(time.Minute)),
	}
	ended := started.Add(time.Minute)
	track.EndedAt = &ended
	track.TotalDistanceKm = 1.38
	return track
}

func TestNewServer_RequiresRepo(t *testing.T) {
	if _, err := NewServer(nil); err == nil {
		t.Error("expected error for nil repository")
	}
}

func TestHandleListTracks(t *testing.T) {
	repo := &mockRepo{tracks: []*models.Track{storedTrack("a"), storedTrack("b")}}
	s, err := NewServer(repo)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	_, out, err := s.handleListTracks(context.Background(), nil, struct{}{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.Count != 2 || len(out.Tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %+v", out)
	}
	if out.Tracks[0].Name != "a" || out.Tracks[1].Name != "b" {
		t.Error("track order not preserved")
	}
	if out.Tracks[0].PointCount != 2 {
		t.Errorf("expected point count 2, got %d", out.Tracks[0].PointCount)
	}
}

func TestHandleGetTrack(t *testing.T) {
	track := storedTrack("ride")
	repo := &mockRepo{tracks: []*models.Track{track}}
	s, _ := NewServer(repo)

	_, out, err := s.handleGetTrack(context.Background(), nil, GetTrackInput{ID: track.ID.String()})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Name != "ride" || len(out.Samples) != 2 {
		t.Errorf("unexpected output: %+v", out)
	}

	_, _, err = s.handleGetTrack(context.Background(), nil, GetTrackInput{ID: "not-a-uuid"})
	if err == nil {
		t.Error("expected error for malformed id")
	}

	_, _, err = s.handleGetTrack(context.Background(), nil, GetTrackInput{ID: uuid.NewString()})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHandleExportTrack(t *testing.T) {
	track := storedTrack("ride")
	repo := &mockRepo{tracks: []*models.Track{track}}
	s, _ := NewServer(repo)

	_, out, err := s.handleExportTrack(context.Background(), nil,
		ExportTrackInput{ID: track.ID.String(), Format: "geojson"})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.MIMEType != "application/geo+json" {
		t.Errorf("unexpected MIME type: %s", out.MIMEType)
	}
	if !strings.Contains(out.Content, "LineString") {
		t.Error("expected LineString geometry in export content")
	}
	if !strings.HasSuffix(out.Filename, ".geojson") {
		t.Errorf("unexpected filename: %s", out.Filename)
	}

	_, _, err = s.handleExportTrack(context.Background(), nil,
		ExportTrackInput{ID: track.ID.String(), Format: "kml"})
	if err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestHandleTracksResource(t *testing.T) {
	repo := &mockRepo{tracks: []*models.Track{storedTrack("ride")}}
	s, _ := NewServer(repo)

	result, err := s.handleTracksResource(context.Background(), nil)
	if err != nil {
		t.Fatalf("resource: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("expected 1 content block, got %d", len(result.Contents))
	}
	if !strings.Contains(result.Contents[0].Text, "ride") {
		t.Error("expected track name in resource text")
	}
}
