// ABOUTME: Tests for CLI commands
// ABOUTME: Tests command metadata, sample stream decoding, and track resolution

package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harper/trackrec/internal/models"
	"github.com/harper/trackrec/internal/storage"
)

// testRepo creates a temporary SQLite store and sets the global repo variable.
func testRepo(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	repo = store
	t.Cleanup(func() {
		if repo != nil {
			_ = repo.Close()
			repo = nil
		}
	})
}

func contains(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}

// Tests for rootCmd

func TestRootCmd_Metadata(t *testing.T) {
	if rootCmd.Use != "trackrec" {
		t.Errorf("expected Use 'trackrec', got %q", rootCmd.Use)
	}
	if !strings.Contains(rootCmd.Long, "Record GPS tracks") {
		t.Error("expected description in Long")
	}
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		use   string
		alias string
	}{
		{"record", "r"},
		{"list", "ls"},
		{"show <id>", "s"},
		{"export <id>", "e"},
		{"restore <file>", "import"},
	}
	for _, tt := range tests {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Use == tt.use {
				found = true
				if !contains(c.Aliases, tt.alias) {
					t.Errorf("%s: expected alias %q", tt.use, tt.alias)
				}
			}
		}
		if !found {
			t.Errorf("command %q not registered", tt.use)
		}
	}
}

func TestBackupAndMCPRegistered(t *testing.T) {
	want := map[string]bool{"backup": false, "mcp": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Use]; ok {
			want[c.Use] = true
		}
	}
	for use, found := range want {
		if !found {
			t.Errorf("command %q not registered", use)
		}
	}
}

// Tests for the sample stream decoder

func TestDecodeSamples(t *testing.T) {
	input := strings.Join([]string{
		`{"lat": 41.8781, "lng": -87.6298, "captured_at": "2025-06-01T08:00:00Z"}`,
		``,
		`{"lat": 41.8800, "lng": -87.6300, "captured_at_ms": 1748764860000, "speed_mps": 2.5}`,
	}, "\n")

	var got []models.Sample
	delivered, dropped, err := decodeSamples(strings.NewReader(input), func(s models.Sample) {
		got = append(got, s)
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if delivered != 2 || dropped != 0 {
		t.Errorf("expected 2 delivered, 0 dropped; got %d, %d", delivered, dropped)
	}
	if got[0].Latitude != 41.8781 {
		t.Errorf("unexpected latitude: %v", got[0].Latitude)
	}
	if !got[0].CapturedAt.Equal(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected captured_at: %v", got[0].CapturedAt)
	}
	if got[1].SpeedMps == nil || *got[1].SpeedMps != 2.5 {
		t.Error("expected speed_mps to survive decoding")
	}
	if got[1].CapturedAt.IsZero() {
		t.Error("expected epoch-millisecond timestamp to resolve")
	}
}

func TestDecodeSamples_DropsMalformed(t *testing.T) {
	input := strings.Join([]string{
		`not json at all`,
		`{"lng": -87.6298, "captured_at": "2025-06-01T08:00:00Z"}`,
		`{"lat": 41.8781, "lng": -87.6298}`,
		`{"lat": 41.8781, "lng": -87.6298, "captured_at": "yesterday"}`,
		`{"lat": 41.8781, "lng": -87.6298, "captured_at": "2025-06-01T08:00:00Z"}`,
	}, "\n")

	delivered, dropped, err := decodeSamples(strings.NewReader(input), func(models.Sample) {})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if delivered != 1 {
		t.Errorf("expected 1 delivered, got %d", delivered)
	}
	if dropped != 4 {
		t.Errorf("expected 4 dropped, got %d", dropped)
	}
}

// Tests for resolveTrack

func TestResolveTrack(t *testing.T) {
	testRepo(t)

	started := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	track := models.NewTrack("ride", started)
	track.Samples = []models.Sample{models.NewSample(41.8781, -87.6298, started)}
	ended := started.Add(time.Minute)
	track.EndedAt = &ended
	if err := repo.SaveTrack(track); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := resolveTrack(track.ID.String())
	if err != nil {
		t.Fatalf("full uuid: %v", err)
	}
	if got.ID != track.ID {
		t.Error("full uuid resolved wrong track")
	}

	got, err = resolveTrack(track.ID.String()[:8])
	if err != nil {
		t.Fatalf("prefix: %v", err)
	}
	if got.ID != track.ID {
		t.Error("prefix resolved wrong track")
	}

	if _, err := resolveTrack("ffffffff"); err == nil {
		t.Error("expected error for unknown prefix")
	}
}

func TestResolveTrack_NotFound(t *testing.T) {
	testRepo(t)

	if _, err := resolveTrack("00000000-0000-0000-0000-000000000000"); err == nil {
		t.Error("expected error for missing uuid")
	}
}
