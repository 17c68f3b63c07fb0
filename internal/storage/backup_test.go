// ABOUTME: Tests for YAML backup export and restore
// ABOUTME: Verifies round-trip fidelity and format validation

package storage

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestBackup_RoundTrip(t *testing.T) {
	src := testStore(t)
	started := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	first := committedTrack("first", started)
	second := committedTrack("second", started.Add(time.Hour))
	if err := src.SaveTrack(first); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := src.SaveTrack(second); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := ExportBackup(src)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(string(data), "tool: trackrec") {
		t.Error("expected tool marker in backup")
	}

	dst, err := NewSQLiteStore(filepath.Join(t.TempDir(), "restore.db"))
	if err != nil {
		t.Fatalf("create restore store: %v", err)
	}
	defer func() { _ = dst.Close() }()

	if err := ImportBackup(dst, data); err != nil {
		t.Fatalf("import: %v", err)
	}

	tracks, err := dst.ListTracks()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("expected 2 restored tracks, got %d", len(tracks))
	}
	if tracks[0].ID != first.ID || tracks[1].ID != second.ID {
		t.Error("restored ids or order do not match the backup")
	}
	if len(tracks[0].Samples) != 2 || tracks[0].Samples[0].Latitude != 41.8781 {
		t.Error("restored samples do not match")
	}
}

func TestImportBackup_RejectsWrongVersion(t *testing.T) {
	store := testStore(t)
	doc := "version: \"9.9\"\ntool: trackrec\ntracks: []\n"
	if err := ImportBackup(store, []byte(doc)); err == nil {
		t.Error("expected error for unsupported version")
	}
}

func TestImportBackup_RejectsWrongTool(t *testing.T) {
	store := testStore(t)
	doc := "version: \"1.0\"\ntool: position\ntracks: []\n"
	if err := ImportBackup(store, []byte(doc)); err == nil {
		t.Error("expected error for wrong tool")
	}
}

func TestImportBackup_RejectsBadYAML(t *testing.T) {
	store := testStore(t)
	if err := ImportBackup(store, []byte("{not yaml")); err == nil {
		t.Error("expected parse error")
	}
}
