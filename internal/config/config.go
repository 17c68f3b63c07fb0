// ABOUTME: Trackrec configuration management with backend selection
// ABOUTME: Handles settings, filter thresholds, and storage backend factory

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/trackrec/internal/charm"
	"github.com/harper/trackrec/internal/filter"
	"github.com/harper/trackrec/internal/storage"
)

// Config stores trackrec configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "kv".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. SQLite puts tracks.db
	// here. Supports ~ expansion for home directory.
	// Defaults to ~/.local/share/trackrec.
	DataDir string `json:"data_dir,omitempty"`

	// MinDistanceKm overrides the admission filter's minimum movement
	// threshold. Zero means the default (0.005 km).
	MinDistanceKm float64 `json:"min_distance_km,omitempty"`

	// MaxAccuracyM overrides the admission filter's maximum accuracy radius.
	// Zero means the default (50 m).
	MaxAccuracyM float64 `json:"max_accuracy_m,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// FilterConfig returns the admission thresholds with overrides applied.
func (c *Config) FilterConfig() filter.Config {
	cfg := filter.DefaultConfig()
	if c.MinDistanceKm > 0 {
		cfg.MinDistanceKm = c.MinDistanceKm
	}
	if c.MaxAccuracyM > 0 {
		cfg.MaxAccuracyM = c.MaxAccuracyM
	}
	return cfg
}

// defaultDataDir returns the default XDG data directory for trackrec.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "trackrec")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a TrackRepository implementation based on the
// configured backend.
func (c *Config) OpenStorage() (storage.TrackRepository, error) {
	switch backend := c.GetBackend(); backend {
	case "sqlite":
		dbPath := filepath.Join(c.GetDataDir(), "tracks.db")
		return storage.NewSQLiteStore(dbPath)
	case "kv":
		return charm.NewClient(nil)
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "trackrec", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			if saveErr := cfg.Save(); saveErr != nil {
				fmt.Fprintf(os.Stderr, "warning: could not save default config: %v\n", saveErr)
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return atomicWrite(path, data)
}

// atomicWrite writes via a temp file and rename so a crash mid-write never
// leaves a truncated config.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil { //nolint:gosec // 0750 is appropriate for user config directory
		return err
	}

	tmp, err := os.CreateTemp(dir, ".config-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
