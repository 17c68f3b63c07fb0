// ABOUTME: Root Cobra command and global flags
// ABOUTME: Sets up CLI structure, config loading, and storage backend

package main

import (
	"fmt"

	"github.com/harper/trackrec/internal/config"
	"github.com/harper/trackrec/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.TrackRepository
)

var rootCmd = &cobra.Command{
	Use:   "trackrec",
	Short: "GPS track recording and export",
	Long: `
████████╗██████╗  █████╗  ██████╗██╗  ██╗██████╗ ███████╗ ██████╗
╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██║ ██╔╝██╔══██╗██╔════╝██╔════╝
   ██║   ██████╔╝███████║██║     █████╔╝ ██████╔╝█████╗  ██║
   ██║   ██╔══██╗██╔══██║██║     ██╔═██╗ ██╔══██╗██╔══╝  ██║
   ██║   ██║  ██║██║  ██║╚██████╗██║  ██╗██║  ██║███████╗╚██████╗
   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝ ╚═════╝

       Record GPS tracks and export them as GPX or GeoJSON

Examples:
  trackrec record --name "morning ride" --input samples.jsonl
  trackrec list
  trackrec show <id>
  trackrec export <id> --format gpx`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
			cfg.DataDir = dataDir
		}
		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "override the data directory")
}
