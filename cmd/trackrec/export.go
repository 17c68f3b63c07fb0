// ABOUTME: Export command for generating GPX, GeoJSON, and FIT output
// ABOUTME: Supports optional moving-average smoothing of the exported path

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harper/trackrec/internal/export"
	"github.com/harper/trackrec/internal/filter"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:     "export <id>",
	Aliases: []string{"e"},
	Short:   "Export a track as GPX, GeoJSON, or FIT",
	Long: `Export one recorded track in a portable format.

GPX and GeoJSON are written to stdout unless --output is given; FIT is
binary and always goes to a file. With --output pointing at a directory,
the filename is derived from the track name and export date.

Stored tracks are never modified: --smooth applies a centered moving
average to the exported copy only.

Examples:
  trackrec export 3f2a1b0c --format gpx
  trackrec export 3f2a1b0c --format geojson --output map.geojson
  trackrec export 3f2a1b0c --format fit --output ./rides/
  trackrec export 3f2a1b0c --format gpx --smooth 5 -o smoothed.gpx`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		window, _ := cmd.Flags().GetInt("smooth")

		track, err := resolveTrack(args[0])
		if err != nil {
			return err
		}

		if window > 0 {
			smoothed := *track
			smoothed.Samples = filter.Smooth(track.Samples, window)
			track = &smoothed
		}

		now := time.Now().UTC()
		data, err := export.Encode(track, format, now)
		if err != nil {
			return fmt.Errorf("failed to export track: %w", err)
		}

		if output == "" && format == export.FormatFIT {
			// FIT is binary; never dump it to a terminal.
			output = "."
		}

		if output == "" {
			fmt.Print(string(data))
			return nil
		}

		path := output
		if info, err := os.Stat(output); err == nil && info.IsDir() {
			path = filepath.Join(output, export.Filename(track.Name, format, now))
		}
		if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // 0644 is intentional for data export files
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d points to %s\n", track.PointCount(), path)

		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "gpx", "output format (gpx, geojson, fit)")
	exportCmd.Flags().StringP("output", "o", "", "output file or directory (default: stdout)")
	exportCmd.Flags().Int("smooth", 0, "moving-average window for the exported path (0 = off)")

	rootCmd.AddCommand(exportCmd)
}
