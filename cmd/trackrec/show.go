// ABOUTME: Track show command
// ABOUTME: Displays one track's samples with per-leg distance and heading

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harper/trackrec/internal/geo"
	"github.com/harper/trackrec/internal/models"
	"github.com/harper/trackrec/internal/storage"
	"github.com/harper/trackrec/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show <id>",
	Aliases: []string{"s"},
	Short:   "Show a track's samples and metrics",
	Long: `Show one recorded track: its summary metrics and every sample with
the distance and heading of each leg.

The id may be a full UUID or a unique prefix as shown by 'trackrec list'.

Examples:
  trackrec show 3f2a1b0c
  trackrec show 3f2a1b0c-9d4e-4f6a-8b7c-1d2e3f4a5b6c`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		track, err := resolveTrack(args[0])
		if err != nil {
			return err
		}

		fmt.Println(ui.FormatTrack(track))
		fmt.Println()

		for i, s := range track.Samples {
			if i == 0 {
				fmt.Printf("  %s\n", ui.FormatSample(s))
				continue
			}
			prev := track.Samples[i-1]
			legKm := geo.DistanceKm(prev.Latitude, prev.Longitude, s.Latitude, s.Longitude)
			bearing := geo.BearingDegrees(prev.Latitude, prev.Longitude, s.Latitude, s.Longitude)
			fmt.Printf("  %s  %s\n", ui.FormatSample(s),
				color.New(color.Faint).Sprintf("+%.3f km %s", legKm, geo.Cardinal(bearing)))
		}

		return nil
	},
}

// resolveTrack finds a track by full UUID or unique id prefix.
func resolveTrack(idArg string) (*models.Track, error) {
	if id, err := uuid.Parse(idArg); err == nil {
		track, err := repo.GetTrack(id)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("track '%s' not found", idArg)
		}
		return track, err
	}

	tracks, err := repo.ListTracks()
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}

	var match *models.Track
	for _, track := range tracks {
		if strings.HasPrefix(track.ID.String(), strings.ToLower(idArg)) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous track id prefix '%s'", idArg)
			}
			match = track
		}
	}
	if match == nil {
		return nil, fmt.Errorf("track '%s' not found", idArg)
	}
	return match, nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}
