// ABOUTME: Record command for capturing a track from a sample stream
// ABOUTME: Drives the session recorder from a JSON-lines file or stdin

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harper/trackrec/internal/session"
	"github.com/harper/trackrec/internal/ui"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:     "record",
	Aliases: []string{"r"},
	Short:   "Record a track from a sample stream",
	Long: `Record a new track from a JSON-lines stream of GPS fixes.

Each input line is a JSON object:
  {"lat": 41.8781, "lng": -87.6298, "captured_at": "2025-06-01T08:00:00Z"}

Optional fields: "accuracy_m", "speed_mps", and "captured_at_ms" (epoch
milliseconds, used when "captured_at" is absent). Lines without coordinates
or a timestamp are dropped.

Samples closer than the minimum distance to the last admitted point, or with
accuracy worse than the maximum, are filtered out.

Examples:
  trackrec record --name "morning ride" --input samples.jsonl
  gpspipe -w | fix2jsonl | trackrec record --name commute
  trackrec record -n hike -i hike.jsonl --min-distance-km 0.01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		input, _ := cmd.Flags().GetString("input")

		filterCfg := cfg.FilterConfig()
		if v, _ := cmd.Flags().GetFloat64("min-distance-km"); cmd.Flags().Changed("min-distance-km") {
			filterCfg.MinDistanceKm = v
		}
		if v, _ := cmd.Flags().GetFloat64("max-accuracy-m"); cmd.Flags().Changed("max-accuracy-m") {
			filterCfg.MaxAccuracyM = v
		}

		in := os.Stdin
		if input != "" && input != "-" {
			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("failed to open input: %w", err)
			}
			defer f.Close()
			in = f
		}

		recorder := session.NewRecorder(repo, session.WithFilter(filterCfg))
		src := session.NewSource()
		recorder.Attach(src)

		if err := recorder.Start(name); err != nil {
			return err
		}

		delivered, droppedLines, err := decodeSamples(in, src.Publish)
		if err != nil {
			return fmt.Errorf("failed to read sample stream: %w", err)
		}

		track, err := recorder.Stop()
		if err != nil {
			// The track is frozen even when the commit fails; retry once
			// before giving up so a transient store hiccup does not lose it.
			if retryErr := repo.SaveTrack(track); retryErr != nil {
				return fmt.Errorf("failed to commit track: %w", err)
			}
		}

		if track.PointCount() == 0 {
			fmt.Printf("No samples admitted (%d read, %d malformed). Nothing stored.\n",
				delivered, droppedLines)
			return nil
		}

		color.Green("✓ Recorded %s", track.Name)
		fmt.Println(ui.FormatTrack(track))
		rejected := delivered - track.PointCount()
		if rejected > 0 || droppedLines > 0 {
			fmt.Printf("  %d samples filtered, %d lines malformed\n", rejected, droppedLines)
		}

		return nil
	},
}

func init() {
	recordCmd.Flags().StringP("name", "n", "", "track name (required)")
	recordCmd.Flags().StringP("input", "i", "", "sample stream file (default: stdin)")
	recordCmd.Flags().Float64("min-distance-km", 0, "minimum distance between admitted samples")
	recordCmd.Flags().Float64("max-accuracy-m", 0, "worst acceptable reported accuracy")
	_ = recordCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(recordCmd)
}
