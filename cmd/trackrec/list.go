// ABOUTME: Track list command
// ABOUTME: Lists all stored tracks with their summary metrics

package main

import (
	"fmt"

	"github.com/harper/trackrec/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all recorded tracks",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracks, err := repo.ListTracks()
		if err != nil {
			return fmt.Errorf("failed to list tracks: %w", err)
		}

		if len(tracks) == 0 {
			fmt.Println("No tracks recorded yet. Use 'trackrec record' to create one.")
			return nil
		}

		for _, track := range tracks {
			fmt.Println(ui.FormatTrack(track))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
