// ABOUTME: Restore command for importing tracks from a YAML backup
// ABOUTME: Supports backup files created by the backup command

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harper/trackrec/internal/storage"
	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:     "restore <file>",
	Aliases: []string{"import"},
	Short:   "Restore tracks from a YAML backup",
	Long: `Restore tracks from a YAML backup file created with 'trackrec backup'.

Restored tracks are added to the existing collection; tracks whose id is
already stored are rejected rather than overwritten.

Examples:
  trackrec restore tracks.yaml
  trackrec restore ~/backups/tracks-20250601.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm {
			fmt.Printf("Restore tracks from '%s'? [y/N] ", filename)
			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Println("Canceled.")
				return nil
			}
		}

		if err := storage.ImportBackup(repo, data); err != nil {
			return fmt.Errorf("failed to restore: %w", err)
		}

		tracks, _ := repo.ListTracks()

		color.Green("Restore complete")
		fmt.Printf("  %d tracks stored\n", len(tracks))

		return nil
	},
}

func init() {
	restoreCmd.Flags().Bool("confirm", false, "skip confirmation prompt")

	rootCmd.AddCommand(restoreCmd)
}
