package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"energydash/internal/exporter"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated output artifacts",
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	removed := 0
	for _, name := range exporter.ArtifactFiles() {
		path := filepath.Join(cfg.Paths.OutputDir, name)
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("removing %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", name)
		removed++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cleanup complete (%d files deleted)\n", removed)
	return nil
}
