package main

import (
	"github.com/spf13/cobra"

	"energydash/internal/config"
)

var (
	cfgFile   string
	dataDir   string
	outputDir string
)

var rootCmd = &cobra.Command{
	Use:   "energydash",
	Short: "Batch analytics over campus energy-meter CSV files",
	Long: `energydash ingests building-level energy-meter CSV files, validates and
combines them, computes daily, weekly, per-building, and per-time-slot
aggregates, exports the result tables, and writes an executive summary.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "input directory containing meter CSV files")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "directory for generated artifacts")
}

// loadConfig loads configuration and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.Paths.DataDir = dataDir
	}
	if outputDir != "" {
		cfg.Paths.OutputDir = outputDir
	}
	return cfg, nil
}
