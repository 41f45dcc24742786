package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"energydash/internal/analytics"
	"energydash/internal/exporter"
	"energydash/internal/infrastructure"
	"energydash/internal/ingest"
	"energydash/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full ingestion, aggregation, export, and report pipeline",
	RunE:  runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("preparing directories: %w", err)
	}

	logger, closer, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	logger.Info("starting energy pipeline",
		slog.String("data_dir", cfg.Paths.DataDir),
		slog.String("output_dir", cfg.Paths.OutputDir))

	// Ingestion: every discovered file is validated exactly once; rejections
	// never abort the run.
	ingestor := ingest.NewIngestor(cfg.Paths.DataDir, cfg.Ingestion, logger)
	corpus, err := ingestor.Ingest()
	if err != nil {
		return fmt.Errorf("ingestion: %w", err)
	}

	if summary, ok := corpus.Summary(); ok {
		logger.Info("corpus summary",
			slog.Int("total_rows", summary.RowCount),
			slog.Int("buildings", summary.BuildingCount),
			slog.String("date_range", summary.DateRange()),
			slog.Float64("total_consumption", summary.TotalKWH),
			slog.Int("processed_files", summary.ProcessedFileCount),
			slog.Int("invalid_files", summary.InvalidFileCount))
	}

	// Aggregation.
	daily := analytics.DailyTotals(corpus.Records)
	weekly := analytics.WeeklyTotals(corpus.Records)
	buildings := analytics.BuildingSummaries(corpus.Records)
	timeSlots := analytics.TimeSlotSummaries(corpus.Records)
	logger.Info("aggregation complete",
		slog.Int("days", len(daily)),
		slog.Int("weeks", len(weekly)),
		slog.Int("buildings", len(buildings)),
		slog.Int("time_slots", len(timeSlots)))

	// Export.
	writer := exporter.NewCSVWriter(cfg.Paths.OutputDir)
	if err := exporter.ExportCleanedData(writer, corpus.Records); err != nil {
		return fmt.Errorf("exporting cleaned data: %w", err)
	}
	if err := exporter.ExportBuildingSummary(writer, buildings); err != nil {
		return fmt.Errorf("exporting building summary: %w", err)
	}
	if err := exporter.ExportTimeSlotSummary(writer, timeSlots); err != nil {
		return fmt.Errorf("exporting time slot summary: %w", err)
	}
	if err := exporter.ExportWorkbook(cfg.Paths.OutputDir, exporter.Tables{
		Daily:     daily,
		Weekly:    weekly,
		Buildings: buildings,
		TimeSlots: timeSlots,
	}); err != nil {
		return fmt.Errorf("exporting workbook: %w", err)
	}

	// Reports. An empty corpus is a valid terminal state for the core;
	// report generation just has nothing to say.
	if corpus.Empty() {
		logger.Warn("corpus is empty, skipping report generation")
		return nil
	}

	summary, _ := corpus.Summary()
	data := report.Data{
		Summary:     summary,
		Daily:       daily,
		Buildings:   buildings,
		PeakSlot:    analytics.PeakLoadSlot(corpus.Records),
		GeneratedAt: time.Now(),
	}

	campus := report.CampusReport(buildings)
	fmt.Fprintln(cmd.OutOrStdout(), campus)

	executive := report.ExecutiveSummary(data)
	fmt.Fprintln(cmd.OutOrStdout(), executive)
	if err := report.WriteSummaryFile(cfg.Paths.OutputDir, exporter.SummaryReportFile, executive); err != nil {
		return fmt.Errorf("writing summary file: %w", err)
	}

	logger.Info("pipeline complete", slog.String("output_dir", cfg.Paths.OutputDir))
	return nil
}
