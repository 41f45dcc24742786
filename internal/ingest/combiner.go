package ingest

import (
	"fmt"
	"log/slog"

	"energydash/internal/config"
	"energydash/internal/files"
	"energydash/pkg/contracts/domain"
)

// Corpus is the unified record set for one pipeline run: all accepted rows
// concatenated in file-discovery order, plus the run's ingestion outcome.
// It is rebuilt from scratch each invocation and never shared across runs.
type Corpus struct {
	Records []domain.MeterRecord
	Outcome domain.IngestionOutcome
}

// Empty reports whether the corpus holds no records.
func (c *Corpus) Empty() bool {
	return c == nil || len(c.Records) == 0
}

// Summary computes corpus-level counts for reporting. The second return is
// false when the corpus is empty; "not yet ingested" and "ingested but empty"
// are deliberately not distinguished.
func (c *Corpus) Summary() (domain.CorpusSummary, bool) {
	if c.Empty() {
		return domain.CorpusSummary{}, false
	}

	buildings := make(map[string]struct{})
	summary := domain.CorpusSummary{
		RowCount:           len(c.Records),
		MinDate:            c.Records[0].Date,
		MaxDate:            c.Records[0].Date,
		ProcessedFileCount: c.Outcome.ProcessedFileCount(),
		InvalidFileCount:   c.Outcome.InvalidFileCount(),
	}
	for _, r := range c.Records {
		buildings[r.BuildingName] = struct{}{}
		summary.TotalKWH += r.KWH
		if r.Date.Before(summary.MinDate) {
			summary.MinDate = r.Date
		}
		if r.Date.After(summary.MaxDate) {
			summary.MaxDate = r.Date
		}
	}
	summary.BuildingCount = len(buildings)

	return summary, true
}

// Ingestor discovers candidate files and drives the validator over each,
// folding the results into one Corpus.
type Ingestor struct {
	dataDir   string
	discovery *files.Discovery
	opts      ValidateOptions
	logger    *slog.Logger
}

// NewIngestor creates an ingestor over the given input directory.
func NewIngestor(dataDir string, cfg config.IngestionConfig, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{
		dataDir:   dataDir,
		discovery: files.NewDiscovery(""),
		opts: ValidateOptions{
			MaxSkippedLines: cfg.MaxSkippedLines,
			Logger:          logger,
		},
		logger: logger,
	}
}

// Ingest runs discovery and validation over the input directory. Files are
// processed sequentially in discovery order; per-file rejections never abort
// the run. Zero accepted files yields an empty corpus, not an error. The only
// error is an unreadable input directory.
func (i *Ingestor) Ingest() (*Corpus, error) {
	candidates, err := i.discovery.FindCSVFiles(i.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to discover input files: %w", err)
	}
	i.logger.Info("discovered input files",
		slog.Int("count", len(candidates)),
		slog.String("data_dir", i.dataDir))

	corpus := &Corpus{}
	for _, candidate := range candidates {
		result := ValidateFile(candidate.Path, i.opts)

		if result.Rejected {
			corpus.Outcome.InvalidFiles = append(corpus.Outcome.InvalidFiles, result.Filename)
			i.logger.Warn("file rejected",
				slog.String("file", result.Filename),
				slog.String("reason", string(result.Reason)))
			continue
		}

		corpus.Outcome.ProcessedFiles = append(corpus.Outcome.ProcessedFiles, result.Filename)
		corpus.Outcome.DroppedDates += result.DroppedDates
		corpus.Outcome.DroppedValues += result.DroppedValues
		corpus.Outcome.SkippedLines += result.SkippedLines
		corpus.Records = append(corpus.Records, result.Records...)
	}

	if corpus.Empty() {
		i.logger.Warn("no valid data files found", slog.String("data_dir", i.dataDir))
	}
	i.logger.Info("ingestion complete",
		slog.Int("total_rows", len(corpus.Records)),
		slog.Int("processed_files", corpus.Outcome.ProcessedFileCount()),
		slog.Int("invalid_files", corpus.Outcome.InvalidFileCount()))

	return corpus, nil
}
