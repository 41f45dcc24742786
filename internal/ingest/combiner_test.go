package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energydash/internal/config"
)

func TestIngest_EmptyDirectory(t *testing.T) {
	ingestor := NewIngestor(t.TempDir(), config.IngestionConfig{}, nil)

	corpus, err := ingestor.Ingest()

	require.NoError(t, err, "an empty directory is a valid degenerate state")
	assert.True(t, corpus.Empty())
	assert.Empty(t, corpus.Outcome.ProcessedFiles)
	assert.Empty(t, corpus.Outcome.InvalidFiles)
}

func TestIngest_MissingDirectory(t *testing.T) {
	ingestor := NewIngestor("/nonexistent/energydash-data", config.IngestionConfig{}, nil)

	_, err := ingestor.Ingest()

	assert.Error(t, err)
}

func TestIngest_CombinesAcceptedFilesAndTracksInvalid(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "library.csv",
		"date,kwh\n2024-01-01,10\n2024-01-02,12\n")
	writeTestFile(t, dir, "gym.csv",
		"date,kwh,time\n2024-01-01,20,08:00\n")
	writeTestFile(t, dir, "broken.csv",
		"day,usage\n2024-01-01,5\n")
	writeTestFile(t, dir, "notes.txt", "not a csv\n")

	ingestor := NewIngestor(dir, config.IngestionConfig{}, nil)
	corpus, err := ingestor.Ingest()
	require.NoError(t, err)

	assert.Len(t, corpus.Records, 3)
	assert.ElementsMatch(t, []string{"library.csv", "gym.csv"}, corpus.Outcome.ProcessedFiles)
	assert.Equal(t, []string{"broken.csv"}, corpus.Outcome.InvalidFiles)

	// Rejected file contributes no rows at all.
	for _, r := range corpus.Records {
		assert.NotEqual(t, "broken.csv", r.SourceFile)
	}
}

func TestIngest_InvalidFileCountIncrementsByExactlyOne(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "bad.csv", "x,y\n1,2\n")

	ingestor := NewIngestor(dir, config.IngestionConfig{}, nil)
	corpus, err := ingestor.Ingest()
	require.NoError(t, err)

	assert.Equal(t, 1, corpus.Outcome.InvalidFileCount())
	assert.Equal(t, 0, corpus.Outcome.ProcessedFileCount())
}

func TestIngest_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "library.csv",
		"date,kwh\n2024-01-01,10\n2024-01-02,12\n")
	writeTestFile(t, dir, "gym.csv",
		"date,kwh\n2024-01-01,20\nnot-a-date,5\n")

	ingestor := NewIngestor(dir, config.IngestionConfig{}, nil)

	first, err := ingestor.Ingest()
	require.NoError(t, err)
	second, err := ingestor.Ingest()
	require.NoError(t, err)

	assert.ElementsMatch(t, first.Records, second.Records)
	assert.ElementsMatch(t, first.Outcome.ProcessedFiles, second.Outcome.ProcessedFiles)
	assert.Equal(t, first.Outcome.DroppedDates, second.Outcome.DroppedDates)
}

func TestCorpusSummary(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "library.csv",
		"date,kwh\n2024-01-05,10\n2024-01-01,12.5\n")
	writeTestFile(t, dir, "gym.csv",
		"date,kwh\n2024-01-10,20\n")
	writeTestFile(t, dir, "bad.csv", "x\n1\n")

	ingestor := NewIngestor(dir, config.IngestionConfig{}, nil)
	corpus, err := ingestor.Ingest()
	require.NoError(t, err)

	summary, ok := corpus.Summary()
	require.True(t, ok)
	assert.Equal(t, 3, summary.RowCount)
	assert.Equal(t, 2, summary.BuildingCount)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), summary.MinDate)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), summary.MaxDate)
	assert.InDelta(t, 42.5, summary.TotalKWH, 1e-9)
	assert.Equal(t, 2, summary.ProcessedFileCount)
	assert.Equal(t, 1, summary.InvalidFileCount)
	assert.Equal(t, "2024-01-01 to 2024-01-10", summary.DateRange())
	assert.Equal(t, 9, summary.SpanDays())
}

func TestCorpusSummary_Empty(t *testing.T) {
	var nilCorpus *Corpus
	_, ok := nilCorpus.Summary()
	assert.False(t, ok)

	_, ok = (&Corpus{}).Summary()
	assert.False(t, ok)
}
