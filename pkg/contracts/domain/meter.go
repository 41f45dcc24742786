package domain

import (
	"fmt"
	"time"
)

// MeterRecord represents one validated meter reading from an input file.
// Records are immutable once validation has accepted them and live only for
// the duration of a single pipeline run.
type MeterRecord struct {
	Date         time.Time `json:"date" csv:"date"`
	KWH          float64   `json:"kwh" csv:"kwh"`
	TimeSlot     string    `json:"time,omitempty" csv:"time"`
	BuildingName string    `json:"building_name" csv:"building_name"`
	SourceFile   string    `json:"source_file,omitempty" csv:"-"`
}

// HasTimeSlot reports whether the record carries a time-of-day label.
func (r MeterRecord) HasTimeSlot() bool {
	return r.TimeSlot != ""
}

func (r MeterRecord) String() string {
	return fmt.Sprintf("MeterRecord(%s, %s, %.2f kWh)", r.BuildingName, r.Date.Format("2006-01-02"), r.KWH)
}

// IngestionOutcome tracks per-run file acceptance. Exactly one of the two
// lists gains the filename for every file the validator sees.
type IngestionOutcome struct {
	ProcessedFiles []string `json:"processed_files"`
	InvalidFiles   []string `json:"invalid_files"`
	DroppedDates   int      `json:"dropped_dates"`
	DroppedValues  int      `json:"dropped_values"`
	SkippedLines   int      `json:"skipped_lines"`
}

// ProcessedFileCount returns the number of accepted files.
func (o IngestionOutcome) ProcessedFileCount() int { return len(o.ProcessedFiles) }

// InvalidFileCount returns the number of rejected files.
func (o IngestionOutcome) InvalidFileCount() int { return len(o.InvalidFiles) }

// CorpusSummary holds corpus-level counts for reporting.
type CorpusSummary struct {
	RowCount           int       `json:"total_rows"`
	BuildingCount      int       `json:"buildings"`
	MinDate            time.Time `json:"min_date"`
	MaxDate            time.Time `json:"max_date"`
	TotalKWH           float64   `json:"total_consumption"`
	ProcessedFileCount int       `json:"processed_files"`
	InvalidFileCount   int       `json:"invalid_files"`
}

// DateRange renders the covered period as "YYYY-MM-DD to YYYY-MM-DD".
func (s CorpusSummary) DateRange() string {
	return fmt.Sprintf("%s to %s", s.MinDate.Format("2006-01-02"), s.MaxDate.Format("2006-01-02"))
}

// SpanDays returns the number of days between the first and last reading.
func (s CorpusSummary) SpanDays() int {
	return int(s.MaxDate.Sub(s.MinDate).Hours() / 24)
}
