package exporter

import (
	"strconv"

	"energydash/pkg/contracts/domain"
)

// Output artifact filenames within the configured output directory.
const (
	CleanedDataFile     = "cleaned_energy_data.csv"
	BuildingSummaryFile = "building_summary.csv"
	TimeSlotFile        = "hourly_peak_analysis.csv"
	WorkbookFile        = "energy_tables.xlsx"
	SummaryReportFile   = "summary.txt"
)

// ArtifactFiles lists every artifact a run may produce, for cleanup.
func ArtifactFiles() []string {
	return []string{
		CleanedDataFile,
		BuildingSummaryFile,
		TimeSlotFile,
		WorkbookFile,
		SummaryReportFile,
	}
}

const dateFormat = "2006-01-02"

// ExportCleanedData writes the cleaned combined table: all accepted columns,
// filtered rows, no additional transformation.
func ExportCleanedData(w *CSVWriter, records []domain.MeterRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Date.Format(dateFormat),
			formatFloat(r.KWH),
			r.TimeSlot,
			r.BuildingName,
		})
	}
	return w.WriteSimpleCSV(CleanedDataFile, []string{"date", "kwh", "time", "building_name"}, rows)
}

// ExportBuildingSummary writes the building-summary table.
func ExportBuildingSummary(w *CSVWriter, summaries []domain.BuildingSummary) error {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.BuildingName,
			formatFloat(s.TotalKWH),
			formatFloat(s.AverageKWH),
			formatFloat(s.MinKWH),
			formatFloat(s.MaxKWH),
			formatFloat(s.StdDevKWH),
			strconv.Itoa(s.ReadingCount),
		})
	}
	headers := []string{"building_name", "total", "average", "min", "max", "std_dev", "count"}
	return w.WriteSimpleCSV(BuildingSummaryFile, headers, rows)
}

// ExportTimeSlotSummary writes the time-slot-summary table.
func ExportTimeSlotSummary(w *CSVWriter, summaries []domain.TimeSlotSummary) error {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.TimeSlot,
			formatFloat(s.AverageKWH),
			formatFloat(s.PeakKWH),
			formatFloat(s.MinimumKWH),
			strconv.Itoa(s.ReadingCount),
		})
	}
	headers := []string{"time", "average", "peak", "minimum", "count"}
	return w.WriteSimpleCSV(TimeSlotFile, headers, rows)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
