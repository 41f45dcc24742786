package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"energydash/pkg/contracts/domain"
)

// Tables bundles the four derived tables for workbook export.
type Tables struct {
	Daily     []domain.DailyTotal
	Weekly    []domain.WeeklyTotal
	Buildings []domain.BuildingSummary
	TimeSlots []domain.TimeSlotSummary
}

// ExportWorkbook writes all derived tables into one Excel workbook, one sheet
// per table.
func ExportWorkbook(outputDir string, tables Tables) error {
	fullPath := filepath.Join(outputDir, WorkbookFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name    string
		headers []interface{}
		rows    func() [][]interface{}
	}{
		{
			name:    "Daily Totals",
			headers: []interface{}{"date", "total_kwh"},
			rows: func() [][]interface{} {
				out := make([][]interface{}, 0, len(tables.Daily))
				for _, d := range tables.Daily {
					out = append(out, []interface{}{d.Date.Format(dateFormat), d.TotalKWH})
				}
				return out
			},
		},
		{
			name:    "Weekly Totals",
			headers: []interface{}{"week_start", "total_kwh"},
			rows: func() [][]interface{} {
				out := make([][]interface{}, 0, len(tables.Weekly))
				for _, w := range tables.Weekly {
					out = append(out, []interface{}{w.WeekStart.Format(dateFormat), w.TotalKWH})
				}
				return out
			},
		},
		{
			name:    "Building Summary",
			headers: []interface{}{"building_name", "total", "average", "min", "max", "std_dev", "count"},
			rows: func() [][]interface{} {
				out := make([][]interface{}, 0, len(tables.Buildings))
				for _, b := range tables.Buildings {
					out = append(out, []interface{}{
						b.BuildingName, b.TotalKWH, b.AverageKWH, b.MinKWH, b.MaxKWH, b.StdDevKWH, b.ReadingCount,
					})
				}
				return out
			},
		},
		{
			name:    "Time Slots",
			headers: []interface{}{"time", "average", "peak", "minimum", "count"},
			rows: func() [][]interface{} {
				out := make([][]interface{}, 0, len(tables.TimeSlots))
				for _, s := range tables.TimeSlots {
					out = append(out, []interface{}{
						s.TimeSlot, s.AverageKWH, s.PeakKWH, s.MinimumKWH, s.ReadingCount,
					})
				}
				return out
			},
		},
	}

	for i, sheet := range sheets {
		if i == 0 {
			// Reuse the default sheet for the first table.
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
			}
		}

		if err := f.SetSheetRow(sheet.name, "A1", &sheet.headers); err != nil {
			return fmt.Errorf("failed to write headers for %s: %w", sheet.name, err)
		}
		for rowIdx, row := range sheet.rows() {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to compute cell name: %w", err)
			}
			row := row
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				return fmt.Errorf("failed to write row %d for %s: %w", rowIdx, sheet.name, err)
			}
		}
	}

	if err := f.SaveAs(fullPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("wrote workbook artifact", slog.String("path", fullPath))
	return nil
}
