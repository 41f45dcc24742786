// Package report renders the text reports written at the end of a run: the
// campus-wide report and the executive summary.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"energydash/pkg/contracts/domain"
)

const divider = "=================================================================="

// Data bundles everything the reports draw on. All fields come straight from
// the ingestion summary and the aggregator tables.
type Data struct {
	Summary     domain.CorpusSummary
	Daily       []domain.DailyTotal
	Buildings   []domain.BuildingSummary
	PeakSlot    string
	GeneratedAt time.Time
}

// BuildingReport renders the per-building statistics block.
func BuildingReport(b domain.BuildingSummary) string {
	var sb strings.Builder
	sb.WriteString("========================================\n")
	fmt.Fprintf(&sb, "BUILDING: %s\n", b.BuildingName)
	sb.WriteString("========================================\n")
	fmt.Fprintf(&sb, "Total Readings: %d\n", b.ReadingCount)
	fmt.Fprintf(&sb, "Total Consumption: %s kWh\n", kwh(b.TotalKWH))
	fmt.Fprintf(&sb, "Average Consumption: %s kWh/reading\n", kwh(b.AverageKWH))
	fmt.Fprintf(&sb, "Peak Consumption: %s kWh\n", kwh(b.MaxKWH))
	fmt.Fprintf(&sb, "Minimum Consumption: %s kWh\n", kwh(b.MinKWH))
	fmt.Fprintf(&sb, "Standard Deviation: %s kWh\n", kwh(b.StdDevKWH))
	sb.WriteString("========================================\n")
	return sb.String()
}

// CampusReport renders the campus-wide report: totals, highest and lowest
// consumers, and the percentage distribution across buildings. Buildings must
// already be sorted descending by total (the aggregator's order).
func CampusReport(buildings []domain.BuildingSummary) string {
	if len(buildings) == 0 {
		return "No building data available.\n"
	}

	campusTotal := 0.0
	for _, b := range buildings {
		campusTotal += b.TotalKWH
	}
	highest := buildings[0]
	lowest := buildings[len(buildings)-1]

	var sb strings.Builder
	sb.WriteString("========================================\n")
	sb.WriteString("CAMPUS-WIDE ENERGY SUMMARY\n")
	sb.WriteString("========================================\n")
	fmt.Fprintf(&sb, "Total Buildings: %d\n", len(buildings))
	fmt.Fprintf(&sb, "Campus Total Consumption: %s kWh\n\n", kwh(campusTotal))
	fmt.Fprintf(&sb, "Highest Consumer: %s\n", highest.BuildingName)
	fmt.Fprintf(&sb, "- Consumption: %s kWh\n\n", kwh(highest.TotalKWH))
	fmt.Fprintf(&sb, "Lowest Consumer: %s\n", lowest.BuildingName)
	fmt.Fprintf(&sb, "- Consumption: %s kWh\n\n", kwh(lowest.TotalKWH))
	sb.WriteString("Percentage Distribution:\n")

	byName := make([]domain.BuildingSummary, len(buildings))
	copy(byName, buildings)
	sortByName(byName)
	for _, b := range byName {
		pct := 0.0
		if campusTotal > 0 {
			pct = b.TotalKWH / campusTotal * 100
		}
		fmt.Fprintf(&sb, "  %s: %.1f%% (%s kWh)\n", b.BuildingName, pct, kwh(b.TotalKWH))
	}
	sb.WriteString("========================================\n")
	return sb.String()
}

// ExecutiveSummary renders the executive summary text.
func ExecutiveSummary(data Data) string {
	if len(data.Buildings) == 0 {
		return "No data available for executive summary.\n"
	}
	highest := data.Buildings[0]
	lowest := data.Buildings[len(data.Buildings)-1]

	minDaily, maxDaily, avgDaily := dailyStats(data.Daily)

	peakSlot := data.PeakSlot
	if peakSlot == "" {
		peakSlot = "N/A"
	}

	var sb strings.Builder
	line := func(format string, args ...interface{}) { fmt.Fprintf(&sb, format+"\n", args...) }

	line(divider)
	line("        CAMPUS ENERGY-USE DASHBOARD - EXECUTIVE SUMMARY")
	line(divider)
	line("")
	line("ANALYSIS PERIOD: %s", data.Summary.DateRange())
	line("")
	line("CAMPUS OVERVIEW")
	line("------------------------------------------------------------------")
	line("* Total Campus Consumption: %s kWh", kwh(data.Summary.TotalKWH))
	line("* Number of Buildings Analyzed: %d", data.Summary.BuildingCount)
	line("* Data Points Collected: %s", humanize.Comma(int64(data.Summary.RowCount)))
	line("* Analysis Period: %d days", data.Summary.SpanDays())
	line("")
	line("DAILY CONSUMPTION STATISTICS")
	line("------------------------------------------------------------------")
	line("* Average Daily Consumption: %s kWh", kwh(avgDaily))
	line("* Maximum Daily Consumption: %s kWh", kwh(maxDaily))
	line("* Minimum Daily Consumption: %s kWh", kwh(minDaily))
	line("")
	line("TOP CONSUMERS")
	line("------------------------------------------------------------------")
	line("Highest Consuming Building: %s", highest.BuildingName)
	line("  * Total Consumption: %s kWh", kwh(highest.TotalKWH))
	line("  * Average per Reading: %s kWh", kwh(highest.AverageKWH))
	line("  * Peak Consumption: %s kWh", kwh(highest.MaxKWH))
	line("")
	line("Lowest Consuming Building: %s", lowest.BuildingName)
	line("  * Total Consumption: %s kWh", kwh(lowest.TotalKWH))
	line("  * Average per Reading: %s kWh", kwh(lowest.AverageKWH))
	line("  * Peak Consumption: %s kWh", kwh(lowest.MaxKWH))
	line("")
	line("PEAK LOAD ANALYSIS")
	line("------------------------------------------------------------------")
	line("* Peak Load Time: %s", peakSlot)
	line("")
	line(divider)
	line("Report Generated: %s", data.GeneratedAt.Format("2006-01-02 15:04:05"))
	line(divider)
	return sb.String()
}

// WriteSummaryFile writes the executive summary artifact.
func WriteSummaryFile(outputDir, filename, text string) error {
	path := filepath.Join(outputDir, filename)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}
	return nil
}

func dailyStats(daily []domain.DailyTotal) (min, max, avg float64) {
	if len(daily) == 0 {
		return 0, 0, 0
	}
	min, max = daily[0].TotalKWH, daily[0].TotalKWH
	sum := 0.0
	for _, d := range daily {
		sum += d.TotalKWH
		if d.TotalKWH < min {
			min = d.TotalKWH
		}
		if d.TotalKWH > max {
			max = d.TotalKWH
		}
	}
	return min, max, sum / float64(len(daily))
}

func sortByName(buildings []domain.BuildingSummary) {
	sort.Slice(buildings, func(i, j int) bool {
		return buildings[i].BuildingName < buildings[j].BuildingName
	})
}

func kwh(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}
