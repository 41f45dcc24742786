package analytics

import (
	"math"
	"sort"
	"time"

	"energydash/pkg/contracts/domain"
)

// DailyTotals groups records by exact calendar date and sums consumption,
// sorted ascending by date.
func DailyTotals(records []domain.MeterRecord) []domain.DailyTotal {
	if len(records) == 0 {
		return nil
	}

	totals := make(map[time.Time]float64)
	for _, r := range records {
		totals[r.Date] += r.KWH
	}

	result := make([]domain.DailyTotal, 0, len(totals))
	for date, total := range totals {
		result = append(result, domain.DailyTotal{Date: date, TotalKWH: total})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

// WeeklyTotals groups records by the Monday of their week and sums
// consumption, sorted ascending by week start.
func WeeklyTotals(records []domain.MeterRecord) []domain.WeeklyTotal {
	if len(records) == 0 {
		return nil
	}

	totals := make(map[time.Time]float64)
	for _, r := range records {
		totals[WeekStart(r.Date)] += r.KWH
	}

	result := make([]domain.WeeklyTotal, 0, len(totals))
	for week, total := range totals {
		result = append(result, domain.WeeklyTotal{WeekStart: week, TotalKWH: total})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].WeekStart.Before(result[j].WeekStart)
	})
	return result
}

// WeekStart returns the Monday of the week containing date.
func WeekStart(date time.Time) time.Time {
	// time.Weekday starts on Sunday; shift so Monday = 0.
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

// BuildingSummaries computes per-building statistics: sum, mean, min, max,
// sample standard deviation, and count. Reported values are rounded to two
// decimals; ordering is by exact pre-rounding total, descending, with name
// ascending as the tie break.
func BuildingSummaries(records []domain.MeterRecord) []domain.BuildingSummary {
	if len(records) == 0 {
		return nil
	}

	values := make(map[string][]float64)
	for _, r := range records {
		values[r.BuildingName] = append(values[r.BuildingName], r.KWH)
	}

	type rankedSummary struct {
		summary  domain.BuildingSummary
		rawTotal float64
	}
	ranked := make([]rankedSummary, 0, len(values))
	for name, kwh := range values {
		sum := 0.0
		min, max := kwh[0], kwh[0]
		for _, v := range kwh {
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		mean := sum / float64(len(kwh))

		ranked = append(ranked, rankedSummary{
			rawTotal: sum,
			summary: domain.BuildingSummary{
				BuildingName: name,
				TotalKWH:     Round2(sum),
				AverageKWH:   Round2(mean),
				MinKWH:       Round2(min),
				MaxKWH:       Round2(max),
				StdDevKWH:    Round2(sampleStdDev(kwh, mean)),
				ReadingCount: len(kwh),
			},
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].rawTotal != ranked[j].rawTotal {
			return ranked[i].rawTotal > ranked[j].rawTotal
		}
		return ranked[i].summary.BuildingName < ranked[j].summary.BuildingName
	})

	result := make([]domain.BuildingSummary, len(ranked))
	for i, r := range ranked {
		result[i] = r.summary
	}
	return result
}

// TimeSlotSummaries computes per-time-slot statistics: mean, max, min, and
// count, rounded to two decimals, sorted descending by mean with slot
// ascending as the tie break. Records without a time slot are ignored; a
// corpus with no slots at all yields an empty result.
func TimeSlotSummaries(records []domain.MeterRecord) []domain.TimeSlotSummary {
	values := make(map[string][]float64)
	for _, r := range records {
		if !r.HasTimeSlot() {
			continue
		}
		values[r.TimeSlot] = append(values[r.TimeSlot], r.KWH)
	}
	if len(values) == 0 {
		return nil
	}

	type rankedSummary struct {
		summary domain.TimeSlotSummary
		rawMean float64
	}
	ranked := make([]rankedSummary, 0, len(values))
	for slot, kwh := range values {
		sum := 0.0
		min, max := kwh[0], kwh[0]
		for _, v := range kwh {
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		mean := sum / float64(len(kwh))

		ranked = append(ranked, rankedSummary{
			rawMean: mean,
			summary: domain.TimeSlotSummary{
				TimeSlot:     slot,
				AverageKWH:   Round2(mean),
				PeakKWH:      Round2(max),
				MinimumKWH:   Round2(min),
				ReadingCount: len(kwh),
			},
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].rawMean != ranked[j].rawMean {
			return ranked[i].rawMean > ranked[j].rawMean
		}
		return ranked[i].summary.TimeSlot < ranked[j].summary.TimeSlot
	})

	result := make([]domain.TimeSlotSummary, len(ranked))
	for i, r := range ranked {
		result[i] = r.summary
	}
	return result
}

// PeakLoadSlot returns the time slot with the greatest summed consumption,
// or "" when no record carries a slot. Ties resolve to the lexically
// smallest slot so repeated runs agree.
func PeakLoadSlot(records []domain.MeterRecord) string {
	totals := make(map[string]float64)
	for _, r := range records {
		if r.HasTimeSlot() {
			totals[r.TimeSlot] += r.KWH
		}
	}

	peak := ""
	peakTotal := math.Inf(-1)
	for slot, total := range totals {
		if total > peakTotal || (total == peakTotal && slot < peak) {
			peak = slot
			peakTotal = total
		}
	}
	return peak
}

// Round2 rounds to two decimal places, half away from zero. Applied
// uniformly to every reported aggregate.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sampleStdDev computes the sample standard deviation (n-1 denominator).
// Undefined under two readings and reported as zero.
func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}
