package domain

import "time"

// DailyTotal is one row of the daily-totals table: the summed consumption
// for a single calendar date.
type DailyTotal struct {
	Date     time.Time `json:"date" csv:"date"`
	TotalKWH float64   `json:"total_kwh" csv:"total_kwh"`
}

// WeeklyTotal is one row of the weekly-totals table. WeekStart is always
// Monday-aligned.
type WeeklyTotal struct {
	WeekStart time.Time `json:"week_start" csv:"week_start"`
	TotalKWH  float64   `json:"total_kwh" csv:"total_kwh"`
}

// BuildingSummary holds per-building consumption statistics. StdDevKWH is the
// sample standard deviation and reported as zero when the building has fewer
// than two readings.
type BuildingSummary struct {
	BuildingName string  `json:"building_name" csv:"building_name"`
	TotalKWH     float64 `json:"total" csv:"total"`
	AverageKWH   float64 `json:"average" csv:"average"`
	MinKWH       float64 `json:"min" csv:"min"`
	MaxKWH       float64 `json:"max" csv:"max"`
	StdDevKWH    float64 `json:"std_dev" csv:"std_dev"`
	ReadingCount int     `json:"count" csv:"count"`
}

// TimeSlotSummary holds per-time-slot consumption statistics.
type TimeSlotSummary struct {
	TimeSlot     string  `json:"time" csv:"time"`
	AverageKWH   float64 `json:"average" csv:"average"`
	PeakKWH      float64 `json:"peak" csv:"peak"`
	MinimumKWH   float64 `json:"minimum" csv:"minimum"`
	ReadingCount int     `json:"count" csv:"count"`
}
