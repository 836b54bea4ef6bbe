package models

import (
	"math"
	"strconv"
	"time"
)

// MonthlyCO is the mean CO of one calendar month, labelled by the month's
// last day.
type MonthlyCO struct {
	Month        time.Time
	MeanCO       float64
	Observations int
}

// StationPM10 is the mean PM10 of one station.
type StationPM10 struct {
	Station      string
	MeanPM10     float64
	Observations int
}

// COMetrics are taken over the monthly means, not over raw readings.
type COMetrics struct {
	Max  float64
	Mean float64
	Min  float64
}

// Report is everything the dashboard shows for one date range.
type Report struct {
	Range         DateRange
	Observations  int
	Monthly       []MonthlyCO
	Stations      []StationPM10
	MostPolluted  []StationPM10
	LeastPolluted []StationPM10
	CO            COMetrics
}

// FormatMetric rounds half to even at one decimal and renders NaN as "NaN".
func FormatMetric(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(RoundMetric(v), 'f', 1, 64)
}

func RoundMetric(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
