package models

import (
	"sort"
	"time"
)

// Observation is one timestamped reading for a station. Missing pollutant
// readings are NaN.
type Observation struct {
	Date    time.Time
	Station string
	CO      float64
	PM10    float64
}

// Dataset is the loaded observation table, sorted ascending by Date.
type Dataset struct {
	Observations []Observation
	MinDate      time.Time
	MaxDate      time.Time
}

// Span is the full selectable range of the dataset.
func (d *Dataset) Span() DateRange {
	return DateRange{Start: d.MinDate, End: d.MaxDate}
}

// Stations returns the distinct station names in ascending order.
func (d *Dataset) Stations() []string {
	seen := make(map[string]struct{})
	for _, o := range d.Observations {
		seen[o.Station] = struct{}{}
	}

	stations := make([]string, 0, len(seen))
	for s := range seen {
		stations = append(stations, s)
	}
	sort.Strings(stations)

	return stations
}
