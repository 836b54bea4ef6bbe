package airquality

import (
	"math"
	"sort"
	"time"

	"airquality-dashboard/internal/models"
)

// TopN is how many stations each ranking view shows.
const TopN = 5

// FilterByRange keeps the observations whose calendar day lies inside r,
// both ends inclusive. A range with Start after End selects nothing.
func FilterByRange(obs []models.Observation, r models.DateRange) []models.Observation {
	out := make([]models.Observation, 0)
	if models.Day(r.Start).After(models.Day(r.End)) {
		return out
	}

	for _, o := range obs {
		if r.Contains(o.Date) {
			out = append(out, o)
		}
	}
	return out
}

// MonthlyCOMeans buckets observations by calendar month and averages CO in
// each bucket. Months without observations produce no row.
func MonthlyCOMeans(obs []models.Observation) []models.MonthlyCO {
	type bucket struct {
		month time.Time
		acc   meanAccumulator
		count int
	}

	buckets := make(map[time.Time]*bucket)
	for _, o := range obs {
		label := monthEnd(o.Date)
		b, ok := buckets[label]
		if !ok {
			b = &bucket{month: label}
			buckets[label] = b
		}
		b.acc.add(o.CO)
		b.count++
	}

	rows := make([]models.MonthlyCO, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, models.MonthlyCO{
			Month:        b.month,
			MeanCO:       b.acc.mean(),
			Observations: b.count,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Month.Before(rows[j].Month)
	})

	return rows
}

// SummarizeCO returns max, mean and min across the monthly means. NaN
// months are skipped; with nothing left every metric is NaN.
func SummarizeCO(rows []models.MonthlyCO) models.COMetrics {
	metrics := models.COMetrics{Max: math.NaN(), Mean: math.NaN(), Min: math.NaN()}

	var acc meanAccumulator
	for _, r := range rows {
		if math.IsNaN(r.MeanCO) {
			continue
		}
		if acc.n == 0 || r.MeanCO > metrics.Max {
			metrics.Max = r.MeanCO
		}
		if acc.n == 0 || r.MeanCO < metrics.Min {
			metrics.Min = r.MeanCO
		}
		acc.add(r.MeanCO)
	}
	metrics.Mean = acc.mean()

	return metrics
}

// StationPM10Means averages PM10 per station, sorted descending by mean.
// Equal means keep station-name order; NaN means go last.
func StationPM10Means(obs []models.Observation) []models.StationPM10 {
	type group struct {
		acc   meanAccumulator
		count int
	}

	groups := make(map[string]*group)
	for _, o := range obs {
		g, ok := groups[o.Station]
		if !ok {
			g = &group{}
			groups[o.Station] = g
		}
		g.acc.add(o.PM10)
		g.count++
	}

	rows := make([]models.StationPM10, 0, len(groups))
	for station, g := range groups {
		rows = append(rows, models.StationPM10{
			Station:      station,
			MeanPM10:     g.acc.mean(),
			Observations: g.count,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Station < rows[j].Station
	})
	sortByPM10(rows, true)

	return rows
}

// MostPolluted is the head of the descending station table.
func MostPolluted(desc []models.StationPM10, n int) []models.StationPM10 {
	return head(desc, n)
}

// LeastPolluted re-sorts the station table ascending and takes its head.
// It does not depend on MostPolluted and may overlap with it.
func LeastPolluted(desc []models.StationPM10, n int) []models.StationPM10 {
	asc := make([]models.StationPM10, len(desc))
	copy(asc, desc)
	sortByPM10(asc, false)

	return head(asc, n)
}

func sortByPM10(rows []models.StationPM10, descending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].MeanPM10, rows[j].MeanPM10
		switch {
		case math.IsNaN(a):
			return false
		case math.IsNaN(b):
			return true
		case descending:
			return a > b
		default:
			return a < b
		}
	})
}

func head(rows []models.StationPM10, n int) []models.StationPM10 {
	if n > len(rows) {
		n = len(rows)
	}
	out := make([]models.StationPM10, n)
	copy(out, rows[:n])
	return out
}

// monthEnd is the last day of t's month at midnight UTC.
func monthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// meanAccumulator ignores NaN readings.
type meanAccumulator struct {
	sum float64
	n   int
}

func (a *meanAccumulator) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	a.sum += v
	a.n++
}

func (a *meanAccumulator) mean() float64 {
	if a.n == 0 {
		return math.NaN()
	}
	return a.sum / float64(a.n)
}
