package models

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether t falls on a day inside the range.
func (r DateRange) Contains(t time.Time) bool {
	day := Day(t)
	return !day.Before(Day(r.Start)) && !day.After(Day(r.End))
}

// Clamp pulls both ends of r into bounds.
func (r DateRange) Clamp(bounds DateRange) DateRange {
	return DateRange{
		Start: clampDay(r.Start, bounds),
		End:   clampDay(r.End, bounds),
	}
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}

func clampDay(t time.Time, bounds DateRange) time.Time {
	day := Day(t)
	if lo := Day(bounds.Start); day.Before(lo) {
		return lo
	}
	if hi := Day(bounds.End); day.After(hi) {
		return hi
	}
	return day
}
