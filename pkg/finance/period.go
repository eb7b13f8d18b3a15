// Package finance implements the aggregation core of the server: calendar
// window resolution, budget consumption, statistics rollups and transaction
// filtering. Everything here is pure computation over in-memory collections;
// persistence and HTTP stay outside the package.
package finance

import "time"

// Period selects the calendar unit used to scope aggregation.
type Period string

const (
	PeriodWeek  Period = "WEEK"
	PeriodMonth Period = "MONTH"
	PeriodYear  Period = "YEAR"
)

// Valid reports whether p is one of the known period kinds.
func (p Period) Valid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// Window is an inclusive [Start, End] instant range.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Resolve returns the calendar-aligned window of the given period containing
// ref. Weeks run Monday 00:00:00 through Sunday 23:59:59 and are derived from
// day-of-week arithmetic alone, so a week may straddle a month or year
// boundary. Months and years cover the full calendar unit of ref.
func Resolve(p Period, ref time.Time) Window {
	switch p {
	case PeriodWeek:
		monday := startOfDay(ref).AddDate(0, 0, -mondayOffset(ref))
		return Window{Start: monday, End: endOfDay(monday.AddDate(0, 0, 6))}
	case PeriodYear:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		return Window{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}
	default: // month
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return Window{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
	}
}

// LastMonth returns the month window immediately before the one containing
// ref. The reference is pinned to day 1 before stepping back, so month-length
// differences and year rollover cannot skew the arithmetic.
func LastMonth(ref time.Time) Window {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return Resolve(PeriodMonth, first.AddDate(0, 0, -1))
}

// mondayOffset gives the number of days since the most recent Monday.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
