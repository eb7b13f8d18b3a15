package finance

import (
	"sort"
	"time"

	"github.com/sofiahutsulo/finance-server/models"
)

// PeriodFilter scopes the transaction list to a relative calendar range.
type PeriodFilter string

const (
	FilterAll       PeriodFilter = "ALL"
	FilterThisWeek  PeriodFilter = "THIS_WEEK"
	FilterThisMonth PeriodFilter = "THIS_MONTH"
	FilterLastMonth PeriodFilter = "LAST_MONTH"
)

// Valid reports whether p is one of the known filter periods.
func (p PeriodFilter) Valid() bool {
	switch p {
	case FilterAll, FilterThisWeek, FilterThisMonth, FilterLastMonth:
		return true
	}
	return false
}

// Filter holds the independent, combinable transaction list filters.
// Zero values mean "no restriction".
type Filter struct {
	Type       string
	CategoryID uint
	Period     PeriodFilter
}

// Apply runs every active filter with AND semantics and returns the matches
// sorted by date, newest first. The input slice is left untouched.
func (f Filter) Apply(transactions []models.Transaction, now time.Time) []models.Transaction {
	var w Window
	hasWindow := true
	switch f.Period {
	case FilterThisWeek:
		w = Resolve(PeriodWeek, now)
	case FilterThisMonth:
		w = Resolve(PeriodMonth, now)
	case FilterLastMonth:
		w = LastMonth(now)
	default:
		hasWindow = false
	}

	out := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.CategoryID != 0 && t.CategoryID != f.CategoryID {
			continue
		}
		if hasWindow && !w.Contains(t.Date) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}
