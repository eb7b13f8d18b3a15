package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveWeek(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		wantStart string
		wantEnd   string
	}{
		{"midweek", "2024-03-05", "2024-03-04", "2024-03-10"},
		{"on monday", "2024-01-01", "2024-01-01", "2024-01-07"},
		{"on sunday", "2024-03-10", "2024-03-04", "2024-03-10"},
		{"across year boundary", "2024-12-31", "2024-12-30", "2025-01-05"},
		{"across month boundary", "2024-04-01", "2024-04-01", "2024-04-07"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Resolve(PeriodWeek, date(tt.ref))
			assert.Equal(t, date(tt.wantStart), w.Start)
			assert.Equal(t, time.Monday, w.Start.Weekday())
			assert.Equal(t, time.Sunday, w.End.Weekday())
			assert.Equal(t, date(tt.wantEnd).Day(), w.End.Day())
			assert.True(t, w.Contains(date(tt.ref)))
		})
	}
}

func TestResolveMonth(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		lastDay int
	}{
		{"leap february", "2024-02-10", 29},
		{"non-leap february", "2023-02-10", 28},
		{"thirty-one days", "2024-01-15", 31},
		{"thirty days", "2024-04-30", 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Resolve(PeriodMonth, date(tt.ref))
			assert.Equal(t, 1, w.Start.Day())
			assert.Equal(t, tt.lastDay, w.End.Day())
			assert.Equal(t, date(tt.ref).Month(), w.Start.Month())
			assert.Equal(t, date(tt.ref).Month(), w.End.Month())
		})
	}
}

func TestResolveYear(t *testing.T) {
	w := Resolve(PeriodYear, date("2024-07-19"))
	assert.Equal(t, date("2024-01-01"), w.Start)
	assert.Equal(t, time.December, w.End.Month())
	assert.Equal(t, 31, w.End.Day())
	assert.Equal(t, 2024, w.End.Year())
}

func TestWindowContainsInclusiveBounds(t *testing.T) {
	w := Resolve(PeriodMonth, date("2024-03-15"))
	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(w.End.Add(time.Nanosecond)))
}

func TestLastMonth(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		wantMonth time.Month
		wantYear  int
		lastDay   int
	}{
		{"plain", "2024-03-31", time.February, 2024, 29},
		{"year rollover", "2025-01-15", time.December, 2024, 31},
		{"into short month", "2023-03-31", time.February, 2023, 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := LastMonth(date(tt.ref))
			require.Equal(t, tt.wantMonth, w.Start.Month())
			assert.Equal(t, tt.wantYear, w.Start.Year())
			assert.Equal(t, 1, w.Start.Day())
			assert.Equal(t, tt.lastDay, w.End.Day())
		})
	}
}

func TestPeriodValid(t *testing.T) {
	assert.True(t, PeriodWeek.Valid())
	assert.True(t, PeriodMonth.Valid())
	assert.True(t, PeriodYear.Valid())
	assert.False(t, Period("DAY").Valid())
	assert.False(t, Period("").Valid())
}
