package finance

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sofiahutsulo/finance-server/models"
)

// CategoryExpense is one category's share of the total expense in a window.
type CategoryExpense struct {
	Category   models.Category `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// Bucket holds the income and expense sums of one slot in the time series.
type Bucket struct {
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Totals are the window-scoped sums; Difference is income minus expense.
type Totals struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Difference   decimal.Decimal `json:"difference"`
}

// Statistics is the full aggregation result for one period. It is recomputed
// wholesale on every period or data change; there is no incremental update.
type Statistics struct {
	Period           Period            `json:"period"`
	CategoryExpenses []CategoryExpense `json:"categoryExpenses"`
	TopCategories    []CategoryExpense `json:"topCategories"`
	Series           []Bucket          `json:"series"`
	Totals           Totals            `json:"totals"`
}

// Options tweak aggregation behavior.
type Options struct {
	// ClampSeriesToWindow restricts the time-bucketed series to transactions
	// inside the resolved window. Historically buckets match on the bare
	// calendar field, so a March entry from any year lands in the March
	// bucket of a YEAR series; the clamp stays off unless asked for.
	ClampSeriesToWindow bool
}

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Aggregate computes the statistics view for one period anchored at now:
// the category breakdown and top-5 of the windowed expenses, the
// time-bucketed income/expense series and the window totals.
func Aggregate(transactions []models.Transaction, categories []models.Category, p Period, now time.Time, opts Options) Statistics {
	w := Resolve(p, now)

	windowed := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if w.Contains(t.Date) {
			windowed = append(windowed, t)
		}
	}

	seriesInput := transactions
	if opts.ClampSeriesToWindow {
		seriesInput = windowed
	}

	breakdown := CategoryBreakdown(windowed, categories)
	top := breakdown
	if len(top) > 5 {
		top = top[:5]
	}

	return Statistics{
		Period:           p,
		CategoryExpenses: breakdown,
		TopCategories:    top,
		Series:           series(seriesInput, p, now),
		Totals:           sumTotals(windowed),
	}
}

// CategoryBreakdown groups EXPENSE transactions by category, sums each group
// and computes its percentage of the total expense, sorted descending by
// amount. The breakdown is empty when the total expense is zero.
func CategoryBreakdown(transactions []models.Transaction, categories []models.Category) []CategoryExpense {
	sums := make(map[uint]decimal.Decimal)
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type != models.TypeExpense {
			continue
		}
		sums[t.CategoryID] = sums[t.CategoryID].Add(t.Amount)
		total = total.Add(t.Amount)
	}
	if total.IsZero() {
		return nil
	}

	out := make([]CategoryExpense, 0, len(sums))
	for id, amount := range sums {
		pct, _ := amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		out = append(out, CategoryExpense{
			Category:   findCategory(categories, id),
			Amount:     amount,
			Percentage: pct,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category.ID < out[j].Category.ID
	})
	return out
}

// series buckets transactions by calendar field match: weekday for WEEK, day
// of month for MONTH, month for YEAR. Bucket shape follows the calendar of
// now (e.g. 29 day buckets in a leap-year February).
func series(transactions []models.Transaction, p Period, now time.Time) []Bucket {
	switch p {
	case PeriodWeek:
		return bucketize(7, func(t models.Transaction) int {
			return mondayOffset(t.Date)
		}, func(i int) string {
			return weekdayLabels[i]
		}, transactions)
	case PeriodYear:
		return bucketize(12, func(t models.Transaction) int {
			return int(t.Date.Month()) - 1
		}, func(i int) string {
			return time.Month(i + 1).String()[:3]
		}, transactions)
	default: // month
		days := Resolve(PeriodMonth, now).End.Day()
		return bucketize(days, func(t models.Transaction) int {
			return t.Date.Day() - 1
		}, func(i int) string {
			return strconv.Itoa(i + 1)
		}, transactions)
	}
}

func bucketize(n int, slot func(models.Transaction) int, label func(int) string, transactions []models.Transaction) []Bucket {
	out := make([]Bucket, n)
	for i := range out {
		out[i] = Bucket{Label: label(i), Income: decimal.Zero, Expense: decimal.Zero}
	}
	for _, t := range transactions {
		i := slot(t)
		if i < 0 || i >= n {
			continue
		}
		switch t.Type {
		case models.TypeIncome:
			out[i].Income = out[i].Income.Add(t.Amount)
		case models.TypeExpense:
			out[i].Expense = out[i].Expense.Add(t.Amount)
		}
	}
	return out
}

func sumTotals(transactions []models.Transaction) Totals {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case models.TypeIncome:
			income = income.Add(t.Amount)
		case models.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return Totals{TotalIncome: income, TotalExpense: expense, Difference: income.Sub(expense)}
}
