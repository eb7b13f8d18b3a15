package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofiahutsulo/finance-server/models"
)

func TestAggregateTotalsPartition(t *testing.T) {
	now := date("2024-03-15")
	transactions := []models.Transaction{
		tx(models.TypeExpense, "100", 1, "2024-03-05"),
		tx(models.TypeExpense, "50", 2, "2024-03-20"),
		tx(models.TypeIncome, "500", 3, "2024-03-10"),
		tx(models.TypeIncome, "25.50", 3, "2024-03-11"),
		tx(models.TypeExpense, "999", 1, "2024-05-01"), // outside window
	}

	got := Aggregate(transactions, nil, PeriodMonth, now, Options{})

	assert.True(t, got.Totals.TotalIncome.Equal(decimal.RequireFromString("525.50")))
	assert.True(t, got.Totals.TotalExpense.Equal(decimal.RequireFromString("150")))
	assert.True(t, got.Totals.Difference.Equal(got.Totals.TotalIncome.Sub(got.Totals.TotalExpense)))
}

func TestAggregateEmptyInput(t *testing.T) {
	got := Aggregate(nil, nil, PeriodMonth, date("2024-03-15"), Options{})
	assert.Empty(t, got.CategoryExpenses)
	assert.Empty(t, got.TopCategories)
	assert.True(t, got.Totals.TotalIncome.IsZero())
	assert.True(t, got.Totals.TotalExpense.IsZero())
	assert.True(t, got.Totals.Difference.IsZero())
}

func TestCategoryBreakdownPercentagesSumToHundred(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TypeExpense, "60", 1, "2024-03-01"),
		tx(models.TypeExpense, "30", 2, "2024-03-02"),
		tx(models.TypeExpense, "10", 3, "2024-03-03"),
		tx(models.TypeIncome, "1000", 4, "2024-03-04"), // income never enters the breakdown
	}
	categories := []models.Category{
		{ID: 1, Name: "Food"}, {ID: 2, Name: "Transport"}, {ID: 3, Name: "Fun"},
	}

	got := CategoryBreakdown(transactions, categories)
	require.Len(t, got, 3)

	sum := 0.0
	for _, ce := range got {
		sum += ce.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-6)

	// sorted descending by amount
	assert.Equal(t, "Food", got[0].Category.Name)
	assert.InDelta(t, 60.0, got[0].Percentage, 1e-9)
	assert.Equal(t, "Fun", got[2].Category.Name)
}

func TestCategoryBreakdownEmptyWhenNoExpense(t *testing.T) {
	transactions := []models.Transaction{tx(models.TypeIncome, "100", 1, "2024-03-01")}
	assert.Empty(t, CategoryBreakdown(transactions, nil))
	assert.Empty(t, CategoryBreakdown(nil, nil))
}

func TestCategoryBreakdownMissingCategory(t *testing.T) {
	got := CategoryBreakdown([]models.Transaction{tx(models.TypeExpense, "5", 42, "2024-03-01")}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Unknown", got[0].Category.Name)
}

func TestAggregateTopCategoriesCappedAtFive(t *testing.T) {
	var transactions []models.Transaction
	for id := uint(1); id <= 7; id++ {
		transactions = append(transactions, tx(models.TypeExpense, decimal.NewFromInt(int64(id)).String(), id, "2024-03-05"))
	}
	got := Aggregate(transactions, nil, PeriodMonth, date("2024-03-15"), Options{})
	assert.Len(t, got.CategoryExpenses, 7)
	require.Len(t, got.TopCategories, 5)
	assert.Equal(t, uint(7), got.TopCategories[0].Category.ID)
}

func TestAggregateWeekSeries(t *testing.T) {
	now := date("2024-03-06") // Wednesday; window 2024-03-04..2024-03-10
	transactions := []models.Transaction{
		tx(models.TypeExpense, "10", 1, "2024-03-04"), // Monday
		tx(models.TypeExpense, "20", 1, "2024-03-04"), // Monday again
		tx(models.TypeIncome, "99", 1, "2024-03-10"),  // Sunday
	}

	got := Aggregate(transactions, nil, PeriodWeek, now, Options{})
	require.Len(t, got.Series, 7)
	assert.Equal(t, "Mon", got.Series[0].Label)
	assert.True(t, got.Series[0].Expense.Equal(decimal.RequireFromString("30")))
	assert.Equal(t, "Sun", got.Series[6].Label)
	assert.True(t, got.Series[6].Income.Equal(decimal.RequireFromString("99")))
	for i := 1; i < 6; i++ {
		assert.True(t, got.Series[i].Income.IsZero())
		assert.True(t, got.Series[i].Expense.IsZero())
	}
}

func TestAggregateMonthSeriesBucketPerDay(t *testing.T) {
	got := Aggregate(nil, nil, PeriodMonth, date("2024-02-15"), Options{})
	assert.Len(t, got.Series, 29) // leap February
	assert.Equal(t, "1", got.Series[0].Label)
	assert.Equal(t, "29", got.Series[28].Label)

	got = Aggregate(nil, nil, PeriodMonth, date("2023-02-15"), Options{})
	assert.Len(t, got.Series, 28)
}

// The series historically matches on the bare calendar field: a March entry
// from an earlier year still lands in the March bucket of this year's YEAR
// view. ClampSeriesToWindow turns that off.
func TestAggregateYearSeriesCalendarFieldMatch(t *testing.T) {
	now := date("2024-06-01")
	transactions := []models.Transaction{
		tx(models.TypeExpense, "70", 1, "2024-03-05"),
		tx(models.TypeExpense, "30", 1, "2021-03-09"), // different year, same month
	}

	loose := Aggregate(transactions, nil, PeriodYear, now, Options{})
	require.Len(t, loose.Series, 12)
	assert.Equal(t, "Mar", loose.Series[2].Label)
	assert.True(t, loose.Series[2].Expense.Equal(decimal.RequireFromString("100")),
		"old-year entry bleeds into the bucket: %s", loose.Series[2].Expense)

	clamped := Aggregate(transactions, nil, PeriodYear, now, Options{ClampSeriesToWindow: true})
	assert.True(t, clamped.Series[2].Expense.Equal(decimal.RequireFromString("70")))

	// totals are always window-scoped regardless of the clamp
	assert.True(t, loose.Totals.TotalExpense.Equal(decimal.RequireFromString("70")))
}
