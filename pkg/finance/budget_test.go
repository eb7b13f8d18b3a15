package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sofiahutsulo/finance-server/models"
)

func tx(typ string, amount string, categoryID uint, day string) models.Transaction {
	return models.Transaction{
		Type:       typ,
		Amount:     decimal.RequireFromString(amount),
		CategoryID: categoryID,
		Date:       date(day),
	}
}

func TestConsumeBudgetMonthScenario(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TypeExpense, "100", 1, "2024-03-05"),
		tx(models.TypeExpense, "50", 1, "2024-03-20"),
		tx(models.TypeIncome, "500", 2, "2024-03-10"),
	}
	categories := []models.Category{{ID: 1, Name: "Food", Type: models.TypeExpense}}
	budget := models.Budget{
		CategoryID:  1,
		LimitAmount: decimal.RequireFromString("120"),
		Period:      models.PeriodMonth,
		StartDate:   date("2024-03-01"),
	}

	got := ConsumeBudget(budget, transactions, categories)

	assert.True(t, got.Spent.Equal(decimal.RequireFromString("150")), "spent = %s", got.Spent)
	assert.InDelta(t, 125.0, got.Percentage, 1e-9)
	assert.True(t, got.Exceeded)
	assert.Equal(t, "Food", got.Category.Name)
}

func TestConsumeBudgetIgnoresOutOfScopeTransactions(t *testing.T) {
	budget := models.Budget{
		CategoryID:  1,
		LimitAmount: decimal.RequireFromString("100"),
		Period:      models.PeriodMonth,
		StartDate:   date("2024-03-01"),
	}
	transactions := []models.Transaction{
		tx(models.TypeExpense, "10", 2, "2024-03-05"),  // other category
		tx(models.TypeIncome, "10", 1, "2024-03-05"),   // wrong type
		tx(models.TypeExpense, "10", 1, "2024-04-01"),  // outside window
		tx(models.TypeExpense, "10", 1, "2024-03-31"),  // counts
	}

	got := ConsumeBudget(budget, transactions, nil)
	assert.True(t, got.Spent.Equal(decimal.RequireFromString("10")))
	assert.False(t, got.Exceeded)
}

func TestConsumeBudgetNonPositiveLimit(t *testing.T) {
	transactions := []models.Transaction{tx(models.TypeExpense, "40", 1, "2024-03-05")}
	for _, limit := range []string{"0", "-5"} {
		budget := models.Budget{
			CategoryID:  1,
			LimitAmount: decimal.RequireFromString(limit),
			Period:      models.PeriodMonth,
			StartDate:   date("2024-03-01"),
		}
		got := ConsumeBudget(budget, transactions, nil)
		assert.Zero(t, got.Percentage, "limit %s", limit)
		assert.True(t, got.Exceeded)
	}
}

func TestConsumeBudgetExceededStrictlyGreater(t *testing.T) {
	budget := models.Budget{
		CategoryID:  1,
		LimitAmount: decimal.RequireFromString("50"),
		Period:      models.PeriodMonth,
		StartDate:   date("2024-03-01"),
	}
	equal := ConsumeBudget(budget, []models.Transaction{tx(models.TypeExpense, "50", 1, "2024-03-05")}, nil)
	assert.False(t, equal.Exceeded, "spent == limit is not exceeded")
	assert.InDelta(t, 100.0, equal.Percentage, 1e-9)

	over := ConsumeBudget(budget, []models.Transaction{tx(models.TypeExpense, "50.01", 1, "2024-03-05")}, nil)
	assert.True(t, over.Exceeded)
}

func TestConsumeBudgetMissingCategoryUsesPlaceholder(t *testing.T) {
	budget := models.Budget{
		CategoryID:  99,
		LimitAmount: decimal.RequireFromString("100"),
		Period:      models.PeriodWeek,
		StartDate:   date("2024-03-05"),
	}
	got := ConsumeBudget(budget, nil, []models.Category{{ID: 1, Name: "Food"}})
	assert.Equal(t, "Unknown", got.Category.Name)
	assert.Equal(t, uint(99), got.Category.ID)
	assert.Equal(t, "#999999", got.Category.Color)
}

func TestConsumeBudgetsKeepsInputOrder(t *testing.T) {
	budgets := []models.Budget{
		{ID: 3, CategoryID: 1, LimitAmount: decimal.NewFromInt(10), Period: models.PeriodMonth, StartDate: date("2024-03-01")},
		{ID: 1, CategoryID: 2, LimitAmount: decimal.NewFromInt(20), Period: models.PeriodMonth, StartDate: date("2024-03-01")},
	}
	got := ConsumeBudgets(budgets, nil, nil)
	assert.Len(t, got, 2)
	assert.Equal(t, uint(3), got[0].Budget.ID)
	assert.Equal(t, uint(1), got[1].Budget.ID)
}
