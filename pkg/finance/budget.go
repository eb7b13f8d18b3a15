package finance

import (
	"github.com/shopspring/decimal"

	"github.com/sofiahutsulo/finance-server/models"
)

// UnknownCategory is substituted when a transaction or budget references a
// category that no longer exists. Aggregation never fails on a dangling id.
func UnknownCategory(id uint) models.Category {
	return models.Category{ID: id, Name: "Unknown", Type: models.TypeExpense, Icon: "help", Color: "#999999"}
}

// BudgetStatus describes how much of a budget's limit has been consumed
// within its current period window.
type BudgetStatus struct {
	Budget     models.Budget   `json:"budget"`
	Category   models.Category `json:"category"`
	Spent      decimal.Decimal `json:"spent"`
	Percentage float64         `json:"percentage"`
	Exceeded   bool            `json:"isExceeded"`
}

// ConsumeBudget computes the spend against one budget from the full
// transaction list. Only EXPENSE transactions of the budget's category inside
// the window anchored at the budget's start date count. Deterministic and
// side-effect free; a non-positive limit yields a zero percentage rather
// than a division fault.
func ConsumeBudget(b models.Budget, transactions []models.Transaction, categories []models.Category) BudgetStatus {
	w := Resolve(Period(b.Period), b.StartDate)

	spent := decimal.Zero
	for _, t := range transactions {
		if t.CategoryID != b.CategoryID || t.Type != models.TypeExpense {
			continue
		}
		if !w.Contains(t.Date) {
			continue
		}
		spent = spent.Add(t.Amount)
	}

	var pct float64
	if b.LimitAmount.IsPositive() {
		pct, _ = spent.Div(b.LimitAmount).Mul(decimal.NewFromInt(100)).Float64()
	}

	return BudgetStatus{
		Budget:     b,
		Category:   findCategory(categories, b.CategoryID),
		Spent:      spent,
		Percentage: pct,
		Exceeded:   spent.GreaterThan(b.LimitAmount),
	}
}

// ConsumeBudgets maps ConsumeBudget over every budget in input order.
func ConsumeBudgets(budgets []models.Budget, transactions []models.Transaction, categories []models.Category) []BudgetStatus {
	out := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, ConsumeBudget(b, transactions, categories))
	}
	return out
}

func findCategory(categories []models.Category, id uint) models.Category {
	for _, c := range categories {
		if c.ID == id {
			return c
		}
	}
	return UnknownCategory(id)
}
