package application

import (
	"math"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
)

type BalanceSummary struct {
	Balance float64 `json:"balance"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Summarize is a stateless projection over a user's expense records:
// non-negative amounts count as income, negative amounts as spending,
// balance is the difference. Nothing here is persisted.
func Summarize(expenses []domain.Expense) BalanceSummary {
	var summary BalanceSummary
	for _, expense := range expenses {
		if expense.Amount >= 0 {
			summary.Income += expense.Amount
		} else {
			summary.Expense += math.Abs(expense.Amount)
		}
	}
	summary.Balance = math.Round((summary.Income-summary.Expense)*100) / 100
	summary.Income = math.Round(summary.Income*100) / 100
	summary.Expense = math.Round(summary.Expense*100) / 100
	return summary
}
