package domain

import (
	"math"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

type BudgetRepository interface {
	Save(budget *Budget) error
	FindByUser(userID string) ([]Budget, error)
	Update(budget Budget) error
	Delete(budgetID int, userID string) error
}

// Budget is an income record with a validity date range.
type Budget struct {
	ID          int     `json:"budget_id"`
	UserID      string  `json:"user_id"`
	CategoryID  int     `json:"category_id"`
	Amount      float64 `json:"amount"`
	StartDate   Date    `json:"start_date"`
	EndDate     Date    `json:"end_date"`
	Description string  `json:"description"`
}

func (b *Budget) RoundToTwoDecimalPlaces() {
	b.Amount = math.Round(b.Amount*100) / 100
}

func (b *Budget) Validate() error {
	if !IsValidCategoryID(b.CategoryID) {
		return errors.ErrInvalidCategory
	}
	if b.Description == "" {
		return errors.NewValidationError("Description must not be empty")
	}
	if len(b.Description) > maxDescriptionLength {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return errors.NewValidationError("Start date and end date must be provided")
	}
	if b.EndDate.Before(b.StartDate.Time) {
		return errors.NewValidationError("End date must not be before start date")
	}
	return nil
}
