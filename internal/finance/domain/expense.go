package domain

import (
	"math"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

const maxDescriptionLength = 200

type ExpenseRepository interface {
	Save(expense *Expense) error
	FindByUser(userID string) ([]Expense, error)
	Update(expense Expense) error
	Delete(expenseID int, userID string) error
}

type Expense struct {
	ID          int     `json:"expense_id"`
	UserID      string  `json:"user_id"`
	CategoryID  int     `json:"category_id"`
	Amount      float64 `json:"amount"`
	Date        Date    `json:"date"`
	Description string  `json:"description"`
}

func (e *Expense) RoundToTwoDecimalPlaces() {
	e.Amount = math.Round(e.Amount*100) / 100
}

func (e *Expense) Validate() error {
	// negative amounts are allowed, an expense is a signed record
	if !IsValidCategoryID(e.CategoryID) {
		return errors.ErrInvalidCategory
	}
	if e.Description == "" {
		return errors.NewValidationError("Description must not be empty")
	}
	if len(e.Description) > maxDescriptionLength {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	if e.Date.IsZero() {
		return errors.NewValidationError("Date must be provided")
	}
	return nil
}
