package application

import (
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

type MockExpenseRepository struct {
	Expenses []domain.Expense
	SaveErr  error
	FindErr  error
	nextID   int
}

func (m *MockExpenseRepository) Save(expense *domain.Expense) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.nextID++
	expense.ID = m.nextID
	m.Expenses = append(m.Expenses, *expense)
	return nil
}

func (m *MockExpenseRepository) FindByUser(userID string) ([]domain.Expense, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var found []domain.Expense
	for _, expense := range m.Expenses {
		if expense.UserID == userID {
			found = append(found, expense)
		}
	}
	return found, nil
}

func (m *MockExpenseRepository) Update(expense domain.Expense) error {
	for i, existing := range m.Expenses {
		if existing.ID == expense.ID && existing.UserID == expense.UserID {
			m.Expenses[i] = expense
			return nil
		}
	}
	return financeErrors.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Delete(expenseID int, userID string) error {
	for i, existing := range m.Expenses {
		if existing.ID == expenseID && existing.UserID == userID {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrExpenseNotFound
}
