package interfaces

import (
	"github.com/sebuszqo/ExpenseTracker/internal/finance/application"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
)

type MockExpenseService struct {
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
	ListCalls   int

	Expenses  []domain.Expense
	Summary   application.BalanceSummary
	CreateErr error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

func (m *MockExpenseService) CreateExpense(expense *domain.Expense) error {
	m.CreateCalls++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	expense.ID = len(m.Expenses) + 1
	m.Expenses = append(m.Expenses, *expense)
	return nil
}

func (m *MockExpenseService) GetUserExpenses(userID string) ([]domain.Expense, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.Expenses == nil {
		return []domain.Expense{}, nil
	}
	return m.Expenses, nil
}

func (m *MockExpenseService) UpdateExpense(expense domain.Expense) error {
	m.UpdateCalls++
	return m.UpdateErr
}

func (m *MockExpenseService) DeleteExpense(expenseID int, userID string) error {
	m.DeleteCalls++
	return m.DeleteErr
}

func (m *MockExpenseService) GetUserBalance(userID string) (application.BalanceSummary, error) {
	if m.ListErr != nil {
		return application.BalanceSummary{}, m.ListErr
	}
	return m.Summary, nil
}
