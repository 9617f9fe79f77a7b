package interfaces

import (
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
)

type MockBudgetService struct {
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
	ListCalls   int

	Budgets   []domain.Budget
	CreateErr error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

func (m *MockBudgetService) CreateBudget(budget *domain.Budget) error {
	m.CreateCalls++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	budget.ID = len(m.Budgets) + 1
	m.Budgets = append(m.Budgets, *budget)
	return nil
}

func (m *MockBudgetService) GetUserBudgets(userID string) ([]domain.Budget, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.Budgets == nil {
		return []domain.Budget{}, nil
	}
	return m.Budgets, nil
}

func (m *MockBudgetService) UpdateBudget(budget domain.Budget) error {
	m.UpdateCalls++
	return m.UpdateErr
}

func (m *MockBudgetService) DeleteBudget(budgetID int, userID string) error {
	m.DeleteCalls++
	return m.DeleteErr
}
