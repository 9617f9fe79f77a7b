package application

import (
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

type MockBudgetRepository struct {
	Budgets []domain.Budget
	SaveErr error
	FindErr error
	nextID  int
}

func (m *MockBudgetRepository) Save(budget *domain.Budget) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.nextID++
	budget.ID = m.nextID
	m.Budgets = append(m.Budgets, *budget)
	return nil
}

func (m *MockBudgetRepository) FindByUser(userID string) ([]domain.Budget, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var found []domain.Budget
	for _, budget := range m.Budgets {
		if budget.UserID == userID {
			found = append(found, budget)
		}
	}
	return found, nil
}

func (m *MockBudgetRepository) Update(budget domain.Budget) error {
	for i, existing := range m.Budgets {
		if existing.ID == budget.ID && existing.UserID == budget.UserID {
			m.Budgets[i] = budget
			return nil
		}
	}
	return financeErrors.ErrBudgetNotFound
}

func (m *MockBudgetRepository) Delete(budgetID int, userID string) error {
	for i, existing := range m.Budgets {
		if existing.ID == budgetID && existing.UserID == userID {
			m.Budgets = append(m.Budgets[:i], m.Budgets[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrBudgetNotFound
}
