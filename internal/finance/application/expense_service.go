package application

import (
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
)

type ExpenseService struct {
	repo domain.ExpenseRepository
}

func NewExpenseService(repo domain.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

func (s *ExpenseService) CreateExpense(expense *domain.Expense) error {
	expense.RoundToTwoDecimalPlaces()
	if err := expense.Validate(); err != nil {
		return err
	}
	return s.repo.Save(expense)
}

func (s *ExpenseService) GetUserExpenses(userID string) ([]domain.Expense, error) {
	expenses, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *ExpenseService) UpdateExpense(expense domain.Expense) error {
	expense.RoundToTwoDecimalPlaces()
	if err := expense.Validate(); err != nil {
		return err
	}
	return s.repo.Update(expense)
}

func (s *ExpenseService) DeleteExpense(expenseID int, userID string) error {
	return s.repo.Delete(expenseID, userID)
}

func (s *ExpenseService) GetUserBalance(userID string) (BalanceSummary, error) {
	expenses, err := s.repo.FindByUser(userID)
	if err != nil {
		return BalanceSummary{}, err
	}
	return Summarize(expenses), nil
}
