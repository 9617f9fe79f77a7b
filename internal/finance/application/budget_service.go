package application

import (
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
)

type BudgetService struct {
	repo domain.BudgetRepository
}

func NewBudgetService(repo domain.BudgetRepository) *BudgetService {
	return &BudgetService{repo: repo}
}

func (s *BudgetService) CreateBudget(budget *domain.Budget) error {
	budget.RoundToTwoDecimalPlaces()
	if err := budget.Validate(); err != nil {
		return err
	}
	return s.repo.Save(budget)
}

func (s *BudgetService) GetUserBudgets(userID string) ([]domain.Budget, error) {
	budgets, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

func (s *BudgetService) UpdateBudget(budget domain.Budget) error {
	budget.RoundToTwoDecimalPlaces()
	if err := budget.Validate(); err != nil {
		return err
	}
	return s.repo.Update(budget)
}

func (s *BudgetService) DeleteBudget(budgetID int, userID string) error {
	return s.repo.Delete(budgetID, userID)
}
