package infrastructure

import (
	"database/sql"
	"time"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Save(budget *domain.Budget) error {
	return r.db.QueryRow(
		`INSERT INTO budgets (user_id, category_id, amount, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING budget_id`,
		budget.UserID, budget.CategoryID, budget.Amount,
		budget.StartDate.Time, budget.EndDate.Time, budget.Description,
	).Scan(&budget.ID)
}

func (r *BudgetRepository) FindByUser(userID string) ([]domain.Budget, error) {
	rows, err := r.db.Query(
		`SELECT budget_id, user_id, category_id, amount, start_date, end_date, description
		FROM budgets WHERE user_id = $1
		ORDER BY start_date DESC, budget_id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var budget domain.Budget
		var startDate, endDate time.Time
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.CategoryID,
			&budget.Amount, &startDate, &endDate, &budget.Description); err != nil {
			return nil, err
		}
		budget.StartDate = domain.NewDate(startDate)
		budget.EndDate = domain.NewDate(endDate)
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

func (r *BudgetRepository) Update(budget domain.Budget) error {
	result, err := r.db.Exec(
		`UPDATE budgets
		SET category_id = $1, amount = $2, start_date = $3, end_date = $4, description = $5
		WHERE budget_id = $6 AND user_id = $7`,
		budget.CategoryID, budget.Amount, budget.StartDate.Time, budget.EndDate.Time,
		budget.Description, budget.ID, budget.UserID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrBudgetNotFound
	}
	return nil
}

func (r *BudgetRepository) Delete(budgetID int, userID string) error {
	result, err := r.db.Exec(
		`DELETE FROM budgets WHERE budget_id = $1 AND user_id = $2`,
		budgetID, userID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrBudgetNotFound
	}
	return nil
}
