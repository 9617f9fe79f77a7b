package infrastructure

import (
	"database/sql"
	"time"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Save(expense *domain.Expense) error {
	return r.db.QueryRow(
		`INSERT INTO expenses (user_id, category_id, amount, date, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING expense_id`,
		expense.UserID, expense.CategoryID, expense.Amount, expense.Date.Time, expense.Description,
	).Scan(&expense.ID)
}

func (r *ExpenseRepository) FindByUser(userID string) ([]domain.Expense, error) {
	rows, err := r.db.Query(
		`SELECT expense_id, user_id, category_id, amount, date, description
		FROM expenses WHERE user_id = $1
		ORDER BY date DESC, expense_id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		var date time.Time
		if err := rows.Scan(&expense.ID, &expense.UserID, &expense.CategoryID,
			&expense.Amount, &date, &expense.Description); err != nil {
			return nil, err
		}
		expense.Date = domain.NewDate(date)
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

// Update rewrites the row matching both the expense id and its owner, so one
// user cannot edit another user's record by guessing an id.
func (r *ExpenseRepository) Update(expense domain.Expense) error {
	result, err := r.db.Exec(
		`UPDATE expenses
		SET category_id = $1, amount = $2, date = $3, description = $4
		WHERE expense_id = $5 AND user_id = $6`,
		expense.CategoryID, expense.Amount, expense.Date.Time, expense.Description,
		expense.ID, expense.UserID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) Delete(expenseID int, userID string) error {
	result, err := r.db.Exec(
		`DELETE FROM expenses WHERE expense_id = $1 AND user_id = $2`,
		expenseID, userID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrExpenseNotFound
	}
	return nil
}
