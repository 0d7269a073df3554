package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackio/fintrack/internal/finance/domain"
	financeErrors "github.com/fintrackio/fintrack/internal/finance/errors"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Insert(ctx context.Context, expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (user_id, amount_cents, type, category, description, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		expense.UserID, expense.Amount.Cents, expense.Type, expense.Category, expense.Description, expense.Date,
	).Scan(&expense.ID)
}

func (r *ExpenseRepository) FindByUser(ctx context.Context, userID string) ([]domain.Expense, error) {
	query := `
		SELECT id, user_id, amount_cents, type, category, description, date
		FROM expenses
		WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExpenses(rows)
}

func (r *ExpenseRepository) FindByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Expense, error) {
	query := `
		SELECT id, user_id, amount_cents, type, category, description, date
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date < $3`
	rows, err := r.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExpenses(rows)
}

func (r *ExpenseRepository) FindByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	// An id that is not a UUID cannot address any row, so it reads as absent
	// rather than as an internal fault.
	id, err := uuid.Parse(expenseID)
	if err != nil {
		return nil, financeErrors.ErrRecordNotFound
	}

	query := `
		SELECT id, user_id, amount_cents, type, category, description, date
		FROM expenses
		WHERE id = $1`
	var expense domain.Expense
	err = r.db.QueryRowContext(ctx, query, id.String()).Scan(
		&expense.ID, &expense.UserID, &expense.Amount.Cents, &expense.Type,
		&expense.Category, &expense.Description, &expense.Date,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	query := `
		UPDATE expenses
		SET amount_cents = $1, type = $2, category = $3, description = $4, date = $5
		WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query,
		expense.Amount.Cents, expense.Type, expense.Category, expense.Description, expense.Date, expense.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *ExpenseRepository) Delete(ctx context.Context, expenseID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, expenseID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrRecordNotFound
	}
	return nil
}

func scanExpenses(rows *sql.Rows) ([]domain.Expense, error) {
	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(
			&expense.ID, &expense.UserID, &expense.Amount.Cents, &expense.Type,
			&expense.Category, &expense.Description, &expense.Date,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}
