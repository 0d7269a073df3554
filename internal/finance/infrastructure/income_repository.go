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

type IncomeRepository struct {
	db *sql.DB
}

func NewIncomeRepository(db *sql.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

func (r *IncomeRepository) Insert(ctx context.Context, income *domain.Income) error {
	query := `
		INSERT INTO incomes (user_id, amount_cents, category, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		income.UserID, income.Amount.Cents, income.Category, income.Date,
	).Scan(&income.ID)
}

func (r *IncomeRepository) FindByUser(ctx context.Context, userID string) ([]domain.Income, error) {
	query := `
		SELECT id, user_id, amount_cents, category, date
		FROM incomes
		WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIncomes(rows)
}

func (r *IncomeRepository) FindByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Income, error) {
	query := `
		SELECT id, user_id, amount_cents, category, date
		FROM incomes
		WHERE user_id = $1 AND date >= $2 AND date < $3`
	rows, err := r.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIncomes(rows)
}

func (r *IncomeRepository) FindByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	id, err := uuid.Parse(incomeID)
	if err != nil {
		return nil, financeErrors.ErrRecordNotFound
	}

	query := `
		SELECT id, user_id, amount_cents, category, date
		FROM incomes
		WHERE id = $1`
	var income domain.Income
	err = r.db.QueryRowContext(ctx, query, id.String()).Scan(
		&income.ID, &income.UserID, &income.Amount.Cents, &income.Category, &income.Date,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &income, nil
}

func (r *IncomeRepository) Update(ctx context.Context, income *domain.Income) error {
	query := `
		UPDATE incomes
		SET amount_cents = $1, category = $2, date = $3
		WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query,
		income.Amount.Cents, income.Category, income.Date, income.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *IncomeRepository) Delete(ctx context.Context, incomeID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM incomes WHERE id = $1`, incomeID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func scanIncomes(rows *sql.Rows) ([]domain.Income, error) {
	var incomes []domain.Income
	for rows.Next() {
		var income domain.Income
		if err := rows.Scan(
			&income.ID, &income.UserID, &income.Amount.Cents, &income.Category, &income.Date,
		); err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}
	return incomes, rows.Err()
}
