package application

import (
	"context"
	"time"

	"github.com/fintrackio/fintrack/internal/finance/domain"
	financeErrors "github.com/fintrackio/fintrack/internal/finance/errors"
)

// storeTimeout bounds every repository call. Store failures are surfaced
// immediately; nothing here retries.
const storeTimeout = 5 * time.Second

type ExpenseService struct {
	repo domain.ExpenseRepository
}

func NewExpenseService(repo domain.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// ExpenseReport is the list response shape: the matching records plus their
// per-payment-type totals.
type ExpenseReport struct {
	Expenses []domain.Expense     `json:"expenses"`
	Total    domain.ExpenseTotals `json:"total"`
}

// Create validates the input, binds the record to the caller and persists it.
// Validation runs before any store access; a failing request never writes.
func (s *ExpenseService) Create(ctx context.Context, userID string, input ExpenseInput) (*domain.Expense, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	expense := &domain.Expense{UserID: userID}
	input.apply(expense)

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if err := s.repo.Insert(ctx, expense); err != nil {
		return nil, financeErrors.NewStoreError("insert expense", err)
	}
	return expense, nil
}

// List returns the caller's expenses and their totals. With a month given,
// only records whose date falls in that month's [start, end) window are
// returned; the repository filter is scoped to the caller either way.
func (s *ExpenseService) List(ctx context.Context, userID string, month *time.Time) (*ExpenseReport, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var expenses []domain.Expense
	var err error
	if month != nil {
		start, end := domain.MonthWindow(*month)
		expenses, err = s.repo.FindByUserInRange(ctx, userID, start, end)
	} else {
		expenses, err = s.repo.FindByUser(ctx, userID)
	}
	if err != nil {
		return nil, financeErrors.NewStoreError("list expenses", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}

	return &ExpenseReport{
		Expenses: expenses,
		Total:    domain.AggregateExpenses(expenses),
	}, nil
}

// Update replaces every mutable field of the record wholesale. The check
// order is strict: validate, fetch, existence, ownership, then write.
func (s *ExpenseService) Update(ctx context.Context, userID, expenseID string, input ExpenseInput) (*domain.Expense, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	expense, err := s.repo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(expense.UserID, userID); err != nil {
		return nil, err
	}

	input.apply(expense)
	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, financeErrors.NewStoreError("update expense", err)
	}
	return expense, nil
}

// Delete removes the record after the same existence and ownership checks as
// Update. The delete is hard; there is no tombstone.
func (s *ExpenseService) Delete(ctx context.Context, userID, expenseID string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	expense, err := s.repo.FindByID(ctx, expenseID)
	if err != nil {
		return err
	}
	if err := domain.Authorize(expense.UserID, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, expense.ID); err != nil {
		return financeErrors.NewStoreError("delete expense", err)
	}
	return nil
}
