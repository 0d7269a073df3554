package domain

import (
	"context"
	"time"
)

// Expense payment types. Other values are accepted at write time but do not
// contribute to either total when aggregating.
const (
	ExpenseOnCredit = 1
	ExpenseUpFront  = 2
)

// Expense is a persisted expense record. UserID is bound once at creation
// from the authenticated caller and is never reassigned by updates.
type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      Money     `json:"amount"`
	Type        int       `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// Income is a persisted income record, shaped like Expense minus the
// payment type and description.
type Income struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Amount   Money     `json:"amount"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

type ExpenseRepository interface {
	Insert(ctx context.Context, expense *Expense) error
	FindByUser(ctx context.Context, userID string) ([]Expense, error)
	FindByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]Expense, error)
	FindByID(ctx context.Context, expenseID string) (*Expense, error)
	Update(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, expenseID string) error
}

type IncomeRepository interface {
	Insert(ctx context.Context, income *Income) error
	FindByUser(ctx context.Context, userID string) ([]Income, error)
	FindByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]Income, error)
	FindByID(ctx context.Context, incomeID string) (*Income, error)
	Update(ctx context.Context, income *Income) error
	Delete(ctx context.Context, incomeID string) error
}
