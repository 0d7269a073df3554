package infrastructure

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackio/fintrack/internal/finance/domain"
	financeErrors "github.com/fintrackio/fintrack/internal/finance/errors"
)

// MockExpenseRepository is an in-memory stand-in for the Postgres repository,
// used by the application and handler tests. Set Err to make every call fail.
type MockExpenseRepository struct {
	Expenses    []domain.Expense
	Err         error
	InsertCalls int
}

func (m *MockExpenseRepository) Insert(_ context.Context, expense *domain.Expense) error {
	m.InsertCalls++
	if m.Err != nil {
		return m.Err
	}
	expense.ID = uuid.NewString()
	m.Expenses = append(m.Expenses, *expense)
	return nil
}

func (m *MockExpenseRepository) FindByUser(_ context.Context, userID string) ([]domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []domain.Expense
	for _, expense := range m.Expenses {
		if expense.UserID == userID {
			out = append(out, expense)
		}
	}
	return out, nil
}

func (m *MockExpenseRepository) FindByUserInRange(_ context.Context, userID string, start, end time.Time) ([]domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []domain.Expense
	for _, expense := range m.Expenses {
		if expense.UserID == userID && !expense.Date.Before(start) && expense.Date.Before(end) {
			out = append(out, expense)
		}
	}
	return out, nil
}

func (m *MockExpenseRepository) FindByID(_ context.Context, expenseID string) (*domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Expenses {
		if m.Expenses[i].ID == expenseID {
			found := m.Expenses[i]
			return &found, nil
		}
	}
	return nil, financeErrors.ErrRecordNotFound
}

func (m *MockExpenseRepository) Update(_ context.Context, expense *domain.Expense) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Expenses {
		if m.Expenses[i].ID == expense.ID {
			m.Expenses[i] = *expense
			return nil
		}
	}
	return financeErrors.ErrRecordNotFound
}

func (m *MockExpenseRepository) Delete(_ context.Context, expenseID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Expenses {
		if m.Expenses[i].ID == expenseID {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrRecordNotFound
}

type MockIncomeRepository struct {
	Incomes     []domain.Income
	Err         error
	InsertCalls int
}

func (m *MockIncomeRepository) Insert(_ context.Context, income *domain.Income) error {
	m.InsertCalls++
	if m.Err != nil {
		return m.Err
	}
	income.ID = uuid.NewString()
	m.Incomes = append(m.Incomes, *income)
	return nil
}

func (m *MockIncomeRepository) FindByUser(_ context.Context, userID string) ([]domain.Income, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []domain.Income
	for _, income := range m.Incomes {
		if income.UserID == userID {
			out = append(out, income)
		}
	}
	return out, nil
}

func (m *MockIncomeRepository) FindByUserInRange(_ context.Context, userID string, start, end time.Time) ([]domain.Income, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []domain.Income
	for _, income := range m.Incomes {
		if income.UserID == userID && !income.Date.Before(start) && income.Date.Before(end) {
			out = append(out, income)
		}
	}
	return out, nil
}

func (m *MockIncomeRepository) FindByID(_ context.Context, incomeID string) (*domain.Income, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Incomes {
		if m.Incomes[i].ID == incomeID {
			found := m.Incomes[i]
			return &found, nil
		}
	}
	return nil, financeErrors.ErrRecordNotFound
}

func (m *MockIncomeRepository) Update(_ context.Context, income *domain.Income) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Incomes {
		if m.Incomes[i].ID == income.ID {
			m.Incomes[i] = *income
			return nil
		}
	}
	return financeErrors.ErrRecordNotFound
}

func (m *MockIncomeRepository) Delete(_ context.Context, incomeID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Incomes {
		if m.Incomes[i].ID == incomeID {
			m.Incomes = append(m.Incomes[:i], m.Incomes[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrRecordNotFound
}
