package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fintrackio/fintrack/internal/finance/application"
	"github.com/fintrackio/fintrack/internal/finance/domain"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errors ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}

	if len(errors) > 0 && len(errors[0]) > 0 {
		payload["errors"] = errors[0]
	}

	respondJSON(w, status, payload)
}

// MockExpenseService records the arguments it was called with and replays the
// canned result, so handler tests control the service outcome directly.
type MockExpenseService struct {
	Expense *domain.Expense
	Report  *application.ExpenseReport
	Err     error

	LastUserID    string
	LastExpenseID string
	LastInput     application.ExpenseInput
	LastMonth     *time.Time
}

func (m *MockExpenseService) Create(_ context.Context, userID string, input application.ExpenseInput) (*domain.Expense, error) {
	m.LastUserID = userID
	m.LastInput = input
	return m.Expense, m.Err
}

func (m *MockExpenseService) List(_ context.Context, userID string, month *time.Time) (*application.ExpenseReport, error) {
	m.LastUserID = userID
	m.LastMonth = month
	return m.Report, m.Err
}

func (m *MockExpenseService) Update(_ context.Context, userID, expenseID string, input application.ExpenseInput) (*domain.Expense, error) {
	m.LastUserID = userID
	m.LastExpenseID = expenseID
	m.LastInput = input
	return m.Expense, m.Err
}

func (m *MockExpenseService) Delete(_ context.Context, userID, expenseID string) error {
	m.LastUserID = userID
	m.LastExpenseID = expenseID
	return m.Err
}

type MockIncomeService struct {
	Income *domain.Income
	Report *application.IncomeReport
	Err    error

	LastUserID   string
	LastIncomeID string
	LastMonth    *time.Time
}

func (m *MockIncomeService) Create(_ context.Context, userID string, _ application.IncomeInput) (*domain.Income, error) {
	m.LastUserID = userID
	return m.Income, m.Err
}

func (m *MockIncomeService) List(_ context.Context, userID string, month *time.Time) (*application.IncomeReport, error) {
	m.LastUserID = userID
	m.LastMonth = month
	return m.Report, m.Err
}

func (m *MockIncomeService) Update(_ context.Context, userID, incomeID string, _ application.IncomeInput) (*domain.Income, error) {
	m.LastUserID = userID
	m.LastIncomeID = incomeID
	return m.Income, m.Err
}

func (m *MockIncomeService) Delete(_ context.Context, userID, incomeID string) error {
	m.LastUserID = userID
	m.LastIncomeID = incomeID
	return m.Err
}
