package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackio/fintrack/internal/finance/domain"
	financeErrors "github.com/fintrackio/fintrack/internal/finance/errors"
	"github.com/fintrackio/fintrack/internal/finance/infrastructure"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func moneyPtr(c int64) *domain.Money { return &domain.Money{Cents: c} }

func validExpenseInput() ExpenseInput {
	return ExpenseInput{
		Amount:      moneyPtr(1250),
		Type:        intPtr(domain.ExpenseOnCredit),
		Category:    strPtr("groceries"),
		Description: strPtr("weekly shop"),
		Date:        strPtr("2024-05-14"),
	}
}

func TestExpenseService_Create(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo)

	expense, err := service.Create(context.Background(), "user-1", validExpenseInput())
	require.NoError(t, err)

	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, "user-1", expense.UserID)
	assert.Equal(t, int64(1250), expense.Amount.Cents)
	assert.Equal(t, domain.ExpenseOnCredit, expense.Type)
	assert.Equal(t, "groceries", expense.Category)
	assert.Equal(t, time.Date(2024, time.May, 14, 0, 0, 0, 0, time.UTC), expense.Date)
}

func TestExpenseService_Create_ValidationSkipsStore(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo)

	_, err := service.Create(context.Background(), "user-1", ExpenseInput{})
	require.Error(t, err)

	var validationErrors *financeErrors.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, []string{
		"Amount is required",
		"Type is required",
		"Category is required",
		"Description is required",
		"Date is required",
	}, validationErrors.Messages())
	assert.Zero(t, repo.InsertCalls)
}

func TestExpenseService_Create_InvalidDate(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo)

	input := validExpenseInput()
	input.Date = strPtr("14/05/2024")
	_, err := service.Create(context.Background(), "user-1", input)

	var validationErrors *financeErrors.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, []string{"Date is invalid"}, validationErrors.Messages())
	assert.Zero(t, repo.InsertCalls)
}

func TestExpenseService_Create_StoreFailure(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{Err: errors.New("connection refused")}
	service := NewExpenseService(repo)

	_, err := service.Create(context.Background(), "user-1", validExpenseInput())
	require.Error(t, err)
	assert.NotErrorIs(t, err, financeErrors.ErrRecordNotFound)
}

func TestExpenseService_List_FiltersByMonth(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{Expenses: []domain.Expense{
		{ID: "a", UserID: "user-1", Amount: domain.Money{Cents: 1000}, Type: domain.ExpenseOnCredit, Date: time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "b", UserID: "user-1", Amount: domain.Money{Cents: 500}, Type: domain.ExpenseUpFront, Date: time.Date(2024, time.May, 30, 0, 0, 0, 0, time.UTC)},
		{ID: "c", UserID: "user-1", Amount: domain.Money{Cents: 9999}, Type: domain.ExpenseUpFront, Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "d", UserID: "user-2", Amount: domain.Money{Cents: 7777}, Type: domain.ExpenseOnCredit, Date: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)},
	}}
	service := NewExpenseService(repo)

	month := time.Date(2024, time.May, 18, 13, 0, 0, 0, time.UTC)
	report, err := service.List(context.Background(), "user-1", &month)
	require.NoError(t, err)

	require.Len(t, report.Expenses, 2)
	assert.Equal(t, int64(1000), report.Total.OnCredit.Cents)
	assert.Equal(t, int64(500), report.Total.UpFront.Cents)
}

func TestExpenseService_List_NoMonthReturnsAll(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{Expenses: []domain.Expense{
		{ID: "a", UserID: "user-1", Amount: domain.Money{Cents: 100}, Type: domain.ExpenseOnCredit, Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", UserID: "user-1", Amount: domain.Money{Cents: 200}, Type: domain.ExpenseUpFront, Date: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{ID: "c", UserID: "user-2", Amount: domain.Money{Cents: 300}, Type: domain.ExpenseOnCredit, Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
	}}
	service := NewExpenseService(repo)

	report, err := service.List(context.Background(), "user-1", nil)
	require.NoError(t, err)
	assert.Len(t, report.Expenses, 2)
}

func TestExpenseService_List_EmptyIsNotNil(t *testing.T) {
	service := NewExpenseService(&infrastructure.MockExpenseRepository{})

	report, err := service.List(context.Background(), "user-1", nil)
	require.NoError(t, err)
	assert.NotNil(t, report.Expenses)
	assert.Empty(t, report.Expenses)
	assert.Equal(t, int64(0), report.Total.OnCredit.Cents)
	assert.Equal(t, int64(0), report.Total.UpFront.Cents)
}

func TestExpenseService_Update_ReplacesEveryField(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{Expenses: []domain.Expense{
		{ID: "exp-1", UserID: "user-1", Amount: domain.Money{Cents: 100}, Type: domain.ExpenseOnCredit, Category: "old", Description: "old", Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}}
	service := NewExpenseService(repo)

	input := ExpenseInput{
		Amount:      moneyPtr(4200),
		Type:        intPtr(domain.ExpenseUpFront),
		Category:    strPtr("travel"),
		Description: strPtr("train ticket"),
		Date:        strPtr("2024-02-02"),
	}
	updated, err := service.Update(context.Background(), "user-1", "exp-1", input)
	require.NoError(t, err)

	assert.Equal(t, "exp-1", updated.ID)
	assert.Equal(t, "user-1", updated.UserID)
	assert.Equal(t, int64(4200), updated.Amount.Cents)
	assert.Equal(t, domain.ExpenseUpFront, updated.Type)
	assert.Equal(t, "travel", updated.Category)
	assert.Equal(t, "train ticket", updated.Description)
	assert.Equal(t, updated, &repo.Expenses[0])
}

func TestExpenseService_Update_ForeignRecord(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{Expenses: []domain.Expense{
		{ID: "exp-1", UserID: "user-1", Amount: domain.Money{Cents: 100}, Type: domain.ExpenseOnCredit, Category: "c", Description: "d", Date: time.Now().UTC()},
	}}
	service := NewExpenseService(repo)

	_, err := service.Update(context.Background(), "user-2", "exp-1", validExpenseInput())
	assert.ErrorIs(t, err, financeErrors.ErrNotRecordOwner)
	assert.Equal(t, int64(100), repo.Expenses[0].Amount.Cents)
}

func TestExpenseService_Update_MissingRecord(t *testing.T) {
	service := NewExpenseService(&infrastructure.MockExpenseRepository{})

	_, err := service.Update(context.Background(), "user-1", "nope", validExpenseInput())
	assert.ErrorIs(t, err, financeErrors.ErrRecordNotFound)
}

func TestExpenseService_Update_ValidationBeforeLookup(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{Err: errors.New("store must not be touched")}
	service := NewExpenseService(repo)

	_, err := service.Update(context.Background(), "user-1", "exp-1", ExpenseInput{})
	var validationErrors *financeErrors.ValidationErrors
	assert.ErrorAs(t, err, &validationErrors)
}

func TestExpenseService_Delete(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{Expenses: []domain.Expense{
		{ID: "exp-1", UserID: "user-1"},
	}}
	service := NewExpenseService(repo)

	require.NoError(t, service.Delete(context.Background(), "user-1", "exp-1"))
	assert.Empty(t, repo.Expenses)
}

func TestExpenseService_Delete_ForeignRecord(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{Expenses: []domain.Expense{
		{ID: "exp-1", UserID: "user-1"},
	}}
	service := NewExpenseService(repo)

	err := service.Delete(context.Background(), "user-2", "exp-1")
	assert.ErrorIs(t, err, financeErrors.ErrNotRecordOwner)
	assert.Len(t, repo.Expenses, 1)
}

func TestExpenseService_Delete_MissingRecord(t *testing.T) {
	service := NewExpenseService(&infrastructure.MockExpenseRepository{})
	err := service.Delete(context.Background(), "user-1", "nope")
	assert.ErrorIs(t, err, financeErrors.ErrRecordNotFound)
}
