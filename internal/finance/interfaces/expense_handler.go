package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/fintrackio/fintrack/internal/auth"
	"github.com/fintrackio/fintrack/internal/finance/application"
	"github.com/fintrackio/fintrack/internal/finance/domain"
	financeErrors "github.com/fintrackio/fintrack/internal/finance/errors"
)

type ExpenseServiceInterface interface {
	Create(ctx context.Context, userID string, input application.ExpenseInput) (*domain.Expense, error)
	List(ctx context.Context, userID string, month *time.Time) (*application.ExpenseReport, error)
	Update(ctx context.Context, userID, expenseID string, input application.ExpenseInput) (*domain.Expense, error)
	Delete(ctx context.Context, userID, expenseID string) error
}

type ExpenseHandler struct {
	service      ExpenseServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewExpenseHandler(
	service ExpenseServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *ExpenseHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &ExpenseHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var input application.ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expense, err := h.service.Create(r.Context(), userID, input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully created.",
		"data":    expense,
	})
}

func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var month *time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := application.ParseDate(dateStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Validation failed", []string{"Date is invalid"})
			return
		}
		month = &parsed
	}

	report, err := h.service.List(r.Context(), userID, month)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expenses retrieved successfully.",
		"data":    report,
	})
}

func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var input application.ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expense, err := h.service.Update(r.Context(), userID, r.PathValue("id"), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully updated.",
		"data":    expense,
	})
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense removed",
	})
}

// handleServiceError maps the service error taxonomy onto the wire. Not-found
// and not-owner stay distinct statuses; anything else is a generic failure
// that leaks no internal detail.
func (h *ExpenseHandler) handleServiceError(w http.ResponseWriter, err error) {
	var validationErrors *financeErrors.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		h.respondError(w, http.StatusBadRequest, "Validation failed", validationErrors.Messages())
	case errors.Is(err, financeErrors.ErrRecordNotFound):
		h.respondError(w, http.StatusNotFound, "Expense not found")
	case errors.Is(err, financeErrors.ErrNotRecordOwner):
		h.respondError(w, http.StatusUnauthorized, "User not authorized")
	default:
		log.Printf("expense handler: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Server error")
	}
}
