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

type IncomeServiceInterface interface {
	Create(ctx context.Context, userID string, input application.IncomeInput) (*domain.Income, error)
	List(ctx context.Context, userID string, month *time.Time) (*application.IncomeReport, error)
	Update(ctx context.Context, userID, incomeID string, input application.IncomeInput) (*domain.Income, error)
	Delete(ctx context.Context, userID, incomeID string) error
}

type IncomeHandler struct {
	service      IncomeServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewIncomeHandler(
	service IncomeServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *IncomeHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &IncomeHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *IncomeHandler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var input application.IncomeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	income, err := h.service.Create(r.Context(), userID, input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Income successfully created.",
		"data":    income,
	})
}

func (h *IncomeHandler) ListIncomes(w http.ResponseWriter, r *http.Request) {
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
		"message": "Incomes retrieved successfully.",
		"data":    report,
	})
}

func (h *IncomeHandler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var input application.IncomeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	income, err := h.service.Update(r.Context(), userID, r.PathValue("id"), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Income successfully updated.",
		"data":    income,
	})
}

func (h *IncomeHandler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
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
		"message": "Income removed",
	})
}

func (h *IncomeHandler) handleServiceError(w http.ResponseWriter, err error) {
	var validationErrors *financeErrors.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		h.respondError(w, http.StatusBadRequest, "Validation failed", validationErrors.Messages())
	case errors.Is(err, financeErrors.ErrRecordNotFound):
		h.respondError(w, http.StatusNotFound, "Income not found")
	case errors.Is(err, financeErrors.ErrNotRecordOwner):
		h.respondError(w, http.StatusUnauthorized, "User not authorized")
	default:
		log.Printf("income handler: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Server error")
	}
}
