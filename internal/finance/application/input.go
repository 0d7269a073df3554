package application

import (
	"strings"
	"time"

	"github.com/fintrackio/fintrack/internal/finance/domain"
	financeErrors "github.com/fintrackio/fintrack/internal/finance/errors"
)

// Request fields are pointers so a field that was absent from the body can be
// told apart from a zero value. Updates are a full replace: every required
// field must be present again, nothing is merged from the stored record.
// There is deliberately no owner or id field here; both are immutable and
// come from the authenticated caller and the URL.
type ExpenseInput struct {
	Amount      *domain.Money `json:"amount"`
	Type        *int          `json:"type"`
	Category    *string       `json:"category"`
	Description *string       `json:"description"`
	Date        *string       `json:"date"`
}

type IncomeInput struct {
	Amount   *domain.Money `json:"amount"`
	Category *string       `json:"category"`
	Date     *string       `json:"date"`
}

type fieldCheck struct {
	field   string
	message string
	missing func() bool
}

// runChecks evaluates the required-field predicates in declaration order and
// collects every failure, so the response names all missing fields at once.
func runChecks(checks []fieldCheck, date *string) error {
	validationErrors := &financeErrors.ValidationErrors{}
	for _, check := range checks {
		if check.missing() {
			validationErrors.Add(financeErrors.NewValidationError(check.field, check.message))
		}
	}
	if date != nil && strings.TrimSpace(*date) != "" {
		if _, err := ParseDate(*date); err != nil {
			validationErrors.Add(financeErrors.NewValidationError("date", "Date is invalid"))
		}
	}
	if len(validationErrors.Errors) > 0 {
		return validationErrors
	}
	return nil
}

func missingString(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func (in ExpenseInput) Validate() error {
	checks := []fieldCheck{
		{"amount", "Amount is required", func() bool { return in.Amount == nil }},
		{"type", "Type is required", func() bool { return in.Type == nil }},
		{"category", "Category is required", func() bool { return missingString(in.Category) }},
		{"description", "Description is required", func() bool { return missingString(in.Description) }},
		{"date", "Date is required", func() bool { return missingString(in.Date) }},
	}
	return runChecks(checks, in.Date)
}

func (in IncomeInput) Validate() error {
	checks := []fieldCheck{
		{"amount", "Amount is required", func() bool { return in.Amount == nil }},
		{"category", "Category is required", func() bool { return missingString(in.Category) }},
		{"date", "Date is required", func() bool { return missingString(in.Date) }},
	}
	return runChecks(checks, in.Date)
}

// apply overwrites every mutable field of the expense from the input. Owner
// and id are left untouched. Must only be called on validated input.
func (in ExpenseInput) apply(expense *domain.Expense) {
	expense.Amount = *in.Amount
	expense.Type = *in.Type
	expense.Category = strings.TrimSpace(*in.Category)
	expense.Description = strings.TrimSpace(*in.Description)
	expense.Date, _ = ParseDate(*in.Date)
}

func (in IncomeInput) apply(income *domain.Income) {
	income.Amount = *in.Amount
	income.Category = strings.TrimSpace(*in.Category)
	income.Date, _ = ParseDate(*in.Date)
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate accepts a calendar date (2006-01-02) or a full RFC 3339
// timestamp, normalized to UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
