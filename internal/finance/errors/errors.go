package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the record handlers. Not-found and not-owner must stay
// distinct all the way to the wire: a caller who hits someone else's record
// learns that it exists, but never its contents.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrNotRecordOwner = errors.New("user is not the record owner")
)

type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// ValidationErrors collects every failed required-field check of a request,
// so the response can name all missing fields at once.
type ValidationErrors struct {
	Errors []error
}

func (ve *ValidationErrors) Error() string {
	errorMessages := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		errorMessages[i] = err.Error()
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(errorMessages, "; "))
}

func (ve *ValidationErrors) Add(err error) {
	ve.Errors = append(ve.Errors, err)
}

// Messages returns the per-field error messages in check order.
func (ve *ValidationErrors) Messages() []string {
	messages := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		messages[i] = err.Error()
	}
	return messages
}

func IsValidationErrors(err error) bool {
	var validationErrors *ValidationErrors
	ok := errors.As(err, &validationErrors)
	return ok
}

// NewStoreError wraps an unexpected persistence failure. The wrapped detail
// is for logs only and must not reach the client.
func NewStoreError(op string, err error) error {
	return fmt.Errorf("store operation %s failed: %w", op, err)
}
