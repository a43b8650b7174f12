package warehouse

import "errors"

// Domain errors, checkable with errors.Is().
var (
	// ErrNotFound indicates the requested warehouse record does not exist.
	ErrNotFound = errors.New("warehouse not found")

	// ErrInvalidInput is the base of every validation failure.
	ErrInvalidInput = errors.New("invalid warehouse input")
)

// Issue describes one field-level validation problem.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates the field issues of a rejected payload.
// It unwraps to ErrInvalidInput so callers can classify without a type assert.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
