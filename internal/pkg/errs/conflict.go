package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel for state that changed underneath an operation.
// Callers are expected to re-read and retry with fresh input; the engine never retries itself.
var ErrConflict = errors.New("conflict")

// ConflictError reports that the object identified by ID was modified by a concurrent writer.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a conflict error for the given object.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewConflictErrorWithCause creates a conflict error carrying the store-level cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

// Error formats the conflicting object and its identifier.
func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %v)", ErrConflict, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrConflict, e.ParamName, sanitize(e.ID))
}

// Unwrap exposes both the sentinel and the cause.
func (e *ConflictError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrConflict}
	}
	return []error{ErrConflict, e.Cause}
}
