package errs

import (
	"errors"
	"fmt"
)

// ErrPersistence is the sentinel for store failures.
var ErrPersistence = errors.New("persistence failure")

// PersistenceError reports that the store could not complete Operation.
type PersistenceError struct {
	Operation string
	Cause     error
}

// NewPersistenceError wraps a store failure. Returns nil when cause is nil.
func NewPersistenceError(operation string, cause error) error {
	if cause == nil {
		return nil
	}
	return &PersistenceError{
		Operation: operation,
		Cause:     cause,
	}
}

// Error formats the failed operation and its cause.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %v)", ErrPersistence, e.Operation, e.Cause)
}

// Unwrap exposes both the sentinel and the cause.
func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Cause}
}
