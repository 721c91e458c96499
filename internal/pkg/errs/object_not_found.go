package errs

import (
	"errors"
	"fmt"
)

// ErrObjectNotFound is the sentinel for all not-found errors.
var ErrObjectNotFound = errors.New("object not found")

// ObjectNotFoundError reports that an object identified by ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates a not-found error for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates a not-found error carrying the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

// Error formats the missing object identifier, including the cause when present.
func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	//nolint:perfsprint // %s keeps the formatting of non-string identifiers visible
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

// Unwrap returns ErrObjectNotFound so errors.Is matches the sentinel.
func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}
