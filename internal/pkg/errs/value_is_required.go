package errs

import (
	"errors"
	"fmt"
)

// ErrValueIsRequired is the sentinel for missing values.
var ErrValueIsRequired = errors.New("value is required")

// ValueIsRequiredError reports that a mandatory parameter was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a missing-value error.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a missing-value error with the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// Error formats the missing parameter, including the cause when present.
func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

// Unwrap returns ErrValueIsRequired.
func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}
