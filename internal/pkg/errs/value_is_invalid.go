package errs

import (
	"errors"
	"fmt"
)

// ErrValueIsInvalid is the sentinel for validation failures.
var ErrValueIsInvalid = errors.New("value is invalid")

// ValueIsInvalidError reports that a parameter failed a business rule.
// ParamName names the offending value, e.g. "line item 7c1e... of order 9a0b...".
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a validation error for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a validation error explaining why the parameter is invalid.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// Error formats the invalid parameter, including the cause when present.
func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

// Unwrap returns ErrValueIsInvalid.
func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}
