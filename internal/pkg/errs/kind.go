package errs

import (
	"context"
	"errors"
)

// Kind classifies an error for callers that branch on the category rather than the type.
type Kind string

const (
	KindNone        Kind = ""
	KindValidation  Kind = "validation"
	KindConflict    Kind = "conflict"
	KindNotFound    Kind = "not_found"
	KindPersistence Kind = "persistence"
	KindCancelled   Kind = "cancelled"
	KindUnknown     Kind = "unknown"
)

// KindOf returns the kind of err. Conflict wins over persistence because a
// conflict is always reported through the store.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCancelled
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	default:
		return KindUnknown
	}
}
