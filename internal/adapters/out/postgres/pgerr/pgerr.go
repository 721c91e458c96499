// Package pgerr classifies PostgreSQL failures into the engine's error kinds.
package pgerr

import (
	"errors"

	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that mean a concurrent writer got there first.
const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
	lockNotAvailable     = "55P03"
	uniqueViolation      = "23505"
)

// Wrap turns a driver error into a typed error.
//
// Concurrency failures become errs.ConflictError so callers can re-read and retry.
// Errors that already carry a kind, context cancellation included, pass through.
// Anything else becomes an errs.PersistenceError naming the operation.
func Wrap(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errs.KindOf(err) != errs.KindUnknown {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && IsConflictCode(pgErr.Code) {
		return errs.NewConflictErrorWithCause(operation, pgErr.TableName, err)
	}

	return errs.NewPersistenceError(operation, err)
}

// IsConflictCode reports whether a SQLSTATE code signals a concurrency conflict.
func IsConflictCode(code string) bool {
	switch code {
	case serializationFailure, deadlockDetected, lockNotAvailable, uniqueViolation:
		return true
	default:
		return false
	}
}
