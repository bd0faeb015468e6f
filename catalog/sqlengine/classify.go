package sqlengine

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

const (
	pgCodeUniqueViolation      = "23505"
	pgCodeSerializationFailure = "40001"
	pgCodeDeadlockDetected     = "40P01"
)

const (
	errorTypeConflict  = "conflict"
	errorTypeNotFound  = "not_found"
	errorTypeCanceled  = "context_canceled"
	errorTypeTimeout   = "context_deadline_exceeded"
	errorTypeTransient = "transient"
	errorTypeDatabase  = "database"
)

// classifyError turns a driver error into a catalog error kind.
// Context errors are kept as they are, so callers can tell cancellation from failure.
func classifyError(err error) error {
	switch {
	case err == nil:
		return nil

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err

	case isUniqueViolation(err):
		return errors.Join(catalog.ErrConflict, err)

	default:
		return errors.Join(catalog.ErrInternal, err)
	}
}

// isUniqueViolation reports whether err is a unique constraint violation from any supported driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCodeUniqueViolation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgCodeUniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

// isTransientError reports whether a statement failed in a way that makes running it again safe.
func isTransientError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if pgconn.SafeToRetry(err) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCodeSerializationFailure || pgErr.Code == pgCodeDeadlockDetected
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgCodeSerializationFailure || string(pqErr.Code) == pgCodeDeadlockDetected
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}

	return false
}

// errorType extracts a string representation of the error kind for metrics labeling.
func errorType(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return errorTypeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return errorTypeTimeout
	case errors.Is(err, catalog.ErrConflict):
		return errorTypeConflict
	case errors.Is(err, catalog.ErrNotFound):
		return errorTypeNotFound
	case isTransientError(err):
		return errorTypeTransient
	default:
		return errorTypeDatabase
	}
}
