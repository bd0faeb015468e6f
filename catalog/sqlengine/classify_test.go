package sqlengine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

func Test_ClassifyError(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		expectedErr error
		errorType   string
	}{
		{
			name:        "pgx unique violation",
			err:         &pgconn.PgError{Code: pgCodeUniqueViolation},
			expectedErr: catalog.ErrConflict,
			errorType:   errorTypeConflict,
		},
		{
			name:        "lib/pq unique violation",
			err:         &pq.Error{Code: pgCodeUniqueViolation},
			expectedErr: catalog.ErrConflict,
			errorType:   errorTypeConflict,
		},
		{
			name:        "sqlite unique constraint",
			err:         sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			expectedErr: catalog.ErrConflict,
			errorType:   errorTypeConflict,
		},
		{
			name:        "sqlite primary key constraint",
			err:         sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey},
			expectedErr: catalog.ErrConflict,
			errorType:   errorTypeConflict,
		},
		{
			name:        "sqlite not null constraint",
			err:         sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull},
			expectedErr: catalog.ErrInternal,
			errorType:   errorTypeDatabase,
		},
		{
			name:        "wrapped serialization failure",
			err:         fmt.Errorf("running statement: %w", &pgconn.PgError{Code: pgCodeSerializationFailure}),
			expectedErr: catalog.ErrInternal,
			errorType:   errorTypeTransient,
		},
		{
			name:        "sqlite busy",
			err:         sqlite3.Error{Code: sqlite3.ErrBusy},
			expectedErr: catalog.ErrInternal,
			errorType:   errorTypeTransient,
		},
		{
			name:        "lib/pq deadlock",
			err:         &pq.Error{Code: pgCodeDeadlockDetected},
			expectedErr: catalog.ErrInternal,
			errorType:   errorTypeTransient,
		},
		{
			name:        "anything else",
			err:         errors.New("connection refused"),
			expectedErr: catalog.ErrInternal,
			errorType:   errorTypeDatabase,
		},
		{
			name:        "context canceled",
			err:         context.Canceled,
			expectedErr: context.Canceled,
			errorType:   errorTypeCanceled,
		},
		{
			name:        "context deadline",
			err:         fmt.Errorf("acquiring connection: %w", context.DeadlineExceeded),
			expectedErr: context.DeadlineExceeded,
			errorType:   errorTypeTimeout,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			classified := classifyError(tc.err)

			assert.ErrorIs(t, classified, tc.expectedErr)
			assert.ErrorIs(t, classified, tc.err, "the cause must stay attached")
			assert.Equal(t, tc.errorType, errorType(classified))
		})
	}
}

func Test_ClassifyError_KeepsNil(t *testing.T) {
	assert.NoError(t, classifyError(nil))
}

func Test_ClassifyError_ContextErrorsAreNeitherInternalNorRetried(t *testing.T) {
	classified := classifyError(context.Canceled)

	assert.NotErrorIs(t, classified, catalog.ErrInternal)
	assert.False(t, isTransientError(classified))
}

func Test_ErrorType_ForCatalogErrors(t *testing.T) {
	assert.Equal(t, errorTypeNotFound, errorType(catalog.ErrNotFound))
	assert.Equal(t, errorTypeConflict, errorType(errors.Join(catalog.ErrConflict, errors.New("duplicate"))))
}
