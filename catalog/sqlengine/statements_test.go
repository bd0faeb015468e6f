package sqlengine

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/testutil/helper"
)

func newRecordingStore(t *testing.T, adapter *recordingAdapter, options ...Option) *Store {
	t.Helper()

	store, err := newStore(adapter, DialectPostgres, options...)
	require.NoError(t, err)

	return store
}

func Test_Books_Get_GeneratesPreparedPostgresSelect(t *testing.T) {
	// setup
	adapter := &recordingAdapter{}
	store := newRecordingStore(t, adapter)

	// act
	_, err := store.Books().Get(context.Background(), "book-1")

	// assert
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	statements := adapter.recorded()
	require.Len(t, statements, 1)
	assert.Equal(t,
		`SELECT "id", "title", "author", "isbn", "total_copies", "available_copies", "image_url" FROM "books" WHERE ("id" = $1)`,
		statements[0].query)
	assert.Equal(t, []any{"book-1"}, statements[0].args)
}

func Test_Books_Create_BindsAllColumnsAsArguments(t *testing.T) {
	// setup
	adapter := &recordingAdapter{rowsAffected: 1}
	store := newRecordingStore(t, adapter, WithTablePrefix("lib_"))

	// arrange
	book := catalog.BuildBook("book-1", "Dune", "Frank Herbert", "978-0441013593", 3, "https://covers.library.test/dune.jpg")

	// act
	err := store.Books().Create(context.Background(), book)

	// assert
	require.NoError(t, err)
	statements := adapter.recorded()
	require.Len(t, statements, 1)
	assert.Contains(t, statements[0].query, `INSERT INTO "lib_books"`)
	assert.NotContains(t, statements[0].query, "Dune", "values must be bound, not inlined")
	assert.ElementsMatch(t,
		[]any{"book-1", "Dune", "Frank Herbert", "978-0441013593", int64(3), int64(3), "https://covers.library.test/dune.jpg"},
		normalizeInts(statements[0].args))
}

func Test_Books_Search_EscapesWildcardsAndOrdersByTitleThenID(t *testing.T) {
	// setup
	adapter := &recordingAdapter{}
	store := newRecordingStore(t, adapter)

	// act
	found := helper.Collect(t, store.Books().Search(context.Background(), "100%_Off"))

	// assert
	assert.Empty(t, found)
	statements := adapter.recorded()
	require.Len(t, statements, 1)
	assert.Contains(t, statements[0].query, `LOWER("title") LIKE $1 ESCAPE '\'`)
	assert.Contains(t, statements[0].query, `LOWER("author") LIKE $2 ESCAPE '\'`)
	assert.Contains(t, statements[0].query, ` OR `)
	assert.Contains(t, statements[0].query, `ORDER BY "title" ASC, "id" ASC`)
	assert.Equal(t, []any{`%100\%\_off%`, `%100\%\_off%`}, statements[0].args)
}

func Test_Books_Search_WithEmptyQuery_HasNoFilter(t *testing.T) {
	// setup
	adapter := &recordingAdapter{}
	store := newRecordingStore(t, adapter)

	// act
	helper.Collect(t, store.Books().Search(context.Background(), ""))

	// assert
	statements := adapter.recorded()
	require.Len(t, statements, 1)
	assert.NotContains(t, statements[0].query, "WHERE")
	assert.Empty(t, statements[0].args)
}

func Test_StaffAccounts_ListPrivileged_FiltersOnBothFlags(t *testing.T) {
	// setup
	adapter := &recordingAdapter{}
	store := newRecordingStore(t, adapter)

	// act
	helper.Collect(t, store.StaffAccounts().ListPrivileged(context.Background()))

	// assert
	statements := adapter.recorded()
	require.Len(t, statements, 1)
	assert.Contains(t, statements[0].query, `("is_staff" OR "is_superuser")`)
	assert.Contains(t, statements[0].query, `ORDER BY "id" ASC`)
}

func Test_StaffAccounts_DeleteUnprotected_ChecksProtectionInTheStatement(t *testing.T) {
	testCases := []struct {
		name         string
		rowsAffected int64
		expected     bool
	}{
		{name: "row deleted", rowsAffected: 1, expected: true},
		{name: "nothing deleted", rowsAffected: 0, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// setup
			adapter := &recordingAdapter{rowsAffected: tc.rowsAffected}
			store := newRecordingStore(t, adapter)

			// act
			deleted, err := store.StaffAccounts().DeleteUnprotected(context.Background(), "staff-1")

			// assert
			require.NoError(t, err)
			assert.Equal(t, tc.expected, deleted)
			statements := adapter.recorded()
			require.Len(t, statements, 1)
			assert.Contains(t, statements[0].query, `DELETE FROM "staff_accounts"`)
			assert.Contains(t, statements[0].query, `NOT "is_superuser"`)
			assert.Equal(t, []any{"staff-1"}, statements[0].args)
		})
	}
}

func Test_Clients_Update_NeverTouchesTheRegistrationDate(t *testing.T) {
	// setup
	adapter := &recordingAdapter{rowsAffected: 1}
	store := newRecordingStore(t, adapter)

	// act
	err := store.Clients().Update(context.Background(), "client-1", catalog.ClientUpdate{Nom: "Marie Curie"})

	// assert
	require.NoError(t, err)
	statements := adapter.recorded()
	require.Len(t, statements, 1)
	assert.Contains(t, statements[0].query, `UPDATE "clients" SET`)
	assert.NotContains(t, statements[0].query, "date_inscription")
}

func Test_ExecOne_WithZeroRowsAffected_IsNotFound(t *testing.T) {
	// setup
	adapter := &recordingAdapter{rowsAffected: 0}
	store := newRecordingStore(t, adapter)

	// act
	err := store.Books().Delete(context.Background(), "missing")

	// assert
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func Test_Exec_RetriesTransientErrors(t *testing.T) {
	// setup
	metricsCollector := helper.NewMetricsCollectorSpy(true)
	adapter := &recordingAdapter{
		rowsAffected: 1,
		errs:         []error{&pgconn.PgError{Code: pgCodeSerializationFailure}, &pgconn.PgError{Code: pgCodeDeadlockDetected}},
	}
	store := newRecordingStore(t, adapter,
		WithRetry(WithBaseDelay(time.Millisecond), WithJitterFactor(0)),
		WithMetrics(metricsCollector),
	)

	// act
	err := store.Books().Delete(context.Background(), "book-1")

	// assert
	require.NoError(t, err)
	assert.Len(t, adapter.recorded(), 3)
	assert.Equal(t, 2, metricsCollector.HasCounterRecordForMetric("catalogstore_retries_total").
		WithOperation("books.delete").
		Count())
}

func Test_Exec_GivesUpAfterMaxAttempts(t *testing.T) {
	// setup
	adapter := &recordingAdapter{
		errs: []error{
			&pgconn.PgError{Code: pgCodeSerializationFailure},
			&pgconn.PgError{Code: pgCodeSerializationFailure},
			&pgconn.PgError{Code: pgCodeSerializationFailure},
		},
	}
	store := newRecordingStore(t, adapter, WithRetry(WithMaxAttempts(2), WithBaseDelay(0)))

	// act
	err := store.Books().Delete(context.Background(), "book-1")

	// assert
	assert.ErrorIs(t, err, catalog.ErrInternal)
	assert.Len(t, adapter.recorded(), 2)
}

func Test_Exec_DoesNotRetryUniqueViolations(t *testing.T) {
	// setup
	adapter := &recordingAdapter{errs: []error{&pgconn.PgError{Code: pgCodeUniqueViolation}}}
	store := newRecordingStore(t, adapter, WithRetry(WithBaseDelay(0)))

	// act
	err := store.Books().Create(context.Background(), catalog.BuildBook("book-1", "Dune", "Frank Herbert", "isbn", 1, ""))

	// assert
	assert.ErrorIs(t, err, catalog.ErrConflict)
	assert.Len(t, adapter.recorded(), 1)
}

func Test_Query_RetriesTransientErrors(t *testing.T) {
	// setup
	adapter := &recordingAdapter{errs: []error{&pgconn.PgError{Code: pgCodeDeadlockDetected}}}
	store := newRecordingStore(t, adapter, WithRetry(WithBaseDelay(0)))

	// act
	_, err := store.StaffAccounts().GetByUsername(context.Background(), "alice")

	// assert
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Len(t, adapter.recorded(), 2)
}

func normalizeInts(args []any) []any {
	normalized := make([]any, len(args))

	for i, arg := range args {
		switch v := arg.(type) {
		case int:
			normalized[i] = int64(v)
		default:
			normalized[i] = v
		}
	}

	return normalized
}
