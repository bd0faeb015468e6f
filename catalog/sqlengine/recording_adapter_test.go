package sqlengine

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/library-admin-rpc/catalog/sqlengine/internal/adapters"
)

type recordedStatement struct {
	query string
	args  []any
}

// recordingAdapter captures statements instead of running them.
// Errors in errs are returned one per call, in order; afterwards calls succeed.
type recordingAdapter struct {
	mu           sync.Mutex
	statements   []recordedStatement
	errs         []error
	rowsAffected int64
}

func (a *recordingAdapter) Query(_ context.Context, query string, args ...any) (adapters.DBRows, error) {
	if err := a.record(query, args); err != nil {
		return nil, err
	}

	return emptyRows{}, nil
}

func (a *recordingAdapter) Exec(_ context.Context, query string, args ...any) (adapters.DBResult, error) {
	if err := a.record(query, args); err != nil {
		return nil, err
	}

	return fixedResult(a.rowsAffected), nil
}

func (a *recordingAdapter) record(query string, args []any) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.statements = append(a.statements, recordedStatement{query: query, args: args})

	if len(a.errs) == 0 {
		return nil
	}

	err := a.errs[0]
	a.errs = a.errs[1:]

	return err
}

func (a *recordingAdapter) recorded() []recordedStatement {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]recordedStatement(nil), a.statements...)
}

type emptyRows struct{}

func (emptyRows) Next() bool { return false }
func (emptyRows) Scan(...any) error { return nil }
func (emptyRows) Err() error { return nil }
func (emptyRows) Close() error { return nil }

type fixedResult int64

func (r fixedResult) RowsAffected() (int64, error) { return int64(r), nil }
