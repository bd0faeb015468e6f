package sqlengine

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/catalog/sqlengine/internal/adapters"
)

var (
	// ErrBuildingQueryFailed is returned when goqu cannot render a statement.
	ErrBuildingQueryFailed = errors.New("building sql statement failed")

	// ErrScanningRowFailed is returned when a result row does not fit the target record.
	ErrScanningRowFailed = errors.New("scanning database row failed")
)

// sqlBuilder is satisfied by every prepared goqu dataset.
type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

// rowScanner reads the current row into a record.
type rowScanner[T any] func(rows adapters.DBRows) (T, error)

// build renders a statement, logging and wrapping a failure.
func (s *Store) build(ctx context.Context, operation string, builder sqlBuilder) (string, []any, error) {
	sqlQuery, args, err := builder.ToSQL()
	if err != nil {
		s.logError(ctx, logMsgBuildQueryFailed, err, logAttrOperation, operation)
		return "", nil, errors.Join(catalog.ErrInternal, ErrBuildingQueryFailed, err)
	}

	return sqlQuery, args, nil
}

// exec runs a write statement with retries and returns the number of affected rows.
func (s *Store) exec(ctx context.Context, operation string, builder sqlBuilder) (int64, error) {
	sqlQuery, args, err := s.build(ctx, operation, builder)
	if err != nil {
		return 0, err
	}

	var rowsAffected int64

	execErr := s.withRetry(ctx, operation, func(ctx context.Context) error {
		start := time.Now()
		result, err := s.db.Exec(ctx, sqlQuery, args...)
		s.logQueryWithDuration(ctx, sqlQuery, operation, time.Since(start))

		if err != nil {
			return err
		}

		rowsAffected, err = result.RowsAffected()
		if err != nil {
			s.logError(ctx, logMsgRowsAffectedFailed, err, logAttrOperation, operation)
			return err
		}

		return nil
	})

	if execErr != nil {
		return 0, classifyError(execErr)
	}

	return rowsAffected, nil
}

// query opens a cursor with retries.
func (s *Store) query(ctx context.Context, operation string, builder sqlBuilder) (adapters.DBRows, error) {
	sqlQuery, args, err := s.build(ctx, operation, builder)
	if err != nil {
		return nil, err
	}

	var rows adapters.DBRows

	queryErr := s.withRetry(ctx, operation, func(ctx context.Context) error {
		start := time.Now()
		var err error
		rows, err = s.db.Query(ctx, sqlQuery, args...)
		s.logQueryWithDuration(ctx, sqlQuery, operation, time.Since(start))

		return err
	})

	if queryErr != nil {
		return nil, classifyError(queryErr)
	}

	return rows, nil
}

// closeRows safely closes database rows and logs any errors.
func (s *Store) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		s.logWarnContext(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

// execOne runs a write statement that must hit exactly one row; zero rows means catalog.ErrNotFound.
func (s *Store) execOne(ctx context.Context, operation string, builder sqlBuilder) error {
	ctx, observer := s.startOperation(ctx, operation)

	rowsAffected, err := s.exec(ctx, operation, builder)
	if err == nil && rowsAffected == 0 {
		err = catalog.ErrNotFound
	}

	if err != nil {
		observer.finishError(err)
		return err
	}

	observer.finishSuccess(int(rowsAffected))

	return nil
}

// queryOne returns the first row of the result or catalog.ErrNotFound.
func queryOne[T any](ctx context.Context, s *Store, operation string, builder sqlBuilder, scan rowScanner[T]) (T, error) {
	var zero T

	ctx, observer := s.startOperation(ctx, operation)

	record, err := func() (T, error) {
		rows, err := s.query(ctx, operation, builder)
		if err != nil {
			return zero, err
		}
		defer s.closeRows(ctx, rows)

		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return zero, classifyError(err)
			}

			return zero, catalog.ErrNotFound
		}

		record, err := scan(rows)
		if err != nil {
			s.logError(ctx, logMsgScanRowFailed, err, logAttrOperation, operation)
			return zero, errors.Join(catalog.ErrInternal, ErrScanningRowFailed, err)
		}

		return record, nil
	}()

	if err != nil {
		observer.finishError(err)
		return zero, err
	}

	observer.finishSuccess(1)

	return record, nil
}

// queryEach returns a lazy sequence over the rows of the result.
// The statement runs when iteration starts; the cursor is closed when the loop ends or breaks.
func queryEach[T any](ctx context.Context, s *Store, operation string, builder sqlBuilder, scan rowScanner[T]) catalog.Seq[T] {
	return func(yield func(T, error) bool) {
		var zero T

		ctx, observer := s.startOperation(ctx, operation)

		rows, err := s.query(ctx, operation, builder)
		if err != nil {
			observer.finishError(err)
			yield(zero, err)
			return
		}
		defer s.closeRows(ctx, rows)

		count := 0

		for rows.Next() {
			if ctxErr := ctx.Err(); ctxErr != nil {
				observer.finishError(ctxErr)
				yield(zero, ctxErr)
				return
			}

			record, scanErr := scan(rows)
			if scanErr != nil {
				s.logError(ctx, logMsgScanRowFailed, scanErr, logAttrOperation, operation)
				err = errors.Join(catalog.ErrInternal, ErrScanningRowFailed, scanErr)
				observer.finishError(err)
				yield(zero, err)
				return
			}

			count++

			if !yield(record, nil) {
				observer.finishSuccess(count)
				return
			}
		}

		if err := rows.Err(); err != nil {
			err = classifyError(err)
			observer.finishError(err)
			yield(zero, err)
			return
		}

		observer.finishSuccess(count)
	}
}
