package sqlengine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

const (
	logMsgSQLExecuted        = "executed sql for: "
	logMsgOperation          = "catalogstore operation: "
	logMsgOperationFailed    = "catalogstore operation failed: "
	logMsgBuildQueryFailed   = "failed to build sql statement"
	logMsgScanRowFailed      = "failed to scan database row"
	logMsgCloseRowsFailed    = "failed to close database rows"
	logMsgRowsAffectedFailed = "failed to get rows affected count"
	logMsgRetrying           = "retrying statement after transient database error"
	logAttrError             = "error"
	logAttrErrorType         = "error_type"
	logAttrQuery             = "query"
	logAttrDurationMS        = "duration_ms"
	logAttrRowCount          = "row_count"
	logAttrOperation         = "operation"
	logAttrAttempt           = "attempt"
)

const (
	metricOperationDuration = "catalogstore_operation_duration_seconds"
	metricRowsReturned      = "catalogstore_rows_returned"
	metricDatabaseErrors    = "catalogstore_database_errors_total"
	metricRetries           = "catalogstore_retries_total"
	spanNamePrefix          = "catalogstore."
	spanAttrOperation       = "operation"
	spanAttrDBSystem        = "db.system"
	spanAttrErrorType       = "error_type"
	spanAttrRowCount        = "row_count"
	spanAttrDurationMS      = "duration_ms"
	labelStatus             = "status"
	labelAttempt            = "attempt_number"
	statusSuccess           = "success"
	statusError             = "error"
)

// operationObserver encapsulates span lifecycle, metrics and logs of one repository operation.
type operationObserver struct {
	store     *Store
	ctx       context.Context
	operation string
	span      catalog.SpanContext
	start     time.Time
}

// startOperation creates an observer for operation and returns the context carrying its span.
func (s *Store) startOperation(ctx context.Context, operation string) (context.Context, *operationObserver) {
	var span catalog.SpanContext

	if s.tracingCollector != nil {
		ctx, span = s.tracingCollector.StartSpan(ctx, spanNamePrefix+operation, map[string]string{
			spanAttrOperation: operation,
			spanAttrDBSystem:  s.dialectName,
		})
	}

	return ctx, &operationObserver{
		store:     s,
		ctx:       ctx,
		operation: operation,
		span:      span,
		start:     time.Now(),
	}
}

// finishSuccess records metrics, closes the span and logs the completed operation.
func (o *operationObserver) finishSuccess(rowCount int) {
	duration := time.Since(o.start)

	o.store.recordDuration(o.ctx, o.operation, statusSuccess, duration)
	o.store.recordValue(o.ctx, metricRowsReturned, float64(rowCount), o.operation)

	if o.span != nil {
		o.span.SetStatus(statusSuccess)
		o.span.AddAttribute(spanAttrRowCount, fmt.Sprintf("%d", rowCount))
		o.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", toMilliseconds(duration)))
		o.store.tracingCollector.FinishSpan(o.span, statusSuccess, map[string]string{
			spanAttrRowCount: fmt.Sprintf("%d", rowCount),
		})
	}

	o.store.logOperation(o.ctx, o.operation,
		logAttrRowCount, rowCount,
		logAttrDurationMS, toMilliseconds(duration))
}

// finishError records metrics, closes the span and logs the failed operation.
// Missing rows and unique violations are expected outcomes and are logged at info level.
func (o *operationObserver) finishError(err error) {
	duration := time.Since(o.start)
	errType := errorType(err)

	o.store.recordDuration(o.ctx, o.operation, statusError, duration)
	o.store.recordError(o.ctx, o.operation, errType)

	if o.span != nil {
		o.span.SetStatus(statusError)
		o.span.AddAttribute(spanAttrErrorType, errType)
		o.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", toMilliseconds(duration)))
		o.store.tracingCollector.FinishSpan(o.span, statusError, map[string]string{
			spanAttrErrorType: errType,
		})
	}

	if errType == errorTypeNotFound || errType == errorTypeConflict {
		o.store.logOperation(o.ctx, o.operation,
			logAttrErrorType, errType,
			logAttrDurationMS, toMilliseconds(duration))

		return
	}

	o.store.logError(o.ctx, logMsgOperationFailed+o.operation, err,
		logAttrErrorType, errType,
		logAttrDurationMS, toMilliseconds(duration))
}

// recordDuration records the operation duration if the metrics collector is configured.
func (s *Store) recordDuration(ctx context.Context, operation, status string, duration time.Duration) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		labelStatus:       status,
	}

	if contextualCollector, ok := s.metricsCollector.(catalog.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricOperationDuration, duration, labels)
	} else {
		s.metricsCollector.RecordDuration(metricOperationDuration, duration, labels)
	}
}

// recordValue records a value metric if the metrics collector is configured.
func (s *Store) recordValue(ctx context.Context, metric string, value float64, operation string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		labelStatus:       statusSuccess,
	}

	if contextualCollector, ok := s.metricsCollector.(catalog.ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
	} else {
		s.metricsCollector.RecordValue(metric, value, labels)
	}
}

// recordError increments the database error counter if the metrics collector is configured.
func (s *Store) recordError(ctx context.Context, operation, errType string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		labelStatus:       statusError,
		spanAttrErrorType: errType,
	}

	if contextualCollector, ok := s.metricsCollector.(catalog.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricDatabaseErrors, labels)
	} else {
		s.metricsCollector.IncrementCounter(metricDatabaseErrors, labels)
	}
}

// recordRetry increments the retry counter if the metrics collector is configured.
func (s *Store) recordRetry(ctx context.Context, operation string, attempt int) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		labelAttempt:      fmt.Sprintf("%d", attempt),
	}

	if contextualCollector, ok := s.metricsCollector.(catalog.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricRetries, labels)
	} else {
		s.metricsCollector.IncrementCounter(metricRetries, labels)
	}
}

// logQueryWithDuration logs SQL statements with execution time at debug level.
func (s *Store) logQueryWithDuration(ctx context.Context, sqlQuery, operation string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+operation, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+operation, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level.
func (s *Store) logOperation(ctx context.Context, operation string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+operation, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgOperation+operation, args...)
	}
}

// logWarnContext logs non-critical issues at warn level.
func (s *Store) logWarnContext(ctx context.Context, message string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(message, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, message, args...)
	}
}

// logError logs error information at the error level.
func (s *Store) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if s.logger != nil {
		s.logger.Error(message, allArgs...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
