package shell

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

const (
	// RPCHandleDurationMetric tracks handler execution duration (OpenTelemetry-compatible).
	RPCHandleDurationMetric = "rpc_handle_duration_seconds"

	// RPCHandleCallsMetric tracks total handler calls.
	RPCHandleCallsMetric = "rpc_handle_calls_total"

	// RPCCanceledMetric tracks calls that ended because the caller went away.
	RPCCanceledMetric = "rpc_canceled_calls_total"

	// RPCTimeoutMetric tracks calls that ended because their deadline passed.
	RPCTimeoutMetric = "rpc_timeout_calls_total"

	// RPCStreamMessagesMetric records how many messages a streaming call sent before it ended.
	RPCStreamMessagesMetric = "rpc_stream_messages_sent"

	// RPCWorkerWaitMetric tracks how long a call waited for a free worker slot.
	RPCWorkerWaitMetric = "rpc_worker_wait_duration_seconds"

	// RPCWorkersBusyMetric tracks calls rejected because no worker slot became free in time.
	RPCWorkersBusyMetric = "rpc_worker_unavailable_total"

	// StatusSuccess indicates a call that returned without error.
	StatusSuccess = "success"

	// StatusError indicates a call that failed.
	StatusError = "error"

	// StatusCanceled indicates a call canceled by its caller.
	StatusCanceled = "canceled"

	// StatusTimeout indicates a call that ran past its deadline.
	StatusTimeout = "timeout"

	// LogMsgRPCStarted is logged when a handler begins.
	LogMsgRPCStarted = "rpc handler started"

	// LogMsgRPCCompleted is logged when a handler succeeds.
	LogMsgRPCCompleted = "rpc handler completed"

	// LogMsgRPCFailed is logged when a handler fails.
	LogMsgRPCFailed = "rpc handler failed"

	// LogAttrMethod identifies the called method in logs and labels.
	LogAttrMethod = "rpc_method"

	// LogAttrCode carries the gRPC status code name.
	LogAttrCode = "grpc_code"

	// LogAttrStatus indicates the call outcome.
	LogAttrStatus = "status"

	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrMessagesSent counts the messages a streaming call sent.
	LogAttrMessagesSent = "messages_sent"

	// LogAttrError contains error details.
	LogAttrError = "error"

	// SpanNameRPCHandle is the tracing span name for handling one call.
	SpanNameRPCHandle = "rpchandler.handle"
)

// Interface aliases for convenience when using handler observability.
// These match the catalog observability interfaces.

// MetricsCollector interface for collecting handler performance metrics.
type MetricsCollector = catalog.MetricsCollector

// ContextualMetricsCollector extends MetricsCollector with context-aware methods.
type ContextualMetricsCollector = catalog.ContextualMetricsCollector

// TracingCollector interface for distributed tracing in handlers.
type TracingCollector = catalog.TracingCollector

// SpanContext represents an active tracing span.
type SpanContext = catalog.SpanContext

// ContextualLogger interface for context-aware logging in handlers.
type ContextualLogger = catalog.ContextualLogger

// Logger interface for basic logging in handlers.
type Logger = catalog.Logger

// BuildRPCLabels creates standard metric labels for handler operations.
func BuildRPCLabels(method, status, code string) map[string]string {
	return map[string]string{
		LogAttrMethod: method,
		LogAttrStatus: status,
		LogAttrCode:   code,
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds with precision.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// StatusFromError classifies the error returned by a handler into one of the Status* values.
// It understands both plain context errors and gRPC status errors.
func StatusFromError(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case IsCancellationError(err):
		return StatusCanceled
	case IsTimeoutError(err):
		return StatusTimeout
	default:
		return StatusError
	}
}

// CodeName returns the name of the gRPC status code carried by err, "OK" for nil.
func CodeName(err error) string {
	return status.Code(err).String()
}

// RecordRPCMetrics is a helper function to record all relevant metrics for a call.
// It handles both context-aware and basic metrics collectors automatically.
func RecordRPCMetrics(
	ctx context.Context,
	collector MetricsCollector,
	method string,
	status string,
	code string,
	duration time.Duration,
) {
	if collector == nil {
		return
	}

	labels := BuildRPCLabels(method, status, code)
	incrementCounter(ctx, collector, RPCHandleCallsMetric, labels)

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, RPCHandleDurationMetric, duration, labels)
	} else {
		collector.RecordDuration(RPCHandleDurationMetric, duration, labels)
	}

	switch status {
	case StatusCanceled:
		incrementCounter(ctx, collector, RPCCanceledMetric, labels)
	case StatusTimeout:
		incrementCounter(ctx, collector, RPCTimeoutMetric, labels)
	}
}

// RecordStreamMessages records how many messages a streaming call sent.
func RecordStreamMessages(ctx context.Context, collector MetricsCollector, method string, sent int) {
	if collector == nil {
		return
	}

	labels := map[string]string{LogAttrMethod: method}

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, RPCStreamMessagesMetric, float64(sent), labels)
		return
	}

	collector.RecordValue(RPCStreamMessagesMetric, float64(sent), labels)
}

// RecordWorkerWait records how long a call waited for a worker slot, and whether it got one.
func RecordWorkerWait(ctx context.Context, collector MetricsCollector, method string, wait time.Duration, acquired bool) {
	if collector == nil {
		return
	}

	labels := map[string]string{LogAttrMethod: method}

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, RPCWorkerWaitMetric, wait, labels)
	} else {
		collector.RecordDuration(RPCWorkerWaitMetric, wait, labels)
	}

	if !acquired {
		incrementCounter(ctx, collector, RPCWorkersBusyMetric, labels)
	}
}

func incrementCounter(ctx context.Context, collector MetricsCollector, metric string, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	collector.IncrementCounter(metric, labels)
}

// StartRPCSpan starts a distributed tracing span for one call.
// Returns the updated context and span context, or original context and nil if tracing is disabled.
func StartRPCSpan(
	ctx context.Context,
	tracingCollector TracingCollector,
	method string,
) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	attrs := map[string]string{
		LogAttrMethod: method,
	}

	return tracingCollector.StartSpan(ctx, SpanNameRPCHandle, attrs)
}

// FinishRPCSpan completes a distributed tracing span with the call outcome.
func FinishRPCSpan(
	tracingCollector TracingCollector,
	span SpanContext,
	status string,
	duration time.Duration,
	err error,
) {
	if tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrCode:       CodeName(err),
		LogAttrDurationMS: formatDurationMS(duration),
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	tracingCollector.FinishSpan(span, status, attrs)
}

// LogRPCStart logs the beginning of a call.
func LogRPCStart(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	method string,
) {
	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, LogMsgRPCStarted, LogAttrMethod, method)
	} else if logger != nil {
		logger.Info(LogMsgRPCStarted, LogAttrMethod, method)
	}
}

// LogRPCSuccess logs a successful call. For unary calls sent is -1 and is left out.
func LogRPCSuccess(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	method string,
	duration time.Duration,
	sent int,
) {
	args := []any{
		LogAttrMethod, method,
		LogAttrDurationMS, ToMilliseconds(duration),
	}

	if sent >= 0 {
		args = append(args, LogAttrMessagesSent, sent)
	}

	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, LogMsgRPCCompleted, args...)
	} else if logger != nil {
		logger.Info(LogMsgRPCCompleted, args...)
	}
}

// LogRPCError logs a failed call. Expected outcomes (not found, conflict, denied, canceled)
// go to the info level, everything else to the error level.
func LogRPCError(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	method string,
	duration time.Duration,
	err error,
) {
	args := []any{
		LogAttrMethod, method,
		LogAttrCode, CodeName(err),
		LogAttrDurationMS, ToMilliseconds(duration),
		LogAttrError, err.Error(),
	}

	if IsExpectedOutcome(err) {
		if contextualLogger != nil {
			contextualLogger.InfoContext(ctx, LogMsgRPCFailed, args...)
		} else if logger != nil {
			logger.Info(LogMsgRPCFailed, args...)
		}

		return
	}

	if contextualLogger != nil {
		contextualLogger.ErrorContext(ctx, LogMsgRPCFailed, args...)
	} else if logger != nil {
		logger.Error(LogMsgRPCFailed, args...)
	}
}

// IsExpectedOutcome reports whether err is a regular answer of the service rather than a malfunction.
func IsExpectedOutcome(err error) bool {
	switch status.Code(err) {
	case codes.NotFound, codes.AlreadyExists, codes.PermissionDenied, codes.Canceled, codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// formatDurationMS formats duration in milliseconds for span attributes.
func formatDurationMS(duration time.Duration) string {
	return fmt.Sprintf("%.2f", ToMilliseconds(duration))
}

// IsCancellationError checks if an error is due to context cancellation.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled) || status.Code(err) == codes.Canceled
}

// IsTimeoutError checks if an error is due to context deadline exceeded.
func IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || status.Code(err) == codes.DeadlineExceeded
}
