package shell_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AntonStoeckl/library-admin-rpc/shell"
	"github.com/AntonStoeckl/library-admin-rpc/testutil/helper"
)

func Test_StatusFromError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: shell.StatusSuccess},
		{name: "context canceled", err: context.Canceled, expected: shell.StatusCanceled},
		{name: "wrapped context canceled", err: fmt.Errorf("search: %w", context.Canceled), expected: shell.StatusCanceled},
		{name: "canceled status", err: status.Error(codes.Canceled, "gone"), expected: shell.StatusCanceled},
		{name: "deadline", err: context.DeadlineExceeded, expected: shell.StatusTimeout},
		{name: "deadline status", err: status.Error(codes.DeadlineExceeded, "slow"), expected: shell.StatusTimeout},
		{name: "not found status", err: status.Error(codes.NotFound, "book not found"), expected: shell.StatusError},
		{name: "plain error", err: errors.New("boom"), expected: shell.StatusError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, shell.StatusFromError(tc.err))
		})
	}
}

func Test_IsExpectedOutcome(t *testing.T) {
	assert.True(t, shell.IsExpectedOutcome(status.Error(codes.NotFound, "x")))
	assert.True(t, shell.IsExpectedOutcome(status.Error(codes.AlreadyExists, "x")))
	assert.True(t, shell.IsExpectedOutcome(status.Error(codes.PermissionDenied, "x")))
	assert.True(t, shell.IsExpectedOutcome(status.Error(codes.Canceled, "x")))
	assert.False(t, shell.IsExpectedOutcome(status.Error(codes.Internal, "x")))
	assert.False(t, shell.IsExpectedOutcome(errors.New("boom")))
}

func Test_RecordRPCMetrics_BasicCollector(t *testing.T) {
	// arrange
	collector := helper.NewMetricsCollectorSpy(true)

	// act
	shell.RecordRPCMetrics(context.Background(), collector, "GetBook", shell.StatusCanceled, "Canceled", 5*time.Millisecond)

	// assert
	assert.True(t, collector.HasCounterRecordForMetric(shell.RPCHandleCallsMetric).
		WithLabel(shell.LogAttrMethod, "GetBook").
		WithStatus(shell.StatusCanceled).
		WithLabel(shell.LogAttrCode, "Canceled").
		Assert())
	assert.True(t, collector.HasDurationRecordForMetric(shell.RPCHandleDurationMetric).WithStatus(shell.StatusCanceled).Assert())
	assert.True(t, collector.HasCounterRecordForMetric(shell.RPCCanceledMetric).Assert())
	assert.False(t, collector.HasCounterRecordForMetric(shell.RPCTimeoutMetric).Assert())
}

func Test_RecordRPCMetrics_ContextualCollector(t *testing.T) {
	// arrange
	collector := helper.NewContextualMetricsCollectorSpy(true)

	// act
	shell.RecordRPCMetrics(context.Background(), collector, "SearchBooks", shell.StatusTimeout, "DeadlineExceeded", time.Millisecond)
	shell.RecordStreamMessages(context.Background(), collector, "SearchBooks", 3)

	// assert
	assert.Equal(t, 4, collector.GetContextualCallCount())
	assert.True(t, collector.HasCounterRecordForMetric(shell.RPCTimeoutMetric).Assert())
	assert.True(t, collector.HasValueRecordForMetric(shell.RPCStreamMessagesMetric).WithLabel(shell.LogAttrMethod, "SearchBooks").Assert())
}

func Test_RecordRPCMetrics_NilCollector(t *testing.T) {
	assert.NotPanics(t, func() {
		shell.RecordRPCMetrics(context.Background(), nil, "GetBook", shell.StatusSuccess, "OK", time.Millisecond)
		shell.RecordStreamMessages(context.Background(), nil, "SearchBooks", 1)
		shell.RecordWorkerWait(context.Background(), nil, "GetBook", time.Millisecond, false)
	})
}

func Test_RecordWorkerWait(t *testing.T) {
	// arrange
	collector := helper.NewMetricsCollectorSpy(true)

	// act
	shell.RecordWorkerWait(context.Background(), collector, "GetBook", time.Millisecond, true)
	shell.RecordWorkerWait(context.Background(), collector, "GetBook", 2*time.Millisecond, false)

	// assert
	assert.Equal(t, 2, collector.HasDurationRecordForMetric(shell.RPCWorkerWaitMetric).Count())
	assert.Equal(t, 1, collector.HasCounterRecordForMetric(shell.RPCWorkersBusyMetric).Count())
}

func Test_RPCSpan(t *testing.T) {
	// setup
	tracing := helper.NewTracingCollectorSpy(true)

	// act
	ctx, span := shell.StartRPCSpan(context.Background(), tracing, "DeleteUser")
	shell.FinishRPCSpan(tracing, span, shell.StatusError, time.Millisecond, status.Error(codes.PermissionDenied, "superuser accounts cannot be deleted"))

	// assert
	assert.NotNil(t, ctx)
	assert.True(t, tracing.HasSpanRecordForName(shell.SpanNameRPCHandle).
		WithStartAttribute(shell.LogAttrMethod, "DeleteUser").
		WithStatus(shell.StatusError).
		WithEndAttribute(shell.LogAttrCode, "PermissionDenied").
		Assert())
}

func Test_RPCSpan_WithoutTracing(t *testing.T) {
	ctx := context.Background()

	spanCtx, span := shell.StartRPCSpan(ctx, nil, "GetBook")

	assert.Equal(t, ctx, spanCtx)
	assert.Nil(t, span)
	assert.NotPanics(t, func() { shell.FinishRPCSpan(nil, span, shell.StatusSuccess, time.Millisecond, nil) })
}

func Test_LogRPC_ContextualLogger(t *testing.T) {
	// setup
	ctx := context.Background()
	logger := helper.NewContextualLoggerSpy(true)

	// act
	shell.LogRPCStart(ctx, nil, logger, "GetBook")
	shell.LogRPCSuccess(ctx, nil, logger, "GetBook", time.Millisecond, -1)
	shell.LogRPCError(ctx, nil, logger, "GetBook", time.Millisecond, status.Error(codes.NotFound, "book not found"))
	shell.LogRPCError(ctx, nil, logger, "GetBook", time.Millisecond, status.Error(codes.Internal, "boom"))

	// assert
	assert.True(t, logger.HasRecord("info", shell.LogMsgRPCStarted))
	assert.True(t, logger.HasRecord("info", shell.LogMsgRPCCompleted))
	assert.Equal(t, 3, logger.CountRecords("info"), "not found is an expected outcome")
	assert.Equal(t, 1, logger.CountRecords("error"))
}

func Test_LogRPC_BasicLogger(t *testing.T) {
	// setup
	ctx := context.Background()
	handler := helper.NewLogHandlerSpy(false)
	logger := slog.New(handler)

	// act
	shell.LogRPCSuccess(ctx, logger, nil, "SearchBooks", 3*time.Millisecond, 2)
	shell.LogRPCError(ctx, logger, nil, "CreateBook", time.Millisecond, status.Error(codes.Internal, "boom"))

	// assert
	assert.True(t, handler.HasInfoLogWithMessage(shell.LogMsgRPCCompleted).
		WithStringAttr(shell.LogAttrMethod, "SearchBooks").
		WithDurationMS().
		Assert())
	assert.True(t, handler.HasErrorLogWithMessage(shell.LogMsgRPCFailed).
		WithStringAttr(shell.LogAttrCode, "Internal").
		Assert())
}
