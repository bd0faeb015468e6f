package rpcserver

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/AntonStoeckl/library-admin-rpc/shell"
)

// limiter admits a fixed number of calls at a time. A waiting call gives up when its context ends.
type limiter struct {
	slots   *semaphore.Weighted
	metrics shell.MetricsCollector
}

func newLimiter(workers int, metrics shell.MetricsCollector) *limiter {
	return &limiter{slots: semaphore.NewWeighted(int64(workers)), metrics: metrics}
}

func (l *limiter) acquire(ctx context.Context, fullMethod string) error {
	waitStart := time.Now()
	err := l.slots.Acquire(ctx, 1)
	shell.RecordWorkerWait(ctx, l.metrics, methodName(fullMethod), time.Since(waitStart), err == nil)

	if err != nil {
		return status.FromContextError(err).Err()
	}

	return nil
}

func (l *limiter) unary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if err := l.acquire(ctx, info.FullMethod); err != nil {
		return nil, err
	}
	defer l.slots.Release(1)

	return handler(ctx, req)
}

func (l *limiter) stream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if err := l.acquire(ss.Context(), info.FullMethod); err != nil {
		return err
	}
	defer l.slots.Release(1)

	return handler(srv, ss)
}

// observer records metrics, a span and logs for every call.
type observer struct {
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
	metrics          shell.MetricsCollector
	tracing          shell.TracingCollector
}

func (o *observer) unary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	method := methodName(info.FullMethod)
	start := time.Now()
	ctx, span := shell.StartRPCSpan(ctx, o.tracing, method)
	shell.LogRPCStart(ctx, o.logger, o.contextualLogger, method)

	resp, err := handler(ctx, req)

	o.finish(ctx, span, method, time.Since(start), -1, err)

	return resp, err
}

func (o *observer) stream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	method := methodName(info.FullMethod)
	start := time.Now()
	ctx, span := shell.StartRPCSpan(ss.Context(), o.tracing, method)
	shell.LogRPCStart(ctx, o.logger, o.contextualLogger, method)

	observed := &observedStream{ServerStream: ss, ctx: ctx}
	err := handler(srv, observed)

	shell.RecordStreamMessages(ctx, o.metrics, method, observed.sent)
	o.finish(ctx, span, method, time.Since(start), observed.sent, err)

	return err
}

func (o *observer) finish(ctx context.Context, span shell.SpanContext, method string, duration time.Duration, sent int, err error) {
	outcome := shell.StatusFromError(err)
	shell.RecordRPCMetrics(ctx, o.metrics, method, outcome, shell.CodeName(err), duration)
	shell.FinishRPCSpan(o.tracing, span, outcome, duration, err)

	if err != nil {
		shell.LogRPCError(ctx, o.logger, o.contextualLogger, method, duration, err)
		return
	}

	shell.LogRPCSuccess(ctx, o.logger, o.contextualLogger, method, duration, sent)
}

// observedStream carries the span context to the handler and counts sent messages.
type observedStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent int
}

func (s *observedStream) Context() context.Context {
	return s.ctx
}

func (s *observedStream) SendMsg(m any) error {
	if err := s.ServerStream.SendMsg(m); err != nil {
		return err
	}

	s.sent++

	return nil
}

// methodName strips the service prefix from a full method name.
func methodName(fullMethod string) string {
	if i := strings.LastIndex(fullMethod, "/"); i >= 0 {
		return fullMethod[i+1:]
	}

	return fullMethod
}
