package oteladapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

// SlogBridgeLogger implements catalog.ContextualLogger using the OpenTelemetry slog bridge.
// Records carry the trace and span ids found in the context.
type SlogBridgeLogger struct {
	logger *slog.Logger
}

// NewSlogBridgeLogger creates a contextual logger that emits through the OpenTelemetry LoggerProvider
// given with otelslog.WithLoggerProvider, or through the global one.
// A non-nil local handler receives every record as well, e.g. a JSON handler on stderr.
func NewSlogBridgeLogger(name string, local slog.Handler, options ...otelslog.Option) *SlogBridgeLogger {
	var handler slog.Handler = otelslog.NewHandler(name, options...)
	if local != nil {
		handler = fanoutHandler{handler, local}
	}

	return &SlogBridgeLogger{logger: slog.New(handler)}
}

// DebugContext logs a debug message with context.
func (l *SlogBridgeLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

// InfoContext logs an info message with context.
func (l *SlogBridgeLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

// WarnContext logs a warning message with context.
func (l *SlogBridgeLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

// ErrorContext logs an error message with context.
func (l *SlogBridgeLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

var _ catalog.ContextualLogger = (*SlogBridgeLogger)(nil)
