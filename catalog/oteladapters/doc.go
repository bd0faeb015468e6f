// Package oteladapters provides OpenTelemetry implementations of the catalog observability interfaces.
//
// The catalog store and the RPC server only depend on the small Logger, ContextualLogger,
// MetricsCollector and TracingCollector interfaces. The adapters here map them onto the
// OpenTelemetry APIs, so traces, metrics and logs of one request share their trace ids:
//
//	tracer := otel.Tracer("libraryd")
//	meter := otel.Meter("libraryd")
//
//	store, _ := sqlengine.NewStoreFromPGXPool(pool,
//		sqlengine.WithTracing(oteladapters.NewTracingCollector(tracer)),
//		sqlengine.WithMetrics(oteladapters.NewMetricsCollector(meter)),
//		sqlengine.WithContextualLogger(oteladapters.NewSlogBridgeLogger("libraryd", nil)),
//	)
package oteladapters
