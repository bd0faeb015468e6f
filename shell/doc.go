// Package shell holds the infrastructure concerns around the request handlers of the
// library administration service: per-call metrics, tracing spans and logs.
//
// The helpers work against the dependency-free observability interfaces of the catalog
// package, so any backend (OpenTelemetry, test spies) can be plugged in. All collectors
// are optional; a nil collector turns the corresponding helper into a no-op.
//
// Sub-packages:
//   - config: server configuration, database connection factories and OpenTelemetry providers
package shell
