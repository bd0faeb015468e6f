package sqlengine

import "github.com/AntonStoeckl/library-admin-rpc/catalog"

// Option defines a functional option for configuring Store.
type Option func(*Store) error

// WithDialect sets the SQL dialect the store generates statements for.
// Only needed for sql.DB connections to a SQLite database.
func WithDialect(dialect string) Option {
	return func(s *Store) error {
		if dialect != DialectPostgres && dialect != DialectSQLite {
			return ErrUnsupportedDialect
		}

		s.dialectName = dialect

		return nil
	}
}

// WithTablePrefix prefixes all table names, e.g. "lib_" yields "lib_books".
func WithTablePrefix(prefix string) Option {
	return func(s *Store) error {
		if prefix == "" {
			return ErrEmptyTablePrefix
		}

		s.tables = tableNames{
			books:         prefix + defaultBooksTable,
			staffAccounts: prefix + defaultStaffAccountsTable,
			clients:       prefix + defaultClientsTable,
		}

		return nil
	}
}

// WithRetry configures how transient database errors are retried.
// The options are validated when the store is created.
func WithRetry(options ...RetryOption) Option {
	return func(s *Store) error {
		if _, err := buildRetryConfig(options...); err != nil {
			return err
		}

		s.retryOptions = options

		return nil
	}
}

// WithLogger sets the logger for the Store.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL statements with execution timing (development use)
// Info level: Operation results with row counts and durations (production-safe)
// Warn level: Non-critical issues like cleanup failures and retried statements
// Error level: Failures that cause an operation to fail.
func WithLogger(logger catalog.Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Store.
// Log messages then carry trace and span correlation when tracing is enabled.
func WithContextualLogger(logger catalog.ContextualLogger) Option {
	return func(s *Store) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Store.
// It receives operation durations, returned row counts, database errors and retries.
func WithMetrics(collector catalog.MetricsCollector) Option {
	return func(s *Store) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Store.
// Every repository operation gets its own span.
func WithTracing(collector catalog.TracingCollector) Option {
	return func(s *Store) error {
		s.tracingCollector = collector
		return nil
	}
}
