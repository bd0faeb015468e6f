package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Storage drivers.
const (
	DriverPostgres     = "postgres"
	DriverPostgresSQL  = "postgres-sql"
	DriverPostgresSQLX = "postgres-sqlx"
	DriverSQLite       = "sqlite"
	DriverMemory       = "memory"
)

// Environment variables read by LoadServerConfig.
const (
	EnvListenAddress   = "LIBRARY_LISTEN_ADDRESS"
	EnvWorkers         = "LIBRARY_WORKERS"
	EnvDriver          = "LIBRARY_DRIVER"
	EnvDSN             = "LIBRARY_DSN"
	EnvReplicaDSN      = "LIBRARY_REPLICA_DSN"
	EnvObservability   = "LIBRARY_OBSERVABILITY"
	EnvTraceEndpoint   = "LIBRARY_OTLP_TRACE_ENDPOINT"
	EnvMetricsEndpoint = "LIBRARY_OTLP_METRICS_ENDPOINT"
	EnvLogsEndpoint    = "LIBRARY_OTLP_LOGS_ENDPOINT"
	EnvLogLevel        = "LIBRARY_LOG_LEVEL"
)

const (
	defaultListenAddress   = ":50051"
	defaultWorkers         = 10
	defaultSQLitePath      = "library.db"
	defaultTraceEndpoint   = "localhost:4317"
	defaultMetricsEndpoint = "localhost:4317"
	defaultLogsEndpoint    = "localhost:4317"
	defaultServiceName     = "library-admin-rpc"
	defaultShutdownTimeout = 10 * time.Second
)

var (
	// ErrUnsupportedDriver is returned for a storage driver name that is not known.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// ErrInvalidWorkers is returned when the worker count is below 1.
	ErrInvalidWorkers = errors.New("workers must be at least 1")

	// ErrMissingDSN is returned when a postgres driver is configured without a DSN.
	ErrMissingDSN = errors.New("a DSN is required for the postgres drivers")

	// ErrReplicaNotSupported is returned when a replica DSN is set for a driver other than postgres.
	ErrReplicaNotSupported = errors.New("a replica DSN is only supported by the postgres driver")

	// ErrInvalidEnvValue is returned when an environment variable cannot be parsed.
	ErrInvalidEnvValue = errors.New("invalid environment value")
)

// ServerConfig is everything libraryd needs to serve.
type ServerConfig struct {
	ListenAddress   string
	Workers         int
	Driver          string
	DSN             string
	ReplicaDSN      string
	Observability   bool
	TraceEndpoint   string
	MetricsEndpoint string
	LogsEndpoint    string
	ServiceName     string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// DefaultServerConfig returns a config that serves on :50051 from a local SQLite file.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		ListenAddress:   defaultListenAddress,
		Workers:         defaultWorkers,
		Driver:          DriverSQLite,
		DSN:             defaultSQLitePath,
		TraceEndpoint:   defaultTraceEndpoint,
		MetricsEndpoint: defaultMetricsEndpoint,
		LogsEndpoint:    defaultLogsEndpoint,
		ServiceName:     defaultServiceName,
		LogLevel:        slog.LevelInfo,
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

// LoadServerConfig starts from DefaultServerConfig and applies the LIBRARY_* variables found by lookup.
// Pass os.LookupEnv in production.
func LoadServerConfig(lookup func(string) (string, bool)) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	if v, ok := lookup(EnvListenAddress); ok {
		cfg.ListenAddress = v
	}

	if v, ok := lookup(EnvWorkers); ok {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return ServerConfig{}, errors.Join(ErrInvalidEnvValue, fmt.Errorf("%s: %w", EnvWorkers, err))
		}
		cfg.Workers = workers
	}

	if v, ok := lookup(EnvDriver); ok {
		cfg.Driver = strings.ToLower(v)
		if cfg.Driver == DriverMemory {
			cfg.DSN = ""
		}
	}

	if v, ok := lookup(EnvDSN); ok {
		cfg.DSN = v
	}

	if v, ok := lookup(EnvReplicaDSN); ok {
		cfg.ReplicaDSN = v
	}

	if v, ok := lookup(EnvObservability); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return ServerConfig{}, errors.Join(ErrInvalidEnvValue, fmt.Errorf("%s: %w", EnvObservability, err))
		}
		cfg.Observability = enabled
	}

	if v, ok := lookup(EnvTraceEndpoint); ok {
		cfg.TraceEndpoint = v
	}

	if v, ok := lookup(EnvMetricsEndpoint); ok {
		cfg.MetricsEndpoint = v
	}

	if v, ok := lookup(EnvLogsEndpoint); ok {
		cfg.LogsEndpoint = v
	}

	if v, ok := lookup(EnvLogLevel); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return ServerConfig{}, errors.Join(ErrInvalidEnvValue, fmt.Errorf("%s: %w", EnvLogLevel, err))
		}
	}

	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, err
	}

	return cfg, nil
}

// Validate checks the combination of driver, DSN and worker count.
func (c ServerConfig) Validate() error {
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}

	switch c.Driver {
	case DriverPostgres:
	case DriverPostgresSQL, DriverPostgresSQLX:
		if c.ReplicaDSN != "" {
			return ErrReplicaNotSupported
		}
	case DriverSQLite, DriverMemory:
		if c.ReplicaDSN != "" {
			return ErrReplicaNotSupported
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.Driver)
	}

	if c.DSN == "" {
		return ErrMissingDSN
	}

	return nil
}
