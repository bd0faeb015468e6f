// Package config holds the server configuration and the factories that turn it into
// database connections, repositories and OpenTelemetry providers.
package config
