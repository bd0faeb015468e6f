// Package adapters provide database adapter implementations for the SQL catalog store.
//
// This package implements the adapter pattern to support multiple database libraries:
// pgxpool.Pool, sql.DB, and sqlx.DB. All adapters provide equivalent functionality through
// a common DBAdapter interface, so the store works with any supported connection type,
// for Postgres as well as for SQLite.
//
// The adapters take positional arguments, so every statement is sent as a prepared statement.
package adapters
