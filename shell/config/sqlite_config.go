package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AntonStoeckl/library-admin-rpc/catalog/sqlengine"
)

// SQLiteDSN returns the go-sqlite3 DSN for a database file: WAL journal, foreign keys on,
// and a busy timeout so concurrent writers wait instead of failing.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1&_journal_mode=WAL", path)
}

// SQLiteDB opens and pings a *sql.DB for the SQLite database file at path.
// It uses sqlengine.SQLiteDriverName so that case-insensitive search covers non-ASCII letters.
func SQLiteDB(ctx context.Context, path string) (*sql.DB, error) {
	const defaultMaxOpenConnections = 4
	const defaultMaxIdleConnections = 4
	const defaultMaxConnLifetime = time.Hour

	db, err := sql.Open(sqlengine.SQLiteDriverName, SQLiteDSN(path))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(defaultMaxOpenConnections)
	db.SetMaxIdleConns(defaultMaxIdleConnections)
	db.SetConnMaxLifetime(defaultMaxConnLifetime)

	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		return nil, pingErr
	}

	return db, nil
}
