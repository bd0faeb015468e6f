// Package storewrapper opens a migrated sqlengine.Store for tests on the adapter chosen by environment.
package storewrapper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-admin-rpc/catalog/sqlengine"
	"github.com/AntonStoeckl/library-admin-rpc/shell/config"
)

// Environment variables selecting the adapter under test.
const (
	EnvAdapter     = "LIBRARY_TEST_ADAPTER"
	EnvPostgresDSN = "LIBRARY_TEST_POSTGRES_DSN"
)

// Adapter type constants
const (
	typeSQLite     = "sqlite"
	typeSQLiteSQLX = "sqlite-sqlx"
	typePGXPool    = "pgxpool"
	typeSQLDB      = "sqldb"
	typeSQLX       = "sqlx"
)

var cleanUpTables = []string{"books", "staff_accounts", "clients"}

// Wrapper abstracts over the connection types a Store can run on.
type Wrapper interface {
	GetStore() *sqlengine.Store
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing.
type PGXPoolWrapper struct {
	pool  *pgxpool.Pool
	store *sqlengine.Store
}

// GetStore returns the wrapped store.
func (w *PGXPoolWrapper) GetStore() *sqlengine.Store {
	return w.store
}

// Close closes the pool.
func (w *PGXPoolWrapper) Close() {
	w.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing, for Postgres or SQLite.
type SQLDBWrapper struct {
	db    *sql.DB
	store *sqlengine.Store
}

// GetStore returns the wrapped store.
func (w *SQLDBWrapper) GetStore() *sqlengine.Store {
	return w.store
}

// Close closes the database.
func (w *SQLDBWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// SQLXWrapper wraps sqlx.DB-based testing, for Postgres or SQLite.
type SQLXWrapper struct {
	db    *sqlx.DB
	store *sqlengine.Store
}

// GetStore returns the wrapped store.
func (w *SQLXWrapper) GetStore() *sqlengine.Store {
	return w.store
}

// Close closes the database.
func (w *SQLXWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// CreateWrapperWithTestConfig creates the wrapper named by LIBRARY_TEST_ADAPTER and migrates its schema.
// SQLite in a fresh temp dir is the default; the Postgres adapters skip the test unless
// LIBRARY_TEST_POSTGRES_DSN is set.
func CreateWrapperWithTestConfig(t testing.TB, options ...sqlengine.Option) Wrapper {
	t.Helper()

	ctx := context.Background()
	adapterType := strings.ToLower(os.Getenv(EnvAdapter))

	var wrapper Wrapper

	switch adapterType {
	case typeSQLite, "":
		db, err := config.SQLiteDB(ctx, filepath.Join(t.TempDir(), "library.db"))
		require.NoError(t, err, "error opening sqlite database in test setup")

		store, err := sqlengine.NewStoreFromSQLDB(db, append(options, sqlengine.WithDialect(sqlengine.DialectSQLite))...)
		require.NoError(t, err, "error creating store in test setup")

		wrapper = &SQLDBWrapper{db: db, store: store}

	case typeSQLiteSQLX:
		db, err := config.SQLiteDB(ctx, filepath.Join(t.TempDir(), "library.db"))
		require.NoError(t, err, "error opening sqlite database in test setup")

		sqlxDB := sqlx.NewDb(db, sqlengine.DialectSQLite)
		store, err := sqlengine.NewStoreFromSQLX(sqlxDB, options...)
		require.NoError(t, err, "error creating store in test setup")

		wrapper = &SQLXWrapper{db: sqlxDB, store: store}

	case typePGXPool:
		pool, err := config.PostgresPGXPool(ctx, postgresDSN(t))
		require.NoError(t, err, "error connecting to DB pool in test setup")

		store, err := sqlengine.NewStoreFromPGXPool(pool, options...)
		require.NoError(t, err, "error creating store in test setup")

		wrapper = &PGXPoolWrapper{pool: pool, store: store}

	case typeSQLDB:
		db, err := config.PostgresSQLDB(ctx, postgresDSN(t))
		require.NoError(t, err, "error connecting to DB in test setup")

		store, err := sqlengine.NewStoreFromSQLDB(db, options...)
		require.NoError(t, err, "error creating store in test setup")

		wrapper = &SQLDBWrapper{db: db, store: store}

	case typeSQLX:
		db, err := config.PostgresSQLX(ctx, postgresDSN(t))
		require.NoError(t, err, "error connecting to DB in test setup")

		store, err := sqlengine.NewStoreFromSQLX(db, options...)
		require.NoError(t, err, "error creating store in test setup")

		wrapper = &SQLXWrapper{db: db, store: store}

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", adapterType))
	}

	require.NoError(t, wrapper.GetStore().Migrate(ctx), "error migrating schema in test setup")

	return wrapper
}

func postgresDSN(t testing.TB) string {
	t.Helper()

	dsn := os.Getenv(EnvPostgresDSN)
	if dsn == "" {
		t.Skipf("%s is not set", EnvPostgresDSN)
	}

	return dsn
}

// CleanUp deletes all rows from the catalog tables for the given wrapper.
// Only needed for shared Postgres databases; every SQLite wrapper has its own file.
func CleanUp(t testing.TB, wrapper Wrapper) {
	for _, table := range cleanUpTables {
		query := fmt.Sprintf("DELETE FROM %q", table)

		var err error

		switch w := wrapper.(type) {
		case *PGXPoolWrapper:
			_, err = w.pool.Exec(context.Background(), query)

		case *SQLDBWrapper:
			_, err = w.db.Exec(query)

		case *SQLXWrapper:
			_, err = w.db.Exec(query)

		default:
			panic(fmt.Sprintf("unsupported wrapper type: %T", w))
		}

		assert.NoError(t, err, "error cleaning up the %s table", table)
	}
}
