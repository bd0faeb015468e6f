package sqlengine

import (
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/catalog/sqlengine/internal/adapters"
)

// Supported SQL dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

const (
	defaultBooksTable         = "books"
	defaultStaffAccountsTable = "staff_accounts"
	defaultClientsTable       = "clients"
)

var (
	// ErrUnsupportedDialect is returned when a dialect other than postgres or sqlite3 is configured.
	ErrUnsupportedDialect = errors.New("unsupported sql dialect")

	// ErrEmptyTablePrefix is returned when an empty prefix is provided to WithTablePrefix.
	ErrEmptyTablePrefix = errors.New("table prefix must not be empty")
)

type tableNames struct {
	books         string
	staffAccounts string
	clients       string
}

// Store is the relational implementation of the catalog repositories.
// It builds its statements with goqu for the configured dialect and executes them through
// a database adapter, so pgxpool.Pool, sql.DB and sqlx.DB connections are all supported.
type Store struct {
	db               adapters.DBAdapter
	dialectName      string
	dialect          goqu.DialectWrapper
	tables           tableNames
	retryOptions     []RetryOption
	logger           catalog.Logger
	contextualLogger catalog.ContextualLogger
	metricsCollector catalog.MetricsCollector
	tracingCollector catalog.TracingCollector
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*Store, error) {
	if db == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), DialectPostgres, options...)
}

// NewStoreFromPGXPoolWithReplica creates a new Store using a primary pgx Pool and a replica pool.
// Reads run on the replica only when the context carries catalog.WithEventualConsistency.
func NewStoreFromPGXPoolWithReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*Store, error) {
	if db == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	if replica == nil {
		return newStore(adapters.NewPGXAdapter(db), DialectPostgres, options...)
	}

	return newStore(adapters.NewPGXAdapterWithReplica(db, replica), DialectPostgres, options...)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
// The dialect defaults to postgres; use WithDialect(DialectSQLite) for a SQLite database.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), DialectPostgres, options...)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
// The dialect is derived from the driver name the sqlx.DB was opened with.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	adapter := adapters.NewSQLXAdapter(db)

	dialectName := DialectPostgres
	if adapter.DriverName() == DialectSQLite {
		dialectName = DialectSQLite
	}

	return newStore(adapter, dialectName, options...)
}

func newStore(db adapters.DBAdapter, dialectName string, options ...Option) (*Store, error) {
	s := &Store{
		db:          db,
		dialectName: dialectName,
		tables: tableNames{
			books:         defaultBooksTable,
			staffAccounts: defaultStaffAccountsTable,
			clients:       defaultClientsTable,
		},
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	s.dialect = goqu.Dialect(s.dialectName)

	return s, nil
}

// Books returns the book repository backed by this store.
func (s *Store) Books() *Books {
	return &Books{store: s}
}

// StaffAccounts returns the staff account repository backed by this store.
func (s *Store) StaffAccounts() *StaffAccounts {
	return &StaffAccounts{store: s}
}

// Clients returns the client repository backed by this store.
func (s *Store) Clients() *Clients {
	return &Clients{store: s}
}

// Dialect returns the name of the SQL dialect the store generates statements for.
func (s *Store) Dialect() string {
	return s.dialectName
}
