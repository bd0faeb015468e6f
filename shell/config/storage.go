package config

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/catalog/memstore"
	"github.com/AntonStoeckl/library-admin-rpc/catalog/sqlengine"
)

// Storage bundles the repositories of one opened storage backend.
type Storage struct {
	Books         catalog.BookRepository
	StaffAccounts catalog.StaffAccountRepository
	Clients       catalog.ClientRepository

	sqlStore *sqlengine.Store
	closers  []func()
}

// OpenStorage connects to the backend named by cfg.Driver.
// The options are applied to relational stores and ignored for the memory driver.
func OpenStorage(ctx context.Context, cfg ServerConfig, options ...sqlengine.Option) (*Storage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case DriverMemory:
		store := memstore.New()

		return &Storage{
			Books:         store.Books(),
			StaffAccounts: store.StaffAccounts(),
			Clients:       store.Clients(),
		}, nil

	case DriverPostgres:
		return openPGXStorage(ctx, cfg, options)

	case DriverPostgresSQL:
		db, err := PostgresSQLDB(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}

		store, err := sqlengine.NewStoreFromSQLDB(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, err
		}

		return newSQLStorage(store, closeDB(db)), nil

	case DriverPostgresSQLX:
		db, err := PostgresSQLX(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}

		store, err := sqlengine.NewStoreFromSQLX(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, err
		}

		return newSQLStorage(store, closeDB(db.DB)), nil

	default: // DriverSQLite, Validate rejected everything else
		return openSQLiteStorage(ctx, cfg, options)
	}
}

func openPGXStorage(ctx context.Context, cfg ServerConfig, options []sqlengine.Option) (*Storage, error) {
	pool, err := PostgresPGXPool(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}

	var replica *pgxpool.Pool
	if cfg.ReplicaDSN != "" {
		replica, err = PostgresPGXPool(ctx, cfg.ReplicaDSN)
		if err != nil {
			pool.Close()
			return nil, err
		}
	}

	store, err := sqlengine.NewStoreFromPGXPoolWithReplica(pool, replica, options...)
	if err != nil {
		pool.Close()
		if replica != nil {
			replica.Close()
		}

		return nil, err
	}

	closers := []func(){pool.Close}
	if replica != nil {
		closers = append(closers, replica.Close)
	}

	return newSQLStorage(store, closers...), nil
}

func openSQLiteStorage(ctx context.Context, cfg ServerConfig, options []sqlengine.Option) (*Storage, error) {
	db, err := SQLiteDB(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}

	store, err := sqlengine.NewStoreFromSQLDB(db, append(options, sqlengine.WithDialect(sqlengine.DialectSQLite))...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newSQLStorage(store, closeDB(db)), nil
}

func newSQLStorage(store *sqlengine.Store, closers ...func()) *Storage {
	return &Storage{
		Books:         store.Books(),
		StaffAccounts: store.StaffAccounts(),
		Clients:       store.Clients(),
		sqlStore:      store,
		closers:       closers,
	}
}

func closeDB(db *sql.DB) func() {
	return func() { _ = db.Close() }
}

// Migrate creates the relational schema. It does nothing for the memory driver.
func (s *Storage) Migrate(ctx context.Context) error {
	if s.sqlStore == nil {
		return nil
	}

	return s.sqlStore.Migrate(ctx)
}

// Close releases all connections held by the storage.
func (s *Storage) Close() {
	for _, closeFn := range s.closers {
		closeFn()
	}
}
