package sqlengine_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/catalog/sqlengine"
	"github.com/AntonStoeckl/library-admin-rpc/shell/config"
	"github.com/AntonStoeckl/library-admin-rpc/testutil/helper"
	"github.com/AntonStoeckl/library-admin-rpc/testutil/helper/storewrapper"
	"github.com/AntonStoeckl/library-admin-rpc/testutil/repotest"
)

func newTestStore(t *testing.T, options ...sqlengine.Option) *sqlengine.Store {
	t.Helper()

	wrapper := storewrapper.CreateWrapperWithTestConfig(t, options...)
	t.Cleanup(wrapper.Close)
	storewrapper.CleanUp(t, wrapper)

	return wrapper.GetStore()
}

func Test_Books(t *testing.T) {
	repotest.RunBookRepositoryTests(t, func(t *testing.T) catalog.BookRepository {
		return newTestStore(t).Books()
	})
}

func Test_StaffAccounts(t *testing.T) {
	repotest.RunStaffAccountRepositoryTests(t, func(t *testing.T) catalog.StaffAccountRepository {
		return newTestStore(t).StaffAccounts()
	})
}

func Test_Clients(t *testing.T) {
	repotest.RunClientRepositoryTests(t, func(t *testing.T) catalog.ClientRepository {
		return newTestStore(t).Clients()
	})
}

func Test_FactoryFunctions_ShouldFail_WithNilDatabaseConnection(t *testing.T) {
	_, err := sqlengine.NewStoreFromPGXPool(nil)
	assert.ErrorIs(t, err, catalog.ErrNilDatabaseConnection)

	_, err = sqlengine.NewStoreFromPGXPoolWithReplica(nil, nil)
	assert.ErrorIs(t, err, catalog.ErrNilDatabaseConnection)

	_, err = sqlengine.NewStoreFromSQLDB(nil)
	assert.ErrorIs(t, err, catalog.ErrNilDatabaseConnection)

	_, err = sqlengine.NewStoreFromSQLX(nil)
	assert.ErrorIs(t, err, catalog.ErrNilDatabaseConnection)
}

func Test_FactoryFunctions_ShouldFail_WithInvalidOptions(t *testing.T) {
	db := givenSQLiteDB(t)

	_, err := sqlengine.NewStoreFromSQLDB(db, sqlengine.WithDialect("mysql"))
	assert.ErrorIs(t, err, sqlengine.ErrUnsupportedDialect)

	_, err = sqlengine.NewStoreFromSQLDB(db, sqlengine.WithTablePrefix(""))
	assert.ErrorIs(t, err, sqlengine.ErrEmptyTablePrefix)

	_, err = sqlengine.NewStoreFromSQLDB(db, sqlengine.WithRetry(sqlengine.WithJitterFactor(2)))
	assert.ErrorIs(t, err, sqlengine.ErrInvalidJitterFactor)
}

func Test_FactoryFunctions_DialectDefaults(t *testing.T) {
	db := givenSQLiteDB(t)

	fromSQLDB, err := sqlengine.NewStoreFromSQLDB(db)
	require.NoError(t, err)
	assert.Equal(t, sqlengine.DialectPostgres, fromSQLDB.Dialect())

	fromSQLX, err := sqlengine.NewStoreFromSQLX(sqlx.NewDb(db, "sqlite3"))
	require.NoError(t, err)
	assert.Equal(t, sqlengine.DialectSQLite, fromSQLX.Dialect())

	explicit, err := sqlengine.NewStoreFromSQLDB(db, sqlengine.WithDialect(sqlengine.DialectSQLite))
	require.NoError(t, err)
	assert.Equal(t, sqlengine.DialectSQLite, explicit.Dialect())
}

func Test_Store_WithTablePrefix_UsesPrefixedTables(t *testing.T) {
	// setup
	ctx := context.Background()
	db := givenSQLiteDB(t)

	prefixed, err := sqlengine.NewStoreFromSQLDB(db,
		sqlengine.WithDialect(sqlengine.DialectSQLite),
		sqlengine.WithTablePrefix("branch_a_"),
	)
	require.NoError(t, err)
	require.NoError(t, prefixed.Migrate(ctx))

	unprefixed, err := sqlengine.NewStoreFromSQLDB(db, sqlengine.WithDialect(sqlengine.DialectSQLite))
	require.NoError(t, err)
	require.NoError(t, unprefixed.Migrate(ctx))

	// arrange
	book := helper.GivenBookWasCreated(t, ctx, prefixed.Books(),
		helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 3))

	// act
	_, inOtherTables := unprefixed.Books().Get(ctx, book.ID)
	found, inPrefixedTables := prefixed.Books().Get(ctx, book.ID)

	// assert
	assert.ErrorIs(t, inOtherTables, catalog.ErrNotFound)
	require.NoError(t, inPrefixedTables)
	assert.Equal(t, book, found)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM "branch_a_books"`).Scan(&count))
	assert.Equal(t, 1, count)
}

func Test_Store_WithoutSchema_FailsWithInternalError(t *testing.T) {
	// setup
	store, err := sqlengine.NewStoreFromSQLDB(givenSQLiteDB(t), sqlengine.WithDialect(sqlengine.DialectSQLite))
	require.NoError(t, err)

	// act
	_, err = store.Books().Get(context.Background(), helper.GivenUniqueID(t))

	// assert
	assert.ErrorIs(t, err, catalog.ErrInternal)
	assert.NotErrorIs(t, err, catalog.ErrNotFound)
}

func givenSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := config.SQLiteDB(context.Background(), filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err, "error opening sqlite database in test setup")
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func Test_SQLiteDriver_LowersNonASCIILetters(t *testing.T) {
	db := givenSQLiteDB(t)

	var lowered string
	err := db.QueryRowContext(context.Background(), "SELECT lower(?)", "Élise et l'ÉTÉ").Scan(&lowered)

	require.NoError(t, err)
	assert.Equal(t, "élise et l'été", lowered)
}
