// Package sqlengine provides the relational implementation of the catalog repositories.
//
// Statements are built with goqu for either the postgres or the sqlite3 dialect and sent as
// prepared statements through one of three database adapters (pgx, sql.DB, sqlx).
//
// Key features:
//   - Unique constraints on isbn and username decide conflicts, no read-then-write checks
//   - Conditional delete that never removes a superuser
//   - Lazy cursors: listing and search operations return catalog.Seq and stream rows
//   - Optional read replica for eventually consistent reads (pgx only)
//   - Retries with exponential backoff for transient errors (serialization failures, SQLITE_BUSY)
//   - Dependency-free logging, metrics and tracing hooks
//
// Usage examples:
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	store, _ := sqlengine.NewStoreFromPGXPool(pool, sqlengine.WithLogger(logger))
//	_ = store.Migrate(ctx)
//
//	db, _ := sql.Open(sqlengine.SQLiteDriverName, "file:library.db?_busy_timeout=5000&_foreign_keys=1")
//	store, _ := sqlengine.NewStoreFromSQLDB(db, sqlengine.WithDialect(sqlengine.DialectSQLite))
//
//	for book, err := range store.Books().Search(ctx, "dune") {
//		if err != nil {
//			return err
//		}
//		fmt.Println(book.Title)
//	}
package sqlengine
