// Package catalog provides the core types and abstractions of the library administration
// service: books, staff accounts and clients (library patrons).
//
// This package defines the entities, the repository interfaces the request handlers
// depend on, the sentinel errors that classify failures at the service boundary,
// and the authorization predicates for staff accounts.
//
// Storage implementations live in sub-packages:
//   - sqlengine: relational storage (PostgreSQL via pgx, database/sql or sqlx; SQLite)
//   - memstore: in-memory storage for tests and local runs
//
// Key types:
//   - Book, StaffAccount, Client: plain data records
//   - BookRepository, StaffAccountRepository, ClientRepository: persistence contracts
//   - Seq: a lazy, finite, non-restartable sequence of records pulled from a cursor
//
// Common usage pattern:
//
//	book := catalog.BuildBook(id, "Dune", "Frank Herbert", "9780441013593", 3, "")
//	if err := books.Create(ctx, book); errors.Is(err, catalog.ErrConflict) {
//		// ISBN already taken
//	}
//
//	for book, err := range books.Search(ctx, "dune") {
//		if err != nil {
//			// the cursor failed mid-stream
//		}
//		// use book
//	}
package catalog
