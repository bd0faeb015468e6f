package sqlengine

import (
	"context"
	"fmt"
	"time"
)

const operationMigrate = "schema.migrate"

// Migrate creates the catalog tables and their unique indexes if they do not exist yet.
// It is safe to run on every start.
func (s *Store) Migrate(ctx context.Context) error {
	ctx, observer := s.startOperation(ctx, operationMigrate)

	for _, statement := range s.schemaStatements() {
		start := time.Now()
		_, err := s.db.Exec(ctx, statement)
		s.logQueryWithDuration(ctx, statement, operationMigrate, time.Since(start))

		if err != nil {
			err = classifyError(err)
			observer.finishError(err)

			return err
		}
	}

	observer.finishSuccess(0)

	return nil
}

func (s *Store) schemaStatements() []string {
	timestampType := "TIMESTAMPTZ"
	if s.dialectName == DialectSQLite {
		timestampType = "TIMESTAMP"
	}

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %q (
			%q TEXT PRIMARY KEY,
			%q TEXT NOT NULL,
			%q TEXT NOT NULL,
			%q TEXT NOT NULL,
			%q INTEGER NOT NULL,
			%q INTEGER NOT NULL,
			%q TEXT NOT NULL DEFAULT ''
		)`,
			s.tables.books, colID, colTitle, colAuthor, colISBN, colTotalCopies, colAvailableCopies, colImageURL),

		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS %q ON %q (%q)`,
			s.tables.books+"_isbn_key", s.tables.books, colISBN),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %q (
			%q TEXT PRIMARY KEY,
			%q TEXT NOT NULL,
			%q TEXT NOT NULL,
			%q TEXT NOT NULL DEFAULT '',
			%q BOOLEAN NOT NULL DEFAULT TRUE,
			%q BOOLEAN NOT NULL DEFAULT FALSE,
			%q BOOLEAN NOT NULL DEFAULT FALSE,
			%q %s NOT NULL
		)`,
			s.tables.staffAccounts, colID, colUsername, colPasswordHash, colEmail,
			colIsActive, colIsStaff, colIsSuperuser, colDateJoined, timestampType),

		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS %q ON %q (%q)`,
			s.tables.staffAccounts+"_username_key", s.tables.staffAccounts, colUsername),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %q (
			%q TEXT PRIMARY KEY,
			%q TEXT NOT NULL,
			%q TEXT NOT NULL DEFAULT '',
			%q TEXT NOT NULL DEFAULT '',
			%q TEXT NOT NULL DEFAULT '',
			%q %s NOT NULL
		)`,
			s.tables.clients, colID, colNom, colEmail, colTelephone, colAdresse, colDateInscription, timestampType),
	}
}
