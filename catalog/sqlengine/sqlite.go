package sqlengine

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteDriverName is the database/sql driver to open SQLite databases with.
// It is go-sqlite3 with lower() replaced by Unicode lowercasing, so Search folds
// "Été" to "été" in SQL exactly as it folds the query in Go. The stock "sqlite3"
// driver only lowercases ASCII.
const SQLiteDriverName = "sqlite3_library"

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{ConnectHook: registerSQLiteFunctions})
}

func registerSQLiteFunctions(conn *sqlite3.SQLiteConn) error {
	return conn.RegisterFunc("lower", strings.ToLower, true)
}
