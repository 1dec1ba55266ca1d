package database

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqliteDriverName = "sqlite3_explorer"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// Built-in lower() only folds ASCII.
			return conn.RegisterFunc("lower", unicodeLower, true)
		},
	})
}

func unicodeLower(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		return strings.ToLower(v)
	case []byte:
		return strings.ToLower(string(v))
	default:
		return v
	}
}

// SqliteDialector opens path with foreign keys on and a Unicode-aware
// lower() so name searches fold non-ASCII letters like postgres does.
func SqliteDialector(path string) gorm.Dialector {
	return sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: SqliteDSN(path)})
}
