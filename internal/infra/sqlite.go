// README: SQLite handle via the pure-Go modernc driver.
package infra

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

func NewSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
