// Package db holds the SQLite-backed caches: workshop metadata and the last
// scan, so the tool has something to show before (or without) a rescan.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB is the open database handle.
type DB struct {
	*sql.DB
}

// New opens (or creates) the database at path and brings the schema up to
// date.
func New(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL keeps readers unblocked during cache writes; the busy timeout
	// covers a second lom process touching the same file.
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL; PRAGMA busy_timeout = 5000;"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("setting pragmas: %w", err)
	}

	database := &DB{DB: sqlDB}

	if err := database.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return database, nil
}
