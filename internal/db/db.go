// Package db provides the SQLite connection factory and schema setup.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// pragmas applied to every new connection. busy_timeout makes a second
// handle on the same file retry for up to 5s on lock contention instead
// of failing immediately.
var pragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
}

// Open returns a live handle to the database file at path, creating
// parent directories if missing. Pass ":memory:" for an in-memory
// database (used by tests).
//
// Open is a stateless factory: it holds no package-level connection.
// Callers own the handle and decide its lifetime; internal/wire opens
// one handle for the life of the process.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	return conn, nil
}

// InitSchema creates the tasks table and its indexes if they do not
// already exist. Safe to call on every process start.
func InitSchema(conn *sql.DB) error {
	if _, err := conn.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
