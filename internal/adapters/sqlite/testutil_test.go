// Package sqlite_test contains integration tests for the SQLite repository.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests always run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/todo/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedTask inserts a task with explicit timestamps and returns its id.
// Timestamps use SQLite's CURRENT_TIMESTAMP format ("2006-01-02 15:04:05").
// completedAt may be empty for pending tasks.
func seedTask(t *testing.T, testDB *sql.DB, description, status, createdAt, completedAt string) int64 {
	t.Helper()

	var result sql.Result
	var err error
	if completedAt == "" {
		result, err = testDB.Exec(
			"INSERT INTO tasks (description, status, created_at) VALUES (?, ?, ?)",
			description, status, createdAt,
		)
	} else {
		result, err = testDB.Exec(
			"INSERT INTO tasks (description, status, created_at, completed_at) VALUES (?, ?, ?, ?)",
			description, status, createdAt, completedAt,
		)
	}
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get seeded task id: %v", err)
	}
	return id
}
