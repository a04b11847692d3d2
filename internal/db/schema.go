package db

// SchemaSQL is the complete schema for fresh todo installs.
//
// # Schema Drift Protection
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(), which keeps test databases from drifting
// away from what InitSchema creates in production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use GetSchemaSQL()
// through the shared test setup helpers instead.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL CHECK(length(trim(description)) > 0),
    status TEXT NOT NULL CHECK(status IN ('pending', 'completed')),
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    completed_at DATETIME,
    CONSTRAINT valid_completion CHECK (
        (status = 'pending' AND completed_at IS NULL) OR
        (status = 'completed' AND completed_at IS NOT NULL)
    )
);

CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);

CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at);

CREATE INDEX IF NOT EXISTS idx_tasks_completed_at ON tasks(completed_at)
    WHERE completed_at IS NOT NULL;
`

// GetSchemaSQL returns the authoritative schema for tests and tooling.
func GetSchemaSQL() string {
	return SchemaSQL
}
