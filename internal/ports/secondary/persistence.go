// Package secondary defines the driven ports (repository interfaces)
// implemented by the persistence adapters.
package secondary

import "context"

// TaskRecord represents a task as stored in persistence.
// Timestamps are RFC3339 strings; empty string means null.
type TaskRecord struct {
	ID          int64
	Description string
	Status      string
	CreatedAt   string
	CompletedAt string // Empty string means null (task still pending)
}

// TaskFilters contains filter options for querying tasks.
type TaskFilters struct {
	Status string // "" means all statuses
}

// TaskCounts holds per-status task totals.
type TaskCounts struct {
	Pending   int
	Completed int
}

// TaskRepository defines the persistence operations for tasks.
//
// Absence is a normal outcome, not an error: GetByID returns (nil, nil)
// for an unknown id, and MarkCompleted/Delete return (false, nil) when
// no row matched. Errors are reserved for storage failures.
type TaskRepository interface {
	// Create persists a new pending task and returns the stored record
	// with its assigned id and creation timestamp.
	Create(ctx context.Context, description string) (*TaskRecord, error)

	// GetByID retrieves a task by its id, or (nil, nil) if absent.
	GetByID(ctx context.Context, id int64) (*TaskRecord, error)

	// List retrieves tasks matching the given filters, newest first:
	// completed tasks by completion time, everything else by creation time.
	List(ctx context.Context, filters TaskFilters) ([]*TaskRecord, error)

	// MarkCompleted transitions a pending task to completed. Returns
	// false when the id does not exist or the task is already completed.
	MarkCompleted(ctx context.Context, id int64) (bool, error)

	// Delete permanently removes a task. Returns false when the id does
	// not exist.
	Delete(ctx context.Context, id int64) (bool, error)

	// CountByStatus returns pending and completed totals.
	CountByStatus(ctx context.Context) (*TaskCounts, error)
}
