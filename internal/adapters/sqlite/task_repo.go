// Package sqlite contains the SQLite implementation of the repository
// interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/todo/internal/ports/secondary"
)

// TaskRepository implements secondary.TaskRepository with SQLite.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new SQLite task repository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskSelectCols = "id, description, status, created_at, completed_at"

// scanTask scans a task row into a TaskRecord.
func scanTask(scanner interface {
	Scan(dest ...any) error
}) (*secondary.TaskRecord, error) {
	var (
		createdAt   time.Time
		completedAt sql.NullTime
	)

	record := &secondary.TaskRecord{}
	err := scanner.Scan(&record.ID, &record.Description, &record.Status, &createdAt, &completedAt)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	if completedAt.Valid {
		record.CompletedAt = completedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// Create persists a new pending task. The store assigns the id and the
// creation timestamp; the inserted row is re-read so the caller sees
// exactly what was stored.
func (r *TaskRepository) Create(ctx context.Context, description string) (*secondary.TaskRecord, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO tasks (description, status, created_at) VALUES (?, 'pending', CURRENT_TIMESTAMP)",
		description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get created task id: %w", err)
	}

	record, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("created task %d not found on re-read", id)
	}

	return record, nil
}

// GetByID retrieves a task by its id, or (nil, nil) if absent.
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*secondary.TaskRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+taskSelectCols+" FROM tasks WHERE id = ?",
		id,
	)

	record, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return record, nil
}

// List retrieves tasks matching the given filters, newest first.
// Completed-only listings order by completion time, everything else by
// creation time. id is the tie-break: CURRENT_TIMESTAMP has one-second
// resolution and ids are monotonic.
func (r *TaskRepository) List(ctx context.Context, filters secondary.TaskFilters) ([]*secondary.TaskRecord, error) {
	query := "SELECT " + taskSelectCols + " FROM tasks WHERE 1=1"
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	if filters.Status == "completed" {
		query += " ORDER BY completed_at DESC, id DESC"
	} else {
		query += " ORDER BY created_at DESC, id DESC"
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*secondary.TaskRecord
	for rows.Next() {
		record, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// MarkCompleted transitions a pending task to completed in a single
// guarded statement. The status predicate makes the transition one-way:
// an already-completed task matches no row and the call reports false.
func (r *TaskRepository) MarkCompleted(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET status = 'completed', completed_at = CURRENT_TIMESTAMP WHERE id = ? AND status = 'pending'",
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark task completed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to mark task completed: %w", err)
	}

	return rowsAffected == 1, nil
}

// Delete permanently removes a task. Returns false when the id does not
// exist.
func (r *TaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}

	return rowsAffected == 1, nil
}

// CountByStatus returns pending and completed totals.
func (r *TaskRepository) CountByStatus(ctx context.Context) (*secondary.TaskCounts, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT status, COUNT(*) FROM tasks GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	defer rows.Close()

	counts := &secondary.TaskCounts{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan task count: %w", err)
		}
		switch status {
		case "pending":
			counts.Pending = count
		case "completed":
			counts.Completed = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	return counts, nil
}

// Ensure TaskRepository implements the interface
var _ secondary.TaskRepository = (*TaskRepository)(nil)
