// Package primary defines the driving ports exposed to consumers
// (the CLI, or any other front end).
package primary

import "context"

// TaskService defines the primary port for task operations.
type TaskService interface {
	// CreateTask creates a new pending task. Fails with a
	// *models.ValidationError when the description is empty after
	// trimming; nothing is written in that case.
	CreateTask(ctx context.Context, req CreateTaskRequest) (*CreateTaskResponse, error)

	// GetTask retrieves a task by id, or (nil, nil) if absent.
	GetTask(ctx context.Context, taskID int64) (*Task, error)

	// AllTasks lists every task, newest first by creation time.
	AllTasks(ctx context.Context) ([]*Task, error)

	// PendingTasks lists pending tasks, newest first by creation time.
	PendingTasks(ctx context.Context) ([]*Task, error)

	// CompletedTasks lists completed tasks, newest first by completion time.
	CompletedTasks(ctx context.Context) ([]*Task, error)

	// CompleteTask marks a pending task as completed. Returns false when
	// the id does not exist or the task is already completed.
	CompleteTask(ctx context.Context, taskID int64) (bool, error)

	// DeleteTask permanently removes a task. Returns false when the id
	// does not exist.
	DeleteTask(ctx context.Context, taskID int64) (bool, error)

	// TaskCounts returns per-status totals.
	TaskCounts(ctx context.Context) (*TaskCounts, error)
}

// CreateTaskRequest contains parameters for creating a task.
type CreateTaskRequest struct {
	Description string
}

// CreateTaskResponse contains the result of creating a task.
type CreateTaskResponse struct {
	TaskID int64
	Task   *Task
}

// Task represents a task entity at the port boundary.
// Timestamps are RFC3339 strings; empty CompletedAt means still pending.
type Task struct {
	ID          int64
	Description string
	Status      string
	CreatedAt   string
	CompletedAt string
}

// TaskCounts holds per-status task totals.
type TaskCounts struct {
	Pending   int
	Completed int
	Total     int
}
