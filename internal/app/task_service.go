// Package app implements the primary ports on top of the repository
// interfaces.
package app

import (
	"context"
	"fmt"

	"github.com/example/todo/internal/models"
	"github.com/example/todo/internal/ports/primary"
	"github.com/example/todo/internal/ports/secondary"
)

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskRepo secondary.TaskRepository
}

// NewTaskService creates a new TaskService with injected dependencies.
func NewTaskService(taskRepo secondary.TaskRepository) *TaskServiceImpl {
	return &TaskServiceImpl{taskRepo: taskRepo}
}

// recordToTask converts a persistence record to a boundary task.
func recordToTask(record *secondary.TaskRecord) *primary.Task {
	return &primary.Task{
		ID:          record.ID,
		Description: record.Description,
		Status:      record.Status,
		CreatedAt:   record.CreatedAt,
		CompletedAt: record.CompletedAt,
	}
}

// CreateTask creates a new pending task. Validation runs before any
// storage write: an empty or whitespace-only description fails with a
// *models.ValidationError and nothing is persisted.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, req primary.CreateTaskRequest) (*primary.CreateTaskResponse, error) {
	description, err := models.ValidateDescription(req.Description)
	if err != nil {
		return nil, err
	}

	record, err := s.taskRepo.Create(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &primary.CreateTaskResponse{
		TaskID: record.ID,
		Task:   recordToTask(record),
	}, nil
}

// GetTask retrieves a task by id, or (nil, nil) if absent.
func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID int64) (*primary.Task, error) {
	record, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return recordToTask(record), nil
}

// AllTasks lists every task, newest first by creation time.
func (s *TaskServiceImpl) AllTasks(ctx context.Context) ([]*primary.Task, error) {
	return s.listTasks(ctx, secondary.TaskFilters{})
}

// PendingTasks lists pending tasks, newest first by creation time.
func (s *TaskServiceImpl) PendingTasks(ctx context.Context) ([]*primary.Task, error) {
	return s.listTasks(ctx, secondary.TaskFilters{Status: models.StatusPending})
}

// CompletedTasks lists completed tasks, newest first by completion time.
func (s *TaskServiceImpl) CompletedTasks(ctx context.Context) ([]*primary.Task, error) {
	return s.listTasks(ctx, secondary.TaskFilters{Status: models.StatusCompleted})
}

func (s *TaskServiceImpl) listTasks(ctx context.Context, filters secondary.TaskFilters) ([]*primary.Task, error) {
	records, err := s.taskRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*primary.Task, len(records))
	for i, r := range records {
		tasks[i] = recordToTask(r)
	}
	return tasks, nil
}

// CompleteTask marks a pending task as completed. False means the id
// does not exist or the task is already completed; that is a normal
// outcome, not an error.
func (s *TaskServiceImpl) CompleteTask(ctx context.Context, taskID int64) (bool, error) {
	return s.taskRepo.MarkCompleted(ctx, taskID)
}

// DeleteTask permanently removes a task. False means the id does not
// exist.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID int64) (bool, error) {
	return s.taskRepo.Delete(ctx, taskID)
}

// TaskCounts returns per-status totals.
func (s *TaskServiceImpl) TaskCounts(ctx context.Context) (*primary.TaskCounts, error) {
	counts, err := s.taskRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	return &primary.TaskCounts{
		Pending:   counts.Pending,
		Completed: counts.Completed,
		Total:     counts.Pending + counts.Completed,
	}, nil
}

// Ensure TaskServiceImpl implements the interface
var _ primary.TaskService = (*TaskServiceImpl)(nil)
