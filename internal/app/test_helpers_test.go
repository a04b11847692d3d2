package app

import (
	"context"
	"time"

	"github.com/example/todo/internal/models"
	"github.com/example/todo/internal/ports/secondary"
)

// Ensure mockTaskRepository implements the interface
var _ secondary.TaskRepository = (*mockTaskRepository)(nil)

// mockTaskRepository implements secondary.TaskRepository for testing.
// Tasks are kept in insertion order; List returns them newest first.
type mockTaskRepository struct {
	tasks     []*secondary.TaskRecord
	nextID    int64
	createErr error
	listErr   error
	countErr  error
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{nextID: 1}
}

func (m *mockTaskRepository) Create(ctx context.Context, description string) (*secondary.TaskRecord, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	record := &secondary.TaskRecord{
		ID:          m.nextID,
		Description: description,
		Status:      models.StatusPending,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	m.nextID++
	m.tasks = append(m.tasks, record)
	return record, nil
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id int64) (*secondary.TaskRecord, error) {
	for _, task := range m.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return nil, nil
}

func (m *mockTaskRepository) List(ctx context.Context, filters secondary.TaskFilters) ([]*secondary.TaskRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.TaskRecord
	for i := len(m.tasks) - 1; i >= 0; i-- {
		task := m.tasks[i]
		if filters.Status != "" && task.Status != filters.Status {
			continue
		}
		result = append(result, task)
	}
	return result, nil
}

func (m *mockTaskRepository) MarkCompleted(ctx context.Context, id int64) (bool, error) {
	for _, task := range m.tasks {
		if task.ID == id && task.Status == models.StatusPending {
			task.Status = models.StatusCompleted
			task.CompletedAt = time.Now().UTC().Format(time.RFC3339)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	for i, task := range m.tasks {
		if task.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTaskRepository) CountByStatus(ctx context.Context) (*secondary.TaskCounts, error) {
	if m.countErr != nil {
		return nil, m.countErr
	}
	counts := &secondary.TaskCounts{}
	for _, task := range m.tasks {
		switch task.Status {
		case models.StatusPending:
			counts.Pending++
		case models.StatusCompleted:
			counts.Completed++
		}
	}
	return counts, nil
}
