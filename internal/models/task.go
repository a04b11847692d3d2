// Package models contains domain types for todo entities.
// SQL persistence lives in internal/adapters/sqlite/*.go
package models

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Task represents a task entity.
// This is the domain type used within the models package.
// For persistence, use the repository interface in ports/secondary.
type Task struct {
	ID          int64
	Description string
	Status      string
	CreatedAt   time.Time
	CompletedAt sql.NullTime
}

// Task status constants
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// ValidationError reports an entity rule violation. It is returned
// before any storage write is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateDescription trims surrounding whitespace and rejects empty
// descriptions. Returns the trimmed value on success.
func ValidateDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return "", &ValidationError{Field: "description", Reason: "cannot be empty"}
	}
	return trimmed, nil
}
