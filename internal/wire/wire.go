// Package wire provides dependency injection for the todo application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/todo/internal/adapters/sqlite"
	"github.com/example/todo/internal/app"
	"github.com/example/todo/internal/config"
	"github.com/example/todo/internal/db"
	"github.com/example/todo/internal/ports/primary"
)

var (
	taskService primary.TaskService
	dbPath      string
	once        sync.Once
)

// SetDatabasePath sets the database path used when services are first
// initialized. Must be called before the first TaskService() call;
// later calls have no effect.
func SetDatabasePath(path string) {
	dbPath = path
}

// DatabasePath returns the database path services will use (or are using).
func DatabasePath() string {
	if dbPath != "" {
		return dbPath
	}
	path, err := config.DefaultDatabasePath()
	if err != nil {
		log.Fatalf("failed to resolve database path: %v", err)
	}
	return path
}

// TaskService returns the singleton TaskService instance.
func TaskService() primary.TaskService {
	once.Do(initServices)
	return taskService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once. The connection handle is shared
// for the life of the process.
func initServices() {
	database, err := db.Open(DatabasePath())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if err := db.InitSchema(database); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	taskRepo := sqlite.NewTaskRepository(database)
	taskService = app.NewTaskService(taskRepo)
}
