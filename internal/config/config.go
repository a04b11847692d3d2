package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat todo configuration
type Config struct {
	Version      string `json:"version"`
	DatabasePath string `json:"database_path,omitempty"`
}

// LoadConfig reads .todo/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".todo", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	todoDir := filepath.Join(dir, ".todo")
	if err := os.MkdirAll(todoDir, 0755); err != nil {
		return fmt.Errorf("failed to create .todo dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(todoDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultDatabasePath returns the default database location, ~/.todo/todo.db.
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".todo", "todo.db"), nil
}

// ResolveDatabasePath picks the database path: an explicit flag value
// wins, then the path stored in the home config, then the default.
func ResolveDatabasePath(flagPath string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return resolveDatabasePath(flagPath, home)
}

func resolveDatabasePath(flagPath, home string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if cfg, err := LoadConfig(home); err == nil && cfg.DatabasePath != "" {
		return cfg.DatabasePath, nil
	}
	return filepath.Join(home, ".todo", "todo.db"), nil
}
