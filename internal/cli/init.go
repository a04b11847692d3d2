package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/todo/internal/config"
	"github.com/example/todo/internal/db"
	"github.com/example/todo/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the task database",
		Long:  `Create the task database with the required schema and write ~/.todo/config.json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath := wire.DatabasePath()

			fmt.Printf("Initializing task database at %s\n", dbPath)

			database, err := db.Open(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer database.Close()

			if err := db.InitSchema(database); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			if err := writeConfig(dbPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Println("✓ Config written to ~/.todo/config.json")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  todo add \"My first task\"")
			fmt.Println("  todo list")

			return nil
		},
	}
}

// writeConfig records the chosen database path for later runs.
func writeConfig(dbPath string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	return config.SaveConfig(home, &config.Config{
		Version:      "1",
		DatabasePath: dbPath,
	})
}
