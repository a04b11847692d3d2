package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/todo/internal/cli"
	"github.com/example/todo/internal/config"
	"github.com/example/todo/internal/version"
	"github.com/example/todo/internal/wire"
)

func main() {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:     "todo",
		Short:   "todo - a personal task tracker",
		Version: version.String(),
		Long: `todo is a CLI tool for tracking personal tasks.
Tasks live in a local SQLite database and move from pending to completed.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolveDatabasePath(dbPath)
			if err != nil {
				return err
			}
			wire.SetDatabasePath(path)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the task database (default ~/.todo/todo.db)")

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.CompleteCmd())
	rootCmd.AddCommand(cli.DeleteCmd())
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.StatusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
