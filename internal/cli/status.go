package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/todo/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show task totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			counts, err := wire.TaskService().TaskCounts(ctx)
			if err != nil {
				return fmt.Errorf("failed to get task counts: %w", err)
			}

			fmt.Printf("Tasks: %d total\n", counts.Total)
			fmt.Printf("  %s %d pending\n", color.New(color.FgYellow).Sprint("○"), counts.Pending)
			fmt.Printf("  %s %d completed\n", color.New(color.FgGreen).Sprint("✓"), counts.Completed)

			if counts.Total == 0 {
				fmt.Println()
				fmt.Println("Add your first task:")
				fmt.Println("  todo add \"Buy groceries\"")
			}
			return nil
		},
	}
}
