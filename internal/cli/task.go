package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/todo/internal/models"
	"github.com/example/todo/internal/ports/primary"
	"github.com/example/todo/internal/wire"
)

// maxDescriptionLength mirrors the form layer of the original UI.
// The repository itself enforces no upper bound; this is a consumer-side
// check only.
const maxDescriptionLength = 500

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [description]",
		Short: "Add a new task",
		Long: `Add a new task in pending state.

Examples:
  todo add "Buy groceries"
  todo add "Call the dentist"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			description := args[0]

			if len([]rune(strings.TrimSpace(description))) > maxDescriptionLength {
				return fmt.Errorf("description exceeds %d characters", maxDescriptionLength)
			}

			resp, err := wire.TaskService().CreateTask(ctx, primary.CreateTaskRequest{
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}

			fmt.Printf("✓ Created task %d: %s\n", resp.TaskID, resp.Task.Description)
			return nil
		},
	}
}

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  `List tasks, newest first. Use --status to show only pending or completed tasks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			status, _ := cmd.Flags().GetString("status")

			var tasks []*primary.Task
			var err error

			switch status {
			case "":
				tasks, err = wire.TaskService().AllTasks(ctx)
			case models.StatusPending:
				tasks, err = wire.TaskService().PendingTasks(ctx)
			case models.StatusCompleted:
				tasks, err = wire.TaskService().CompletedTasks(ctx)
			default:
				return fmt.Errorf("invalid status %q (expected pending or completed)", status)
			}
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			fmt.Printf("Found %d task(s):\n\n", len(tasks))
			for _, task := range tasks {
				line := fmt.Sprintf("%s [%d] %s (created: %s", statusIcon(task.Status), task.ID, task.Description, formatTimestamp(task.CreatedAt))
				if task.CompletedAt != "" {
					line += fmt.Sprintf(", completed: %s", formatTimestamp(task.CompletedAt))
				}
				line += ")"
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().String("status", "", "Filter by status (pending or completed)")

	return cmd
}

// CompleteCmd returns the complete command
func CompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [task-id]",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			ok, err := wire.TaskService().CompleteTask(ctx, taskID)
			if err != nil {
				return fmt.Errorf("failed to complete task: %w", err)
			}
			if !ok {
				return fmt.Errorf("task %d was not completed: it may not exist or is already completed", taskID)
			}

			fmt.Printf("✓ Task %d marked as completed\n", taskID)
			return nil
		},
	}
}

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete a task permanently",
		Long:  `Delete a task permanently. There is no undo.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			ok, err := wire.TaskService().DeleteTask(ctx, taskID)
			if err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}
			if !ok {
				return fmt.Errorf("task %d not found", taskID)
			}

			fmt.Printf("✓ Task %d deleted\n", taskID)
			return nil
		},
	}
}

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [task-id]",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			task, err := wire.TaskService().GetTask(ctx, taskID)
			if err != nil {
				return fmt.Errorf("failed to get task: %w", err)
			}
			if task == nil {
				return fmt.Errorf("task %d not found", taskID)
			}

			fmt.Printf("Task %d:\n", task.ID)
			fmt.Printf("  %s %s\n", statusIcon(task.Status), task.Description)
			fmt.Printf("  Status: %s\n", task.Status)
			fmt.Printf("  Created: %s\n", formatTimestamp(task.CreatedAt))
			if task.CompletedAt != "" {
				fmt.Printf("  Completed: %s\n", formatTimestamp(task.CompletedAt))
			}
			return nil
		},
	}
}

func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

func statusIcon(status string) string {
	if status == models.StatusCompleted {
		return color.New(color.FgGreen).Sprint("✓")
	}
	return color.New(color.FgYellow).Sprint("○")
}

// formatTimestamp renders an RFC3339 boundary timestamp for display.
func formatTimestamp(ts string) string {
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return parsed.Format("2006-01-02 15:04")
}
