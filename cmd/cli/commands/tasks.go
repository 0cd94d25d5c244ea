package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solobooks/solobooks/pkg/api/v1/handlers"
)

func init() {
	taskCmd.AddCommand(listTasksCmd)
	taskCmd.AddCommand(createTaskCmd)
	taskCmd.AddCommand(toggleTaskCmd)
	taskCmd.AddCommand(deleteTaskCmd)
	taskCmd.AddCommand(logTimeCmd)
	taskCmd.AddCommand(quickLogCmd)

	listTasksCmd.Flags().UintP("project-id", "j", 0, "ID of the project")
	listTasksCmd.Flags().IntP("page", "p", 1, "page number")
	_ = listTasksCmd.MarkFlagRequired("project-id")

	createTaskCmd.Flags().UintP("project-id", "j", 0, "ID of the project")
	createTaskCmd.Flags().StringP("description", "d", "", "description of the task")
	_ = createTaskCmd.MarkFlagRequired("project-id")
	_ = createTaskCmd.MarkFlagRequired("description")

	toggleTaskCmd.Flags().UintP("id", "i", 0, "ID of the task")
	_ = toggleTaskCmd.MarkFlagRequired("id")

	deleteTaskCmd.Flags().UintP("id", "i", 0, "ID of the task to be deleted")
	_ = deleteTaskCmd.MarkFlagRequired("id")

	logTimeCmd.Flags().UintP("id", "i", 0, "ID of the task")
	logTimeCmd.Flags().Float64P("hours", "H", 0, "hours worked")
	logTimeCmd.Flags().String("date", "", "entry date (YYYY-MM-DD), defaults to today")
	_ = logTimeCmd.MarkFlagRequired("id")
	_ = logTimeCmd.MarkFlagRequired("hours")

	quickLogCmd.Flags().UintP("id", "i", 0, "ID of the task")
	_ = quickLogCmd.MarkFlagRequired("id")
}

var taskCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks and time entries",
}

// GetTasksCmd returns the tasks command
func GetTasksCmd() *cobra.Command {
	return taskCmd
}

var listTasksCmd = &cobra.Command{
	Use:   "list",
	Short: "List a project's tasks",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, _ := cmd.Flags().GetUint("project-id")
		page, _ := cmd.Flags().GetInt("page")

		response, err := apiClient.ListTasks(context.Background(), projectID, page)
		if err != nil {
			return fmt.Errorf("error fetching tasks: %w", err)
		}
		return printJSON(response)
	},
}

var createTaskCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a task to a project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, _ := cmd.Flags().GetUint("project-id")
		description, _ := cmd.Flags().GetString("description")

		response, err := apiClient.CreateTask(context.Background(), projectID, handlers.CreateTaskRequest{
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("error creating task: %w", err)
		}
		return printJSON(response)
	},
}

var toggleTaskCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle a task's completion",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		completed, err := apiClient.ToggleTask(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error toggling task: %w", err)
		}
		fmt.Printf("Task %d completed: %v\n", id, completed)
		return nil
	},
}

var deleteTaskCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a task",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		if err := apiClient.DeleteTask(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting task: %w", err)
		}
		fmt.Println("Task deleted successfully")
		return nil
	},
}

var logTimeCmd = &cobra.Command{
	Use:   "log",
	Short: "Log hours against a task",
	Long:  "Log hours worked against a task on an hourly project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")
		hours, _ := cmd.Flags().GetFloat64("hours")
		date, _ := cmd.Flags().GetString("date")

		total, err := apiClient.LogTime(context.Background(), id, handlers.LogTimeRequest{
			HoursWorked: hours,
			EntryDate:   date,
		})
		if err != nil {
			return fmt.Errorf("error logging time: %w", err)
		}
		fmt.Printf("Logged %.2f hours, task total is now %.2f\n", hours, total)
		return nil
	},
}

var quickLogCmd = &cobra.Command{
	Use:   "quick-log",
	Short: "Log a quarter hour against a task",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		total, err := apiClient.QuickLogTime(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error logging time: %w", err)
		}
		fmt.Printf("Task total is now %.2f hours\n", total)
		return nil
	},
}
