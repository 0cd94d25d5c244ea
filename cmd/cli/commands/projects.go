package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/solobooks/solobooks/pkg/api/v1/handlers"
)

func init() {
	projectCmd.AddCommand(listProjectsCmd)
	projectCmd.AddCommand(getProjectCmd)
	projectCmd.AddCommand(createProjectCmd)
	projectCmd.AddCommand(updateProjectCmd)
	projectCmd.AddCommand(deleteProjectCmd)

	listProjectsCmd.Flags().IntP("page", "p", 1, "page number")

	getProjectCmd.Flags().UintP("id", "i", 0, "ID of the project")
	_ = getProjectCmd.MarkFlagRequired("id")

	createProjectCmd.Flags().StringP("title", "t", "", "title of the project")
	createProjectCmd.Flags().UintP("client-id", "c", 0, "ID of the client the project belongs to")
	createProjectCmd.Flags().StringP("billing-type", "b", "hourly", "billing type: hourly, flat_fee or per_task")
	createProjectCmd.Flags().String("hourly-rate", "0", "hourly rate, for hourly projects")
	createProjectCmd.Flags().String("flat-fee", "0", "flat fee amount, for flat fee projects")
	createProjectCmd.Flags().String("description", "", "description of the project")
	createProjectCmd.Flags().String("deadline", "", "deadline (YYYY-MM-DD)")
	_ = createProjectCmd.MarkFlagRequired("title")
	_ = createProjectCmd.MarkFlagRequired("client-id")

	updateProjectCmd.Flags().UintP("id", "i", 0, "ID of the project")
	updateProjectCmd.Flags().StringP("title", "t", "", "new title")
	updateProjectCmd.Flags().String("notes", "", "new notes")
	_ = updateProjectCmd.MarkFlagRequired("id")

	deleteProjectCmd.Flags().UintP("id", "i", 0, "ID of the project to be deleted")
	_ = deleteProjectCmd.MarkFlagRequired("id")
}

var projectCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

// GetProjectsCmd returns the projects command
func GetProjectsCmd() *cobra.Command {
	return projectCmd
}

var listProjectsCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, _ := cmd.Flags().GetInt("page")

		response, err := apiClient.ListProjects(context.Background(), page)
		if err != nil {
			return fmt.Errorf("error fetching projects: %w", err)
		}
		return printJSON(response)
	},
}

var getProjectCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a project with its tasks",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		response, err := apiClient.GetProject(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error fetching project: %w", err)
		}
		return printJSON(response)
	},
}

var createProjectCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		title, _ := cmd.Flags().GetString("title")
		clientID, _ := cmd.Flags().GetUint("client-id")
		billingType, _ := cmd.Flags().GetString("billing-type")
		hourlyRate, _ := cmd.Flags().GetString("hourly-rate")
		flatFee, _ := cmd.Flags().GetString("flat-fee")
		description, _ := cmd.Flags().GetString("description")
		deadline, _ := cmd.Flags().GetString("deadline")

		rate, err := decimal.NewFromString(hourlyRate)
		if err != nil {
			return fmt.Errorf("invalid hourly rate: %w", err)
		}
		fee, err := decimal.NewFromString(flatFee)
		if err != nil {
			return fmt.Errorf("invalid flat fee: %w", err)
		}

		response, err := apiClient.CreateProject(context.Background(), handlers.CreateProjectRequest{
			Title:         title,
			ClientID:      clientID,
			BillingType:   billingType,
			HourlyRate:    rate,
			FlatFeeAmount: fee,
			Description:   description,
			Deadline:      deadline,
		})
		if err != nil {
			return fmt.Errorf("error creating project: %w", err)
		}
		return printJSON(response)
	},
}

var updateProjectCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a project's title or notes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")
		title, _ := cmd.Flags().GetString("title")

		req := handlers.UpdateProjectRequest{Title: title}
		if cmd.Flags().Changed("notes") {
			notes, _ := cmd.Flags().GetString("notes")
			req.Notes = &notes
		}

		response, err := apiClient.UpdateProject(context.Background(), id, req)
		if err != nil {
			return fmt.Errorf("error updating project: %w", err)
		}
		return printJSON(response)
	},
}

var deleteProjectCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a project",
	Long:  "Delete a project with its tasks and invoices",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		if err := apiClient.DeleteProject(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting project: %w", err)
		}
		fmt.Println("Project deleted successfully")
		return nil
	},
}
