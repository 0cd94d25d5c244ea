package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solobooks/solobooks/pkg/api/v1/handlers"
)

func init() {
	userCmd.AddCommand(listUsersCmd)
	userCmd.AddCommand(createUserCmd)
	userCmd.AddCommand(deleteUserCmd)

	listUsersCmd.Flags().IntP("page", "p", 1, "page number")

	createUserCmd.Flags().StringP("username", "u", "", "username of the user to be created")
	createUserCmd.Flags().StringP("email", "e", "", "email of the user")
	_ = createUserCmd.MarkFlagRequired("username")

	deleteUserCmd.Flags().UintP("id", "i", 0, "ID of the user to be deleted")
	_ = deleteUserCmd.MarkFlagRequired("id")
}

var userCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
}

// GetUsersCmd returns the users command
func GetUsersCmd() *cobra.Command {
	return userCmd
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, _ := cmd.Flags().GetInt("page")

		response, err := apiClient.ListUsers(context.Background(), page)
		if err != nil {
			return fmt.Errorf("error fetching users: %w", err)
		}
		return printJSON(response)
	},
}

var createUserCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Long:  "Create a user with the given username",
	RunE: func(cmd *cobra.Command, _ []string) error {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")

		id, err := apiClient.CreateUser(context.Background(), handlers.CreateUserRequest{
			Username: username,
			Email:    email,
		})
		if err != nil {
			return fmt.Errorf("error creating a user: %w", err)
		}
		fmt.Printf("Created user %d\n", id)
		return nil
	},
}

var deleteUserCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a user",
	Long:  "Delete a user with a given ID",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		if err := apiClient.DeleteUser(context.Background(), id); err != nil {
			return fmt.Errorf("error while deleting user: %w", err)
		}
		fmt.Println("User deleted successfully")
		return nil
	},
}
