package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solobooks/solobooks/pkg/api/v1/handlers"
)

func init() {
	clientCmd.AddCommand(listClientsCmd)
	clientCmd.AddCommand(getClientCmd)
	clientCmd.AddCommand(createClientCmd)
	clientCmd.AddCommand(deleteClientCmd)

	listClientsCmd.Flags().IntP("page", "p", 1, "page number")

	getClientCmd.Flags().UintP("id", "i", 0, "ID of the client")
	_ = getClientCmd.MarkFlagRequired("id")

	createClientCmd.Flags().StringP("name", "n", "", "name of the client")
	createClientCmd.Flags().StringP("email", "e", "", "email of the client")
	_ = createClientCmd.MarkFlagRequired("name")

	deleteClientCmd.Flags().UintP("id", "i", 0, "ID of the client to be deleted")
	_ = deleteClientCmd.MarkFlagRequired("id")
}

var clientCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
}

// GetClientsCmd returns the clients command
func GetClientsCmd() *cobra.Command {
	return clientCmd
}

var listClientsCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, _ := cmd.Flags().GetInt("page")

		response, err := apiClient.ListClients(context.Background(), page)
		if err != nil {
			return fmt.Errorf("error fetching clients: %w", err)
		}
		return printJSON(response)
	},
}

var getClientCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a client",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		response, err := apiClient.GetClient(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error fetching client: %w", err)
		}
		return printJSON(response)
	},
}

var createClientCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a client",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")

		response, err := apiClient.CreateClient(context.Background(), handlers.CreateClientRequest{
			Name:  name,
			Email: email,
		})
		if err != nil {
			return fmt.Errorf("error creating client: %w", err)
		}
		return printJSON(response)
	},
}

var deleteClientCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a client",
	Long:  "Delete a client that has no projects",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		if err := apiClient.DeleteClient(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting client: %w", err)
		}
		fmt.Println("Client deleted successfully")
		return nil
	},
}
