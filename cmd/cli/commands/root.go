// Package commands contains the CLI subcommands
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solobooks/solobooks/pkg/api/v1/client"
	"github.com/solobooks/solobooks/pkg/api/v1/routes"
)

// flag names
const (
	flagOwnerID       = "owner-id"
	flagServerAddress = "server-address"
)

// environment variable names
const (
	envServerAddress = "SOLOBOOKS_SERVER_ADDRESS"
	envOwnerID       = "SOLOBOOKS_OWNER_ID"
)

var (
	// apiClient is the shared API client instance
	apiClient client.Client
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
	// ownerID identifies the acting user on every request
	ownerID uint
)

// initClient initializes the API client
func initClient() error {
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress
	opts.OwnerID = ownerID

	var err error
	apiClient, err = client.NewClient(opts)
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", routes.DefaultBaseURL, "Address of the SoloBooks API server (env: SOLOBOOKS_SERVER_ADDRESS)")
	RootCmd.PersistentFlags().UintVarP(&ownerID, flagOwnerID, "o", 0, "Acting user ID (env: SOLOBOOKS_OWNER_ID)")

	RootCmd.AddCommand(GetClientsCmd())
	RootCmd.AddCommand(GetProjectsCmd())
	RootCmd.AddCommand(GetTasksCmd())
	RootCmd.AddCommand(GetInvoicesCmd())
	RootCmd.AddCommand(GetExpensesCmd())
	RootCmd.AddCommand(GetUsersCmd())
	RootCmd.AddCommand(GetDashboardCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "solobooks",
	Short: "SoloBooks CLI - A command line interface for the SoloBooks API",
	Long: `SoloBooks CLI is a command line tool for managing clients, projects,
tasks and invoices through the SoloBooks API.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Flag > env var > default
		if !cmd.Flags().Changed(flagServerAddress) {
			if envAddr := os.Getenv(envServerAddress); envAddr != "" {
				serverAddress = envAddr
			}
		}
		if !cmd.Flags().Changed(flagOwnerID) {
			if envOwner := os.Getenv(envOwnerID); envOwner != "" {
				if _, err := fmt.Sscanf(envOwner, "%d", &ownerID); err != nil {
					return fmt.Errorf("invalid %s: %w", envOwnerID, err)
				}
			}
		}

		if serverAddress == "" {
			return fmt.Errorf("server address cannot be empty")
		}
		return initClient()
	},
}

// printJSON pretty prints a response to stdout
func printJSON(v interface{}) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	fmt.Println(string(prettyJSON))
	return nil
}
