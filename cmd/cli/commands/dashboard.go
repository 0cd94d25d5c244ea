package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the revenue and expense summary",
	RunE: func(_ *cobra.Command, _ []string) error {
		response, err := apiClient.GetDashboard(context.Background())
		if err != nil {
			return fmt.Errorf("error fetching dashboard: %w", err)
		}
		return printJSON(response)
	},
}

// GetDashboardCmd returns the dashboard command
func GetDashboardCmd() *cobra.Command {
	return dashboardCmd
}
