package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solobooks/solobooks/pkg/api/v1/client"
	"github.com/solobooks/solobooks/pkg/api/v1/handlers"
)

func init() {
	invoiceCmd.AddCommand(listInvoicesCmd)
	invoiceCmd.AddCommand(getInvoiceCmd)
	invoiceCmd.AddCommand(generateInvoiceCmd)
	invoiceCmd.AddCommand(updateInvoiceCmd)
	invoiceCmd.AddCommand(deleteInvoiceCmd)
	invoiceCmd.AddCommand(downloadInvoiceCmd)

	listInvoicesCmd.Flags().IntP("page", "p", 1, "page number")

	getInvoiceCmd.Flags().UintP("id", "i", 0, "ID of the invoice")
	_ = getInvoiceCmd.MarkFlagRequired("id")

	generateInvoiceCmd.Flags().UintP("project-id", "j", 0, "ID of the project to invoice")
	_ = generateInvoiceCmd.MarkFlagRequired("project-id")

	updateInvoiceCmd.Flags().UintP("id", "i", 0, "ID of the invoice")
	updateInvoiceCmd.Flags().String("status", "", "new status: draft, sent or paid")
	updateInvoiceCmd.Flags().String("due-date", "", "due date (YYYY-MM-DD)")
	_ = updateInvoiceCmd.MarkFlagRequired("id")
	_ = updateInvoiceCmd.MarkFlagRequired("status")

	deleteInvoiceCmd.Flags().UintP("id", "i", 0, "ID of the invoice to be deleted")
	_ = deleteInvoiceCmd.MarkFlagRequired("id")

	downloadInvoiceCmd.Flags().UintP("id", "i", 0, "ID of the invoice")
	downloadInvoiceCmd.Flags().StringP("output", "f", "", "output file, defaults to <invoice-number>.pdf")
	_ = downloadInvoiceCmd.MarkFlagRequired("id")
}

var invoiceCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Manage invoices",
}

// GetInvoicesCmd returns the invoices command
func GetInvoicesCmd() *cobra.Command {
	return invoiceCmd
}

var listInvoicesCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, _ := cmd.Flags().GetInt("page")

		response, err := apiClient.ListInvoices(context.Background(), page)
		if err != nil {
			return fmt.Errorf("error fetching invoices: %w", err)
		}
		return printJSON(response)
	},
}

var getInvoiceCmd = &cobra.Command{
	Use:   "get",
	Short: "Get an invoice with its line items",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		response, err := apiClient.GetInvoice(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error fetching invoice: %w", err)
		}
		return printJSON(response)
	},
}

var generateInvoiceCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an invoice from unbilled work",
	Long:  "Generate an invoice from a project's completed, unbilled tasks",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, _ := cmd.Flags().GetUint("project-id")

		response, err := apiClient.GenerateInvoice(context.Background(), projectID)
		if errors.Is(err, client.ErrNothingToBill) {
			fmt.Println("Nothing to bill: no completed, unbilled tasks on this project")
			return nil
		}
		if err != nil {
			return fmt.Errorf("error generating invoice: %w", err)
		}
		return printJSON(response)
	},
}

var updateInvoiceCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an invoice's status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")
		status, _ := cmd.Flags().GetString("status")
		dueDate, _ := cmd.Flags().GetString("due-date")

		err := apiClient.UpdateInvoice(context.Background(), id, handlers.UpdateInvoiceRequest{
			Status:  status,
			DueDate: dueDate,
		})
		if err != nil {
			return fmt.Errorf("error updating invoice: %w", err)
		}
		fmt.Println("Invoice updated successfully")
		return nil
	},
}

var deleteInvoiceCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an invoice",
	Long:  "Delete an invoice, returning its billed tasks to the billable pool",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		if err := apiClient.DeleteInvoice(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting invoice: %w", err)
		}
		fmt.Println("Invoice deleted successfully")
		return nil
	},
}

var downloadInvoiceCmd = &cobra.Command{
	Use:   "download",
	Short: "Download an invoice as PDF",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")
		output, _ := cmd.Flags().GetString("output")

		doc, err := apiClient.DownloadInvoicePDF(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error downloading invoice: %w", err)
		}

		if output == "" {
			invoice, err := apiClient.GetInvoice(context.Background(), id)
			if err != nil {
				return fmt.Errorf("error fetching invoice: %w", err)
			}
			output = invoice.InvoiceNumber + ".pdf"
		}
		if err := os.WriteFile(output, doc, 0o644); err != nil {
			return fmt.Errorf("error writing %s: %w", output, err)
		}
		fmt.Printf("Wrote %s\n", output)
		return nil
	},
}
