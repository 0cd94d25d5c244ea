package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/solobooks/solobooks/pkg/api/v1/handlers"
)

func init() {
	expenseCmd.AddCommand(listExpensesCmd)
	expenseCmd.AddCommand(listCategoriesCmd)
	expenseCmd.AddCommand(createExpenseCmd)
	expenseCmd.AddCommand(deleteExpenseCmd)

	listExpensesCmd.Flags().IntP("page", "p", 1, "page number")

	createExpenseCmd.Flags().UintP("project-id", "j", 0, "ID of the project")
	createExpenseCmd.Flags().UintP("category-id", "c", 0, "ID of the expense category")
	createExpenseCmd.Flags().StringP("description", "d", "", "description of the expense")
	createExpenseCmd.Flags().StringP("amount", "a", "", "amount spent")
	createExpenseCmd.Flags().String("date", "", "date of the expense (YYYY-MM-DD), defaults to today")
	_ = createExpenseCmd.MarkFlagRequired("project-id")
	_ = createExpenseCmd.MarkFlagRequired("category-id")
	_ = createExpenseCmd.MarkFlagRequired("description")
	_ = createExpenseCmd.MarkFlagRequired("amount")

	deleteExpenseCmd.Flags().UintP("id", "i", 0, "ID of the expense to be deleted")
	_ = deleteExpenseCmd.MarkFlagRequired("id")
}

var expenseCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Manage expenses",
}

// GetExpensesCmd returns the expenses command
func GetExpensesCmd() *cobra.Command {
	return expenseCmd
}

var listExpensesCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, _ := cmd.Flags().GetInt("page")

		response, err := apiClient.ListExpenses(context.Background(), page)
		if err != nil {
			return fmt.Errorf("error fetching expenses: %w", err)
		}
		return printJSON(response)
	},
}

var listCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List expense categories",
	RunE: func(_ *cobra.Command, _ []string) error {
		response, err := apiClient.ListExpenseCategories(context.Background())
		if err != nil {
			return fmt.Errorf("error fetching categories: %w", err)
		}
		return printJSON(response)
	},
}

var createExpenseCmd = &cobra.Command{
	Use:   "create",
	Short: "Record an expense",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, _ := cmd.Flags().GetUint("project-id")
		categoryID, _ := cmd.Flags().GetUint("category-id")
		description, _ := cmd.Flags().GetString("description")
		amount, _ := cmd.Flags().GetString("amount")
		date, _ := cmd.Flags().GetString("date")

		amt, err := decimal.NewFromString(amount)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}

		response, err := apiClient.CreateExpense(context.Background(), handlers.CreateExpenseRequest{
			ProjectID:   projectID,
			CategoryID:  categoryID,
			Description: description,
			Amount:      amt,
			Date:        date,
		})
		if err != nil {
			return fmt.Errorf("error creating expense: %w", err)
		}
		return printJSON(response)
	},
}

var deleteExpenseCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an expense",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		if err := apiClient.DeleteExpense(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting expense: %w", err)
		}
		fmt.Println("Expense deleted successfully")
		return nil
	},
}
