package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chipinhq/chipin-go/pkg/apiclient"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Record and list group expenses",
}

var (
	expensesListOffset int
	expensesListLimit  int
	expenseDescription string
)

var expensesListCmd = &cobra.Command{
	Use:   "list <group-id>",
	Short: "List a group's expenses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		groupID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("group id must be a number, got %q", args[0])
		}

		page, err := app.API.ListExpenses(cmd.Context(), groupID, expensesListOffset, expensesListLimit)
		if err != nil {
			return reportAPIError(cmd, err)
		}

		if len(page.Items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No expenses in this group yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tAMOUNT\tCREATED")
		for _, e := range page.Items {
			fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\n",
				e.ID, e.Name, e.Value, e.CreatedAt.Format("2006-01-02"))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Showing %d of %d expenses\n", len(page.Items), page.Total)
		return nil
	},
}

var expensesAddCmd = &cobra.Command{
	Use:   "add <group-id> <name> <amount>",
	Short: "Record an expense in a group",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		groupID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("group id must be a number, got %q", args[0])
		}
		amount, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("amount must be a number, got %q", args[2])
		}

		expense, err := app.API.CreateExpense(cmd.Context(), groupID, apiclient.ExpenseCreate{
			Name:        args[1],
			Description: expenseDescription,
			Value:       amount,
		})
		if err != nil {
			return reportAPIError(cmd, err)
		}

		// Totals and activity timestamps shifted server-side.
		app.InvalidateGroup(groupID)
		app.InvalidateGroupLists()

		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %q: %.2f (expense id %d)\n",
			expense.Name, expense.Value, expense.ID)
		return nil
	},
}

func init() {
	expensesListCmd.Flags().IntVar(&expensesListOffset, "offset", 0, "pagination offset")
	expensesListCmd.Flags().IntVar(&expensesListLimit, "limit", 20, "page size")
	expensesAddCmd.Flags().StringVarP(&expenseDescription, "description", "d", "", "optional expense description")
	expensesCmd.AddCommand(expensesListCmd, expensesAddCmd)
}
