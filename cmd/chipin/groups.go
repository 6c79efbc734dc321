package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chipinhq/chipin-go/pkg/apiclient"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage expense groups",
}

var (
	groupsListOffset int
	groupsListLimit  int
)

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your expense groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		page, err := app.Groups(cmd.Context(), groupsListOffset, groupsListLimit)
		if err != nil {
			return reportAPIError(cmd, err)
		}

		if len(page.Items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No groups yet. Create one with `chipin groups create`.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEXPENSES\tYOU OWE\tOWED TO YOU\tINVITE CODE")
		for _, g := range page.Items {
			fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%.2f\t%s\n",
				g.ID, g.Name, g.ExpenseCount, g.OwedByUserTotal, g.OwedToUserTotal, g.InviteCode)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Showing %d of %d groups\n", len(page.Items), page.Total)
		return nil
	},
}

var groupsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new expense group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		group, err := app.API.CreateGroup(cmd.Context(), apiclient.GroupCreate{Name: args[0]})
		if err != nil {
			return reportAPIError(cmd, err)
		}
		app.InvalidateGroupLists()

		fmt.Fprintf(cmd.OutOrStdout(), "Created group %q (id %d), invite code %s\n",
			group.Name, group.ID, group.InviteCode)
		return nil
	},
}

var groupsShowCmd = &cobra.Command{
	Use:   "show <group-id>",
	Short: "Show a group's members and your balance",
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

		group, err := app.Group(cmd.Context(), groupID)
		if err != nil {
			return reportAPIError(cmd, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (id %d)\n", group.Name, group.ID)
		fmt.Fprintf(out, "Invite code: %s\n", group.InviteCode)
		fmt.Fprintf(out, "Expenses: %d\n", group.ExpenseCount)
		fmt.Fprintf(out, "You owe: %.2f\tOwed to you: %.2f\n", group.OwedByUserTotal, group.OwedToUserTotal)

		members := make(map[int]string, len(group.Members))
		fmt.Fprintln(out, "Members:")
		for _, m := range group.Members {
			members[m.UserID] = m.Name
			fmt.Fprintf(out, "  %s <%s>\n", m.Name, m.Email)
		}
		for _, d := range group.OwedByUser {
			fmt.Fprintf(out, "You owe %s %.2f\n", members[d.UserID], d.Amount)
		}
		for _, d := range group.OwedToUser {
			fmt.Fprintf(out, "%s owes you %.2f\n", members[d.UserID], d.Amount)
		}
		return nil
	},
}

var groupsJoinCmd = &cobra.Command{
	Use:   "join <invite-code>",
	Short: "Request to join a group by invite code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		req, err := app.API.JoinByInviteCode(cmd.Context(), args[0])
		if err != nil {
			return reportAPIError(cmd, err)
		}
		app.InvalidateGroupLists()

		switch req.Status {
		case apiclient.JoinRequestAccepted:
			fmt.Fprintf(cmd.OutOrStdout(), "Joined group %d.\n", req.GroupID)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "Join request sent for group %d, waiting for the owner to accept.\n", req.GroupID)
		}
		return nil
	},
}

func init() {
	groupsListCmd.Flags().IntVar(&groupsListOffset, "offset", 0, "pagination offset")
	groupsListCmd.Flags().IntVar(&groupsListLimit, "limit", 12, "page size")
	groupsCmd.AddCommand(groupsListCmd, groupsCreateCmd, groupsShowCmd, groupsJoinCmd)
}
