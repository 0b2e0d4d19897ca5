package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoadCommand(a *app) *cobra.Command {
	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Bulk load records from CSV files",
		Long:  "Each file is inserted in one transaction: a single bad row keeps the whole file out.",
	}

	usersCmd := &cobra.Command{
		Use:   "users FILE",
		Short: "Load users from a USER_ID,EMAIL,NAME,LASTNAME file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.loader.LoadUsers(cmd.Context(), args[0]) {
				return failed("load users from " + args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded users from %s\n", args[0])
			return nil
		},
	}

	statusesCmd := &cobra.Command{
		Use:   "statuses FILE",
		Short: "Load status updates from a STATUS_ID,USER_ID,STATUS_TEXT file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.loader.LoadStatusUpdates(cmd.Context(), args[0]) {
				return failed("load status updates from " + args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded status updates from %s\n", args[0])
			return nil
		},
	}

	loadCmd.AddCommand(usersCmd, statusesCmd)
	return loadCmd
}
