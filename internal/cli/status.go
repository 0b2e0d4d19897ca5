package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"social-network/internal/model"
	"social-network/internal/service"
)

type statusFlags struct {
	id     string
	userID string
	text   string
}

func newStatusCommand(a *app) *cobra.Command {
	f := &statusFlags{}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Add, update, delete, search or list status updates",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Post a status update for an existing user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.userID == "" {
				return errors.New("--user-id must be specified")
			}
			id := f.id
			if id == "" {
				id = uuid.NewString()
			}
			if !service.AddStatus(cmd.Context(), f.userID, id, f.text, a.statuses) {
				return failed("add status " + id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added status %s\n", id)
			return nil
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Replace the owner and text of a status update",
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.id == "" || f.userID == "" {
				return errors.New("both --id and --user-id must be specified")
			}
			if !service.UpdateStatus(cmd.Context(), f.id, f.userID, f.text, a.statuses) {
				return failed("update status " + f.id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated status %s\n", f.id)
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a status update",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !service.DeleteStatus(cmd.Context(), f.id, a.statuses) {
				return failed("delete status " + f.id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted status %s\n", f.id)
			return nil
		},
	}

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Look up a status update by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			status := service.SearchStatus(cmd.Context(), f.id, a.statuses)
			if status == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Status not found")
				return nil
			}
			printStatus(cmd.OutOrStdout(), *status)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the status updates of one user",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, status := range a.statuses.ListStatuses(cmd.Context(), f.userID) {
				printStatus(cmd.OutOrStdout(), status)
			}
			return nil
		},
	}

	addCmd.Flags().StringVarP(&f.id, "id", "i", "", "Status id (generated when omitted)")
	addCmd.Flags().StringVarP(&f.userID, "user-id", "u", "", "Owning user id")
	addCmd.Flags().StringVarP(&f.text, "text", "t", "", "Status text")

	updateCmd.Flags().StringVarP(&f.id, "id", "i", "", "Status id")
	updateCmd.Flags().StringVarP(&f.userID, "user-id", "u", "", "Owning user id")
	updateCmd.Flags().StringVarP(&f.text, "text", "t", "", "Status text")

	for _, c := range []*cobra.Command{deleteCmd, searchCmd} {
		c.Flags().StringVarP(&f.id, "id", "i", "", "Status id")
		_ = c.MarkFlagRequired("id")
	}

	listCmd.Flags().StringVarP(&f.userID, "user-id", "u", "", "Owning user id")
	_ = listCmd.MarkFlagRequired("user-id")

	statusCmd.AddCommand(addCmd, updateCmd, deleteCmd, searchCmd, listCmd)
	return statusCmd
}

func printStatus(w io.Writer, status model.Status) {
	fmt.Fprintf(w, "%s\t%s\t%s\n", status.StatusID, status.UserID, status.Text)
}
