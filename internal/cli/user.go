package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"social-network/internal/model"
	"social-network/internal/service"
)

type userFlags struct {
	id       string
	email    string
	name     string
	lastName string
}

func newUserCommand(a *app) *cobra.Command {
	f := &userFlags{}

	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Add, update, delete, search or list users",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.id == "" {
				return errors.New("--id must be specified")
			}
			if !service.AddUser(cmd.Context(), f.id, f.email, f.name, f.lastName, a.users) {
				return failed("add user " + f.id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added user %s\n", f.id)
			return nil
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Replace the email, name and last name of a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.id == "" {
				return errors.New("--id must be specified")
			}
			if !service.UpdateUser(cmd.Context(), f.id, f.email, f.name, f.lastName, a.users) {
				return failed("update user " + f.id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated user %s\n", f.id)
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user and their status updates",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !service.DeleteUser(cmd.Context(), f.id, a.users) {
				return failed("delete user " + f.id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", f.id)
			return nil
		},
	}

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Look up a user by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := service.SearchUser(cmd.Context(), f.id, a.users)
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "User not found")
				return nil
			}
			printUser(cmd.OutOrStdout(), *user)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, user := range a.users.ListUsers(cmd.Context()) {
				printUser(cmd.OutOrStdout(), user)
			}
			return nil
		},
	}

	for _, c := range []*cobra.Command{addCmd, updateCmd} {
		c.Flags().StringVarP(&f.id, "id", "i", "", "User id")
		c.Flags().StringVarP(&f.email, "email", "e", "", "Email address")
		c.Flags().StringVarP(&f.name, "name", "n", "", "First name")
		c.Flags().StringVarP(&f.lastName, "last-name", "l", "", "Last name")
	}
	for _, c := range []*cobra.Command{deleteCmd, searchCmd} {
		c.Flags().StringVarP(&f.id, "id", "i", "", "User id")
		_ = c.MarkFlagRequired("id")
	}

	userCmd.AddCommand(addCmd, updateCmd, deleteCmd, searchCmd, listCmd)
	return userCmd
}

func printUser(w io.Writer, user model.User) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", user.UserID, user.Email, user.Name, user.LastName)
}
