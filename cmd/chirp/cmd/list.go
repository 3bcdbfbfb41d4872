package cmd

import (
	"github.com/spf13/cobra"

	"chirp/pkg/api"
)

var (
	listDescription string
	listPrivate     bool
	listNextToken   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage lists",
}

var listCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		out, err := app.api.CreateList(cmd.Context(), &api.CreateListRequest{
			Name:        args[0],
			Description: listDescription,
			Private:     listPrivate,
		})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var listDeleteCmd = &cobra.Command{
	Use:   "delete <list-id>",
	Short: "Delete a list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		out, err := app.api.DeleteList(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var listAddCmd = &cobra.Command{
	Use:   "add <list-id> <user-id>",
	Short: "Add a member to a list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		out, err := app.api.AddListMember(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var listRemoveCmd = &cobra.Command{
	Use:   "remove <list-id> <user-id>",
	Short: "Remove a member from a list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		out, err := app.api.RemoveListMember(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var listOwnedCmd = &cobra.Command{
	Use:   "owned",
	Short: "Show lists you own",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		out, err := app.api.OwnedLists(cmd.Context(), listNextToken)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listCreateCmd, listDeleteCmd, listAddCmd, listRemoveCmd, listOwnedCmd)
	listCreateCmd.Flags().StringVar(&listDescription, "description", "", "list description")
	listCreateCmd.Flags().BoolVar(&listPrivate, "private", false, "make the list private")
	listOwnedCmd.Flags().StringVar(&listNextToken, "next-token", "", "pagination token from a previous page")
}
