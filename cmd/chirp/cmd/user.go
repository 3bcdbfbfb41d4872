package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		me, err := app.api.Me(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(me)
	},
}

var userCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Look up a user by handle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		user, err := app.api.UserByUsername(cmd.Context(), strings.TrimPrefix(args[0], "@"))
		if err != nil {
			return err
		}
		return printJSON(user)
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd, userCmd)
}
