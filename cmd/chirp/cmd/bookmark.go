package cmd

import (
	"github.com/spf13/cobra"
)

var bookmarkNextToken string

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage bookmarks",
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add <post-id>",
	Short: "Bookmark a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		out, err := app.api.AddBookmark(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var bookmarkRemoveCmd = &cobra.Command{
	Use:   "remove <post-id>",
	Short: "Remove a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		out, err := app.api.RemoveBookmark(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your bookmarks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		out, err := app.api.Bookmarks(cmd.Context(), bookmarkNextToken)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

func init() {
	rootCmd.AddCommand(bookmarkCmd)
	bookmarkCmd.AddCommand(bookmarkAddCmd, bookmarkRemoveCmd, bookmarkListCmd)
	bookmarkListCmd.Flags().StringVar(&bookmarkNextToken, "next-token", "", "pagination token from a previous page")
}
