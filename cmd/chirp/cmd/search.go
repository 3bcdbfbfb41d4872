package cmd

import (
	"github.com/spf13/cobra"

	"chirp/pkg/api"
)

var (
	searchMaxResults int
	searchNextToken  string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search recent posts",
	Long: `Search posts from the last seven days using the standard query
syntax, e.g. 'from:golang -is:retweet'.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchMaxResults, "max-results", 10, "number of results per page (10-100)")
	searchCmd.Flags().StringVar(&searchNextToken, "next-token", "", "pagination token from a previous page")
}

func runSearch(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	result, err := app.api.SearchRecent(cmd.Context(), args[0], api.SearchOptions{
		MaxResults: searchMaxResults,
		NextToken:  searchNextToken,
	})
	if err != nil {
		return err
	}
	return printJSON(result)
}
