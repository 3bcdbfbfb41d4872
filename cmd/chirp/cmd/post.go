package cmd

import (
	"github.com/spf13/cobra"

	"chirp/pkg/api"
)

var (
	postReplyTo string
	postQuote   string
)

var postCmd = &cobra.Command{
	Use:   "post <text>",
	Short: "Publish a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runPost,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete one of your posts",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(deleteCmd)
	postCmd.Flags().StringVar(&postReplyTo, "reply-to", "", "post id to reply to")
	postCmd.Flags().StringVar(&postQuote, "quote", "", "post id to quote")
}

func runPost(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	req := &api.PostRequest{Text: args[0], QuoteTweetID: postQuote}
	if postReplyTo != "" {
		req.Reply = &api.ReplyRef{InReplyToTweetID: postReplyTo}
	}

	created, err := app.api.CreatePost(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printJSON(created)
}

func runDelete(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	deleted, err := app.api.DeletePost(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printJSON(deleted)
}
