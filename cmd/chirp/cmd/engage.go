package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// The four engagement verbs share one shape: exactly one post id in,
// one small JSON confirmation out.

var likeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	RunE: engage(func(app *app, ctx context.Context, id string) (any, error) {
		return app.api.Like(ctx, id)
	}),
}

var unlikeCmd = &cobra.Command{
	Use:   "unlike <post-id>",
	Short: "Remove a like",
	Args:  cobra.ExactArgs(1),
	RunE: engage(func(app *app, ctx context.Context, id string) (any, error) {
		return app.api.Unlike(ctx, id)
	}),
}

var repostCmd = &cobra.Command{
	Use:   "repost <post-id>",
	Short: "Repost to your timeline",
	Args:  cobra.ExactArgs(1),
	RunE: engage(func(app *app, ctx context.Context, id string) (any, error) {
		return app.api.Repost(ctx, id)
	}),
}

var unrepostCmd = &cobra.Command{
	Use:   "unrepost <post-id>",
	Short: "Remove a repost",
	Args:  cobra.ExactArgs(1),
	RunE: engage(func(app *app, ctx context.Context, id string) (any, error) {
		return app.api.UnRepost(ctx, id)
	}),
}

func init() {
	rootCmd.AddCommand(likeCmd, unlikeCmd, repostCmd, unrepostCmd)
}

func engage(call func(*app, context.Context, string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		out, err := call(app, cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(out)
	}
}
