package cmd

import (
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "chirp",
	Short: "Command-line client for the X API",
	Long: `chirp posts, searches and manages lists from your terminal.

Authenticate once:
  chirp login

Then use any command; responses are printed as JSON:
  chirp post "hello from the terminal"
  chirp search "from:golang"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}
