package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chirp/pkg/token"
)

var loginProject bool

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize chirp with your account",
	Long: `Authorize chirp via the browser-based OAuth flow.

The token is saved globally by default. With --project it is saved under
./.chirp/ instead (and .gitignore is updated to exclude it), taking
precedence over the global token when commands run from this directory.`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().BoolVar(&loginProject, "project", false, "save the token for this project directory only")
}

func runLogin(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	scope := token.ScopeGlobal
	if loginProject {
		scope = token.ScopeProject
	}

	rec, err := app.tokens.Authorize(cmd.Context(), scope)
	if err != nil {
		return err
	}

	fmt.Printf("\nAuthorized. Token saved to %s\n", app.store.PathFor(scope))
	fmt.Printf("Granted scopes: %s\n", rec.Scope)
	return nil
}
