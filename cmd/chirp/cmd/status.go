package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"chirp/pkg/token"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type statusOutput struct {
	Authenticated bool   `json:"authenticated"`
	Scope         string `json:"storage_scope,omitempty"`
	Path          string `json:"path,omitempty"`
	ExpiresAt     string `json:"expires_at,omitempty"`
	Expired       bool   `json:"expired,omitempty"`
	GrantedScopes string `json:"granted_scopes,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	rec, scope, err := app.store.Load()
	if err != nil {
		if errors.Is(err, token.ErrNotAuthenticated) {
			return printJSON(statusOutput{Authenticated: false})
		}
		return err
	}

	path, _ := app.store.Find()
	return printJSON(statusOutput{
		Authenticated: true,
		Scope:         string(scope),
		Path:          path,
		ExpiresAt:     rec.ExpiresAt.Format(time.RFC3339),
		Expired:       rec.ExpiresAt.Before(time.Now()),
		GrantedScopes: rec.Scope,
	})
}
