package oauth

import (
	"errors"
	"fmt"
)

// Terminal authentication failures. None of these are retried within an
// invocation; the caller decides whether to re-run the login flow.
var (
	// ErrCsrfMismatch means the callback carried a state value we never
	// issued. The code that came with it must not be trusted.
	ErrCsrfMismatch = errors.New("state parameter mismatch: possible CSRF attack, aborting")

	// ErrAuthTimeout means no valid callback arrived before the deadline.
	ErrAuthTimeout = errors.New("timed out waiting for the browser callback")

	// ErrMissingRefreshToken means the grant succeeded but cannot be
	// renewed. The guidance matters: the usual cause is a prior
	// authorization of the same client that was never revoked.
	ErrMissingRefreshToken = errors.New("authorization succeeded but the provider returned no refresh token; " +
		"revoke this app's access under Settings > Security > Apps and sessions, then run 'chirp login' again")
)

// DeniedError is the provider declining the authorization request, e.g.
// the user pressed cancel on the consent page.
type DeniedError struct {
	Code        string
	Description string
}

func (e *DeniedError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("authorization denied: %s (%s)", e.Code, e.Description)
	}
	return fmt.Sprintf("authorization denied: %s", e.Code)
}

// ExchangeError wraps a failed authorization-code exchange.
type ExchangeError struct {
	Err error
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("token exchange failed: %v", e.Err)
}

func (e *ExchangeError) Unwrap() error { return e.Err }

// RefreshError wraps a failed token refresh. The caller must re-run the
// full login flow; there is no partial recovery.
type RefreshError struct {
	Reason string
	Err    error
}

func (e *RefreshError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token refresh failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("token refresh failed: %s", e.Reason)
}

func (e *RefreshError) Unwrap() error { return e.Err }
