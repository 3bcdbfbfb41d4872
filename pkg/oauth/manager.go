// Package oauth implements the authorization-code-with-PKCE flow and the
// token lifecycle every authenticated command depends on: load, refresh
// near expiry, persist the rotated record, hand back a usable token.
package oauth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"chirp/pkg/config"
	"chirp/pkg/credentials"
	"chirp/pkg/token"
)

// RefreshWindow is the buffer before expiry that triggers a refresh, so a
// token never expires mid-flight of the request depending on it.
const RefreshWindow = 5 * time.Minute

// CredentialsResolver yields the OAuth client credentials.
// *credentials.Chain is the production implementation.
type CredentialsResolver interface {
	Resolve() (credentials.Credentials, error)
}

// Manager owns the token lifecycle. All collaborators are injected; there
// is no package-level state.
type Manager struct {
	creds  CredentialsResolver
	store  *token.Store
	cfg    *config.Config
	client *http.Client
	logger zerolog.Logger

	// Injection points for tests.
	now             func() time.Time
	openURL         func(string) error
	callbackTimeout time.Duration
}

// NewManager wires a manager from its collaborators.
func NewManager(creds CredentialsResolver, store *token.Store, cfg *config.Config, logger zerolog.Logger) *Manager {
	return &Manager{
		creds:           creds,
		store:           store,
		cfg:             cfg,
		client:          &http.Client{Timeout: 30 * time.Second},
		logger:          logger,
		now:             time.Now,
		openURL:         browser.OpenURL,
		callbackTimeout: DefaultCallbackTimeout,
	}
}

// AccessToken returns a currently valid access token, refreshing and
// persisting the record first when it is inside the refresh window.
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	creds, err := m.creds.Resolve()
	if err != nil {
		return "", err
	}

	rec, scope, err := m.store.Load()
	if err != nil {
		return "", err
	}

	if rec.ExpiresWithin(RefreshWindow, m.now()) {
		m.logger.Debug().Time("expires_at", rec.ExpiresAt).Msg("token near expiry, refreshing")

		rec, err = m.refresh(ctx, creds, rec)
		if err != nil {
			return "", err
		}
		if err := m.store.Save(rec, scope); err != nil {
			return "", fmt.Errorf("failed to persist refreshed token: %w", err)
		}
	}

	return rec.AccessToken, nil
}

// Authorize runs the full browser-based authorization flow and persists
// the resulting token record at the given scope.
func (m *Manager) Authorize(ctx context.Context, scope token.StorageScope) (*token.Record, error) {
	creds, err := m.creds.Resolve()
	if err != nil {
		return nil, err
	}

	sess, err := NewSession()
	if err != nil {
		return nil, err
	}

	conf := m.oauthConfig(creds)
	authURL := conf.AuthCodeURL(
		sess.State,
		oauth2.SetAuthURLParam("code_challenge", sess.Challenge),
		oauth2.SetAuthURLParam("code_challenge_method", ChallengeMethod),
	)

	listener, err := listenCallback(m.cfg.CallbackPort, sess.State)
	if err != nil {
		return nil, err
	}

	// Best effort: a failed launch just means the user clicks the
	// printed URL themselves.
	if err := m.openURL(authURL); err != nil {
		m.logger.Debug().Err(err).Msg("could not open browser")
	}
	fmt.Printf("Opening your browser to authorize chirp.\nIf it does not open, visit:\n\n%s\n\nWaiting for authorization...\n", authURL)

	code, err := listener.Await(ctx, m.callbackTimeout)
	if err != nil {
		return nil, err
	}

	tok, err := conf.Exchange(ctx, code, oauth2.VerifierOption(sess.Verifier))
	if err != nil {
		return nil, &ExchangeError{Err: err}
	}

	// Without a refresh token the session dies with the access token and
	// every expiry would force a new browser round trip. Refuse to
	// persist a record we cannot renew.
	if tok.RefreshToken == "" {
		return nil, ErrMissingRefreshToken
	}

	rec := m.recordFromToken(tok)
	if err := m.store.Save(rec, scope); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	m.logger.Info().Str("scope", string(scope)).Time("expires_at", rec.ExpiresAt).Msg("authorization complete")
	return rec, nil
}

func (m *Manager) oauthConfig(creds credentials.Credentials) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  m.cfg.RedirectURL(),
		Scopes:       m.cfg.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  m.cfg.AuthURL,
			TokenURL: m.cfg.TokenURL,
			// client_id:client_secret as HTTP Basic auth on the token
			// endpoint, which is what the platform expects.
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}

func (m *Manager) recordFromToken(tok *oauth2.Token) *token.Record {
	scope := strings.Join(m.cfg.Scopes, " ")
	if granted, ok := tok.Extra("scope").(string); ok && granted != "" {
		scope = granted
	}

	tokenType := tok.TokenType
	if tokenType == "" {
		tokenType = "bearer"
	}

	return &token.Record{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry,
		Scope:        scope,
		TokenType:    tokenType,
	}
}
