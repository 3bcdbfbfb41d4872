package oauth

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirp/pkg/config"
	"chirp/pkg/credentials"
	"chirp/pkg/env"
	"chirp/pkg/token"
)

type staticCreds struct {
	creds credentials.Credentials
	err   error
}

func (s staticCreds) Resolve() (credentials.Credentials, error) {
	return s.creds, s.err
}

// tokenEndpoint records token-endpoint requests and plays back canned
// responses.
type tokenEndpoint struct {
	calls     []url.Values
	basicID   string
	basicPass string
	respond   func(form url.Values) (int, map[string]any)
}

func (te *tokenEndpoint) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		te.calls = append(te.calls, r.PostForm)
		te.basicID, te.basicPass, _ = r.BasicAuth()

		status, body := te.respond(r.PostForm)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

func newTestManager(t *testing.T, te *tokenEndpoint) (*Manager, *token.Store) {
	t.Helper()

	srv := httptest.NewServer(te.handler())
	t.Cleanup(srv.Close)

	ec := env.Context{HomeDir: t.TempDir(), WorkDir: t.TempDir()}
	store := token.NewStore(ec, zerolog.Nop())

	cfg := &config.Config{
		AuthURL:      "https://auth.example/authorize",
		TokenURL:     srv.URL,
		CallbackPort: freePort(t),
		Scopes:       []string{"tweet.read", "offline.access"},
	}

	m := NewManager(staticCreds{creds: credentials.Credentials{ClientID: "abc", ClientSecret: "xyz"}}, store, cfg, zerolog.Nop())
	m.openURL = func(string) error { return nil }
	m.callbackTimeout = 2 * time.Second
	return m, store
}

func TestAccessTokenRefreshWindow(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		expiresAt   time.Time
		wantRefresh bool
		wantToken   string
	}{
		{name: "4 minutes left refreshes", expiresAt: now.Add(4 * time.Minute), wantRefresh: true, wantToken: "T2"},
		{name: "6 minutes left does not refresh", expiresAt: now.Add(6 * time.Minute), wantRefresh: false, wantToken: "T1"},
		{name: "already expired refreshes", expiresAt: now.Add(-time.Second), wantRefresh: true, wantToken: "T2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := &tokenEndpoint{respond: func(url.Values) (int, map[string]any) {
				return http.StatusOK, map[string]any{
					"access_token":  "T2",
					"refresh_token": "R2",
					"token_type":    "bearer",
					"expires_in":    7200,
				}
			}}
			m, store := newTestManager(t, te)
			m.now = func() time.Time { return now }

			require.NoError(t, store.Save(&token.Record{
				AccessToken:  "T1",
				RefreshToken: "R1",
				ExpiresAt:    tt.expiresAt,
				TokenType:    "bearer",
			}, token.ScopeGlobal))

			got, err := m.AccessToken(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, got)

			if tt.wantRefresh {
				require.Len(t, te.calls, 1)
				assert.Equal(t, "refresh_token", te.calls[0].Get("grant_type"))
				assert.Equal(t, "R1", te.calls[0].Get("refresh_token"))
				assert.Equal(t, "abc", te.basicID)
				assert.Equal(t, "xyz", te.basicPass)
			} else {
				assert.Empty(t, te.calls)
			}
		})
	}
}

func TestRefreshRotatesAndPersists(t *testing.T) {
	now := time.Now()
	te := &tokenEndpoint{respond: func(form url.Values) (int, map[string]any) {
		return http.StatusOK, map[string]any{
			"access_token":  "T2",
			"refresh_token": "R2",
			"token_type":    "bearer",
			"expires_in":    7200,
		}
	}}
	m, store := newTestManager(t, te)
	m.now = func() time.Time { return now }

	require.NoError(t, store.Save(&token.Record{
		AccessToken:  "T1",
		RefreshToken: "R1",
		ExpiresAt:    now.Add(-1 * time.Second),
		TokenType:    "bearer",
	}, token.ScopeGlobal))

	got, err := m.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "T2", got)

	rec, _, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "T2", rec.AccessToken)
	assert.Equal(t, "R2", rec.RefreshToken)
	assert.WithinDuration(t, now.Add(7200*time.Second), rec.ExpiresAt, time.Second)

	// The next refresh must present the rotated token, never R1.
	rec.ExpiresAt = now.Add(-1 * time.Second)
	require.NoError(t, store.Save(rec, token.ScopeGlobal))

	_, err = m.AccessToken(context.Background())
	require.NoError(t, err)
	require.Len(t, te.calls, 2)
	assert.Equal(t, "R2", te.calls[1].Get("refresh_token"))
}

func TestRefreshFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    map[string]any
		wantMsg string
	}{
		{
			name:    "error field",
			status:  http.StatusBadRequest,
			body:    map[string]any{"error": "invalid_grant", "error_description": "refresh token revoked"},
			wantMsg: "invalid_grant",
		},
		{
			name:    "missing refresh token",
			status:  http.StatusOK,
			body:    map[string]any{"access_token": "T2", "expires_in": 7200},
			wantMsg: "missing access or refresh token",
		},
		{
			name:    "missing access token",
			status:  http.StatusOK,
			body:    map[string]any{"refresh_token": "R2", "expires_in": 7200},
			wantMsg: "missing access or refresh token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := &tokenEndpoint{respond: func(url.Values) (int, map[string]any) {
				return tt.status, tt.body
			}}
			m, store := newTestManager(t, te)

			require.NoError(t, store.Save(&token.Record{
				AccessToken:  "T1",
				RefreshToken: "R1",
				ExpiresAt:    time.Now().Add(-time.Second),
				TokenType:    "bearer",
			}, token.ScopeGlobal))

			_, err := m.AccessToken(context.Background())
			var refreshErr *RefreshError
			require.ErrorAs(t, err, &refreshErr)
			assert.Contains(t, err.Error(), tt.wantMsg)

			// The stale record must be untouched after a failed refresh.
			rec, _, loadErr := store.Load()
			require.NoError(t, loadErr)
			assert.Equal(t, "R1", rec.RefreshToken)
		})
	}
}

func TestAccessTokenWithoutRecord(t *testing.T) {
	te := &tokenEndpoint{respond: func(url.Values) (int, map[string]any) {
		return http.StatusOK, map[string]any{}
	}}
	m, _ := newTestManager(t, te)

	_, err := m.AccessToken(context.Background())
	require.ErrorIs(t, err, token.ErrNotAuthenticated)
}

func TestAccessTokenWithoutCredentials(t *testing.T) {
	te := &tokenEndpoint{respond: func(url.Values) (int, map[string]any) {
		return http.StatusOK, map[string]any{}
	}}
	m, _ := newTestManager(t, te)
	m.creds = staticCreds{err: credentials.ErrMissing}

	_, err := m.AccessToken(context.Background())
	require.ErrorIs(t, err, credentials.ErrMissing)
}

// completeAuth wires openURL to act as the user's browser: it parses the
// authorization URL and immediately follows the redirect back.
func completeAuth(t *testing.T, m *Manager, query func(authQuery url.Values) url.Values) {
	t.Helper()
	m.openURL = func(authURL string) error {
		u, err := url.Parse(authURL)
		require.NoError(t, err)

		cb := fmt.Sprintf("http://127.0.0.1:%d/callback?%s", m.cfg.CallbackPort, query(u.Query()).Encode())
		resp, err := http.Get(cb)
		if err == nil {
			resp.Body.Close()
		}
		return err
	}
}

func TestAuthorizeEndToEnd(t *testing.T) {
	start := time.Now()
	te := &tokenEndpoint{respond: func(form url.Values) (int, map[string]any) {
		return http.StatusOK, map[string]any{
			"access_token":  "T1",
			"refresh_token": "R1",
			"token_type":    "bearer",
			"expires_in":    7200,
			"scope":         "tweet.read offline.access",
		}
	}}
	m, store := newTestManager(t, te)

	var challenge string
	completeAuth(t, m, func(authQuery url.Values) url.Values {
		challenge = authQuery.Get("code_challenge")
		assert.Equal(t, "S256", authQuery.Get("code_challenge_method"))
		assert.Equal(t, "abc", authQuery.Get("client_id"))
		assert.NotEmpty(t, authQuery.Get("state"))
		return url.Values{
			"code":  {"AUTHCODE1"},
			"state": {authQuery.Get("state")},
		}
	})

	rec, err := m.Authorize(context.Background(), token.ScopeGlobal)
	require.NoError(t, err)
	assert.Equal(t, "T1", rec.AccessToken)
	assert.Equal(t, "R1", rec.RefreshToken)

	// The exchange must carry the code, the verifier matching the
	// challenge, and Basic auth from the client credentials.
	require.Len(t, te.calls, 1)
	form := te.calls[0]
	assert.Equal(t, "authorization_code", form.Get("grant_type"))
	assert.Equal(t, "AUTHCODE1", form.Get("code"))
	assert.Equal(t, "abc", te.basicID)
	assert.Equal(t, "xyz", te.basicPass)

	verifier := form.Get("code_verifier")
	require.NotEmpty(t, verifier)
	sum := sha256.Sum256([]byte(verifier))
	assert.Equal(t, challenge, base64.RawURLEncoding.EncodeToString(sum[:]))

	saved, scope, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, token.ScopeGlobal, scope)
	assert.Equal(t, "T1", saved.AccessToken)
	assert.Equal(t, "R1", saved.RefreshToken)
	assert.Equal(t, "tweet.read offline.access", saved.Scope)
	assert.WithinDuration(t, start.Add(7200*time.Second), saved.ExpiresAt, 5*time.Second)
}

func TestAuthorizeDeniedSkipsExchange(t *testing.T) {
	te := &tokenEndpoint{respond: func(url.Values) (int, map[string]any) {
		t.Error("token endpoint must not be called on a denied callback")
		return http.StatusOK, map[string]any{}
	}}
	m, _ := newTestManager(t, te)

	completeAuth(t, m, func(authQuery url.Values) url.Values {
		return url.Values{
			"error":             {"access_denied"},
			"error_description": {"user cancelled"},
			"state":             {authQuery.Get("state")},
		}
	})

	_, err := m.Authorize(context.Background(), token.ScopeGlobal)
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Empty(t, te.calls)
}

func TestAuthorizeCsrfMismatch(t *testing.T) {
	te := &tokenEndpoint{respond: func(url.Values) (int, map[string]any) {
		t.Error("token endpoint must not be called on a state mismatch")
		return http.StatusOK, map[string]any{}
	}}
	m, _ := newTestManager(t, te)

	completeAuth(t, m, func(url.Values) url.Values {
		return url.Values{
			"code":  {"AUTHCODE1"},
			"state": {"forged"},
		}
	})

	_, err := m.Authorize(context.Background(), token.ScopeGlobal)
	require.ErrorIs(t, err, ErrCsrfMismatch)
	assert.Empty(t, te.calls)
}

func TestAuthorizeMissingRefreshToken(t *testing.T) {
	te := &tokenEndpoint{respond: func(url.Values) (int, map[string]any) {
		return http.StatusOK, map[string]any{
			"access_token": "T1",
			"token_type":   "bearer",
			"expires_in":   7200,
		}
	}}
	m, store := newTestManager(t, te)

	completeAuth(t, m, func(authQuery url.Values) url.Values {
		return url.Values{
			"code":  {"AUTHCODE1"},
			"state": {authQuery.Get("state")},
		}
	})

	_, err := m.Authorize(context.Background(), token.ScopeGlobal)
	require.ErrorIs(t, err, ErrMissingRefreshToken)

	// Nothing may be persisted for a non-renewable grant.
	_, statErr := os.Stat(store.GlobalPath())
	assert.True(t, os.IsNotExist(statErr))

	_, _, loadErr := store.Load()
	require.ErrorIs(t, loadErr, token.ErrNotAuthenticated)
}

func TestAuthorizeTimeout(t *testing.T) {
	te := &tokenEndpoint{respond: func(url.Values) (int, map[string]any) {
		return http.StatusOK, map[string]any{}
	}}
	m, _ := newTestManager(t, te)
	m.callbackTimeout = 50 * time.Millisecond
	m.openURL = func(string) error { return errors.New("no browser installed") }

	_, err := m.Authorize(context.Background(), token.ScopeGlobal)
	require.ErrorIs(t, err, ErrAuthTimeout)
}
