package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"chirp/pkg/credentials"
	"chirp/pkg/token"
)

type refreshResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	TokenType        string `json:"token_type"`
	Scope            string `json:"scope"`
	ExpiresIn        int64  `json:"expires_in"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// refresh exchanges the current refresh token for a new access/refresh
// pair. The provider rotates refresh tokens: the returned record always
// carries a new one and the old one is dead either way, which is why a
// response missing either token is a hard failure.
func (m *Manager) refresh(ctx context.Context, creds credentials.Credentials, rec *token.Record) (*token.Record, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {rec.RefreshToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &RefreshError{Reason: "building request", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(creds.ClientID, creds.ClientSecret)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, &RefreshError{Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	var body refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &RefreshError{Reason: fmt.Sprintf("unreadable response (status %d)", resp.StatusCode), Err: err}
	}

	if body.Error != "" {
		reason := body.Error
		if body.ErrorDescription != "" {
			reason = fmt.Sprintf("%s (%s)", body.Error, body.ErrorDescription)
		}
		return nil, &RefreshError{Reason: reason}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &RefreshError{Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}
	if body.AccessToken == "" || body.RefreshToken == "" {
		return nil, &RefreshError{Reason: "response missing access or refresh token"}
	}

	scope := body.Scope
	if scope == "" {
		scope = rec.Scope
	}
	tokenType := body.TokenType
	if tokenType == "" {
		tokenType = rec.TokenType
	}

	return &token.Record{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		ExpiresAt:    m.now().Add(time.Duration(body.ExpiresIn) * time.Second),
		Scope:        scope,
		TokenType:    tokenType,
	}, nil
}
