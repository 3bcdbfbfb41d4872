package oauth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// ChallengeMethod is sent alongside the code challenge. RFC 7636 S256 is
// the only method the client supports.
const ChallengeMethod = "S256"

// Session holds the ephemeral secrets for one authorization round trip.
// Never persisted, never reused across attempts.
type Session struct {
	Verifier  string
	Challenge string
	State     string
}

// NewSession generates a fresh PKCE verifier/challenge pair plus an
// independent state token for CSRF protection.
func NewSession() (*Session, error) {
	verifier, err := randomToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate code verifier: %w", err)
	}

	state, err := randomToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	return &Session{
		Verifier:  verifier,
		Challenge: challengeFor(verifier),
		State:     state,
	}, nil
}

// challengeFor computes the S256 challenge: base64url, no padding.
func challengeFor(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
