package oauth

import (
	"crypto/sha256"
	"encoding/base64"
	"regexp"
	"testing"
)

func TestNewSessionChallengeIsS256OfVerifier(t *testing.T) {
	sess, err := NewSession()
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	sum := sha256.Sum256([]byte(sess.Verifier))
	want := base64.RawURLEncoding.EncodeToString(sum[:])

	if sess.Challenge != want {
		t.Errorf("Challenge = %q, want SHA-256(verifier) = %q", sess.Challenge, want)
	}
}

func TestNewSessionUniqueness(t *testing.T) {
	seenVerifiers := make(map[string]bool)
	seenStates := make(map[string]bool)

	for i := 0; i < 100; i++ {
		sess, err := NewSession()
		if err != nil {
			t.Fatalf("NewSession() iteration %d error = %v", i, err)
		}

		if seenVerifiers[sess.Verifier] {
			t.Fatalf("duplicate verifier at iteration %d", i)
		}
		if seenStates[sess.State] {
			t.Fatalf("duplicate state at iteration %d", i)
		}
		if sess.Verifier == sess.State {
			t.Fatalf("verifier and state identical at iteration %d", i)
		}

		seenVerifiers[sess.Verifier] = true
		seenStates[sess.State] = true
	}
}

func TestNewSessionEncoding(t *testing.T) {
	validBase64URL := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	sess, err := NewSession()
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	tests := []struct {
		name    string
		value   string
		wantLen int
	}{
		{name: "verifier", value: sess.Verifier, wantLen: 43},  // 32 bytes
		{name: "challenge", value: sess.Challenge, wantLen: 43}, // SHA-256 digest
		{name: "state", value: sess.State, wantLen: 43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.value) != tt.wantLen {
				t.Errorf("length = %d, want %d", len(tt.value), tt.wantLen)
			}
			if !validBase64URL.MatchString(tt.value) {
				t.Errorf("%q is not unpadded base64url", tt.value)
			}
		})
	}
}
