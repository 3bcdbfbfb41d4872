package config

import (
	"os"
	"path/filepath"
	"testing"

	"chirp/pkg/env"
)

func TestLoadDefaults(t *testing.T) {
	ec := env.Context{HomeDir: t.TempDir(), WorkDir: t.TempDir()}

	cfg, err := Load(ec)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AuthURL != DefaultAuthURL {
		t.Errorf("AuthURL = %q, want %q", cfg.AuthURL, DefaultAuthURL)
	}
	if cfg.TokenURL != DefaultTokenURL {
		t.Errorf("TokenURL = %q, want %q", cfg.TokenURL, DefaultTokenURL)
	}
	if cfg.CallbackPort != DefaultCallbackPort {
		t.Errorf("CallbackPort = %d, want %d", cfg.CallbackPort, DefaultCallbackPort)
	}
	if len(cfg.Scopes) == 0 {
		t.Error("Scopes must default to a non-empty list")
	}
	if got, want := cfg.RedirectURL(), "http://127.0.0.1:8585/callback"; got != want {
		t.Errorf("RedirectURL() = %q, want %q", got, want)
	}
}

func TestLoadOverrides(t *testing.T) {
	ec := env.Context{HomeDir: t.TempDir(), WorkDir: t.TempDir()}

	dir := filepath.Join(ec.HomeDir, ".config", "chirp")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	content := `
callback_port: 9999
scopes: [tweet.read]
onepassword_item: chirp-dev
log_level: debug
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(ec)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CallbackPort != 9999 {
		t.Errorf("CallbackPort = %d, want 9999", cfg.CallbackPort)
	}
	if len(cfg.Scopes) != 1 || cfg.Scopes[0] != "tweet.read" {
		t.Errorf("Scopes = %v, want [tweet.read]", cfg.Scopes)
	}
	if cfg.OnePassItem != "chirp-dev" {
		t.Errorf("OnePassItem = %q, want chirp-dev", cfg.OnePassItem)
	}
	// Unset fields still get defaults.
	if cfg.AuthURL != DefaultAuthURL {
		t.Errorf("AuthURL = %q, want default", cfg.AuthURL)
	}
	if got, want := cfg.RedirectURL(), "http://127.0.0.1:9999/callback"; got != want {
		t.Errorf("RedirectURL() = %q, want %q", got, want)
	}
}

func TestLoadMalformed(t *testing.T) {
	ec := env.Context{HomeDir: t.TempDir(), WorkDir: t.TempDir()}

	dir := filepath.Join(ec.HomeDir, ".config", "chirp")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("callback_port: [not a number"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(ec); err == nil {
		t.Fatal("Load() expected an error for malformed yaml")
	}
}
