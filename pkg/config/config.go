package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"chirp/pkg/env"
)

// Default endpoint and flow settings. Overridable through config.yaml so
// tests and staging tenants can point the client elsewhere.
const (
	DefaultAuthURL      = "https://x.com/i/oauth2/authorize"
	DefaultTokenURL     = "https://api.x.com/2/oauth2/token"
	DefaultAPIBaseURL   = "https://api.x.com/2"
	DefaultCallbackPort = 8585
)

// DefaultScopes covers every subcommand the CLI ships. offline.access is
// required for the refresh token grant.
var DefaultScopes = []string{
	"tweet.read",
	"tweet.write",
	"users.read",
	"like.read",
	"like.write",
	"list.read",
	"list.write",
	"bookmark.read",
	"bookmark.write",
	"offline.access",
}

// Config holds the client settings read from config.yaml.
type Config struct {
	AuthURL      string   `yaml:"auth_url"`
	TokenURL     string   `yaml:"token_url"`
	APIBaseURL   string   `yaml:"api_base_url"`
	CallbackPort int      `yaml:"callback_port"`
	Scopes       []string `yaml:"scopes"`
	OnePassItem  string   `yaml:"onepassword_item"`
	LogLevel     string   `yaml:"log_level"`
}

// Path returns the config file location under the user config directory.
func Path(ec env.Context) string {
	return filepath.Join(ec.HomeDir, ".config", "chirp", "config.yaml")
}

// Load reads config.yaml if present and fills in defaults for anything
// unset. A missing file is not an error; every setting has a default.
func Load(ec env.Context) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(Path(ec))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.AuthURL == "" {
		c.AuthURL = DefaultAuthURL
	}
	if c.TokenURL == "" {
		c.TokenURL = DefaultTokenURL
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.CallbackPort == 0 {
		c.CallbackPort = DefaultCallbackPort
	}
	if len(c.Scopes) == 0 {
		c.Scopes = append([]string(nil), DefaultScopes...)
	}
}

// RedirectURL builds the loopback redirect URI registered with the
// provider. The literal IP matters: some providers reject hostname-based
// loopback redirects.
func (c *Config) RedirectURL() string {
	return fmt.Sprintf("http://127.0.0.1:%d/callback", c.CallbackPort)
}
