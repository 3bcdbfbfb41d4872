package credentials

import (
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"
)

// OnePasswordSource fetches credentials from a 1Password item via the op
// CLI. The item needs client_id and client_secret fields.
type OnePasswordSource struct {
	item   string
	logger zerolog.Logger

	// runner is swappable for tests; defaults to exec'ing op.
	runner func(args ...string) ([]byte, error)
}

// NewOnePasswordSource creates a source for the named item. An empty item
// name disables the source.
func NewOnePasswordSource(item string, logger zerolog.Logger) *OnePasswordSource {
	return &OnePasswordSource{
		item:   item,
		logger: logger,
		runner: func(args ...string) ([]byte, error) {
			return exec.Command("op", args...).Output()
		},
	}
}

func (s *OnePasswordSource) Name() string { return "1password" }

type opItem struct {
	Fields []struct {
		Label string `json:"label"`
		Value string `json:"value"`
	} `json:"fields"`
}

// Fetch shells out to `op item get`. A missing op binary or a failed
// lookup makes the source empty rather than fatal, so the chain can fall
// through to its terminal missing-credentials error.
func (s *OnePasswordSource) Fetch() (Credentials, bool, error) {
	if s.item == "" {
		return Credentials{}, false, nil
	}

	out, err := s.runner("item", "get", s.item, "--format", "json")
	if err != nil {
		s.logger.Debug().Err(err).Str("item", s.item).Msg("1password lookup failed")
		return Credentials{}, false, nil
	}

	var item opItem
	if err := json.Unmarshal(out, &item); err != nil {
		return Credentials{}, false, fmt.Errorf("failed to parse op output: %w", err)
	}

	var creds Credentials
	for _, f := range item.Fields {
		switch f.Label {
		case "client_id":
			creds.ClientID = f.Value
		case "client_secret":
			creds.ClientSecret = f.Value
		}
	}

	if !creds.valid() {
		return Credentials{}, false, fmt.Errorf("1password item %q is missing client_id or client_secret fields", s.item)
	}

	return creds, true, nil
}
