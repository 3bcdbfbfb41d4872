// Package credentials resolves the OAuth client credentials from a
// priority-ordered set of sources. The credentials file wins over the
// 1Password lookup; the first source that yields a usable pair is used
// and later sources are never consulted.
package credentials

import (
	"errors"
	"fmt"
)

// ErrMissing indicates no configured source produced credentials.
var ErrMissing = errors.New("no client credentials found: create the credentials file or configure a 1Password item")

// Credentials is the OAuth client identity. Immutable once loaded.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

func (c Credentials) valid() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Source yields client credentials from one backing location. ok reports
// whether the source had anything at all; err is reserved for real
// failures (unreadable file, malformed JSON).
type Source interface {
	Name() string
	Fetch() (creds Credentials, ok bool, err error)
}

// Chain tries each source in order and returns the first hit.
type Chain struct {
	sources []Source
}

// NewChain builds a chain preserving the given precedence order.
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

// Resolve walks the chain. It fails with ErrMissing when every source
// comes up empty, or with the first source's error when one breaks.
func (c *Chain) Resolve() (Credentials, error) {
	for _, src := range c.sources {
		creds, ok, err := src.Fetch()
		if err != nil {
			return Credentials{}, fmt.Errorf("credentials source %s: %w", src.Name(), err)
		}
		if ok {
			return creds, nil
		}
	}
	return Credentials{}, ErrMissing
}
