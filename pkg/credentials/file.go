package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"chirp/pkg/env"
)

// FileSource reads credentials from the JSON file under the user config
// directory: {"client_id": "...", "client_secret": "..."}.
type FileSource struct {
	path string
}

// NewFileSource creates a file source rooted at the standard location.
func NewFileSource(ec env.Context) *FileSource {
	return &FileSource{path: filepath.Join(ec.HomeDir, ".config", "chirp", "credentials.json")}
}

// NewFileSourceAt creates a file source for an explicit path.
func NewFileSourceAt(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return "file" }

// Fetch reads and parses the credentials file. An absent file means the
// source is empty, not broken.
func (s *FileSource) Fetch() (Credentials, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, false, nil
		}
		return Credentials{}, false, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, false, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	if !creds.valid() {
		return Credentials{}, false, fmt.Errorf("%s is missing client_id or client_secret", s.path)
	}

	return creds, true, nil
}
