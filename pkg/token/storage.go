// Package token persists the OAuth token record. A token lives either in
// the project (keyed by working directory) or in the user's global config
// directory; the project copy takes precedence on lookup.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"chirp/pkg/env"
)

// ErrNotAuthenticated indicates no token record exists at any location.
var ErrNotAuthenticated = errors.New("not authenticated: run 'chirp login' first")

// StorageScope selects where a saved record lands.
type StorageScope string

const (
	ScopeProject StorageScope = "project"
	ScopeGlobal  StorageScope = "global"
)

const (
	projectDir    = ".chirp"
	tokenFileName = "token.json"
	ignorePattern = ".chirp/"
)

// Store handles token persistence across the project and global paths.
type Store struct {
	env    env.Context
	logger zerolog.Logger
}

// NewStore creates a store rooted at the given environment context.
func NewStore(ec env.Context, logger zerolog.Logger) *Store {
	return &Store{env: ec, logger: logger}
}

// ProjectPath is the token location keyed by the working directory.
func (s *Store) ProjectPath() string {
	return filepath.Join(s.env.WorkDir, projectDir, tokenFileName)
}

// GlobalPath is the shared fallback location.
func (s *Store) GlobalPath() string {
	return filepath.Join(s.env.HomeDir, ".config", "chirp", tokenFileName)
}

// PathFor maps a storage scope to its file path.
func (s *Store) PathFor(scope StorageScope) string {
	if scope == ScopeProject {
		return s.ProjectPath()
	}
	return s.GlobalPath()
}

// Find returns the first existing token path, project before global.
func (s *Store) Find() (string, bool) {
	for _, path := range []string{s.ProjectPath(), s.GlobalPath()} {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Load reads the resolved token record and reports which scope it came
// from, so a refreshed record overwrites the same file.
func (s *Store) Load() (*Record, StorageScope, error) {
	path, ok := s.Find()
	if !ok {
		return nil, "", ErrNotAuthenticated
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read token file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, "", fmt.Errorf("failed to parse token file %s: %w", path, err)
	}

	scope := ScopeGlobal
	if path == s.ProjectPath() {
		scope = ScopeProject
	}

	return &rec, scope, nil
}

// Save writes the full record at the given scope. The write goes through
// a temp file and rename so a reader never sees a torn record.
func (s *Store) Save(rec *Record, scope StorageScope) error {
	if rec == nil {
		return fmt.Errorf("cannot save nil token record")
	}

	path := s.PathFor(scope)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token record: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tokenFileName+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp token file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to set token file permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close token file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace token file: %w", err)
	}

	if scope == ScopeProject {
		s.ensureIgnored()
	}

	return nil
}

// ensureIgnored keeps the project token directory out of version control
// by appending the pattern to .gitignore, creating the file if needed.
// Best effort: failures are logged, never returned.
func (s *Store) ensureIgnored() {
	gitignore := filepath.Join(s.env.WorkDir, ".gitignore")

	data, err := os.ReadFile(gitignore)
	if err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Msg("could not read .gitignore")
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == ignorePattern {
			return
		}
	}

	entry := ignorePattern + "\n"
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		entry = "\n" + entry
	}

	f, err := os.OpenFile(gitignore, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		s.logger.Warn().Err(err).Msg("could not open .gitignore")
		return
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		s.logger.Warn().Err(err).Msg("could not update .gitignore")
		return
	}

	s.logger.Debug().Str("pattern", ignorePattern).Msg("added token directory to .gitignore")
}
