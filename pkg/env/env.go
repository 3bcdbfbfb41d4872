package env

import (
	"fmt"
	"os"
)

// Context carries the file-system roots everything path-related hangs off.
// Injecting it keeps the token store and config loader testable with temp
// directories instead of the real home directory.
type Context struct {
	HomeDir string
	WorkDir string
}

// Detect resolves the context from the running process.
func Detect() (Context, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Context{}, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return Context{}, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	return Context{HomeDir: home, WorkDir: wd}, nil
}
