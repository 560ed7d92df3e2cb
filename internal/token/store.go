// Package token persists the bearer token issued by the travel-booking
// API between CLI invocations.
package token

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tripdesk/internal/config"
)

// Store reads and writes the bearer token file.
type Store struct {
	path string
}

// NewStore creates a Store. An empty path uses the default location
// under the user config directory.
func NewStore(path string) (*Store, error) {
	if path == "" {
		dir, err := config.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "token")
	}
	return &Store{path: path}, nil
}

// Path returns the token file location.
func (s *Store) Path() string {
	return s.path
}

// Save writes the token with owner-only permissions.
func (s *Store) Save(tok string) error {
	if tok == "" {
		return fmt.Errorf("refusing to save empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(tok+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Load returns the stored token. A missing file returns an empty
// string and no error; an absent token is a normal state.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the token file. Clearing an absent token is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
