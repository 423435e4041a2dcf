// Package session persists the admin bearer token between runs of the
// console. The token is opaque: no client-side validation is performed,
// an expired or revoked token is discovered reactively through a 401.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// TokenTTL is how long a stored token is considered usable. It mirrors the
// 7-day expiry of the admin session cookie issued by the backend.
const TokenTTL = 7 * 24 * time.Hour

// now is a test seam for time.Now.
var now = time.Now

type record struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store keeps the bearer token in a JSON file readable only by the
// current user.
type Store struct {
	path string
}

// NewStore returns a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the session file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ecom-admin", "session.json"), nil
}

// Set saves the token with a fresh TokenTTL expiry.
func (s *Store) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(record{Token: token, ExpiresAt: now().Add(TokenTTL)})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Token returns the stored token, or ok=false when no token is stored or
// the stored one has expired.
func (s *Store) Token() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return "", false
	}
	if r.Token == "" || !now().Before(r.ExpiresAt) {
		return "", false
	}
	return r.Token, true
}

// Clear removes the stored token. Clearing an already empty store is not
// an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Authenticated reports whether a usable token is present.
func (s *Store) Authenticated() bool {
	_, ok := s.Token()
	return ok
}
