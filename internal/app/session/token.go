/*
Package session holds the authenticated user's state for the lifetime of the process.

This file defines the TokenKeeper, which persists the opaque session token across
process restarts (the terminal equivalent of the browser's jwt cookie), and a helper
that peeks at the token's expiry claim for logging.
*/
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenKeeper reads and writes the persisted session token file.
type TokenKeeper struct {
	path string
}

// NewTokenKeeper returns a TokenKeeper storing the token at path.
func NewTokenKeeper(path string) TokenKeeper {
	return TokenKeeper{path: path}
}

// Save writes the token to disk with owner-only permissions, creating the
// parent directory if needed.
func (k TokenKeeper) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(k.path), 0o700); err != nil {
		return fmt.Errorf("cannot create token dir: %w", err)
	}

	if err := os.WriteFile(k.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("cannot write token file: %w", err)
	}

	return nil
}

// Load returns the persisted token, or "" (with a nil error) when none exists.
func (k TokenKeeper) Load() (string, error) {
	data, err := os.ReadFile(k.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("cannot read token file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Clear removes the persisted token. A missing file is not an error.
func (k TokenKeeper) Clear() error {
	if err := os.Remove(k.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot remove token file: %w", err)
	}

	return nil
}

// PeekExpiry extracts the expiry claim from a JWT without verifying its
// signature. The result is used only for logging; the backend remains the
// authority on token validity.
func PeekExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}

	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}

	return time.Unix(int64(exp), 0), true
}
