package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
)

// TokenProvider supplies a bearer token for API authentication.
type TokenProvider interface {
	AccessToken() (string, error)
}

// Store persists the viewer's session between runs as a single JSON file.
type Store struct {
	path string
}

// NewStore creates a session store at the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

type sessionFile struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	UserID       string `json:"user_id"`
	Email        string `json:"email,omitempty"`
	Username     string `json:"username,omitempty"`
}

// Load returns the stored session, or domain.ErrNoSession when none exists.
func (s *Store) Load() (app.Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return app.Session{}, domain.ErrNoSession
	}
	if err != nil {
		return app.Session{}, fmt.Errorf("reading session from %s: %w", s.path, err)
	}

	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return app.Session{}, fmt.Errorf("parsing session file %s: %w", s.path, err)
	}

	sess := app.Session{
		AccessToken:  f.AccessToken,
		RefreshToken: f.RefreshToken,
		UserID:       f.UserID,
		Email:        f.Email,
		Username:     f.Username,
	}
	if !sess.Valid() {
		return app.Session{}, domain.ErrNoSession
	}
	return sess, nil
}

// Save writes the session with owner-only permissions.
func (s *Store) Save(sess app.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	data, err := json.MarshalIndent(sessionFile{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		UserID:       sess.UserID,
		Email:        sess.Email,
		Username:     sess.Username,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session to %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the stored session. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session %s: %w", s.path, err)
	}
	return nil
}

// SessionTokenProvider yields the signed-in viewer's access token, falling
// back to the public anon key for guest reads.
type SessionTokenProvider struct {
	store   *Store
	anonKey string
}

// NewSessionTokenProvider creates a TokenProvider over the session store.
func NewSessionTokenProvider(store *Store, anonKey string) *SessionTokenProvider {
	return &SessionTokenProvider{store: store, anonKey: anonKey}
}

// AccessToken returns the viewer's token when signed in, else the anon key.
func (p *SessionTokenProvider) AccessToken() (string, error) {
	sess, err := p.store.Load()
	if errors.Is(err, domain.ErrNoSession) {
		return p.anonKey, nil
	}
	if err != nil {
		return "", err
	}
	return sess.AccessToken, nil
}
