package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/AWKRID/track/app"
)

// Service implements app.AuthService against the backend's GoTrue auth API.
type Service struct {
	baseURL string
	anonKey string
	store   *Store
	http    *http.Client

	mu   sync.Mutex
	subs []func(app.Session, bool)
}

// NewService creates an auth service for the given project URL and anon key.
func NewService(baseURL, anonKey string, store *Store) *Service {
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		store:   store,
		http:    &http.Client{},
	}
}

// CurrentSession returns the stored session.
func (s *Service) CurrentSession(_ context.Context) (app.Session, error) {
	return s.store.Load()
}

// Subscribe registers fn for session-change notifications.
func (s *Service) Subscribe(fn func(app.Session, bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Service) notify(sess app.Session, signedIn bool) {
	s.mu.Lock()
	subs := append([]func(app.Session, bool){}, s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(sess, signedIn)
	}
}

// tokenResponse is the subset of GoTrue's token/signup payload we use.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		UserMetadata struct {
			Username string `json:"username"`
		} `json:"user_metadata"`
	} `json:"user"`
	// Signup responses without a session nest the user at top level instead.
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Username string `json:"username"`
	} `json:"user_metadata"`
}

func (r tokenResponse) session() app.Session {
	sess := app.Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		UserID:       r.User.ID,
		Email:        r.User.Email,
		Username:     r.User.UserMetadata.Username,
	}
	if sess.UserID == "" {
		sess.UserID = r.ID
		sess.Email = r.Email
		sess.Username = r.UserMetadata.Username
	}
	return sess
}

// SignIn exchanges email/password for a session, persists it and notifies
// subscribers.
func (s *Service) SignIn(ctx context.Context, email, password string) (app.Session, error) {
	body := map[string]string{"email": email, "password": password}
	data, err := s.post(ctx, "/auth/v1/token?grant_type=password", body, "")
	if err != nil {
		return app.Session{}, err
	}

	var resp tokenResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return app.Session{}, fmt.Errorf("parsing sign-in response: %w", err)
	}

	sess := resp.session()
	if _, err := uuid.Parse(sess.UserID); err != nil {
		return app.Session{}, fmt.Errorf("sign-in returned malformed user id %q", sess.UserID)
	}
	if err := s.store.Save(sess); err != nil {
		return app.Session{}, err
	}

	s.notify(sess, true)
	return sess, nil
}

// SignUp registers an account carrying the display username as user metadata.
// When the backend requires email confirmation the returned session has no
// access token and nothing is persisted.
func (s *Service) SignUp(ctx context.Context, email, password, username string) (app.Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"username": username},
	}
	data, err := s.post(ctx, "/auth/v1/signup", body, "")
	if err != nil {
		return app.Session{}, err
	}

	var resp tokenResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return app.Session{}, fmt.Errorf("parsing sign-up response: %w", err)
	}

	sess := resp.session()
	if !sess.SignedIn() {
		return sess, nil
	}
	if err := s.store.Save(sess); err != nil {
		return app.Session{}, err
	}

	s.notify(sess, true)
	return sess, nil
}

// SignOut revokes the session server-side (best effort) and clears the store.
func (s *Service) SignOut(ctx context.Context) error {
	if sess, err := s.store.Load(); err == nil {
		// Revocation failure doesn't keep the viewer signed in locally.
		_, _ = s.post(ctx, "/auth/v1/logout", struct{}{}, sess.AccessToken)
	}
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.notify(app.Session{}, false)
	return nil
}

func (s *Service) post(ctx context.Context, path string, body any, bearer string) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer == "" {
		bearer = s.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, authError(data, resp.StatusCode)
	}
	return data, nil
}

// authError surfaces the backend's own message; the UI shows it verbatim for
// authentication failures.
func authError(data []byte, status int) error {
	var e struct {
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
	}
	if err := json.Unmarshal(data, &e); err == nil {
		for _, msg := range []string{e.ErrorDescription, e.Msg, e.Message} {
			if msg != "" {
				return errors.New(msg)
			}
		}
	}
	return fmt.Errorf("auth request failed with status %d", status)
}

var _ app.AuthService = (*Service)(nil)
