package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	return NewService(srv.URL, "anon-key", store), store
}

func TestSignIn_PersistsSessionAndNotifies(t *testing.T) {
	svc, store := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("path got %q", r.URL.Path)
		}
		if r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("grant_type got %q", r.URL.Query().Get("grant_type"))
		}
		if r.Header.Get("apikey") != "anon-key" {
			t.Errorf("apikey header got %q", r.Header.Get("apikey"))
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if body["email"] != "mina@example.com" {
			t.Errorf("email got %q", body["email"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "jwt-token",
			"refresh_token": "refresh-token",
			"user": {
				"id": "` + testUserID + `",
				"email": "mina@example.com",
				"user_metadata": {"username": "mina"}
			}
		}`))
	})

	var notified []app.Session
	svc.Subscribe(func(s app.Session, signedIn bool) {
		if !signedIn {
			t.Error("sign-in notified signedIn=false")
		}
		notified = append(notified, s)
	})

	sess, err := svc.SignIn(context.Background(), "mina@example.com", "secret")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if sess.Username != "mina" || sess.UserID != testUserID {
		t.Fatalf("session got %#v", sess)
	}
	if len(notified) != 1 || notified[0] != sess {
		t.Fatalf("subscriber got %#v", notified)
	}

	stored, err := store.Load()
	if err != nil {
		t.Fatalf("stored session: %v", err)
	}
	if stored != sess {
		t.Fatalf("persisted session mismatch: %#v", stored)
	}
}

func TestSignIn_SurfacesBackendMessageVerbatim(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_description": "Invalid login credentials"}`))
	})

	_, err := svc.SignIn(context.Background(), "mina@example.com", "wrong")
	if err == nil || err.Error() != "Invalid login credentials" {
		t.Fatalf("got %v, want the backend message verbatim", err)
	}
}

func TestSignUp_PendingConfirmationPersistsNothing(t *testing.T) {
	svc, store := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/signup" {
			t.Errorf("path got %q", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		meta, _ := body["data"].(map[string]any)
		if meta["username"] != "mina" {
			t.Errorf("username metadata got %v", meta["username"])
		}
		// Confirmation pending: user without a session.
		w.Write([]byte(`{"id": "` + testUserID + `", "email": "mina@example.com"}`))
	})

	svc.Subscribe(func(app.Session, bool) {
		t.Error("pending sign-up must not notify subscribers")
	})

	sess, err := svc.SignUp(context.Background(), "mina@example.com", "secret", "mina")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if sess.SignedIn() {
		t.Fatalf("pending sign-up yielded a signed-in session: %#v", sess)
	}
	if _, err := store.Load(); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("pending sign-up persisted a session: %v", err)
	}
}

func TestSignOut_ClearsStoreAndNotifies(t *testing.T) {
	var sawLogout bool
	svc, store := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/v1/logout" {
			sawLogout = true
			if r.Header.Get("Authorization") != "Bearer jwt-token" {
				t.Errorf("logout bearer got %q", r.Header.Get("Authorization"))
			}
		}
		w.WriteHeader(http.StatusNoContent)
	})
	if err := store.Save(testSession()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var signedOut bool
	svc.Subscribe(func(s app.Session, signedIn bool) {
		if signedIn || s.SignedIn() {
			t.Errorf("sign-out notified %#v signedIn=%v", s, signedIn)
		}
		signedOut = true
	})

	if err := svc.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if !sawLogout {
		t.Fatal("logout endpoint never called")
	}
	if !signedOut {
		t.Fatal("subscriber not notified")
	}
	if _, err := store.Load(); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("session survived sign-out: %v", err)
	}
}
