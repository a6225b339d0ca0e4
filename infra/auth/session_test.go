package auth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
)

const testUserID = "2f1b9c1e-7a64-4c2a-9f1e-0a3b5c7d9e11"

func testSession() app.Session {
	return app.Session{
		AccessToken:  "jwt-token",
		RefreshToken: "refresh-token",
		UserID:       testUserID,
		Email:        "mina@example.com",
		Username:     "mina",
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "session.json"))

	if err := store.Save(testSession()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != testSession() {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestStore_LoadAbsentIsErrNoSession(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	if _, err := store.Load(); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("got %v, want ErrNoSession", err)
	}
}

func TestStore_LoadRejectsMalformedUserID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	data := `{"access_token":"jwt","user_id":"not-a-uuid"}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	if _, err := store.Load(); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("got %v, want ErrNoSession for corrupt session", err)
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(testSession()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("session survived Clear: %v", err)
	}
}

func TestSessionTokenProvider_FallsBackToAnonKey(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	provider := NewSessionTokenProvider(store, "anon-key")

	token, err := provider.AccessToken()
	if err != nil {
		t.Fatalf("AccessToken: %v", err)
	}
	if token != "anon-key" {
		t.Fatalf("guest token got %q want anon key", token)
	}

	if err := store.Save(testSession()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	token, err = provider.AccessToken()
	if err != nil {
		t.Fatalf("AccessToken: %v", err)
	}
	if token != "jwt-token" {
		t.Fatalf("signed-in token got %q", token)
	}
}
