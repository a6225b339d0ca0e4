package app

import "github.com/google/uuid"

// Session identifies an authenticated viewer. It is passed explicitly into
// every service call made on the viewer's behalf; nothing in the app reads
// ambient auth state. A zero Session is a signed-out guest.
type Session struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Email        string
	Username     string
}

// SignedIn reports whether the session can authorize backend calls.
func (s Session) SignedIn() bool {
	return s.AccessToken != "" && s.UserID != ""
}

// Valid reports whether the session is signed in with a well-formed user
// identifier. The backend issues UUIDs; anything else is a corrupt session.
func (s Session) Valid() bool {
	if !s.SignedIn() {
		return false
	}
	_, err := uuid.Parse(s.UserID)
	return err == nil
}
