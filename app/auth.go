package app

import "context"

// AuthService wraps the backend's session and credential surface.
type AuthService interface {
	// CurrentSession returns the stored session, or domain.ErrNoSession when
	// the viewer is signed out.
	CurrentSession(ctx context.Context) (Session, error)

	// SignIn exchanges credentials for a session and persists it.
	SignIn(ctx context.Context, email, password string) (Session, error)

	// SignUp registers a new account with a display username. Depending on
	// backend settings the returned session may lack an access token until
	// the email is confirmed.
	SignUp(ctx context.Context, email, password, username string) (Session, error)

	// SignOut revokes and clears the stored session.
	SignOut(ctx context.Context) error

	// Subscribe registers fn to be called on every session change. signedIn
	// is false when the change is a sign-out.
	Subscribe(fn func(s Session, signedIn bool))
}
