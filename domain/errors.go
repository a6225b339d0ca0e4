package domain

import "errors"

var (
	// ErrNotSignedIn indicates an operation that needs an authenticated viewer.
	ErrNotSignedIn = errors.New("sign in required")

	// ErrMissingFields indicates a diary draft without link, emotion or content.
	ErrMissingFields = errors.New("music link, emotion and content are all required")

	// ErrContentTooLong indicates a diary note over the character limit.
	ErrContentTooLong = errors.New("diary content exceeds the character limit")

	// ErrAlreadyPosted indicates the viewer already has an entry today.
	ErrAlreadyPosted = errors.New("already posted a diary today")

	// ErrEmptyComment indicates a comment that is empty after trimming.
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrPasswordMismatch indicates sign-up passwords that do not match.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrNoSession indicates no stored session: the viewer is signed out.
	ErrNoSession = errors.New("no stored session")
)
