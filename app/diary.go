package app

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/AWKRID/track/domain"
)

// DiaryDraft is the composer's input for a new entry.
type DiaryDraft struct {
	MusicLink string
	Title     string // Optional.
	Emotion   domain.Emotion
	Content   string
}

// Validate performs the composer's local checks. It never touches the
// network: submission is refused before any call when a required field is
// missing or the note is over the limit.
func (d DiaryDraft) Validate() error {
	if strings.TrimSpace(d.MusicLink) == "" || d.Emotion == "" || strings.TrimSpace(d.Content) == "" {
		return domain.ErrMissingFields
	}
	if utf8.RuneCountInString(d.Content) > domain.ContentMaxLen {
		return domain.ErrContentTooLong
	}
	return nil
}

// DiaryService creates entries and answers the one-entry-per-day pre-check.
type DiaryService interface {
	// Create inserts exactly one row attributed to the session's viewer.
	// The backend assigns the id and timestamp.
	Create(ctx context.Context, session Session, draft DiaryDraft) (domain.Diary, error)

	// HasEntryToday reports whether the viewer already has an entry created
	// within [startOfLocalDay, startOfNextLocalDay).
	HasEntryToday(ctx context.Context, session Session) (bool, error)
}
