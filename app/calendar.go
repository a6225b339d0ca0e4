package app

import (
	"context"
	"time"

	"github.com/AWKRID/track/domain"
)

// CalendarService resolves one user's entries for a month.
type CalendarService interface {
	// MonthEntries maps local calendar dates ("2006-01-02") to the user's
	// single entry on that date. Dates without an entry are absent. At most
	// one entry per date is assumed; when the backend holds more, the latest
	// wins.
	MonthEntries(ctx context.Context, userID string, year int, month time.Month) (map[string]domain.Diary, error)

	// ProfileByID returns the calendar owner's display profile.
	ProfileByID(ctx context.Context, userID string) (domain.UserProfile, error)
}
