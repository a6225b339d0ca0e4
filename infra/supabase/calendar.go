package supabase

import (
	"context"
	"time"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
)

// calendarService implements app.CalendarService over the diary and user
// services.
type calendarService struct {
	diaries *diaryService
	users   *userService
}

// NewCalendarService creates the calendar aggregator.
func NewCalendarService(diaries *diaryService, users *userService) *calendarService {
	return &calendarService{diaries: diaries, users: users}
}

// MonthEntries fetches the user's entries for [first-of-month,
// first-of-next-month) and indexes them by local calendar date.
func (s *calendarService) MonthEntries(ctx context.Context, userID string, year int, month time.Month) (map[string]domain.Diary, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	next := first.AddDate(0, 1, 0)

	entries, err := s.diaries.EntriesBetween(ctx, userID, first, next)
	if err != nil {
		return nil, err
	}
	return indexByDate(entries), nil
}

// ProfileByID returns the calendar owner's display profile.
func (s *calendarService) ProfileByID(ctx context.Context, userID string) (domain.UserProfile, error) {
	return s.users.ProfileByID(ctx, userID)
}

// indexByDate keys entries by the local date they were created on. Entries
// arrive in ascending creation order, so when a date somehow holds more than
// one entry the latest wins.
func indexByDate(entries []domain.Diary) map[string]domain.Diary {
	byDate := make(map[string]domain.Diary, len(entries))
	for _, d := range entries {
		byDate[d.CreatedAt.Local().Format("2006-01-02")] = d
	}
	return byDate
}

var _ app.CalendarService = (*calendarService)(nil)
