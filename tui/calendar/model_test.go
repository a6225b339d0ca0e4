package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
)

type stubCalendar struct {
	entries map[string]domain.Diary
	owner   domain.UserProfile
	err     error
}

func (s stubCalendar) MonthEntries(context.Context, string, int, time.Month) (map[string]domain.Diary, error) {
	return s.entries, s.err
}

func (s stubCalendar) ProfileByID(context.Context, string) (domain.UserProfile, error) {
	return s.owner, s.err
}

type stubReactions struct{}

func (stubReactions) Counts(context.Context, int64) (domain.ReactionCounts, error) {
	return domain.NewReactionCounts(), nil
}

func (stubReactions) ViewerReaction(context.Context, app.Session, int64) (domain.ReactionType, error) {
	return "", nil
}

func (stubReactions) Set(context.Context, app.Session, int64, domain.ReactionType) error {
	return nil
}

func (stubReactions) Clear(context.Context, app.Session, int64) error {
	return nil
}

type stubComments struct{}

func (stubComments) For(context.Context, int64) ([]domain.Comment, error) { return nil, nil }

func (stubComments) Add(context.Context, app.Session, int64, string) error { return nil }

func (stubComments) Count(context.Context, int64) (int, error) { return 0, nil }

const ownerID = "11111111-1111-1111-1111-111111111111"

func newTestCalendar(entries map[string]domain.Diary) Model {
	svc := stubCalendar{entries: entries, owner: domain.UserProfile{ID: ownerID, Username: "alice"}}
	viewer := app.Session{AccessToken: "jwt", UserID: ownerID, Username: "alice"}
	return New(svc, stubReactions{}, stubComments{}, viewer, ownerID, time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local))
}

func TestMonthLoaded_IndexesAndSelectsFirstEntry(t *testing.T) {
	m := newTestCalendar(nil)
	entries := map[string]domain.Diary{
		"2026-03-02": {ID: 1, Emotion: domain.EmotionHappy},
		"2026-03-10": {ID: 2, Emotion: domain.EmotionSad},
	}

	m, _ = m.Update(MonthLoadedMsg{Seq: 0, Entries: entries, Owner: domain.UserProfile{Username: "alice"}})
	if m.loading {
		t.Fatal("still loading after the month arrived")
	}
	if len(m.dates) != 2 || m.dates[0] != "2026-03-02" {
		t.Fatalf("dates got %v", m.dates)
	}
	if m.selected != 0 {
		t.Fatalf("selection got %d want 0", m.selected)
	}
}

func TestShiftMonth_DropsStaleResponses(t *testing.T) {
	m := newTestCalendar(nil)
	m, _ = m.Update(MonthLoadedMsg{Seq: 0, Entries: map[string]domain.Diary{
		"2026-03-02": {ID: 1},
	}, Owner: domain.UserProfile{Username: "alice"}})

	// Moving to April invalidates the March request.
	m, cmd := m.shiftMonth(1)
	if m.month != time.April || m.year != 2026 {
		t.Fatalf("month got %v %d", m.month, m.year)
	}
	if cmd == nil {
		t.Fatal("month shift did not fetch")
	}
	if len(m.dates) != 0 || m.selected != -1 {
		t.Fatal("previous month's entries survived the shift")
	}

	stale := MonthLoadedMsg{Seq: 0, Entries: map[string]domain.Diary{"2026-03-02": {ID: 1}}}
	m, _ = m.Update(stale)
	if len(m.dates) != 0 {
		t.Fatal("stale month applied")
	}

	fresh := MonthLoadedMsg{Seq: m.reqSeq, Entries: map[string]domain.Diary{"2026-04-01": {ID: 3}}}
	m, _ = m.Update(fresh)
	if len(m.dates) != 1 || m.dates[0] != "2026-04-01" {
		t.Fatalf("fresh month dropped: %v", m.dates)
	}
}

func TestShiftMonth_CrossesYearBoundary(t *testing.T) {
	svc := stubCalendar{owner: domain.UserProfile{ID: ownerID, Username: "alice"}}
	m := New(svc, stubReactions{}, stubComments{}, app.Session{}, ownerID, time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local))

	m, _ = m.shiftMonth(-1)
	if m.year != 2025 || m.month != time.December {
		t.Fatalf("got %v %d, want December 2025", m.month, m.year)
	}
}

func TestMonthError_Surfaces(t *testing.T) {
	m := newTestCalendar(nil)
	m, _ = m.Update(MonthErrorMsg{Seq: 0, Err: errors.New("boom")})
	if m.err == nil {
		t.Fatal("fetch failure not surfaced")
	}
}

func TestOpenSelected_LoadsReactionsCold(t *testing.T) {
	m := newTestCalendar(nil)
	m, _ = m.Update(MonthLoadedMsg{Seq: 0, Entries: map[string]domain.Diary{
		"2026-03-02": {ID: 1, UserID: ownerID, Emotion: domain.EmotionHappy},
	}, Owner: domain.UserProfile{ID: ownerID, Username: "alice"}})

	m, cmd := m.openSelected()
	if !m.showDetail {
		t.Fatal("detail did not open")
	}
	if cmd == nil {
		t.Fatal("cold open must fetch reaction data")
	}
}
