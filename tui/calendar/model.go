package calendar

import (
	"context"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
	"github.com/AWKRID/track/tui/common"
	"github.com/AWKRID/track/tui/detail"
)

// --- Messages ---

// MonthLoadedMsg carries one month of entries plus the owner's profile.
// Seq ties the response to the request that produced it.
type MonthLoadedMsg struct {
	Seq     int
	Entries map[string]domain.Diary
	Owner   domain.UserProfile
}

// MonthErrorMsg is sent when the month fetch fails.
type MonthErrorMsg struct {
	Seq int
	Err error
}

// --- Model ---

// Model is the monthly calendar for one user: at most one entry per local
// date, browsable month by month.
type Model struct {
	svc       app.CalendarService
	reactions app.ReactionService
	comments  app.CommentService
	viewer    app.Session

	userID string
	year   int
	month  time.Month

	entries map[string]domain.Diary
	dates   []string // Sorted dates that hold an entry.
	owner   domain.UserProfile

	selected int // Index into dates; -1 when the month has no entries.

	showDetail bool
	detail     detail.Model

	loading bool
	err     error
	reqSeq  int

	keys  common.KeyMap
	width int
}

// New creates a calendar view for the given user, opened on now's month.
func New(svc app.CalendarService, reactions app.ReactionService, comments app.CommentService, viewer app.Session, userID string, now time.Time) Model {
	return Model{
		svc:       svc,
		reactions: reactions,
		comments:  comments,
		viewer:    viewer,
		userID:    userID,
		year:      now.Year(),
		month:     now.Month(),
		selected:  -1,
		keys:      common.DefaultKeyMap(),
	}
}

// Init fetches the opening month. The initial request reuses the zero
// reqSeq; state set here would be lost.
func (m Model) Init() tea.Cmd {
	return m.fetchMonth(m.reqSeq)
}

// ViewingOwn reports whether the calendar belongs to the signed-in viewer.
func (m Model) ViewingOwn() bool {
	return m.viewer.SignedIn() && m.userID == m.viewer.UserID
}

// CapturesInput reports whether the detail panel's comment input has focus.
func (m Model) CapturesInput() bool {
	return m.showDetail && m.detail.CapturesInput()
}

// InDetail reports whether an entry is open.
func (m Model) InDetail() bool {
	return m.showDetail
}

func (m Model) fetchMonth(seq int) tea.Cmd {
	svc := m.svc
	userID := m.userID
	year, month := m.year, m.month
	return func() tea.Msg {
		entries, err := svc.MonthEntries(context.Background(), userID, year, month)
		if err != nil {
			return MonthErrorMsg{Seq: seq, Err: err}
		}
		owner, err := svc.ProfileByID(context.Background(), userID)
		if err != nil {
			return MonthErrorMsg{Seq: seq, Err: err}
		}
		return MonthLoadedMsg{Seq: seq, Entries: entries, Owner: owner}
	}
}

func (m Model) shiftMonth(delta int) (Model, tea.Cmd) {
	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.Local).AddDate(0, delta, 0)
	m.year = first.Year()
	m.month = first.Month()
	m.entries = nil
	m.dates = nil
	m.selected = -1
	m.loading = true
	m.err = nil
	m.reqSeq++
	return m, m.fetchMonth(m.reqSeq)
}

// Update handles messages for the calendar view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.showDetail {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
		return m, nil

	case MonthLoadedMsg:
		if msg.Seq != m.reqSeq {
			return m, nil // Stale month from an earlier fetch.
		}
		m.loading = false
		m.err = nil
		m.entries = msg.Entries
		m.owner = msg.Owner
		m.dates = sortedDates(msg.Entries)
		if len(m.dates) > 0 {
			m.selected = 0
		} else {
			m.selected = -1
		}
		return m, nil

	case MonthErrorMsg:
		if msg.Seq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case detail.ClosedMsg:
		m.showDetail = false
		return m, nil

	case detail.ReactionsLoadedMsg, detail.ReactionResultMsg, detail.CommentsLoadedMsg, detail.CommentPostedMsg:
		if !m.showDetail {
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.showDetail {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showDetail {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		return m.shiftMonth(-1)

	case key.Matches(msg, m.keys.Right):
		return m.shiftMonth(1)

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.dates)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.err = nil
		m.reqSeq++
		return m, m.fetchMonth(m.reqSeq)

	case key.Matches(msg, m.keys.Enter):
		return m.openSelected()
	}
	return m, nil
}

func (m Model) openSelected() (Model, tea.Cmd) {
	if m.selected < 0 || m.selected >= len(m.dates) {
		return m, nil
	}
	d := m.entries[m.dates[m.selected]]
	item := domain.FeedItem{Diary: d, Author: m.owner, Reactions: domain.NewReactionCounts()}
	m.showDetail = true
	// The calendar has no aggregated counts, so the panel loads its own.
	m.detail = detail.New(m.reactions, m.comments, m.viewer, item, true)
	return m, m.detail.Init()
}

func sortedDates(entries map[string]domain.Diary) []string {
	dates := make([]string, 0, len(entries))
	for date := range entries {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
