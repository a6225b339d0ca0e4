package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
	"github.com/AWKRID/track/tui/common"
	"github.com/AWKRID/track/tui/detail"
)

// --- Messages ---

// ItemsLoadedMsg carries a fetched feed page. Seq ties the response to the
// request that produced it; stale responses are dropped.
type ItemsLoadedMsg struct {
	Seq   int
	Items []domain.FeedItem
}

// ItemsErrorMsg is sent when the feed fetch fails.
type ItemsErrorMsg struct {
	Seq int
	Err error
}

// ReactionResultMsg is sent after a card-level reaction toggle.
type ReactionResultMsg struct {
	DiaryID int64
	Choice  domain.ReactionType
	Cleared bool
	Err     error
}

// OpenCalendarMsg asks the root model to open a user's calendar.
type OpenCalendarMsg struct {
	UserID string
}

// --- Model ---

// Model is the today-feed view: everyone's diaries for the current local
// day, newest first, with inline reactions and a detail panel.
type Model struct {
	feeds     app.FeedService
	reactions app.ReactionService
	comments  app.CommentService
	session   app.Session

	items   []domain.FeedItem
	cursor  int
	loading bool
	err     error

	// reqSeq increments per fetch; responses carrying an older seq are
	// ignored so a slow refresh can't clobber a newer one.
	reqSeq int

	// Per-diary busy flags: overlapping toggles for the same entry are
	// dropped until the in-flight one resolves.
	reacting map[int64]bool

	showDetail bool
	detail     detail.Model

	spinner spinner.Model
	keys    common.KeyMap
	width   int
	height  int
}

// New creates the feed view.
func New(feeds app.FeedService, reactions app.ReactionService, comments app.CommentService, session app.Session) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#C6A0F6"))

	return Model{
		feeds:     feeds,
		reactions: reactions,
		comments:  comments,
		session:   session,
		reacting:  make(map[int64]bool),
		spinner:   sp,
		keys:      common.DefaultKeyMap(),
	}
}

// Init starts the first fetch. State set here would be lost, so the initial
// request reuses the zero reqSeq instead of bumping it.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchItems(m.feeds, m.session, m.reqSeq))
}

// SetSession swaps the viewer and reloads so per-viewer reaction state is
// re-derived.
func (m Model) SetSession(s app.Session) (Model, tea.Cmd) {
	m.session = s
	m.showDetail = false
	return m.refresh()
}

// CapturesInput reports whether the detail panel's comment input has focus.
func (m Model) CapturesInput() bool {
	return m.showDetail && m.detail.CapturesInput()
}

// InDetail reports whether the detail panel is open.
func (m Model) InDetail() bool {
	return m.showDetail
}

// Refresh reloads today's feed.
func (m Model) Refresh() (Model, tea.Cmd) {
	return m.refresh()
}

func (m Model) refresh() (Model, tea.Cmd) {
	m.reqSeq++
	m.loading = true
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, fetchItems(m.feeds, m.session, m.reqSeq))
}

func (m Model) selectedItem() (domain.FeedItem, bool) {
	if len(m.items) == 0 || m.cursor < 0 || m.cursor >= len(m.items) {
		return domain.FeedItem{}, false
	}
	return m.items[m.cursor], true
}

// syncItem writes an updated item back into the list by diary ID.
func (m *Model) syncItem(item domain.FeedItem) {
	for i := range m.items {
		if m.items[i].Diary.ID == item.Diary.ID {
			m.items[i] = item
			return
		}
	}
}
