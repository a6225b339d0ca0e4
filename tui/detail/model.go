package detail

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
	"github.com/AWKRID/track/tui/common"
)

// --- Messages ---

// ReactionsLoadedMsg is sent when the entry's reaction data arrives.
type ReactionsLoadedMsg struct {
	DiaryID int64
	Counts  domain.ReactionCounts
	Viewer  domain.ReactionType
}

// ReactionResultMsg is sent after a reaction toggle call.
type ReactionResultMsg struct {
	DiaryID int64
	Choice  domain.ReactionType
	Cleared bool
	Err     error
}

// CommentsLoadedMsg is sent when the comment list arrives.
type CommentsLoadedMsg struct {
	DiaryID  int64
	Comments []domain.Comment
	Err      error
}

// CommentPostedMsg is sent after a comment submission.
type CommentPostedMsg struct {
	DiaryID int64
	Err     error
}

// ClosedMsg is emitted when the panel closes; Item carries the possibly
// updated counts back to the parent view.
type ClosedMsg struct {
	Item domain.FeedItem
}

// RequireLoginMsg is emitted when a guest tries to react or comment. The
// root model opens the auth modal.
type RequireLoginMsg struct{}

// --- Model ---

// Model is the single-entry panel shared by the feed and calendar views:
// it shows one diary in full and owns the reaction toggle and the lazily
// loaded comment thread for that entry.
type Model struct {
	reactions app.ReactionService
	comments  app.CommentService
	session   app.Session

	item           domain.FeedItem
	needsReactions bool // True when opened without aggregated counts (calendar path).

	showComments    bool
	commentsLoaded  bool // Comments are fetched once per panel instance.
	loadingComments bool
	commentList     []domain.Comment
	fetchedAt       time.Time // Relative comment times are anchored here.

	input   textinput.Model
	posting bool

	// Busy flag for the reaction toggle: a second toggle for this entry
	// while one is in flight is dropped.
	reacting bool

	err    error
	notice string
	keys   common.KeyMap
	width  int
}

// New creates a detail panel for one entry. Pass needsReactions when the
// caller has no aggregated counts yet (the calendar opens entries cold).
func New(reactions app.ReactionService, comments app.CommentService, session app.Session, item domain.FeedItem, needsReactions bool) Model {
	ti := textinput.New()
	ti.Placeholder = "Write a comment..."
	ti.CharLimit = 300
	ti.Width = 56

	if item.Reactions == nil {
		item.Reactions = domain.NewReactionCounts()
	}

	return Model{
		reactions:      reactions,
		comments:       comments,
		session:        session,
		item:           item,
		needsReactions: needsReactions,
		input:          ti,
		fetchedAt:      time.Now(),
		keys:           common.DefaultKeyMap(),
	}
}

// Init fetches reaction data when the panel was opened cold.
func (m Model) Init() tea.Cmd {
	if !m.needsReactions {
		return nil
	}
	return m.loadReactions()
}

// Item returns the entry with any count updates applied.
func (m Model) Item() domain.FeedItem {
	return m.item
}

// CapturesInput reports whether keystrokes should bypass global bindings.
func (m Model) CapturesInput() bool {
	return m.input.Focused()
}

// Update handles messages for the detail panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case ReactionsLoadedMsg:
		if msg.DiaryID != m.item.Diary.ID {
			return m, nil
		}
		m.item.Reactions = msg.Counts
		m.item.ViewerReaction = msg.Viewer
		return m, nil

	case ReactionResultMsg:
		if msg.DiaryID != m.item.Diary.ID {
			return m, nil
		}
		m.reacting = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.item.ViewerReaction = m.item.Reactions.Toggle(m.item.ViewerReaction, msg.Choice)
		return m, nil

	case CommentsLoadedMsg:
		if msg.DiaryID != m.item.Diary.ID {
			return m, nil
		}
		m.loadingComments = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.commentsLoaded = true
		m.commentList = msg.Comments
		m.fetchedAt = time.Now()
		m.item.CommentCount = len(msg.Comments)
		return m, nil

	case CommentPostedMsg:
		if msg.DiaryID != m.item.Diary.ID {
			return m, nil
		}
		m.posting = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.input.SetValue("")
		// Re-fetch the thread instead of appending locally.
		m.loadingComments = true
		return m, m.loadComments()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.input.Focused() {
		switch msg.String() {
		case "esc":
			m.input.Blur()
			m.notice = ""
			return m, nil
		case "enter":
			return m.submitComment()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return ClosedMsg{Item: m.item} }

	case key.Matches(msg, m.keys.Comments):
		return m.toggleComments()

	case key.Matches(msg, m.keys.Open):
		return m, common.OpenURL(m.item.Diary.MusicLink)

	case key.Matches(msg, m.keys.React1):
		return m.toggleReaction(domain.ReactionTypes()[0])
	case key.Matches(msg, m.keys.React2):
		return m.toggleReaction(domain.ReactionTypes()[1])
	case key.Matches(msg, m.keys.React3):
		return m.toggleReaction(domain.ReactionTypes()[2])
	case key.Matches(msg, m.keys.React4):
		return m.toggleReaction(domain.ReactionTypes()[3])
	}
	return m, nil
}

// OpenComments expands the comment thread immediately, for callers that open
// the panel straight into comments.
func (m Model) OpenComments() (Model, tea.Cmd) {
	if m.showComments {
		return m, nil
	}
	return m.toggleComments()
}

func (m Model) toggleComments() (Model, tea.Cmd) {
	m.showComments = !m.showComments
	if !m.showComments {
		m.input.Blur()
		return m, nil
	}

	var cmds []tea.Cmd
	if m.session.SignedIn() {
		cmds = append(cmds, m.input.Focus())
	}
	// First expansion fetches; later toggles reuse the cached thread.
	if !m.commentsLoaded && !m.loadingComments {
		m.loadingComments = true
		cmds = append(cmds, m.loadComments())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) toggleReaction(choice domain.ReactionType) (Model, tea.Cmd) {
	if !m.session.SignedIn() {
		return m, func() tea.Msg { return RequireLoginMsg{} }
	}
	if m.reacting {
		return m, nil // A toggle is already in flight for this entry.
	}
	m.reacting = true
	cleared := m.item.ViewerReaction == choice
	return m, m.reactCmd(choice, cleared)
}

func (m Model) submitComment() (Model, tea.Cmd) {
	if m.posting {
		return m, nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.notice = domain.ErrEmptyComment.Error()
		return m, nil
	}
	m.notice = ""
	m.posting = true
	return m, m.postComment(text)
}

// --- Commands ---

func (m Model) loadReactions() tea.Cmd {
	reactions := m.reactions
	viewer := m.session
	diaryID := m.item.Diary.ID
	return func() tea.Msg {
		counts, err := reactions.Counts(context.Background(), diaryID)
		if err != nil {
			counts = domain.NewReactionCounts()
		}
		own, _ := reactions.ViewerReaction(context.Background(), viewer, diaryID)
		return ReactionsLoadedMsg{DiaryID: diaryID, Counts: counts, Viewer: own}
	}
}

func (m Model) reactCmd(choice domain.ReactionType, cleared bool) tea.Cmd {
	reactions := m.reactions
	session := m.session
	diaryID := m.item.Diary.ID
	return func() tea.Msg {
		var err error
		if cleared {
			err = reactions.Clear(context.Background(), session, diaryID)
		} else {
			err = reactions.Set(context.Background(), session, diaryID, choice)
		}
		return ReactionResultMsg{DiaryID: diaryID, Choice: choice, Cleared: cleared, Err: err}
	}
}

func (m Model) loadComments() tea.Cmd {
	comments := m.comments
	diaryID := m.item.Diary.ID
	return func() tea.Msg {
		list, err := comments.For(context.Background(), diaryID)
		return CommentsLoadedMsg{DiaryID: diaryID, Comments: list, Err: err}
	}
}

func (m Model) postComment(text string) tea.Cmd {
	comments := m.comments
	session := m.session
	diaryID := m.item.Diary.ID
	return func() tea.Msg {
		err := comments.Add(context.Background(), session, diaryID, text)
		return CommentPostedMsg{DiaryID: diaryID, Err: err}
	}
}
