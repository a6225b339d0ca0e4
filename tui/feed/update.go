package feed

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AWKRID/track/domain"
	"github.com/AWKRID/track/tui/common"
	"github.com/AWKRID/track/tui/detail"
)

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showDetail {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ItemsLoadedMsg:
		if msg.Seq != m.reqSeq {
			return m, nil // Stale response from an earlier fetch.
		}
		m.loading = false
		m.err = nil
		m.items = msg.Items
		if m.cursor >= len(m.items) {
			m.cursor = len(m.items) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case ItemsErrorMsg:
		if msg.Seq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ReactionResultMsg:
		return m.applyReactionResult(msg), nil

	case detail.ClosedMsg:
		m.showDetail = false
		m.syncItem(msg.Item)
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
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()

	case key.Matches(msg, m.keys.Enter):
		return m.openDetail(false)

	case key.Matches(msg, m.keys.Comments):
		return m.openDetail(true)

	case key.Matches(msg, m.keys.Open):
		if item, ok := m.selectedItem(); ok {
			return m, common.OpenURL(item.Diary.MusicLink)
		}
		return m, nil

	case key.Matches(msg, m.keys.Author):
		if item, ok := m.selectedItem(); ok {
			userID := item.Diary.UserID
			return m, func() tea.Msg { return OpenCalendarMsg{UserID: userID} }
		}
		return m, nil

	case key.Matches(msg, m.keys.React1):
		return m.toggleSelected(domain.ReactionTypes()[0])
	case key.Matches(msg, m.keys.React2):
		return m.toggleSelected(domain.ReactionTypes()[1])
	case key.Matches(msg, m.keys.React3):
		return m.toggleSelected(domain.ReactionTypes()[2])
	case key.Matches(msg, m.keys.React4):
		return m.toggleSelected(domain.ReactionTypes()[3])
	}
	return m, nil
}

func (m Model) openDetail(withComments bool) (Model, tea.Cmd) {
	item, ok := m.selectedItem()
	if !ok {
		return m, nil
	}
	m.showDetail = true
	m.detail = detail.New(m.reactions, m.comments, m.session, item, false)
	cmds := []tea.Cmd{m.detail.Init()}
	if withComments {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.OpenComments()
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) toggleSelected(choice domain.ReactionType) (Model, tea.Cmd) {
	item, ok := m.selectedItem()
	if !ok {
		return m, nil
	}
	if !m.session.SignedIn() {
		return m, func() tea.Msg { return detail.RequireLoginMsg{} }
	}
	if m.reacting[item.Diary.ID] {
		return m, nil // A toggle for this entry is already in flight.
	}
	m.reacting[item.Diary.ID] = true
	cleared := item.ViewerReaction == choice
	return m, toggleReaction(m.reactions, m.session, item.Diary.ID, choice, cleared)
}

// applyReactionResult updates counts only after the backend confirmed the
// write, so a failed toggle leaves the card untouched.
func (m Model) applyReactionResult(msg ReactionResultMsg) Model {
	delete(m.reacting, msg.DiaryID)
	if msg.Err != nil {
		m.err = msg.Err
		return m
	}
	for i := range m.items {
		if m.items[i].Diary.ID != msg.DiaryID {
			continue
		}
		counts := m.items[i].Reactions
		if counts == nil {
			counts = domain.NewReactionCounts()
			m.items[i].Reactions = counts
		}
		m.items[i].ViewerReaction = counts.Toggle(m.items[i].ViewerReaction, msg.Choice)
		break
	}
	return m
}
