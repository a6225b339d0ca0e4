package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
	"github.com/AWKRID/track/tui/common"
)

const (
	fieldLink = iota
	fieldTitle
	fieldEmotion
	fieldContent
	fieldCount
)

// DoneMsg is emitted when the composer closes. Created is true when a diary
// was saved.
type DoneMsg struct {
	Created bool
}

type createdMsg struct {
	err error
}

// Model is the diary composer: music link, optional title, emotion pick and
// a length-limited note.
type Model struct {
	diaries app.DiaryService
	session app.Session

	link    textinput.Model
	title   textinput.Model
	content textarea.Model
	emotion int // Index into domain.Emotions().

	focus      int
	submitting bool
	err        error
	keys       common.KeyMap
	width      int
}

// New creates a composer for today's entry.
func New(diaries app.DiaryService, session app.Session) Model {
	link := textinput.New()
	link.Placeholder = "https://youtube.com/watch?v=..."
	link.Width = 56
	link.Focus()

	title := textinput.New()
	title.Placeholder = "Title (optional)"
	title.Width = 56

	content := textarea.New()
	content.Placeholder = "How does today sound?"
	content.CharLimit = domain.ContentMaxLen
	content.SetWidth(58)
	content.SetHeight(6)

	return Model{
		diaries: diaries,
		session: session,
		link:    link,
		title:   title,
		content: content,
		keys:    common.DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the composer.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case createdMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, func() tea.Msg { return DoneMsg{Created: true} }

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return DoneMsg{} }
	case "tab", "shift+tab":
		return m.cycleFocus(msg.String() == "tab"), nil
	case "ctrl+d":
		return m.submit()
	}

	if m.focus == fieldEmotion {
		switch {
		case key.Matches(msg, m.keys.Left):
			if m.emotion > 0 {
				m.emotion--
			}
			return m, nil
		case key.Matches(msg, m.keys.Right):
			if m.emotion < len(domain.Emotions())-1 {
				m.emotion++
			}
			return m, nil
		}
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldLink:
		m.link, cmd = m.link.Update(msg)
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldContent:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m Model) cycleFocus(forward bool) Model {
	m.link.Blur()
	m.title.Blur()
	m.content.Blur()

	if forward {
		m.focus = (m.focus + 1) % fieldCount
	} else {
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	}

	switch m.focus {
	case fieldLink:
		m.link.Focus()
	case fieldTitle:
		m.title.Focus()
	case fieldContent:
		m.content.Focus()
	}
	return m
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	draft := m.draft()
	if err := draft.Validate(); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.submitting = true

	diaries := m.diaries
	session := m.session
	return m, func() tea.Msg {
		_, err := diaries.Create(context.Background(), session, draft)
		return createdMsg{err: err}
	}
}

func (m Model) draft() app.DiaryDraft {
	return app.DiaryDraft{
		MusicLink: strings.TrimSpace(m.link.Value()),
		Title:     strings.TrimSpace(m.title.Value()),
		Emotion:   domain.Emotions()[m.emotion],
		Content:   m.content.Value(),
	}
}

// View renders the composer form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.TitleStyle.Render("Today's diary") + "\n\n")

	b.WriteString(m.label("Music link", fieldLink) + "\n" + m.link.View() + "\n\n")
	b.WriteString(m.label("Title", fieldTitle) + "\n" + m.title.View() + "\n\n")
	b.WriteString(m.label("Emotion", fieldEmotion) + "\n" + m.emotionPicker() + "\n\n")

	remaining := domain.ContentMaxLen - len([]rune(m.content.Value()))
	b.WriteString(m.label("Note", fieldContent) + " " +
		common.MetadataStyle.Render(fmt.Sprintf("(%d left)", remaining)) + "\n")
	b.WriteString(m.content.View() + "\n")

	if m.err != nil {
		b.WriteString("\n" + common.ErrorStyle.Render(m.err.Error()))
	}
	if m.submitting {
		b.WriteString("\n" + common.MetadataStyle.Render("Saving..."))
	}
	b.WriteString("\n" + common.StatusBarStyle.Render("tab next field · ←/→ pick emotion · ctrl+d save · esc cancel"))
	return b.String()
}

func (m Model) label(text string, field int) string {
	if m.focus == field {
		return common.LabelStyle.Render("▸ " + text)
	}
	return common.MetadataStyle.Render("  " + text)
}

func (m Model) emotionPicker() string {
	chips := make([]string, 0, len(domain.Emotions()))
	for i, e := range domain.Emotions() {
		info := e.Info()
		chip := info.Emoji + " " + info.Label
		if i == m.emotion {
			chips = append(chips, common.MenuActiveStyle.Render(chip))
		} else {
			chips = append(chips, common.MenuInactiveStyle.Render(chip))
		}
	}
	return strings.Join(chips, " ")
}
