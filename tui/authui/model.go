package authui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
	"github.com/AWKRID/track/tui/common"
)

type mode int

const (
	modeLogin mode = iota
	modeSignup
)

const (
	fieldEmail = iota
	fieldPassword
	fieldUsername
	fieldConfirm
)

// DoneMsg is emitted when the auth modal closes. Session is set on a
// successful sign-in; Cancelled is true when the viewer backed out.
type DoneMsg struct {
	Session   app.Session
	Cancelled bool
}

type authResultMsg struct {
	session app.Session
	signup  bool
	err     error
}

// Model is the sign-in / sign-up modal.
type Model struct {
	auth app.AuthService
	mode mode

	email    textinput.Model
	password textinput.Model
	username textinput.Model
	confirm  textinput.Model

	focus   int
	loading bool
	err     error
	notice  string
}

// New creates the auth modal, opened on the login form.
func New(auth app.AuthService) Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Width = 40
	password.EchoMode = textinput.EchoPassword

	username := textinput.New()
	username.Placeholder = "username"
	username.Width = 40

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.Width = 40
	confirm.EchoMode = textinput.EchoPassword

	return Model{
		auth:     auth,
		email:    email,
		password: password,
		username: username,
		confirm:  confirm,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the auth modal.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.signup && !msg.session.SignedIn() {
			// Email confirmation pending: fall back to the login form.
			m = m.switchMode(modeLogin)
			m.notice = "Account created. Check your email to confirm, then sign in."
			return m, nil
		}
		session := msg.session
		return m, func() tea.Msg { return DoneMsg{Session: session} }

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return DoneMsg{Cancelled: true} }
	case "ctrl+s":
		if m.mode == modeLogin {
			m = m.switchMode(modeSignup)
		} else {
			m = m.switchMode(modeLogin)
		}
		return m, nil
	case "tab", "shift+tab":
		return m.cycleFocus(msg.String() == "tab"), nil
	case "enter":
		return m.submit()
	}
	return m.updateFocused(msg)
}

func (m Model) switchMode(to mode) Model {
	m.mode = to
	m.err = nil
	m.notice = ""
	m.focus = fieldEmail
	m.email.Focus()
	m.password.Blur()
	m.username.Blur()
	m.confirm.Blur()
	return m
}

func (m Model) fields() []int {
	if m.mode == modeLogin {
		return []int{fieldEmail, fieldPassword}
	}
	return []int{fieldEmail, fieldPassword, fieldUsername, fieldConfirm}
}

func (m Model) cycleFocus(forward bool) Model {
	fields := m.fields()
	pos := 0
	for i, f := range fields {
		if f == m.focus {
			pos = i
			break
		}
	}
	if forward {
		pos = (pos + 1) % len(fields)
	} else {
		pos = (pos + len(fields) - 1) % len(fields)
	}
	m.focus = fields[pos]

	m.email.Blur()
	m.password.Blur()
	m.username.Blur()
	m.confirm.Blur()
	switch m.focus {
	case fieldEmail:
		m.email.Focus()
	case fieldPassword:
		m.password.Focus()
	case fieldUsername:
		m.username.Focus()
	case fieldConfirm:
		m.confirm.Focus()
	}
	return m
}

func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldPassword:
		m.password, cmd = m.password.Update(msg)
	case fieldUsername:
		m.username, cmd = m.username.Update(msg)
	case fieldConfirm:
		m.confirm, cmd = m.confirm.Update(msg)
	}
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	if email == "" || password == "" {
		m.err = domain.ErrMissingFields
		return m, nil
	}

	if m.mode == modeSignup {
		username := strings.TrimSpace(m.username.Value())
		if username == "" {
			m.err = domain.ErrMissingFields
			return m, nil
		}
		if m.confirm.Value() != password {
			m.err = domain.ErrPasswordMismatch
			return m, nil
		}
		m.err = nil
		m.loading = true
		auth := m.auth
		return m, func() tea.Msg {
			s, err := auth.SignUp(context.Background(), email, password, username)
			return authResultMsg{session: s, signup: true, err: err}
		}
	}

	m.err = nil
	m.loading = true
	auth := m.auth
	return m, func() tea.Msg {
		s, err := auth.SignIn(context.Background(), email, password)
		return authResultMsg{session: s, err: err}
	}
}

// View renders the auth modal.
func (m Model) View() string {
	var b strings.Builder
	if m.mode == modeLogin {
		b.WriteString(common.TitleStyle.Render("Sign in") + "\n\n")
	} else {
		b.WriteString(common.TitleStyle.Render("Create account") + "\n\n")
	}

	b.WriteString(m.label("Email", fieldEmail) + "\n" + m.email.View() + "\n")
	b.WriteString(m.label("Password", fieldPassword) + "\n" + m.password.View() + "\n")
	if m.mode == modeSignup {
		b.WriteString(m.label("Username", fieldUsername) + "\n" + m.username.View() + "\n")
		b.WriteString(m.label("Confirm", fieldConfirm) + "\n" + m.confirm.View() + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + common.ErrorStyle.Render(m.err.Error()))
	}
	if m.notice != "" {
		b.WriteString("\n" + common.NoticeStyle.Render(m.notice))
	}
	if m.loading {
		b.WriteString("\n" + common.MetadataStyle.Render("Working..."))
	}

	switchHint := "ctrl+s sign up instead"
	if m.mode == modeSignup {
		switchHint = "ctrl+s sign in instead"
	}
	b.WriteString("\n\n" + common.StatusBarStyle.Render("tab next field · enter submit · "+switchHint+" · esc cancel"))

	return common.SelectedStyle.Render(b.String())
}

func (m Model) label(text string, field int) string {
	if m.focus == field {
		return common.LabelStyle.Render("▸ " + text)
	}
	return common.MetadataStyle.Render("  " + text)
}
