package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/tui/authui"
	"github.com/AWKRID/track/tui/calendar"
	"github.com/AWKRID/track/tui/common"
	"github.com/AWKRID/track/tui/compose"
	"github.com/AWKRID/track/tui/detail"
	"github.com/AWKRID/track/tui/feed"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Auth      app.AuthService
	Diary     app.DiaryService
	Feed      app.FeedService
	Calendar  app.CalendarService
	Comments  app.CommentService
	Reactions app.ReactionService
}

type activeView int

const (
	feedView activeView = iota
	composeView
	calendarView
)

// SessionChangedMsg is sent from outside the program when the stored session
// changes (sign-in, sign-out, another command).
type SessionChangedMsg struct {
	Session  app.Session
	SignedIn bool
}

type todayCheckMsg struct {
	has bool
	err error
}

type signedOutMsg struct {
	err error
}

var accountMenuItems = []string{"My calendar", "Sign out"}

// App is the root Bubble Tea model. It routes between sub-views and owns the
// auth modal and account menu overlays.
type App struct {
	deps    Deps
	session app.Session

	active   activeView
	feed     feed.Model
	compose  compose.Model
	calendar calendar.Model

	auth     authui.Model
	showAuth bool

	showMenu bool
	menuIdx  int

	keys   common.KeyMap
	status string // Transient status message (e.g. "Diary saved!")
	width  int
	height int
}

// NewApp creates the root model with all dependencies wired. Pass the stored
// session, or a zero Session for a guest.
func NewApp(deps Deps, session app.Session) App {
	return App{
		deps:    deps,
		session: session,
		active:  feedView,
		feed:    feed.New(deps.Feed, deps.Reactions, deps.Comments, session),
		keys:    common.DefaultKeyMap(),
	}
}

// Init delegates to the feed, the opening view.
func (a App) Init() tea.Cmd {
	return a.feed.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		cmds = append(cmds, cmd)
		a.calendar, cmd = a.calendar.Update(msg)
		cmds = append(cmds, cmd)
		a.compose, cmd = a.compose.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case SessionChangedMsg:
		if msg.Session == a.session {
			return a, nil
		}
		a.session = msg.Session
		var cmd tea.Cmd
		a.feed, cmd = a.feed.SetSession(a.session)
		if !msg.SignedIn {
			a.active = feedView
		}
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case authui.DoneMsg:
		a.showAuth = false
		if msg.Cancelled {
			return a, nil
		}
		a.status = "Signed in as @" + msg.Session.Username
		if msg.Session == a.session {
			return a, nil
		}
		a.session = msg.Session
		var cmd tea.Cmd
		a.feed, cmd = a.feed.SetSession(a.session)
		return a, cmd

	case detail.RequireLoginMsg:
		a.status = ""
		a.showAuth = true
		a.auth = authui.New(a.deps.Auth)
		return a, a.auth.Init()

	case feed.OpenCalendarMsg:
		return a.openCalendar(msg.UserID)

	case compose.DoneMsg:
		a.active = feedView
		if !msg.Created {
			a.status = "Cancelled."
			return a, nil
		}
		a.status = "Diary saved! 🎶"
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Refresh()
		return a, cmd

	case todayCheckMsg:
		if msg.err != nil {
			a.status = "Error: " + msg.err.Error()
			return a, nil
		}
		if msg.has {
			a.status = "You already posted today. See you tomorrow!"
			return a, nil
		}
		a.active = composeView
		a.status = ""
		a.compose = compose.New(a.deps.Diary, a.session)
		return a, a.compose.Init()

	case signedOutMsg:
		if msg.err != nil {
			a.status = "Error signing out: " + msg.err.Error()
		} else {
			a.status = "Signed out."
		}
		a.session = app.Session{}
		a.active = feedView
		var cmd tea.Cmd
		a.feed, cmd = a.feed.SetSession(a.session)
		return a, cmd

	case feed.ItemsLoadedMsg, feed.ItemsErrorMsg, feed.ReactionResultMsg, spinner.TickMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd

	case calendar.MonthLoadedMsg, calendar.MonthErrorMsg:
		var cmd tea.Cmd
		a.calendar, cmd = a.calendar.Update(msg)
		return a, cmd
	}

	return a.delegate(msg)
}

// delegate routes a message to the overlay or active sub-model.
func (a App) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.showAuth {
		var cmd tea.Cmd
		a.auth, cmd = a.auth.Update(msg)
		return a, cmd
	}
	var cmd tea.Cmd
	switch a.active {
	case feedView:
		a.feed, cmd = a.feed.Update(msg)
	case composeView:
		a.compose, cmd = a.compose.Update(msg)
	case calendarView:
		a.calendar, cmd = a.calendar.Update(msg)
	}
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if a.showAuth {
		return a.delegate(msg)
	}
	if a.showMenu {
		return a.handleMenuKey(msg)
	}

	// Global bindings apply only when no text field is capturing input and
	// no detail panel is open.
	if !a.capturingInput() && !a.inDetail() && a.active != composeView {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Feed):
			a.active = feedView
			a.status = ""
			return a, nil

		case key.Matches(msg, a.keys.Calendar):
			if !a.session.SignedIn() {
				return a.openAuth()
			}
			return a.openCalendar(a.session.UserID)

		case key.Matches(msg, a.keys.New):
			return a.startCompose()

		case key.Matches(msg, a.keys.Account):
			if !a.session.SignedIn() {
				return a.openAuth()
			}
			a.showMenu = true
			a.menuIdx = 0
			return a, nil
		}

		// b — back to my own calendar when browsing someone else's.
		if a.active == calendarView && msg.String() == "b" &&
			a.session.SignedIn() && !a.calendar.ViewingOwn() {
			return a.openCalendar(a.session.UserID)
		}
	}

	return a.delegate(msg)
}

func (a App) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.menuIdx > 0 {
			a.menuIdx--
		}
	case key.Matches(msg, a.keys.Down):
		if a.menuIdx < len(accountMenuItems)-1 {
			a.menuIdx++
		}
	case key.Matches(msg, a.keys.Back):
		a.showMenu = false
	case key.Matches(msg, a.keys.Enter):
		a.showMenu = false
		switch a.menuIdx {
		case 0:
			return a.openCalendar(a.session.UserID)
		case 1:
			auth := a.deps.Auth
			return a, func() tea.Msg {
				return signedOutMsg{err: auth.SignOut(context.Background())}
			}
		}
	}
	return a, nil
}

func (a App) openAuth() (tea.Model, tea.Cmd) {
	a.status = ""
	a.showAuth = true
	a.auth = authui.New(a.deps.Auth)
	return a, a.auth.Init()
}

func (a App) openCalendar(userID string) (tea.Model, tea.Cmd) {
	a.active = calendarView
	a.status = ""
	a.calendar = calendar.New(a.deps.Calendar, a.deps.Reactions, a.deps.Comments, a.session, userID, time.Now())
	return a, a.calendar.Init()
}

// startCompose runs the one-entry-per-day pre-check before opening the
// composer.
func (a App) startCompose() (tea.Model, tea.Cmd) {
	if !a.session.SignedIn() {
		return a.openAuth()
	}
	a.status = ""
	diaries := a.deps.Diary
	session := a.session
	return a, func() tea.Msg {
		has, err := diaries.HasEntryToday(context.Background(), session)
		return todayCheckMsg{has: has, err: err}
	}
}

func (a App) capturingInput() bool {
	switch a.active {
	case feedView:
		return a.feed.CapturesInput()
	case calendarView:
		return a.calendar.CapturesInput()
	case composeView:
		return true
	}
	return false
}

func (a App) inDetail() bool {
	switch a.active {
	case feedView:
		return a.feed.InDetail()
	case calendarView:
		return a.calendar.InDetail()
	}
	return false
}

// View renders the header, the active sub-model and any overlay.
func (a App) View() string {
	s := common.AppTitleStyle.Render("♪ TRACK") +
		common.TaglineStyle.Render("one song a day") + "\n" +
		a.tabs() + "\n\n"

	switch {
	case a.showAuth:
		s += a.auth.View()
	case a.active == feedView:
		s += a.feed.View()
	case a.active == composeView:
		s += a.compose.View()
	case a.active == calendarView:
		s += a.calendar.View()
	}

	if a.showMenu {
		s += "\n" + a.menuView()
	}
	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render(a.status)
	}
	return s
}

func (a App) tabs() string {
	render := func(label string, view activeView) string {
		if a.active == view && !a.showAuth {
			return common.TabActiveStyle.Render(label)
		}
		return common.TabInactiveStyle.Render(label)
	}
	tabs := render("[f]eed", feedView) + render("calendar[v]", calendarView) + render("[n]ew", composeView)

	who := "guest · press a to sign in"
	if a.session.SignedIn() {
		who = "@" + a.session.Username
	}
	return tabs + common.MetadataStyle.Render("  "+who)
}

func (a App) menuView() string {
	var s string
	for i, item := range accountMenuItems {
		if i == a.menuIdx {
			s += common.MenuActiveStyle.Render("▸ "+item) + "\n"
		} else {
			s += common.MenuInactiveStyle.Render("  "+item) + "\n"
		}
	}
	return common.SelectedStyle.Render(s + common.StatusBarStyle.Render("enter select · esc close"))
}
