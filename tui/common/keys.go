package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit     key.Binding
	Refresh  key.Binding
	Feed     key.Binding // f — switch to today's feed
	Calendar key.Binding // v — switch to the calendar
	New      key.Binding // n — compose today's diary
	Account  key.Binding // a — sign in / account menu
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Back     key.Binding // esc
	Comments key.Binding // c — toggle the comment panel
	Open     key.Binding // o — open the music link in a browser
	Author   key.Binding // u — open the author's calendar
	React1   key.Binding
	React2   key.Binding
	React3   key.Binding
	React4   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Feed: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "feed"),
		),
		Calendar: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "calendar"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new diary"),
		),
		Account: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "account"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Comments: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comments"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open link"),
		),
		Author: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "author's calendar"),
		),
		React1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-4", "react"),
		),
		React2: key.NewBinding(key.WithKeys("2")),
		React3: key.NewBinding(key.WithKeys("3")),
		React4: key.NewBinding(key.WithKeys("4")),
	}
}
