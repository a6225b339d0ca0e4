package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#C6A0F6")).
			Padding(1, 2, 0, 1)

	// TaglineStyle styles the app's tagline next to the title.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Italic(true).
			MarginLeft(1)

	// TabActiveStyle styles the selected navigation tab.
	TabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#C6A0F6")).
			Padding(0, 1)

	// TabInactiveStyle styles unselected navigation tabs.
	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E738D")).
				Padding(0, 1)

	// AuthorStyle styles diary author names.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// TitleStyle styles optional diary titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EED49F"))

	// ContentStyle styles diary note text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// MusicLinkStyle styles the music link / embed line.
	MusicLinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Underline(true)

	// EmotionTagStyle styles the emotion pill on a card.
	EmotionTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5BDE6")).
			Bold(true)

	// SelectedStyle highlights the currently selected card.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#C6A0F6")).
			Padding(0, 1)

	// UnselectedStyle gives unselected cards a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// ReactionStyle styles a reaction chip the viewer hasn't chosen.
	ReactionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ReactionActiveStyle highlights the viewer's own reaction.
	ReactionActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F5BDE6")).
				Bold(true)

	// MetadataStyle styles comment counts and similar secondary info.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// LabelStyle styles form field labels.
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#B8C0E0"))

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// NoticeStyle styles refusal and login-required notices.
	NoticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EED49F")).
			Bold(true)

	// MenuActiveStyle styles the selected entry of a small menu.
	MenuActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C6A0F6")).
			Bold(true).
			Padding(0, 1)

	// MenuInactiveStyle styles unselected menu entries.
	MenuInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E738D")).
				Padding(0, 1)
)
