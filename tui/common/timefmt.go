package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RelativeTime renders t relative to now, the way comments are labelled:
// "just now" under a minute, then minutes, hours and days, and an absolute
// date once it is a week old.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format("Jan 02, 2006")
	}
}

// TruncateLine cuts s to the given display width, appending an ellipsis when
// anything was removed. Width-aware so emoji and wide glyphs don't overflow
// card borders.
func TruncateLine(s string, width int) string {
	if width < 4 {
		width = 4
	}
	return ansi.Truncate(s, width, "…")
}

// TruncateToTwoLines wraps text to width and keeps at most two lines.
func TruncateToTwoLines(text string, width int) string {
	if width < 12 {
		width = 12
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= 2 {
		return wrapped
	}
	return strings.Join(lines[:2], "\n") + "..."
}
