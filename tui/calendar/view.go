package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/AWKRID/track/domain"
	"github.com/AWKRID/track/tui/common"
)

// View renders the month grid, or the entry panel when one is open.
func (m Model) View() string {
	if m.showDetail {
		return m.detail.View()
	}

	var b strings.Builder

	owner := m.owner.Username
	if owner == "" {
		owner = "..."
	}
	b.WriteString(common.TitleStyle.Render(fmt.Sprintf("@%s — %s %d", owner, m.month, m.year)) + "\n")
	b.WriteString(m.summaryLine() + "\n\n")

	if m.loading {
		b.WriteString(common.MetadataStyle.Render("Loading month...") + "\n")
	} else {
		b.WriteString(m.grid())
	}

	if m.err != nil {
		b.WriteString("\n" + common.ErrorStyle.Render(m.err.Error()))
	}

	help := "←/→ month · ↑/↓ entry · enter open · r refresh"
	if !m.ViewingOwn() {
		help += " · b my calendar"
	}
	b.WriteString("\n" + common.StatusBarStyle.Render(help))
	return b.String()
}

// summaryLine shows the month's entry count and a glimpse of its moods.
func (m Model) summaryLine() string {
	if len(m.dates) == 0 {
		return common.MetadataStyle.Render("No entries this month.")
	}
	emojis := make([]string, 0, 3)
	for _, date := range m.dates {
		if len(emojis) == 3 {
			break
		}
		emojis = append(emojis, m.entries[date].Emotion.Info().Emoji)
	}
	return common.MetadataStyle.Render(fmt.Sprintf("%d entries  %s", len(m.dates), strings.Join(emojis, " ")))
}

func (m Model) grid() string {
	var b strings.Builder
	b.WriteString(common.LabelStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa") + "\n")

	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	col := int(first.Weekday())

	b.WriteString(strings.Repeat("    ", col))
	for day := 1; day <= daysInMonth; day++ {
		b.WriteString(m.cell(day))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	if sel, ok := m.selectedEntry(); ok {
		info := sel.Emotion.Info()
		line := fmt.Sprintf("%s  %s %s", m.dates[m.selected], info.Emoji, info.Label)
		if sel.Title != "" {
			line += "  " + sel.Title
		}
		b.WriteString("\n" + common.EmotionTagStyle.Render(common.TruncateLine(line, m.width-4)) + "\n")
	}
	return b.String()
}

// cell renders one day: the entry's emotion emoji when the date has one,
// highlighted when it is the selected entry.
func (m Model) cell(day int) string {
	date := fmt.Sprintf("%04d-%02d-%02d", m.year, int(m.month), day)
	d, has := m.entries[date]
	if !has {
		return common.MetadataStyle.Render(fmt.Sprintf(" %2d ", day))
	}

	text := fmt.Sprintf("%2d%s", day, d.Emotion.Info().Emoji)
	if m.selected >= 0 && m.selected < len(m.dates) && m.dates[m.selected] == date {
		return common.ReactionActiveStyle.Render(text)
	}
	return common.EmotionTagStyle.Render(text)
}

func (m Model) selectedEntry() (domain.Diary, bool) {
	if m.selected < 0 || m.selected >= len(m.dates) {
		return domain.Diary{}, false
	}
	return m.entries[m.dates[m.selected]], true
}
