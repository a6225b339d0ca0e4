package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AWKRID/track/domain"
	"github.com/AWKRID/track/tui/common"
)

// View renders the entry in full, with the reaction bar and, when expanded,
// the comment thread.
func (m Model) View() string {
	var b strings.Builder

	d := m.item.Diary
	header := common.AuthorStyle.Render("@"+m.item.Author.Username) + "  " +
		common.TimestampStyle.Render(d.CreatedAt.Local().Format("Jan 02, 2006 15:04"))
	b.WriteString(header + "\n")

	info := d.Emotion.Info()
	b.WriteString(common.EmotionTagStyle.Render(info.Emoji+" "+info.Label) + "\n\n")

	if d.Title != "" {
		b.WriteString(common.TitleStyle.Render(d.Title) + "\n")
	}
	b.WriteString(common.MusicLinkStyle.Render(musicLine(d.MusicLink)) + "\n\n")
	b.WriteString(common.ContentStyle.Render(d.Content) + "\n\n")

	b.WriteString(m.reactionBar() + "\n")
	b.WriteString(common.MetadataStyle.Render(fmt.Sprintf("💬 %d comments", m.item.CommentCount)) + "\n")

	if m.showComments {
		b.WriteString("\n" + m.commentSection())
	}

	if m.err != nil {
		b.WriteString("\n" + common.ErrorStyle.Render(m.err.Error()))
	}
	if m.notice != "" {
		b.WriteString("\n" + common.NoticeStyle.Render(m.notice))
	}

	b.WriteString("\n" + common.StatusBarStyle.Render(m.helpLine()))

	width := m.width - 4
	if width < 40 {
		width = 64
	}
	return common.SelectedStyle.Width(width).Render(b.String())
}

func (m Model) reactionBar() string {
	chips := make([]string, 0, len(domain.ReactionTypes()))
	for i, rt := range domain.ReactionTypes() {
		chip := fmt.Sprintf("%d %s %d", i+1, rt, m.item.Reactions[rt])
		if rt == m.item.ViewerReaction {
			chips = append(chips, common.ReactionActiveStyle.Render(chip))
		} else {
			chips = append(chips, common.ReactionStyle.Render(chip))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(chips, "  "))
}

func (m Model) commentSection() string {
	var b strings.Builder
	b.WriteString(common.LabelStyle.Render("Comments") + "\n")

	switch {
	case m.loadingComments && !m.commentsLoaded:
		b.WriteString(common.MetadataStyle.Render("Loading comments...") + "\n")
	case len(m.commentList) == 0:
		b.WriteString(common.MetadataStyle.Render("No comments yet.") + "\n")
	default:
		now := m.fetchedAt
		for _, c := range m.commentList {
			b.WriteString(common.AuthorStyle.Render("@"+c.Username) + " " +
				common.TimestampStyle.Render(common.RelativeTime(c.CreatedAt, now)) + "\n")
			b.WriteString("  " + common.ContentStyle.Render(c.Content) + "\n")
		}
	}

	if m.session.SignedIn() {
		b.WriteString("\n" + m.input.View())
		if m.posting {
			b.WriteString(" " + common.MetadataStyle.Render("posting..."))
		}
	} else {
		b.WriteString("\n" + common.NoticeStyle.Render("Sign in to comment."))
	}
	return b.String()
}

func (m Model) helpLine() string {
	if m.input.Focused() {
		return "enter post comment · esc stop typing"
	}
	parts := []string{"1-4 react", "c comments", "o open link", "esc back"}
	return strings.Join(parts, " · ")
}

func musicLine(link string) string {
	if embed, ok := domain.YouTubeEmbedURL(link); ok {
		return "▶ " + embed
	}
	return "♪ " + link
}
