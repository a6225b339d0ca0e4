package feed

import (
	"fmt"
	"strings"

	"github.com/AWKRID/track/domain"
	"github.com/AWKRID/track/tui/common"
)

// View renders the card list, or the detail panel when one is open.
func (m Model) View() string {
	if m.showDetail {
		return m.detail.View()
	}

	if m.loading && len(m.items) == 0 {
		return m.spinner.View() + " Loading today's diaries..."
	}
	if m.err != nil && len(m.items) == 0 {
		return common.ErrorStyle.Render("Couldn't load the feed: " + m.err.Error())
	}
	if len(m.items) == 0 {
		return common.MetadataStyle.Render("No diaries today yet. Be the first — press n.")
	}

	var b strings.Builder
	for i, item := range m.items {
		card := m.renderCard(item)
		if i == m.cursor {
			b.WriteString(common.SelectedStyle.Width(m.cardWidth()).Render(card))
		} else {
			b.WriteString(common.UnselectedStyle.Width(m.cardWidth()).Render(card))
		}
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(common.ErrorStyle.Render(m.err.Error()) + "\n")
	}
	return b.String()
}

func (m Model) cardWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 64
	}
	return w
}

func (m Model) renderCard(item domain.FeedItem) string {
	var b strings.Builder
	d := item.Diary
	inner := m.cardWidth() - 2

	info := d.Emotion.Info()
	header := common.AuthorStyle.Render("@"+item.Author.Username) + "  " +
		common.TimestampStyle.Render(d.CreatedAt.Local().Format("15:04")) + "  " +
		common.EmotionTagStyle.Render(info.Emoji+" "+info.Label)
	b.WriteString(header + "\n")

	if d.Title != "" {
		b.WriteString(common.TitleStyle.Render(common.TruncateLine(d.Title, inner)) + "\n")
	}
	b.WriteString(common.MusicLinkStyle.Render(common.TruncateLine(musicLine(d.MusicLink), inner)) + "\n")
	b.WriteString(common.ContentStyle.Render(common.TruncateToTwoLines(d.Content, inner)) + "\n")

	b.WriteString(reactionSummary(item) + "  " +
		common.MetadataStyle.Render(fmt.Sprintf("💬 %d", item.CommentCount)))
	return b.String()
}

func reactionSummary(item domain.FeedItem) string {
	chips := make([]string, 0, len(domain.ReactionTypes()))
	for _, rt := range domain.ReactionTypes() {
		chip := fmt.Sprintf("%s %d", rt, item.Reactions[rt])
		if rt == item.ViewerReaction {
			chips = append(chips, common.ReactionActiveStyle.Render(chip))
		} else {
			chips = append(chips, common.ReactionStyle.Render(chip))
		}
	}
	return strings.Join(chips, " ")
}

func musicLine(link string) string {
	if embed, ok := domain.YouTubeEmbedURL(link); ok {
		return "▶ " + embed
	}
	return "♪ " + link
}
