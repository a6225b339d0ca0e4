package feed

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
)

func fetchItems(feeds app.FeedService, viewer app.Session, seq int) tea.Cmd {
	return func() tea.Msg {
		items, err := feeds.FetchToday(context.Background(), viewer)
		if err != nil {
			return ItemsErrorMsg{Seq: seq, Err: err}
		}
		return ItemsLoadedMsg{Seq: seq, Items: items}
	}
}

func toggleReaction(reactions app.ReactionService, session app.Session, diaryID int64, choice domain.ReactionType, cleared bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if cleared {
			err = reactions.Clear(context.Background(), session, diaryID)
		} else {
			err = reactions.Set(context.Background(), session, diaryID, choice)
		}
		return ReactionResultMsg{DiaryID: diaryID, Choice: choice, Cleared: cleared, Err: err}
	}
}
