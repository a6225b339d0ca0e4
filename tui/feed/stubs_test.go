package feed

import (
	"context"
	"time"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
)

type stubFeeds struct {
	items []domain.FeedItem
	err   error
}

func (s stubFeeds) FetchToday(context.Context, app.Session) ([]domain.FeedItem, error) {
	return s.items, s.err
}

type stubReactions struct {
	setCalls   int
	clearCalls int
	err        error
}

func (s *stubReactions) Counts(context.Context, int64) (domain.ReactionCounts, error) {
	return domain.NewReactionCounts(), nil
}

func (s *stubReactions) ViewerReaction(context.Context, app.Session, int64) (domain.ReactionType, error) {
	return "", nil
}

func (s *stubReactions) Set(context.Context, app.Session, int64, domain.ReactionType) error {
	s.setCalls++
	return s.err
}

func (s *stubReactions) Clear(context.Context, app.Session, int64) error {
	s.clearCalls++
	return s.err
}

type stubComments struct {
	comments []domain.Comment
	err      error
}

func (s stubComments) For(context.Context, int64) ([]domain.Comment, error) {
	return s.comments, s.err
}

func (s stubComments) Add(context.Context, app.Session, int64, string) error {
	return s.err
}

func (s stubComments) Count(context.Context, int64) (int, error) {
	return len(s.comments), s.err
}

func signedIn() app.Session {
	return app.Session{
		AccessToken: "jwt",
		UserID:      "33333333-3333-3333-3333-333333333333",
		Username:    "mina",
	}
}

func makeItem(id int64, username string) domain.FeedItem {
	return domain.FeedItem{
		Diary: domain.Diary{
			ID:        id,
			UserID:    "u-" + username,
			MusicLink: "https://youtu.be/dQw4w9WgXcQ",
			Emotion:   domain.EmotionHappy,
			Content:   "a note",
			CreatedAt: time.Now(),
		},
		Author:    domain.UserProfile{ID: "u-" + username, Username: username},
		Reactions: domain.NewReactionCounts(),
	}
}
