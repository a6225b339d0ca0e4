package supabase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
)

// Caps the per-entry enrichment fan-out; each entry spends several count
// queries of its own.
const feedFetchParallelism = 8

// feedService implements app.FeedService by composing the table services.
type feedService struct {
	diaries   *diaryService
	users     *userService
	comments  *commentService
	reactions *reactionService
}

// NewFeedService creates the feed aggregator.
func NewFeedService(diaries *diaryService, users *userService, comments *commentService, reactions *reactionService) *feedService {
	return &feedService{diaries: diaries, users: users, comments: comments, reactions: reactions}
}

// FetchToday aggregates today's entries newest first. The entry fetch and the
// batched author lookup are primary: either failing fails the whole call.
// Per-entry comment/reaction fetches are secondary: an individual failure
// defaults that value to zero/empty. Enrichment runs concurrently across
// entries; results merge by index so the output order is the entry order.
func (s *feedService) FetchToday(ctx context.Context, viewer app.Session) ([]domain.FeedItem, error) {
	diaries, err := s.diaries.TodayEntries(ctx)
	if err != nil {
		return nil, err
	}
	if len(diaries) == 0 {
		return []domain.FeedItem{}, nil
	}

	ids := make([]string, 0, len(diaries))
	seen := make(map[string]struct{}, len(diaries))
	for _, d := range diaries {
		if _, ok := seen[d.UserID]; ok {
			continue
		}
		seen[d.UserID] = struct{}{}
		ids = append(ids, d.UserID)
	}
	profiles, err := s.users.ProfilesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching feed authors: %w", err)
	}

	items := make([]domain.FeedItem, len(diaries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(feedFetchParallelism)
	for i, d := range diaries {
		i, d := i, d
		g.Go(func() error {
			items[i] = s.enrich(gctx, viewer, d, profiles)
			return nil
		})
	}
	_ = g.Wait() // Enrichment never errors; failures degrade to defaults.

	return items, nil
}

func (s *feedService) enrich(ctx context.Context, viewer app.Session, d domain.Diary, profiles map[string]domain.UserProfile) domain.FeedItem {
	item := domain.FeedItem{
		Diary:     d,
		Reactions: domain.NewReactionCounts(),
	}
	if p, ok := profiles[d.UserID]; ok {
		item.Author = p
	}

	if n, err := s.comments.Count(ctx, d.ID); err == nil {
		item.CommentCount = n
	}
	if counts, err := s.reactions.Counts(ctx, d.ID); err == nil {
		item.Reactions = counts
	}
	if viewer.SignedIn() {
		if r, err := s.reactions.ViewerReaction(ctx, viewer, d.ID); err == nil {
			item.ViewerReaction = r
		}
	}
	return item
}

var _ app.FeedService = (*feedService)(nil)
