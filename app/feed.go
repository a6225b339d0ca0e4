package app

import (
	"context"

	"github.com/AWKRID/track/domain"
)

// FeedService aggregates today's diary entries for the feed view.
type FeedService interface {
	// FetchToday returns all entries created within the current local day,
	// newest first, each joined with its author, comment count, per-type
	// reaction counts and the viewer's own reaction. Failures of the entry
	// or author fetch fail the whole call; failures of the per-entry count
	// fetches default to zero/empty instead.
	FetchToday(ctx context.Context, viewer Session) ([]domain.FeedItem, error)
}
