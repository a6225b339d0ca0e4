package app

import (
	"context"

	"github.com/AWKRID/track/domain"
)

// CommentService reads and appends comments under a diary entry.
type CommentService interface {
	// For returns the entry's comments newest first, usernames joined in.
	For(ctx context.Context, diaryID int64) ([]domain.Comment, error)

	// Add appends one comment from the session's viewer. Content must be
	// non-empty after trimming.
	Add(ctx context.Context, session Session, diaryID int64, content string) error

	// Count returns the number of comments on the entry.
	Count(ctx context.Context, diaryID int64) (int, error)
}

// ReactionService manages the viewer's single reaction per entry.
type ReactionService interface {
	// Counts returns per-type counts for the entry. Individual count
	// failures default to zero rather than erroring.
	Counts(ctx context.Context, diaryID int64) (domain.ReactionCounts, error)

	// ViewerReaction returns the viewer's reaction on the entry, or empty.
	ViewerReaction(ctx context.Context, viewer Session, diaryID int64) (domain.ReactionType, error)

	// Set upserts the viewer's reaction keyed on (diary, viewer). Replacing
	// an existing reaction is a single idempotent write, not a
	// delete-then-insert.
	Set(ctx context.Context, session Session, diaryID int64, t domain.ReactionType) error

	// Clear removes the viewer's reaction from the entry.
	Clear(ctx context.Context, session Session, diaryID int64) error
}
