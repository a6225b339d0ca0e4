package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
)

// reactionService implements app.ReactionService against the reactions table.
type reactionService struct {
	client *Client
}

// NewReactionService creates a ReactionService backed by the data API.
func NewReactionService(client *Client) *reactionService {
	return &reactionService{client: client}
}

// Counts fetches the four per-type counts concurrently. A failed count for
// one type defaults to zero; the remaining types still report.
func (s *reactionService) Counts(ctx context.Context, diaryID int64) (domain.ReactionCounts, error) {
	counts := domain.NewReactionCounts()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, t := range domain.ReactionTypes() {
		wg.Add(1)
		go func(t domain.ReactionType) {
			defer wg.Done()
			v := url.Values{}
			v.Set("select", "id")
			v.Set("diary_id", "eq."+strconv.FormatInt(diaryID, 10))
			v.Set("reaction_type", "eq."+string(t))
			n, err := s.client.Count(ctx, "/reactions?"+v.Encode())
			if err != nil {
				return
			}
			mu.Lock()
			counts[t] = n
			mu.Unlock()
		}(t)
	}
	wg.Wait()

	return counts, nil
}

// ViewerReaction returns the viewer's reaction on the entry, or empty when
// there is none.
func (s *reactionService) ViewerReaction(ctx context.Context, viewer app.Session, diaryID int64) (domain.ReactionType, error) {
	if !viewer.SignedIn() {
		return "", nil
	}

	v := url.Values{}
	v.Set("select", "reaction_type")
	v.Set("diary_id", "eq."+strconv.FormatInt(diaryID, 10))
	v.Set("user_id", "eq."+viewer.UserID)

	data, err := s.client.Get(ctx, "/reactions?"+v.Encode())
	if err != nil {
		return "", fmt.Errorf("fetching viewer reaction: %w", err)
	}

	var rows []struct {
		ReactionType string `json:"reaction_type"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return "", fmt.Errorf("parsing viewer reaction: %w", err)
	}
	if len(rows) == 0 {
		return "", nil
	}
	return domain.ReactionType(rows[0].ReactionType), nil
}

// Set upserts the viewer's reaction keyed on (diary_id, user_id). Replacing
// an existing reaction is one idempotent write, so there is no window where
// the viewer's previous reaction is deleted but the new one not yet stored.
func (s *reactionService) Set(ctx context.Context, session app.Session, diaryID int64, t domain.ReactionType) error {
	if !session.SignedIn() {
		return domain.ErrNotSignedIn
	}

	row := struct {
		DiaryID      int64  `json:"diary_id"`
		UserID       string `json:"user_id"`
		ReactionType string `json:"reaction_type"`
	}{DiaryID: diaryID, UserID: session.UserID, ReactionType: string(t)}

	if err := s.client.Upsert(ctx, "/reactions", row, "diary_id,user_id"); err != nil {
		return fmt.Errorf("setting reaction: %w", err)
	}
	return nil
}

// Clear removes the viewer's reaction row.
func (s *reactionService) Clear(ctx context.Context, session app.Session, diaryID int64) error {
	if !session.SignedIn() {
		return domain.ErrNotSignedIn
	}

	v := url.Values{}
	v.Set("diary_id", "eq."+strconv.FormatInt(diaryID, 10))
	v.Set("user_id", "eq."+session.UserID)

	if err := s.client.Delete(ctx, "/reactions?"+v.Encode()); err != nil {
		return fmt.Errorf("clearing reaction: %w", err)
	}
	return nil
}

var _ app.ReactionService = (*reactionService)(nil)
