package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
)

// commentService implements app.CommentService against the comments table.
type commentService struct {
	client *Client
	users  *userService
}

// NewCommentService creates a CommentService backed by the data API.
func NewCommentService(client *Client, users *userService) *commentService {
	return &commentService{client: client, users: users}
}

type commentRow struct {
	ID        int64  `json:"id"`
	DiaryID   int64  `json:"diary_id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// For returns the entry's comments newest first. Author usernames are joined
// via one batched profile lookup; authors that no longer resolve render as
// "unknown" rather than failing the list.
func (s *commentService) For(ctx context.Context, diaryID int64) ([]domain.Comment, error) {
	v := url.Values{}
	v.Set("select", "id,diary_id,user_id,content,created_at")
	v.Set("diary_id", "eq."+strconv.FormatInt(diaryID, 10))
	v.Set("order", "created_at.desc")

	data, err := s.client.Get(ctx, "/comments?"+v.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}

	var rows []commentRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing comments: %w", err)
	}
	if len(rows) == 0 {
		return []domain.Comment{}, nil
	}

	ids := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}
	profiles, err := s.users.ProfilesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching comment authors: %w", err)
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, r := range rows {
		createdAt, _ := time.Parse(time.RFC3339, r.CreatedAt)
		username := "unknown"
		if p, ok := profiles[r.UserID]; ok {
			username = p.Username
		}
		comments = append(comments, domain.Comment{
			ID:        r.ID,
			DiaryID:   r.DiaryID,
			UserID:    r.UserID,
			Username:  username,
			Content:   r.Content,
			CreatedAt: createdAt,
		})
	}
	return comments, nil
}

// Add appends one comment from the viewer.
func (s *commentService) Add(ctx context.Context, session app.Session, diaryID int64, content string) error {
	if !session.SignedIn() {
		return domain.ErrNotSignedIn
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.ErrEmptyComment
	}

	row := struct {
		UserID  string `json:"user_id"`
		DiaryID int64  `json:"diary_id"`
		Content string `json:"content"`
	}{UserID: session.UserID, DiaryID: diaryID, Content: content}

	if _, err := s.client.Insert(ctx, "/comments", row); err != nil {
		return fmt.Errorf("posting comment: %w", err)
	}
	return nil
}

// Count returns the number of comments on the entry.
func (s *commentService) Count(ctx context.Context, diaryID int64) (int, error) {
	v := url.Values{}
	v.Set("select", "id")
	v.Set("diary_id", "eq."+strconv.FormatInt(diaryID, 10))

	n, err := s.client.Count(ctx, "/comments?"+v.Encode())
	if err != nil {
		return 0, fmt.Errorf("counting comments: %w", err)
	}
	return n, nil
}

var _ app.CommentService = (*commentService)(nil)
