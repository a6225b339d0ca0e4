package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/AWKRID/track/app"
	"github.com/AWKRID/track/domain"
)

// diaryService implements app.DiaryService against the diaries table.
type diaryService struct {
	client *Client
	now    func() time.Time // Injected for day-boundary tests.
}

// NewDiaryService creates a DiaryService backed by the data API.
func NewDiaryService(client *Client) *diaryService {
	return &diaryService{client: client, now: time.Now}
}

// diaryRow is the wire shape of a diaries row.
type diaryRow struct {
	ID        int64   `json:"id"`
	UserID    string  `json:"user_id"`
	Title     *string `json:"title"`
	MusicLink string  `json:"music_link"`
	Emotion   string  `json:"emotion"`
	Content   string  `json:"content"`
	CreatedAt string  `json:"created_at"`
}

func (r diaryRow) toDomain() domain.Diary {
	createdAt, _ := time.Parse(time.RFC3339, r.CreatedAt)
	title := ""
	if r.Title != nil {
		title = *r.Title
	}
	return domain.Diary{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     title,
		MusicLink: r.MusicLink,
		Emotion:   domain.Emotion(r.Emotion),
		Content:   r.Content,
		CreatedAt: createdAt,
	}
}

func decodeDiaries(data []byte) ([]domain.Diary, error) {
	var rows []diaryRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing diaries: %w", err)
	}
	diaries := make([]domain.Diary, 0, len(rows))
	for _, r := range rows {
		diaries = append(diaries, r.toDomain())
	}
	return diaries, nil
}

// Create inserts one row for the session's viewer. Title is stored as NULL
// when empty, matching how the web client wrote it.
func (s *diaryService) Create(ctx context.Context, session app.Session, draft app.DiaryDraft) (domain.Diary, error) {
	if !session.SignedIn() {
		return domain.Diary{}, domain.ErrNotSignedIn
	}
	if err := draft.Validate(); err != nil {
		return domain.Diary{}, err
	}

	var title *string
	if draft.Title != "" {
		title = &draft.Title
	}
	row := struct {
		UserID    string  `json:"user_id"`
		Title     *string `json:"title"`
		MusicLink string  `json:"music_link"`
		Emotion   string  `json:"emotion"`
		Content   string  `json:"content"`
	}{
		UserID:    session.UserID,
		Title:     title,
		MusicLink: draft.MusicLink,
		Emotion:   string(draft.Emotion),
		Content:   draft.Content,
	}

	data, err := s.client.Insert(ctx, "/diaries", row)
	if err != nil {
		return domain.Diary{}, fmt.Errorf("saving diary: %w", err)
	}

	diaries, err := decodeDiaries(data)
	if err != nil || len(diaries) == 0 {
		return domain.Diary{}, fmt.Errorf("saving diary: unexpected response")
	}
	return diaries[0], nil
}

// HasEntryToday checks [startOfLocalDay, startOfNextLocalDay) for the viewer.
func (s *diaryService) HasEntryToday(ctx context.Context, session app.Session) (bool, error) {
	if !session.SignedIn() {
		return false, domain.ErrNotSignedIn
	}
	start, end := localDayBounds(s.now())

	v := url.Values{}
	v.Set("select", "id")
	v.Set("user_id", "eq."+session.UserID)
	v.Add("created_at", "gte."+start.Format(time.RFC3339))
	v.Add("created_at", "lt."+end.Format(time.RFC3339))

	n, err := s.client.Count(ctx, "/diaries?"+v.Encode())
	if err != nil {
		return false, fmt.Errorf("checking today's diary: %w", err)
	}
	return n > 0, nil
}

// TodayEntries returns all entries created within the current local day,
// newest first. This is the feed aggregation's primary fetch.
func (s *diaryService) TodayEntries(ctx context.Context) ([]domain.Diary, error) {
	start, end := localDayBounds(s.now())

	v := url.Values{}
	v.Set("select", "*")
	v.Add("created_at", "gte."+start.Format(time.RFC3339))
	v.Add("created_at", "lt."+end.Format(time.RFC3339))
	v.Set("order", "created_at.desc")

	data, err := s.client.Get(ctx, "/diaries?"+v.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching today's diaries: %w", err)
	}
	return decodeDiaries(data)
}

// EntriesBetween returns one user's entries with created_at in [from, to).
func (s *diaryService) EntriesBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.Diary, error) {
	v := url.Values{}
	v.Set("select", "*")
	v.Set("user_id", "eq."+userID)
	v.Add("created_at", "gte."+from.Format(time.RFC3339))
	v.Add("created_at", "lt."+to.Format(time.RFC3339))
	v.Set("order", "created_at.asc")

	data, err := s.client.Get(ctx, "/diaries?"+v.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching diaries: %w", err)
	}
	return decodeDiaries(data)
}

func localDayBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

var _ app.DiaryService = (*diaryService)(nil)
