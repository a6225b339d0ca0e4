package domain

import "time"

// ContentMaxLen bounds the free-text note of a diary entry, in runes.
const ContentMaxLen = 500

// Diary is one user's daily post pairing a music link with an emotion tag and
// a short note. Entries are immutable once created; there is no edit path.
type Diary struct {
	ID        int64
	UserID    string
	Title     string // Optional; empty when the author gave none.
	MusicLink string
	Emotion   Emotion
	Content   string
	CreatedAt time.Time
}

// UserProfile is the public profile of a TRACK user. Read-only here.
type UserProfile struct {
	ID       string
	Username string
}

// Comment is an append-only comment under a diary entry. Username is joined
// in at fetch time; it is not stored on the comment row.
type Comment struct {
	ID        int64
	DiaryID   int64
	UserID    string
	Username  string
	Content   string
	CreatedAt time.Time
}

// FeedItem is a diary entry denormalized for rendering: the entry joined with
// its author, comment count, per-type reaction counts and the viewer's own
// reaction. Recomputed on every fetch, never persisted.
type FeedItem struct {
	Diary          Diary
	Author         UserProfile
	CommentCount   int
	Reactions      ReactionCounts
	ViewerReaction ReactionType // Empty when the viewer has not reacted.
}
