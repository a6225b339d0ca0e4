package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/AWKRID/track/domain"
)

// userService reads display profiles from the users table.
type userService struct {
	client *Client
}

// NewUserService creates a profile reader backed by the data API.
func NewUserService(client *Client) *userService {
	return &userService{client: client}
}

type userRow struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ProfileByID returns one user's display profile.
func (s *userService) ProfileByID(ctx context.Context, userID string) (domain.UserProfile, error) {
	v := url.Values{}
	v.Set("select", "id,username")
	v.Set("id", "eq."+userID)

	data, err := s.client.Get(ctx, "/users?"+v.Encode())
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("fetching profile: %w", err)
	}

	var rows []userRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return domain.UserProfile{}, fmt.Errorf("parsing profile: %w", err)
	}
	if len(rows) == 0 {
		return domain.UserProfile{}, fmt.Errorf("no profile for user %s", userID)
	}
	return domain.UserProfile{ID: rows[0].ID, Username: rows[0].Username}, nil
}

// ProfilesByIDs batch-fetches profiles with a single in.(...) lookup and
// returns them keyed by user id.
func (s *userService) ProfilesByIDs(ctx context.Context, userIDs []string) (map[string]domain.UserProfile, error) {
	profiles := make(map[string]domain.UserProfile, len(userIDs))
	if len(userIDs) == 0 {
		return profiles, nil
	}

	v := url.Values{}
	v.Set("select", "id,username")
	v.Set("id", "in.("+strings.Join(userIDs, ",")+")")

	data, err := s.client.Get(ctx, "/users?"+v.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching profiles: %w", err)
	}

	var rows []userRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}
	for _, r := range rows {
		profiles[r.ID] = domain.UserProfile{ID: r.ID, Username: r.Username}
	}
	return profiles, nil
}
