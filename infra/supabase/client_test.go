package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// stubTokens satisfies auth.TokenProvider with a fixed token.
type stubTokens struct {
	token string
}

func (s stubTokens) AccessToken() (string, error) {
	return s.token, nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "anon-key", stubTokens{token: "viewer-jwt"})
}

func TestClientGet_SetsAuthHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/diaries" {
			t.Errorf("path got %q", r.URL.Path)
		}
		if r.Header.Get("apikey") != "anon-key" {
			t.Errorf("apikey got %q", r.Header.Get("apikey"))
		}
		if r.Header.Get("Authorization") != "Bearer viewer-jwt" {
			t.Errorf("authorization got %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte("[]"))
	})

	if _, err := client.Get(context.Background(), "/diaries"); err != nil {
		t.Fatalf("Get: %v", err)
	}
}

func TestClientCount_ParsesContentRange(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Prefer") != "count=exact" {
			t.Errorf("Prefer got %q", r.Header.Get("Prefer"))
		}
		w.Header().Set("Content-Range", "0-24/57")
		w.Write([]byte("[]"))
	})

	n, err := client.Count(context.Background(), "/comments?select=id")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 57 {
		t.Fatalf("count got %d want 57", n)
	}
}

func TestClientUpsert_OnConflictAndPrefer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method got %q", r.Method)
		}
		if r.URL.Query().Get("on_conflict") != "diary_id,user_id" {
			t.Errorf("on_conflict got %q", r.URL.Query().Get("on_conflict"))
		}
		prefer := r.Header.Get("Prefer")
		if !strings.Contains(prefer, "resolution=merge-duplicates") {
			t.Errorf("Prefer missing merge-duplicates: %q", prefer)
		}
		w.WriteHeader(http.StatusCreated)
	})

	err := client.Upsert(context.Background(), "/reactions", map[string]any{"diary_id": 1}, "diary_id,user_id")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
}

func TestClient_SurfacesStructuredErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "duplicate key value violates unique constraint", "code": "23505"}`))
	})

	_, err := client.Get(context.Background(), "/diaries")
	if err == nil || !strings.Contains(err.Error(), "duplicate key value") {
		t.Fatalf("got %v, want the backend message", err)
	}
}

func TestParseContentRange(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "range", in: "0-24/57", want: 57},
		{name: "empty table", in: "*/0", want: 0},
		{name: "no exact count", in: "0-9/*", wantErr: true},
		{name: "missing", in: "", wantErr: true},
		{name: "junk", in: "0-9", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseContentRange(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseContentRange(%q) expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseContentRange(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("parseContentRange(%q) got %d want %d", tc.in, got, tc.want)
			}
		})
	}
}
