package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/AWKRID/track/infra/auth"
)

// Client is a thin HTTP wrapper for the backend's PostgREST data API.
// It handles base URL construction, api-key and bearer token injection,
// and exact-count extraction from Content-Range headers.
type Client struct {
	baseURL string
	anonKey string
	tokens  auth.TokenProvider
	http    *http.Client
}

// NewClient creates a data API client. Paths passed to its methods are
// relative to /rest/v1 and carry their own PostgREST filter query strings.
func NewClient(baseURL, anonKey string, tokens auth.TokenProvider) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/rest/v1",
		anonKey: anonKey,
		tokens:  tokens,
		http:    &http.Client{},
	}
}

// Get performs a select and returns the raw JSON rows.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	data, _, err := c.do(ctx, http.MethodGet, path, nil, "")
	return data, err
}

// Count performs a select asking only for the exact row count.
func (c *Client) Count(ctx context.Context, path string) (int, error) {
	_, resp, err := c.do(ctx, http.MethodGet, path, nil, "count=exact")
	if err != nil {
		return 0, err
	}
	return parseContentRange(resp.Header.Get("Content-Range"))
}

// Insert creates one row and returns its representation.
func (c *Client) Insert(ctx context.Context, path string, row any) ([]byte, error) {
	body, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encoding row: %w", err)
	}
	data, _, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(body), "return=representation")
	return data, err
}

// Upsert creates or replaces one row keyed on the onConflict columns in a
// single idempotent write.
func (c *Client) Upsert(ctx context.Context, path string, row any, onConflict string) error {
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encoding row: %w", err)
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	path = path + sep + "on_conflict=" + onConflict
	_, _, err = c.do(ctx, http.MethodPost, path, bytes.NewReader(body), "resolution=merge-duplicates,return=minimal")
	return err
}

// Delete removes the rows matched by the path's filters.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, _, err := c.do(ctx, http.MethodDelete, path, nil, "")
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, prefer string) ([]byte, *http.Response, error) {
	token, err := c.tokens.AccessToken()
	if err != nil {
		return nil, nil, fmt.Errorf("auth: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, restError(method, path, resp.StatusCode, data)
	}
	return data, resp, nil
}

// restError decodes PostgREST's structured failure body when present.
func restError(method, path string, status int, data []byte) error {
	var e struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(data, &e); err == nil && e.Message != "" {
		return fmt.Errorf("API %s %s: %s", method, path, e.Message)
	}
	return fmt.Errorf("API %s %s returned %d: %s", method, path, status, string(data))
}

// parseContentRange extracts the total from a "0-24/57" or "*/0" range.
func parseContentRange(header string) (int, error) {
	_, total, ok := strings.Cut(header, "/")
	if !ok {
		return 0, fmt.Errorf("missing count in Content-Range %q", header)
	}
	if total == "*" {
		return 0, fmt.Errorf("backend returned no exact count in %q", header)
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("invalid count in Content-Range %q", header)
	}
	return n, nil
}
