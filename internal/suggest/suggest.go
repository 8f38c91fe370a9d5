// Package suggest fetches search autocomplete suggestions. It is a
// stateless relay to the configured third-party service; a newer query
// supersedes an in-flight one via context cancellation, and callers
// discard stale responses.
package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrEmptyQuery is returned for a blank query; nothing is fetched.
var ErrEmptyQuery = errors.New("query is required")

// Client talks to a firefox-protocol suggest endpoint. The endpoint
// already carries its fixed query parameters; the user query is
// appended URL-encoded.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a suggestion client for the given endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 5 * time.Second},
	}
}

// Fetch requests suggestions for the query. The response is the
// firefox suggest shape ["query", ["s1", "s2", ...], ...]; the second
// element is returned.
func (c *Client) Fetch(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggest service returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return Parse(body)
}

// Parse extracts the suggestion list from a firefox-protocol response.
func Parse(body []byte) ([]string, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(body, &parts); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	if len(parts) < 2 {
		return nil, errors.New("decode suggestions: unexpected shape")
	}

	var suggestions []string
	if err := json.Unmarshal(parts[1], &suggestions); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	return suggestions, nil
}
