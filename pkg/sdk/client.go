package roomsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the roomsearch API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a roomsearch Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o.apply(c)
	}
	return c
}

// SearchRequest holds search parameters. Query is required; TopK and Mode
// fall back to server defaults when zero.
type SearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
	Mode  string `json:"mode,omitempty"`
}

// SearchResult is one ranked hit.
type SearchResult struct {
	Rank     int     `json:"rank"`
	Title    string  `json:"title"`
	Style    string  `json:"style"`
	AssetURL string  `json:"asset_url"`
	Score    float64 `json:"score"`
}

// Search runs a query. An empty result slice is a valid outcome.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]SearchResult, error) {
	var results []SearchResult
	if err := c.post(ctx, "/api/search", req, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Chat sends one message to the design assistant and returns its reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var resp struct {
		Reply string `json:"reply"`
	}
	req := map[string]string{"message": message}
	if err := c.post(ctx, "/chat", req, &resp); err != nil {
		return "", err
	}
	return resp.Reply, nil
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var status HealthStatus
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("roomsearch: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("roomsearch: health: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// /health returns a body for both 200 and 503.
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return HealthStatus{}, fmt.Errorf("roomsearch: decode health response: %w", err)
	}
	return status, nil
}

// AssetURL resolves a result's asset path against the client's base URL.
func (c *Client) AssetURL(r *SearchResult) string {
	u, err := url.JoinPath(c.baseURL, r.AssetURL)
	if err != nil {
		return c.baseURL + r.AssetURL
	}
	return u
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("roomsearch: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("roomsearch: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("roomsearch: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return apiErrorFrom(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("roomsearch: decode response: %w", err)
	}
	return nil
}
