// Package tavily provides a siteinfo.Searcher backed by the Tavily
// search API.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fwojciec/siteinfo"
)

// DefaultBaseURL is the Tavily API endpoint.
const DefaultBaseURL = "https://api.tavily.com"

// DefaultMaxResults bounds the hits returned per query.
const DefaultMaxResults = 3

// Ensure Client implements siteinfo.Searcher at compile time.
var _ siteinfo.Searcher = (*Client)(nil)

// Client is a minimal Tavily search API client.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	maxResults int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMaxResults sets the number of hits requested per query.
func WithMaxResults(n int) Option {
	return func(c *Client) {
		c.maxResults = n
	}
}

// NewClient creates a new Client with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		maxResults: DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchRequest is the Tavily search request body.
type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// searchResponse is the subset of the Tavily response we consume.
type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search runs query against the Tavily API and returns up to
// maxResults hits.
func (c *Client) Search(ctx context.Context, query string) ([]siteinfo.SearchResult, error) {
	if c.apiKey == "" {
		return nil, siteinfo.Errorf(siteinfo.EUNAUTHORIZED, "credential not set: TAVILY_API_KEY")
	}
	if query == "" {
		return nil, siteinfo.Errorf(siteinfo.EINVALID, "query required")
	}

	body, err := json.Marshal(searchRequest{Query: query, MaxResults: c.maxResults})
	if err != nil {
		return nil, siteinfo.Errorf(siteinfo.EINTERNAL, "failed to encode search request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, siteinfo.Errorf(siteinfo.EINTERNAL, "failed to build search request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, siteinfo.Errorf(siteinfo.EUNREACHABLE, "search request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, siteinfo.Errorf(siteinfo.EUNAVAILABLE, "tavily HTTP %d: %s", resp.StatusCode, detail)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, siteinfo.Errorf(siteinfo.EINTERNAL, "failed to decode search response: %v", err)
	}

	results := make([]siteinfo.SearchResult, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		results = append(results, siteinfo.SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Content: r.Content,
		})
	}
	return results, nil
}
