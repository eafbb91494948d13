// Package client provides an HTTP client for the news API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Article is a news article as served by the API.
type Article struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Excerpt      string   `json:"excerpt"`
	Content      string   `json:"content,omitempty"`
	Link         string   `json:"link"`
	ExternalLink string   `json:"externalLink,omitempty"`
	PublishedAt  string   `json:"publishedAt"`
	Author       string   `json:"author"`
	Categories   []string `json:"categories"`
	Image        *string  `json:"image,omitempty"`
	Type         string   `json:"type,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
}

// ArticlesResponse is the envelope for article lists.
type ArticlesResponse struct {
	Data []Article `json:"data"`
}

// NewsPage is one page of the aggregated collection.
type NewsPage struct {
	Data     []Article `json:"data"`
	Metadata struct {
		TotalCount  int       `json:"total_count"`
		Page        int       `json:"page"`
		PageSize    int       `json:"page_size"`
		TotalPages  int       `json:"total_pages"`
		LastUpdated time.Time `json:"last_updated"`
		Sources     struct {
			Local    int `json:"local"`
			Journal  int `json:"journal"`
			External int `json:"external"`
		} `json:"sources"`
		Error string `json:"error,omitempty"`
	} `json:"metadata"`
}

// RefreshResult summarizes a forced refresh.
type RefreshResult struct {
	TotalCount  int       `json:"total_count"`
	LastUpdated time.Time `json:"last_updated"`
	Error       string    `json:"error,omitempty"`
}

// Notification is the outcome of a journal notification check.
type Notification struct {
	Show    bool     `json:"show"`
	Article *Article `json:"article,omitempty"`
}

// SearchFilters contains search parameters.
type SearchFilters struct {
	Query      string
	Categories []string
	Type       string
	Limit      int
}

// Client is an HTTP client for the news API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new API client. The token is only needed for refreshes.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for k, v := range header {
		req.Header[k] = v
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.handleResponse(resp, result)
}

func (f SearchFilters) queryParams() url.Values {
	params := url.Values{}

	if f.Query != "" {
		params.Set("q", f.Query)
	}
	if len(f.Categories) > 0 {
		params.Set("categories", strings.Join(f.Categories, ","))
	}
	if f.Type != "" {
		params.Set("type", f.Type)
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}

	return params
}

// SearchNews runs a fuzzy search over the aggregated collection.
func (c *Client) SearchNews(ctx context.Context, filters SearchFilters) ([]Article, error) {
	var result ArticlesResponse
	if err := c.get(ctx, "/v1/news/search", filters.queryParams(), &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// LatestNews retrieves the newest articles.
func (c *Client) LatestNews(ctx context.Context, limit int) ([]Article, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var result ArticlesResponse
	if err := c.get(ctx, "/v1/news/latest", params, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ListNews retrieves one page of the collection.
func (c *Client) ListNews(ctx context.Context, page, pageSize int, featuredFirst bool) (*NewsPage, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	if featuredFirst {
		params.Set("featured_first", "true")
	}

	var result NewsPage
	if err := c.get(ctx, "/v1/news", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListCategories retrieves every category in the collection.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var result struct {
		Data []string `json:"data"`
	}
	if err := c.get(ctx, "/v1/news/categories", nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// CheckNotification asks whether the given client should see a journal notification.
func (c *Client) CheckNotification(ctx context.Context, clientID string) (*Notification, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/notifications/journal", http.Header{
		"X-Client-Id": []string{clientID},
	})
	if err != nil {
		return nil, err
	}

	var result Notification
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RefreshNews forces the server to rebuild the collection.
func (c *Client) RefreshNews(ctx context.Context) (*RefreshResult, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/news/refresh", nil)
	if err != nil {
		return nil, err
	}

	var result RefreshResult
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
