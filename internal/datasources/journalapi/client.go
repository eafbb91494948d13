// Package journalapi is an HTTP client for the journal proxy endpoint.
package journalapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
)

// JournalPath is where the proxy endpoint is mounted.
const JournalPath = "/api/journal"

var _ datasources.JournalSource = (*Client)(nil)

// Client reads normalized journal articles from a proxy endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new proxy client. A nil httpClient gets a 30 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ErrorResponse is the body the proxy returns when the upstream feed fails.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (c *Client) FetchJournal(ctx context.Context) (domain.JournalArticles, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+JournalPath, nil)
	if err != nil {
		return domain.JournalArticles{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.JournalArticles{}, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return domain.JournalArticles{}, fmt.Errorf("journal proxy error (status %d): %s: %s",
				resp.StatusCode, apiErr.Error, apiErr.Details)
		}
		return domain.JournalArticles{}, fmt.Errorf("journal proxy error (status %d): %s",
			resp.StatusCode, string(body))
	}

	var result domain.JournalArticles
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.JournalArticles{}, fmt.Errorf("decoding response: %w", err)
	}
	if result.Articles == nil {
		return domain.JournalArticles{}, fmt.Errorf("journal proxy response has no articles field")
	}

	return result, nil
}
