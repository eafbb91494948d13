package rss

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
)

// DefaultMaxItems caps how many entries a single fetch returns.
const DefaultMaxItems = 20

var _ datasources.FeedFetcher = (*Fetcher)(nil)

// Fetcher retrieves RSS/Atom documents and normalizes their entries into articles.
type Fetcher struct {
	httpClient *http.Client
	parser     *gofeed.Parser
	maxItems   int
}

func NewFetcher(httpClient *http.Client, maxItems int) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return &Fetcher{
		httpClient: httpClient,
		parser:     gofeed.NewParser(),
		maxItems:   maxItems,
	}
}

func (f *Fetcher) FetchFeed(ctx context.Context, feedURL string) (domain.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return domain.Feed{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return domain.Feed{}, fmt.Errorf("fetching feed %s: %w", feedURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Feed{}, fmt.Errorf("feed %s returned status %d: %s", feedURL, resp.StatusCode, string(body))
	}

	parsed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return domain.Feed{}, fmt.Errorf("parsing feed %s: %w", feedURL, err)
	}

	return NormalizeFeed(parsed, f.maxItems), nil
}

// NormalizeFeed converts a parsed feed into domain form, keeping at most maxItems entries in source order.
func NormalizeFeed(feed *gofeed.Feed, maxItems int) domain.Feed {
	items := feed.Items
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}

	out := domain.Feed{
		Title:       feed.Title,
		Description: feed.Description,
		Articles:    make([]domain.Article, 0, len(items)),
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		out.Articles = append(out.Articles, NormalizeItem(item))
	}
	return out
}
