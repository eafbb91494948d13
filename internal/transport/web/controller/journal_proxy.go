package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
)

// JournalProxy fetches the journal feed on every request and relays it as JSON, leaving
// caching to the edge through Cache-Control. The nocache query parameter is accepted and ignored.
type JournalProxy struct {
	Fetcher datasources.FeedFetcher
	FeedURL string

	CacheMaxAge               time.Duration
	StaleWhileRevalidate      time.Duration
	ErrorCacheMaxAge          time.Duration
	ErrorStaleWhileRevalidate time.Duration

	Now func() time.Time
}

type JournalProxyErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (c JournalProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed, err := c.Fetcher.FetchFeed(ctx, c.FeedURL)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch journal feed", "feedURL", c.FeedURL, "error", err)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", sharedCacheControl(c.ErrorCacheMaxAge, c.ErrorStaleWhileRevalidate))
		w.WriteHeader(http.StatusInternalServerError)

		if err := json.NewEncoder(w).Encode(JournalProxyErrorResponse{
			Error:   "Failed to fetch journal feed",
			Details: err.Error(),
		}); err != nil {
			logger.ErrorContext(ctx, "unable to write error to response", "error", err)
		}
		return
	}

	articles := feed.Articles
	if articles == nil {
		articles = []domain.Article{}
	}

	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", sharedCacheControl(c.CacheMaxAge, c.StaleWhileRevalidate))

	if err := json.NewEncoder(w).Encode(domain.JournalArticles{
		LastUpdated: now.UTC(),
		Articles:    articles,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write journal to response", "error", err)
	}
}

func sharedCacheControl(maxAge, staleWhileRevalidate time.Duration) string {
	return fmt.Sprintf("s-maxage=%d, stale-while-revalidate=%d",
		int(maxAge.Seconds()), int(staleWhileRevalidate.Seconds()))
}
