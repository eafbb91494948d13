package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
)

// WriteSnapshotRequest is the request for the WriteSnapshot command.
type WriteSnapshotRequest struct {
	FeedURL string
}

// WriteSnapshot fetches the journal feed and stores it as the durable snapshot.
// When the fetch fails an empty snapshot carrying the error is stored instead, so readers can
// tell a failed run from a missing file, and the fetch error is still returned.
type WriteSnapshot struct {
	Fetcher datasources.FeedFetcher
	Writer  datasources.SnapshotWriter
	Now     func() time.Time
}

// NewWriteSnapshot creates a properly initialized WriteSnapshot command.
func NewWriteSnapshot(fetcher datasources.FeedFetcher, writer datasources.SnapshotWriter) *WriteSnapshot {
	return &WriteSnapshot{
		Fetcher: fetcher,
		Writer:  writer,
		Now:     time.Now,
	}
}

func (c *WriteSnapshot) Execute(ctx context.Context, req WriteSnapshotRequest) (domain.Snapshot, error) {
	logger := domain.LoggerFromContext(ctx)
	now := time.Now().UTC()
	if c.Now != nil {
		now = c.Now().UTC()
	}

	feed, fetchErr := c.Fetcher.FetchFeed(ctx, req.FeedURL)
	if fetchErr != nil {
		logger.ErrorContext(ctx, "failed to fetch journal feed, writing error snapshot",
			"feedURL", req.FeedURL,
			"error", fetchErr,
		)

		msg := fetchErr.Error()
		snapshot := domain.Snapshot{
			LastUpdated: now,
			Articles:    []domain.Article{},
			Error:       &msg,
		}
		if err := c.Writer.WriteSnapshot(ctx, snapshot); err != nil {
			return snapshot, errors.Join(
				fmt.Errorf("fetching feed: %w", fetchErr),
				fmt.Errorf("writing error snapshot: %w", err),
			)
		}
		return snapshot, fmt.Errorf("fetching feed: %w", fetchErr)
	}

	articles := feed.Articles
	if articles == nil {
		articles = []domain.Article{}
	}

	snapshot := domain.Snapshot{
		LastUpdated:     now,
		FeedTitle:       feed.Title,
		FeedDescription: feed.Description,
		Articles:        articles,
	}
	if len(articles) > 0 {
		latestID := articles[0].ID
		latestDate := articles[0].PublishedAt
		snapshot.LatestArticleID = &latestID
		snapshot.LatestArticleDate = &latestDate
	}

	if err := c.Writer.WriteSnapshot(ctx, snapshot); err != nil {
		return snapshot, fmt.Errorf("writing snapshot: %w", err)
	}

	logger.InfoContext(ctx, "wrote journal snapshot",
		"feedURL", req.FeedURL,
		"articles", len(articles),
	)
	return snapshot, nil
}
