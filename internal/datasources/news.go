package datasources

import (
	"context"
	"errors"

	"github.com/neuravox/newsfeed/internal/domain"
)

// ErrNotFound is returned when a requested document or key does not exist.
var ErrNotFound = errors.New("not found")

// FeedFetcher retrieves and normalizes a remote syndication feed.
type FeedFetcher interface {
	FetchFeed(ctx context.Context, feedURL string) (domain.Feed, error)
}

// JournalSource yields syndicated journal articles from one place, such as the proxy or a snapshot.
type JournalSource interface {
	FetchJournal(ctx context.Context) (domain.JournalArticles, error)
}

// JournalSourceFunc adapts a function to JournalSource.
type JournalSourceFunc func(ctx context.Context) (domain.JournalArticles, error)

func (f JournalSourceFunc) FetchJournal(ctx context.Context) (domain.JournalArticles, error) {
	return f(ctx)
}

type LocalNewsLoader interface {
	LoadLocalNews(ctx context.Context) (domain.LocalNews, error)
}

type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, snapshot domain.Snapshot) error
}

// FeatureConfigLoader loads the feature configuration, substituting defaults when it cannot be read.
type FeatureConfigLoader interface {
	LoadFeatureConfig(ctx context.Context) domain.FeatureConfig
}

// StaticFeatureConfig always returns the wrapped configuration.
type StaticFeatureConfig domain.FeatureConfig

var _ FeatureConfigLoader = StaticFeatureConfig{}

func (c StaticFeatureConfig) LoadFeatureConfig(_ context.Context) domain.FeatureConfig {
	return domain.FeatureConfig(c)
}
