package command

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
	"golang.org/x/sync/singleflight"
)

// DefaultCollectionTTL is how long an aggregated collection is served before it is rebuilt.
const DefaultCollectionTTL = 5 * time.Minute

// DefaultDegradedTTL is how long a collection built with source failures is served before the
// failing sources are tried again.
const DefaultDegradedTTL = 30 * time.Second

// DefaultJournalCategories are assigned to journal articles that carry no categories of their own.
var DefaultJournalCategories = []string{"Journal", "AI Policy"}

// AggregateNewsRequest is the request for the AggregateNews command.
type AggregateNewsRequest struct {
	ForceRefresh bool
}

// AggregateNewsConfig holds configuration for news aggregation.
type AggregateNewsConfig struct {
	TTL         time.Duration
	DegradedTTL time.Duration
	// DefaultAuthor is used for journal articles with no author.
	DefaultAuthor string
}

// AggregateNews owns the cached news collection and rebuilds it from the local file and
// the journal provider chain once it expires.
type AggregateNews struct {
	LocalNews        datasources.LocalNewsLoader
	JournalProviders []datasources.Provider[domain.JournalArticles]
	Config           AggregateNewsConfig
	Now              func() time.Time

	group singleflight.Group

	mu          sync.Mutex
	current     *domain.Collection
	refreshedAt time.Time
}

// NewAggregateNews creates a properly initialized AggregateNews command.
func NewAggregateNews(
	localNews datasources.LocalNewsLoader,
	journalProviders []datasources.Provider[domain.JournalArticles],
	config AggregateNewsConfig,
) *AggregateNews {
	if config.TTL <= 0 {
		config.TTL = DefaultCollectionTTL
	}
	if config.DegradedTTL <= 0 {
		config.DegradedTTL = min(DefaultDegradedTTL, config.TTL)
	}
	return &AggregateNews{
		LocalNews:        localNews,
		JournalProviders: journalProviders,
		Config:           config,
		Now:              time.Now,
	}
}

// Execute returns the cached collection, rebuilding it first when forced, when nothing is cached,
// or when the cached copy has outlived the TTL. Source failures never produce an error; they are
// reported through the collection's Error field instead, and such a collection is only kept for
// the shorter DegradedTTL. A refresh that comes back degraded and empty keeps serving the articles
// of the previous collection.
func (c *AggregateNews) Execute(ctx context.Context, req AggregateNewsRequest) (*domain.Collection, error) {
	if !req.ForceRefresh {
		if current, ok := c.fresh(); ok {
			return current, nil
		}
	}

	v, _, _ := c.group.Do("collection", func() (any, error) {
		if !req.ForceRefresh {
			if current, ok := c.fresh(); ok {
				return current, nil
			}
		}
		// Callers joining this refresh must not lose it when the first caller goes away.
		return c.refresh(context.WithoutCancel(ctx)), nil
	})
	return v.(*domain.Collection), nil
}

// Current returns the last published collection without refreshing, or nil if there is none.
func (c *AggregateNews) Current() *domain.Collection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *AggregateNews) fresh() (*domain.Collection, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil || c.refreshedAt.IsZero() {
		return nil, false
	}
	ttl := c.Config.TTL
	if c.current.Error != "" {
		ttl = c.Config.DegradedTTL
	}
	if c.now().Sub(c.refreshedAt) > ttl {
		return nil, false
	}
	return c.current, true
}

func (c *AggregateNews) refresh(ctx context.Context) *domain.Collection {
	logger := domain.LoggerFromContext(ctx)

	var problems []string

	var local []domain.Article
	localNews, err := c.LocalNews.LoadLocalNews(ctx)
	if err != nil {
		logger.WarnContext(ctx, "failed to load local news, continuing without it", "error", err)
		problems = append(problems, fmt.Sprintf("loading local news: %v", err))
	} else {
		local = NormalizeLocalArticles(localNews.Articles)
	}

	var journal []domain.Article
	journalArticles, source, err := datasources.Fallback(ctx, c.JournalProviders...)
	switch {
	case err != nil:
		logger.ErrorContext(ctx, "all journal sources failed", "error", err)
		problems = append(problems, fmt.Sprintf("fetching journal: %v", err))
	case journalArticles.Error != "":
		problems = append(problems, journalArticles.Error)
		journal = NormalizeJournalArticles(journalArticles.Articles, c.Config.DefaultAuthor)
	default:
		journal = NormalizeJournalArticles(journalArticles.Articles, c.Config.DefaultAuthor)
	}

	now := c.now()
	collection := domain.BuildCollection(local, journal, now)
	collection.Error = strings.Join(problems, "; ")

	c.mu.Lock()
	if collection.Error != "" && len(collection.Articles) == 0 && c.current != nil && len(c.current.Articles) > 0 {
		logger.WarnContext(ctx, "news refresh came back empty, keeping previous articles", "error", collection.Error)
		retained := *c.current
		retained.Error = collection.Error
		collection = &retained
	}
	c.current = collection
	c.refreshedAt = now
	c.mu.Unlock()

	logger.InfoContext(ctx, "refreshed news collection",
		"journalSource", source,
		"total", collection.TotalCount,
		"local", collection.Sources.Local,
		"journal", collection.Sources.Journal,
		"external", collection.Sources.External,
		"degraded", collection.Error != "",
	)

	return collection
}

func (c *AggregateNews) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// NormalizeJournalArticles tags syndicated articles as journal articles and fills empty fields:
// categories fall back to DefaultJournalCategories, author to defaultAuthor, and excerpt and
// content to each other.
func NormalizeJournalArticles(articles []domain.Article, defaultAuthor string) []domain.Article {
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		a.Type = domain.ArticleTypeJournal
		if len(a.Categories) == 0 {
			a.Categories = slices.Clone(DefaultJournalCategories)
		}
		if a.Author == "" {
			a.Author = defaultAuthor
		}
		if a.Excerpt == "" {
			a.Excerpt = a.Content
		}
		if a.Content == "" {
			a.Content = a.Excerpt
		}
		out = append(out, a)
	}
	return out
}

// NormalizeLocalArticles defaults untyped curated articles to local ones.
func NormalizeLocalArticles(articles []domain.Article) []domain.Article {
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if a.Type == "" {
			a.Type = domain.ArticleTypeLocal
		}
		if a.Categories == nil {
			a.Categories = []string{}
		}
		out = append(out, a)
	}
	return out
}
