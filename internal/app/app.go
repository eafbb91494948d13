package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/neuravox/newsfeed/internal/command"
	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/datasources/file"
	"github.com/neuravox/newsfeed/internal/datasources/journalapi"
	"github.com/neuravox/newsfeed/internal/datasources/mysql"
	"github.com/neuravox/newsfeed/internal/datasources/redis"
	"github.com/neuravox/newsfeed/internal/datasources/rss"
	"github.com/neuravox/newsfeed/internal/domain"
	"github.com/neuravox/newsfeed/internal/newsview"
	"github.com/neuravox/newsfeed/internal/transport/web/router"
	"github.com/neuravox/newsfeed/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	featureConfig := file.NewFeatureConfig(GetEnvAsStringOr("FEATURE_CONFIG_PATH", "admin-config.yaml"))
	config := featureConfig.LoadFeatureConfig(ctx)

	journalFeedURL := GetEnvAsStringOr("JOURNAL_FEED_URL", config.Journal.RSSURL)
	if journalFeedURL == "" {
		return nil, fmt.Errorf("no journal feed URL: set JOURNAL_FEED_URL or journal.rssUrl")
	}

	fetcher := rss.NewFetcher(nil, GetEnvAsIntOr(ctx, "JOURNAL_MAX_ITEMS", rss.DefaultMaxItems))

	clientState, err := setupClientStateStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up client state store: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	snapshots := file.NewSnapshotStore(
		GetEnvAsStringOr("SNAPSHOT_PATH", "data/journal-snapshot.json"),
		config.SnapshotMaxAge(),
	)

	aggregateNewsCmd := command.NewAggregateNews(
		file.LocalNews{Path: GetEnvAsStringOr("LOCAL_NEWS_PATH", "data/news.json")},
		[]datasources.Provider[domain.JournalArticles]{
			setupJournalProvider(journalFeedURL, fetcher),
			datasources.JournalProvider("snapshot", snapshots),
		},
		command.AggregateNewsConfig{
			TTL:           GetEnvAsDurationOr(ctx, "NEWS_COLLECTION_TTL", command.DefaultCollectionTTL),
			DegradedTTL:   GetEnvAsDurationOr(ctx, "NEWS_DEGRADED_TTL", command.DefaultDegradedTTL),
			DefaultAuthor: GetEnvAsStringOr("JOURNAL_DEFAULT_AUTHOR", "Editorial Team"),
		},
	)

	httpRouter, err := router.MakeRouter(
		router.Services{
			AggregateNews:  aggregateNewsCmd,
			ListNews:       command.NewListNews(aggregateNewsCmd, featureConfig),
			LatestNews:     command.NewLatestNews(aggregateNewsCmd),
			SearchNews:     command.NewSearchNews(aggregateNewsCmd, featureConfig),
			ListCategories: command.NewListCategories(aggregateNewsCmd),
			Notifications:  command.NewNotificationGate(aggregateNewsCmd, clientState, featureConfig),
			FeatureConfig:  featureConfig,
			JournalFetcher: fetcher,
			JournalFeedURL: journalFeedURL,
		},
		router.CacheConfig{
			NewsMaxAge:                       GetEnvAsDurationOr(ctx, "NEWS_CACHE_MAX_AGE", time.Minute),
			JournalMaxAge:                    GetEnvAsDurationOr(ctx, "JOURNAL_CACHE_MAX_AGE", 10*time.Minute),
			JournalStaleWhileRevalidate:      GetEnvAsDurationOr(ctx, "JOURNAL_STALE_WHILE_REVALIDATE", time.Minute),
			JournalErrorMaxAge:               GetEnvAsDurationOr(ctx, "JOURNAL_ERROR_CACHE_MAX_AGE", time.Minute),
			JournalErrorStaleWhileRevalidate: GetEnvAsDurationOr(ctx, "JOURNAL_ERROR_STALE_WHILE_REVALIDATE", 30*time.Second),
		},
		router.RSSConfig{
			BaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			Title:       GetEnvAsStringOr("RSS_FEED_TITLE", "News"),
			Description: GetEnvAsStringOr("RSS_FEED_DESCRIPTION", "Latest news and journal articles"),
			AuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			AuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
			Limit:       GetEnvAsIntOr(ctx, "RSS_FEED_LIMIT", 20),
		},
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
		newsview.New(aggregateNewsCmd, featureConfig),
	}, nil
}

// setupJournalProvider goes through a remote journal proxy when one is configured,
// and otherwise fetches the feed in-process the same way the proxy endpoint does.
func setupJournalProvider(feedURL string, fetcher datasources.FeedFetcher) datasources.Provider[domain.JournalArticles] {
	if proxyURL := GetEnvAsStringOr("JOURNAL_PROXY_URL", ""); proxyURL != "" {
		return datasources.JournalProvider("proxy", journalapi.NewClient(proxyURL, nil))
	}

	return datasources.JournalProvider("feed", datasources.JournalSourceFunc(
		func(ctx context.Context) (domain.JournalArticles, error) {
			feed, err := fetcher.FetchFeed(ctx, feedURL)
			if err != nil {
				return domain.JournalArticles{}, err
			}
			return domain.JournalArticles{LastUpdated: time.Now().UTC(), Articles: feed.Articles}, nil
		},
	))
}

func setupClientStateStore(ctx context.Context) (datasources.ClientStateStore, error) {
	switch driver := GetEnvAsStringOr("CLIENT_STATE_DRIVER", "memory"); driver {
	case "memory":
		return datasources.NewMemoryClientStateStore(), nil
	case "redis":
		client, err := redis.Connect(ctx, MustGetEnvAsString(ctx, "REDIS_URL"))
		if err != nil {
			return nil, fmt.Errorf("connecting to Redis: %w", err)
		}
		return redis.NewClientStateStore(client), nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		store := mysql.NewClientStateStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("creating client state table: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown client state driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "admin_token":
			validators = append(validators, router.NewAdminTokenValidator(MustGetEnvAsString(ctx, "ADMIN_API_TOKEN")))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
