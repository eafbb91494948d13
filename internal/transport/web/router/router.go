package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/neuravox/newsfeed/internal/command"
	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
	"github.com/neuravox/newsfeed/internal/transport/web/controller"
)

// Services are the commands and sources the HTTP API is built from.
type Services struct {
	AggregateNews  command.Command[command.AggregateNewsRequest, *domain.Collection]
	ListNews       command.Command[command.ListNewsRequest, command.ListNewsResult]
	LatestNews     command.Command[command.LatestNewsRequest, []domain.Article]
	SearchNews     command.Command[command.SearchNewsRequest, []domain.Article]
	ListCategories command.Command[command.Empty, []string]
	Notifications  controller.NotificationGate
	FeatureConfig  datasources.FeatureConfigLoader

	JournalFetcher datasources.FeedFetcher
	JournalFeedURL string
}

// CacheConfig holds the Cache-Control windows for each group of endpoints.
type CacheConfig struct {
	NewsMaxAge                       time.Duration
	JournalMaxAge                    time.Duration
	JournalStaleWhileRevalidate      time.Duration
	JournalErrorMaxAge               time.Duration
	JournalErrorStaleWhileRevalidate time.Duration
}

// RSSConfig describes the re-published feed.
type RSSConfig struct {
	BaseURL     string
	Title       string
	Description string
	AuthorName  string
	AuthorEmail string
	Limit       int
}

func MakeRouter(
	services Services,
	cache CacheConfig,
	rss RSSConfig,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/api/journal", controller.JournalProxy{
		Fetcher:                   services.JournalFetcher,
		FeedURL:                   services.JournalFeedURL,
		CacheMaxAge:               cache.JournalMaxAge,
		StaleWhileRevalidate:      cache.JournalStaleWhileRevalidate,
		ErrorCacheMaxAge:          cache.JournalErrorMaxAge,
		ErrorStaleWhileRevalidate: cache.JournalErrorStaleWhileRevalidate,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/news", controller.NewsList{
		Command:     services.ListNews,
		CacheMaxAge: cache.NewsMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/news/latest", controller.NewsLatest{
		Command:     services.LatestNews,
		CacheMaxAge: cache.NewsMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/news/search", controller.NewsSearch{
		Command:       services.SearchNews,
		FeatureConfig: services.FeatureConfig,
		CacheMaxAge:   cache.NewsMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/news/categories", controller.NewsCategories{
		Command:     services.ListCategories,
		CacheMaxAge: cache.NewsMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/news/refresh", requireAuthMiddleware(controller.NewsRefresh{
		Command: services.AggregateNews,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/notifications/journal", controller.NotificationCheck{
		Gate: services.Notifications,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/notifications/journal", controller.NotificationReset{
		Gate: services.Notifications,
	}).Methods(http.MethodDelete)

	r.Handle("/v1/notifications/journal/dismiss", controller.NotificationDismiss{
		Gate: services.Notifications,
	}).Methods(http.MethodPost, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			News:            services.LatestNews,
			FeedHostname:    rss.BaseURL,
			FeedPath:        "/rss",
			FeedTitle:       rss.Title,
			FeedDescription: rss.Description,
			FeedAuthorName:  rss.AuthorName,
			FeedAuthorEmail: rss.AuthorEmail,
			Limit:           rss.Limit,
			CacheMaxAge:     cache.NewsMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
