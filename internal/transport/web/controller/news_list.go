package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/neuravox/newsfeed/internal/command"
	"github.com/neuravox/newsfeed/internal/domain"
)

type NewsList struct {
	Command     command.Command[command.ListNewsRequest, command.ListNewsResult]
	CacheMaxAge time.Duration
}

type NewsListResponse struct {
	Data     []domain.Article `json:"data"`
	Metadata NewsListMetadata `json:"metadata"`
}

type NewsListMetadata struct {
	TotalCount  int                 `json:"total_count"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
	TotalPages  int                 `json:"total_pages"`
	LastUpdated time.Time           `json:"last_updated"`
	Sources     domain.SourceCounts `json:"sources"`
	Error       string              `json:"error,omitempty"`
}

func (c NewsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	featuredFirst, err := parseBool(r.URL.Query(), "featured_first")
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse list options in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.Command.Execute(ctx, command.ListNewsRequest{
		Page:          page,
		PageSize:      pageSize,
		FeaturedFirst: featuredFirst,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to list news", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	articles := result.Articles
	if articles == nil {
		articles = []domain.Article{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(NewsListResponse{
		Data: articles,
		Metadata: NewsListMetadata{
			TotalCount:  result.TotalCount,
			Page:        result.Page,
			PageSize:    result.PageSize,
			TotalPages:  result.TotalPages,
			LastUpdated: result.LastUpdated,
			Sources:     result.Sources,
			Error:       result.Error,
		},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write news to response", "error", err)
	}
}

type NewsLatest struct {
	Command     command.Command[command.LatestNewsRequest, []domain.Article]
	CacheMaxAge time.Duration
}

type ArticlesResponse struct {
	Data []domain.Article `json:"data"`
}

func (c NewsLatest) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse limit in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	articles, err := c.Command.Execute(ctx, command.LatestNewsRequest{Limit: limit})
	if err != nil {
		logger.ErrorContext(ctx, "unable to list latest news", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeArticles(w, r, articles, c.CacheMaxAge)
}

func writeArticles(w http.ResponseWriter, r *http.Request, articles []domain.Article, cacheMaxAge time.Duration) {
	if articles == nil {
		articles = []domain.Article{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(cacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(ArticlesResponse{Data: articles}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write articles to response", "error", err)
	}
}
