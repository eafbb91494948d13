package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/neuravox/newsfeed/internal/command"
	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
)

type NewsSearch struct {
	Command       command.Command[command.SearchNewsRequest, []domain.Article]
	FeatureConfig datasources.FeatureConfigLoader
	CacheMaxAge   time.Duration
}

func (c NewsSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	if !c.FeatureConfig.LoadFeatureConfig(ctx).Features.NewsSearch.Enabled {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	req, err := searchRequestFromQuery(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse search parameters in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	articles, err := c.Command.Execute(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "unable to search news", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeArticles(w, r, articles, c.CacheMaxAge)
}

func searchRequestFromQuery(r *http.Request) (command.SearchNewsRequest, error) {
	q := r.URL.Query()
	req := command.SearchNewsRequest{Query: q.Get("q")}

	if q.Has("categories") {
		for _, c := range strings.Split(q.Get("categories"), ",") {
			if c = strings.TrimSpace(c); c != "" {
				req.Categories = append(req.Categories, c)
			}
		}
	}

	if q.Has("type") {
		t := domain.ArticleType(q.Get("type"))
		if !t.Valid() {
			return command.SearchNewsRequest{}, fmt.Errorf("unrecognised article type: %s", t)
		}
		req.Type = t
	}

	limit, err := parseLimit(q)
	if err != nil {
		return command.SearchNewsRequest{}, err
	}
	req.Limit = limit

	return req, nil
}

type NewsCategories struct {
	Command     command.Command[command.Empty, []string]
	CacheMaxAge time.Duration
}

type CategoriesResponse struct {
	Data []string `json:"data"`
}

func (c NewsCategories) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	categories, err := c.Command.Execute(ctx, command.Empty{})
	if err != nil {
		logger.ErrorContext(ctx, "unable to list categories", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(CategoriesResponse{Data: categories}); err != nil {
		logger.ErrorContext(ctx, "unable to write categories to response", "error", err)
	}
}
