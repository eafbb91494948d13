package command

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
)

// ListNewsRequest is the request for the ListNews command.
type ListNewsRequest struct {
	// Page is 1-based.
	Page int
	// PageSize defaults to the configured articles per page.
	PageSize      int
	FeaturedFirst bool
}

// ListNewsResult is one page of the aggregated collection plus collection metadata.
type ListNewsResult struct {
	Articles    []domain.Article
	Page        int
	PageSize    int
	TotalCount  int
	TotalPages  int
	LastUpdated time.Time
	Sources     domain.SourceCounts
	Error       string
}

// ListNews pages through the aggregated collection.
type ListNews struct {
	News          Command[AggregateNewsRequest, *domain.Collection]
	FeatureConfig datasources.FeatureConfigLoader
}

// NewListNews creates a properly initialized ListNews command.
func NewListNews(
	news Command[AggregateNewsRequest, *domain.Collection],
	featureConfig datasources.FeatureConfigLoader,
) *ListNews {
	return &ListNews{
		News:          news,
		FeatureConfig: featureConfig,
	}
}

func (c *ListNews) Execute(ctx context.Context, req ListNewsRequest) (ListNewsResult, error) {
	collection, err := c.News.Execute(ctx, AggregateNewsRequest{})
	if err != nil {
		return ListNewsResult{}, fmt.Errorf("loading news collection: %w", err)
	}

	page := max(req.Page, 1)
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = c.FeatureConfig.LoadFeatureConfig(ctx).ArticlesPerPage()
	}

	articles := collection.Articles
	if req.FeaturedFirst {
		// The published collection is shared, so reorder a copy.
		articles = slices.Clone(articles)
		domain.SortFeaturedFirst(articles)
	}

	start := min((page-1)*pageSize, len(articles))
	end := min(start+pageSize, len(articles))

	return ListNewsResult{
		Articles:    articles[start:end],
		Page:        page,
		PageSize:    pageSize,
		TotalCount:  collection.TotalCount,
		TotalPages:  (len(articles) + pageSize - 1) / pageSize,
		LastUpdated: collection.LastUpdated,
		Sources:     collection.Sources,
		Error:       collection.Error,
	}, nil
}

// DefaultLatestLimit is how many articles LatestNews returns when no limit is given.
const DefaultLatestLimit = 5

// LatestNewsRequest is the request for the LatestNews command.
type LatestNewsRequest struct {
	Limit int
}

// LatestNews returns the newest articles of the aggregated collection.
type LatestNews struct {
	News Command[AggregateNewsRequest, *domain.Collection]
}

func NewLatestNews(news Command[AggregateNewsRequest, *domain.Collection]) *LatestNews {
	return &LatestNews{News: news}
}

func (c *LatestNews) Execute(ctx context.Context, req LatestNewsRequest) ([]domain.Article, error) {
	collection, err := c.News.Execute(ctx, AggregateNewsRequest{})
	if err != nil {
		return nil, fmt.Errorf("loading news collection: %w", err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLatestLimit
	}
	return truncate(collection.Articles, limit), nil
}
