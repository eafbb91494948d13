package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
)

// SearchNewsRequest is the request for the SearchNews command.
type SearchNewsRequest struct {
	Query string
	// Categories keeps articles with at least one category containing any of these terms.
	Categories []string
	Type       domain.ArticleType
	// Limit defaults to the configured maximum search results.
	Limit int
}

// SearchNews filters the aggregated collection and ranks it against a fuzzy query.
type SearchNews struct {
	News          Command[AggregateNewsRequest, *domain.Collection]
	FeatureConfig datasources.FeatureConfigLoader
}

// NewSearchNews creates a properly initialized SearchNews command.
func NewSearchNews(
	news Command[AggregateNewsRequest, *domain.Collection],
	featureConfig datasources.FeatureConfigLoader,
) *SearchNews {
	return &SearchNews{
		News:          news,
		FeatureConfig: featureConfig,
	}
}

// Execute returns matching articles, best match first. An empty query keeps the collection's date order.
func (c *SearchNews) Execute(ctx context.Context, req SearchNewsRequest) ([]domain.Article, error) {
	collection, err := c.News.Execute(ctx, AggregateNewsRequest{})
	if err != nil {
		return nil, fmt.Errorf("loading news collection: %w", err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = c.FeatureConfig.LoadFeatureConfig(ctx).SearchLimit()
	}

	filtered := FilterArticles(collection.Articles, req.Type, req.Categories)

	if strings.TrimSpace(req.Query) == "" {
		return truncate(filtered, limit), nil
	}

	scored := domain.FuzzySearch(filtered, req.Query, domain.ArticleSearchKeys, domain.DefaultFuzzyThreshold)
	results := make([]domain.Article, 0, min(len(scored), limit))
	for _, s := range scored {
		if len(results) == limit {
			break
		}
		results = append(results, s.Article)
	}
	return results, nil
}

// FilterArticles applies an exact type match and a case-insensitive category substring match.
// Empty filters match everything.
func FilterArticles(articles []domain.Article, articleType domain.ArticleType, categories []string) []domain.Article {
	var terms []string
	for _, c := range categories {
		if c = strings.ToLower(strings.TrimSpace(c)); c != "" {
			terms = append(terms, c)
		}
	}

	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if articleType != "" && a.Type != articleType {
			continue
		}
		if len(terms) > 0 && !matchesAnyCategory(a.Categories, terms) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesAnyCategory(categories, terms []string) bool {
	for _, c := range categories {
		c = strings.ToLower(c)
		for _, term := range terms {
			if strings.Contains(c, term) {
				return true
			}
		}
	}
	return false
}

func truncate(articles []domain.Article, limit int) []domain.Article {
	if limit >= 0 && len(articles) > limit {
		return articles[:limit]
	}
	return articles
}
