package command

import (
	"context"
	"fmt"

	"github.com/neuravox/newsfeed/internal/domain"
)

// ListCategories returns every category used in the current collection, sorted and deduplicated.
type ListCategories struct {
	News Command[AggregateNewsRequest, *domain.Collection]
}

func NewListCategories(news Command[AggregateNewsRequest, *domain.Collection]) *ListCategories {
	return &ListCategories{News: news}
}

func (c *ListCategories) Execute(ctx context.Context, _ Empty) ([]string, error) {
	collection, err := c.News.Execute(ctx, AggregateNewsRequest{})
	if err != nil {
		return nil, fmt.Errorf("loading news collection: %w", err)
	}
	return domain.Categories(collection.Articles), nil
}
