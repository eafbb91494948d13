package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neuravox/newsfeed/internal/datasources"
	"github.com/neuravox/newsfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticNews struct {
	collection *domain.Collection
	err        error
}

func (s staticNews) Execute(context.Context, AggregateNewsRequest) (*domain.Collection, error) {
	return s.collection, s.err
}

func testCollection() *domain.Collection {
	articles := []domain.Article{
		{
			ID: "a1", Title: "AI Governance Framework", Excerpt: "A framework for oversight.",
			Author: "Policy Desk", Categories: []string{"Governance"}, Type: domain.ArticleTypeJournal,
			PublishedAt: "2025-06-09T00:00:00Z", Featured: false,
		},
		{
			ID: "a2", Title: "Unrelated Topic", Excerpt: "Gardening tips.",
			Categories: []string{"Climate"}, Type: domain.ArticleTypeLocal,
			PublishedAt: "2025-06-08T00:00:00Z", Featured: true,
		},
		{
			ID: "a3", Title: "Regional roundup", Excerpt: "News from the continent.",
			Categories: []string{"Africa AI Policy"}, Type: domain.ArticleTypeExternal,
			PublishedAt: "2025-06-07T00:00:00Z",
		},
		{
			ID: "a4", Title: "Workshop announced", Content: "A session on model governance and audits.",
			Categories: []string{"Events"}, Type: domain.ArticleTypeLocal,
			PublishedAt: "2025-06-06T00:00:00Z", Featured: true,
		},
		{
			ID: "a5", Title: "Quarterly update", Categories: []string{"africa"}, Type: domain.ArticleTypeJournal,
			PublishedAt: "2025-06-05T00:00:00Z",
		},
	}
	return domain.BuildCollection(nil, articles, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
}

func articleIDs(articles []domain.Article) []string {
	ids := make([]string, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestSearchNews_Execute(t *testing.T) {
	config := domain.DefaultFeatureConfig()
	config.Features.NewsSearch.MaxResults = 3

	cases := []struct {
		name    string
		req     SearchNewsRequest
		wantIDs []string
	}{
		{
			name:    "empty_query_keeps_date_order_and_limit",
			req:     SearchNewsRequest{Query: "   ", Limit: 2},
			wantIDs: []string{"a1", "a2"},
		},
		{
			name:    "empty_query_uses_configured_limit",
			req:     SearchNewsRequest{},
			wantIDs: []string{"a1", "a2", "a3"},
		},
		{
			name:    "category_substring_case_insensitive",
			req:     SearchNewsRequest{Categories: []string{"Africa"}, Limit: 10},
			wantIDs: []string{"a3", "a5"},
		},
		{
			name:    "category_any_match",
			req:     SearchNewsRequest{Categories: []string{"climate", "events"}, Limit: 10},
			wantIDs: []string{"a2", "a4"},
		},
		{
			name:    "type_filter",
			req:     SearchNewsRequest{Type: domain.ArticleTypeLocal, Limit: 10},
			wantIDs: []string{"a2", "a4"},
		},
		{
			name:    "query_ranks_title_match_first",
			req:     SearchNewsRequest{Query: "governance", Limit: 10},
			wantIDs: []string{"a1", "a4"},
		},
		{
			name:    "query_tolerates_typo",
			req:     SearchNewsRequest{Query: "goverance", Limit: 10},
			wantIDs: []string{"a1", "a4"},
		},
		{
			name:    "query_with_filters",
			req:     SearchNewsRequest{Query: "governance", Type: domain.ArticleTypeLocal, Limit: 10},
			wantIDs: []string{"a4"},
		},
		{
			name:    "query_no_match",
			req:     SearchNewsRequest{Query: "zzzzqqqq", Limit: 10},
			wantIDs: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := NewSearchNews(staticNews{collection: testCollection()}, datasources.StaticFeatureConfig(config))

			got, err := cmd.Execute(testContext(), tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantIDs, articleIDs(got))
		})
	}
}

func TestSearchNews_Execute_GovernanceScenario(t *testing.T) {
	collection := domain.BuildCollection(nil, []domain.Article{
		{ID: "unrelated", Title: "Unrelated Topic", PublishedAt: "2025-06-09T00:00:00Z"},
		{ID: "governance", Title: "AI Governance Framework", PublishedAt: "2025-06-01T00:00:00Z"},
	}, time.Now())

	cmd := NewSearchNews(staticNews{collection: collection}, datasources.StaticFeatureConfig(domain.DefaultFeatureConfig()))
	got, err := cmd.Execute(testContext(), SearchNewsRequest{Query: "governance"})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "governance", got[0].ID)
}

func TestSearchNews_Execute_CollectionError(t *testing.T) {
	cmd := NewSearchNews(staticNews{err: errors.New("boom")}, datasources.StaticFeatureConfig(domain.DefaultFeatureConfig()))
	_, err := cmd.Execute(testContext(), SearchNewsRequest{Query: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading news collection")
}

func TestListCategories_Execute(t *testing.T) {
	got, err := NewListCategories(staticNews{collection: testCollection()}).Execute(testContext(), Empty{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Africa AI Policy", "Climate", "Events", "Governance", "africa"}, got)
}
