package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldScore(t *testing.T) {
	cases := []struct {
		name     string
		pattern  string
		text     string
		expected float64
	}{
		{name: "exact_substring", pattern: "governance", text: "AI Governance Framework", expected: 0},
		{name: "case_insensitive", pattern: "policy", text: "Africa AI Policy", expected: 0},
		{name: "one_deletion", pattern: "goverance", text: "governance", expected: 1.0 / 9},
		{name: "two_substitutions", pattern: "kitten", text: "sitting", expected: 2.0 / 6},
		{name: "nothing_in_common", pattern: "abc", text: "xyz", expected: 1},
		{name: "empty_text", pattern: "ai", text: "", expected: 1},
		{name: "empty_pattern", pattern: "", text: "anything", expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, FieldScore([]rune(tc.pattern), tc.text), 1e-9)
		})
	}
}

func TestFuzzySearch(t *testing.T) {
	articles := []Article{
		{ID: "unrelated", Title: "Unrelated Topic", Excerpt: "Gardening tips."},
		{ID: "body", Title: "Workshop announced", Content: "A session on model governance."},
		{ID: "title", Title: "AI Governance Framework"},
		{ID: "category", Title: "Quarterly update", Categories: []string{"Governance"}},
	}

	cases := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{
			name:    "title_outranks_content_and_category",
			query:   "governance",
			wantIDs: []string{"title", "body", "category"},
		},
		{
			name:    "blank_query",
			query:   "  ",
			wantIDs: nil,
		},
		{
			name:    "no_match",
			query:   "qqqqzzzz",
			wantIDs: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results := FuzzySearch(articles, tc.query, ArticleSearchKeys, DefaultFuzzyThreshold)

			var ids []string
			for _, r := range results {
				ids = append(ids, r.Article.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)

			for i := 1; i < len(results); i++ {
				assert.LessOrEqual(t, results[i-1].Score, results[i].Score)
			}
		})
	}
}

func TestFuzzySearch_TiesKeepInputOrder(t *testing.T) {
	articles := []Article{
		{ID: "first", Title: "Governance"},
		{ID: "second", Title: "Governance"},
	}

	results := FuzzySearch(articles, "governance", ArticleSearchKeys, DefaultFuzzyThreshold)
	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].Article.ID)
	assert.Equal(t, "second", results[1].Article.ID)
}
