package domain

import (
	"math"
	"sort"
	"strings"
)

// DefaultFuzzyThreshold is the largest normalized edit distance still counted as a match.
const DefaultFuzzyThreshold = 0.4

// fuzzyEpsilon stands in for a perfect field score so weights still apply.
const fuzzyEpsilon = 2.220446049250313e-16

// SearchKey names an article field and its relative weight in fuzzy ranking.
type SearchKey struct {
	Name   string
	Weight float64
	Values func(a Article) []string
}

// ArticleSearchKeys are searched with title weighted highest and categories lowest.
var ArticleSearchKeys = []SearchKey{
	{Name: "title", Weight: 0.4, Values: func(a Article) []string { return []string{a.Title} }},
	{Name: "excerpt", Weight: 0.3, Values: func(a Article) []string { return []string{a.Excerpt} }},
	{Name: "content", Weight: 0.2, Values: func(a Article) []string { return []string{a.Content} }},
	{Name: "author", Weight: 0.1, Values: func(a Article) []string { return []string{a.Author} }},
	{Name: "categories", Weight: 0.1, Values: func(a Article) []string { return a.Categories }},
}

// ScoredArticle pairs an article with its combined fuzzy score; lower is better.
type ScoredArticle struct {
	Article Article
	Score   float64
}

// FuzzySearch ranks articles against query and drops those with no field within threshold.
// Ties keep the input order.
func FuzzySearch(articles []Article, query string, keys []SearchKey, threshold float64) []ScoredArticle {
	pattern := []rune(strings.ToLower(strings.TrimSpace(query)))
	if len(pattern) == 0 {
		return nil
	}

	var totalWeight float64
	for _, k := range keys {
		totalWeight += k.Weight
	}
	if totalWeight == 0 {
		totalWeight = 1
	}

	var results []ScoredArticle
	for _, a := range articles {
		score, ok := scoreArticle(a, pattern, keys, totalWeight, threshold)
		if !ok {
			continue
		}
		results = append(results, ScoredArticle{Article: a, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	return results
}

func scoreArticle(a Article, pattern []rune, keys []SearchKey, totalWeight, threshold float64) (float64, bool) {
	total := 1.0
	matched := false
	for _, k := range keys {
		best := math.Inf(1)
		for _, v := range k.Values(a) {
			if v == "" {
				continue
			}
			if s := FieldScore(pattern, v); s < best {
				best = s
			}
		}
		if best > threshold {
			continue
		}
		matched = true
		if best == 0 {
			best = fuzzyEpsilon
		}
		total *= math.Pow(best, k.Weight/totalWeight)
	}
	return total, matched
}

// FieldScore is the minimum edit distance between pattern and any substring of text,
// divided by the pattern length. 0 is an exact substring match.
func FieldScore(pattern []rune, text string) float64 {
	if len(pattern) == 0 {
		return 0
	}
	t := []rune(strings.ToLower(text))

	// prev[j] is the cost of matching the pattern prefix ending at t[j-1]; row 0 is free
	// so a match may start anywhere in the text.
	prev := make([]int, len(t)+1)
	cur := make([]int, len(t)+1)
	for i := 1; i <= len(pattern); i++ {
		cur[0] = i
		for j := 1; j <= len(t); j++ {
			cost := 1
			if pattern[i-1] == t[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j-1]+cost, prev[j]+1, cur[j-1]+1)
		}
		prev, cur = cur, prev
	}

	best := len(pattern)
	for _, d := range prev {
		if d < best {
			best = d
		}
	}
	return float64(best) / float64(len(pattern))
}
