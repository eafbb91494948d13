package domain

import (
	"slices"
	"sort"
	"time"
)

// BuildCollection merges local and journal articles into a Collection.
// Articles sharing an ID collapse to the one that appears last, keeping the first one's position.
// The result is sorted newest first; undated articles sort last in their original order.
func BuildCollection(local, journal []Article, now time.Time) *Collection {
	merged := make([]Article, 0, len(local)+len(journal))
	index := make(map[string]int, len(local)+len(journal))
	for _, group := range [][]Article{local, journal} {
		for _, a := range group {
			if i, ok := index[a.ID]; ok && a.ID != "" {
				merged[i] = a
				continue
			}
			index[a.ID] = len(merged)
			merged = append(merged, a)
		}
	}

	SortByPublishedDesc(merged)

	c := &Collection{
		Articles:    merged,
		TotalCount:  len(merged),
		LastUpdated: now,
	}
	for _, a := range merged {
		switch a.Type {
		case ArticleTypeJournal:
			c.Sources.Journal++
		case ArticleTypeExternal:
			c.Sources.External++
		case ArticleTypeLocal:
			c.Sources.Local++
		}
	}

	return c
}

// SortByPublishedDesc sorts articles newest first in place.
func SortByPublishedDesc(articles []Article) {
	times := publishedTimes(articles)
	sort.Stable(byPublishedDesc{articles: articles, times: times})
}

// SortFeaturedFirst moves featured articles ahead of the rest, newest first within each group.
func SortFeaturedFirst(articles []Article) {
	times := publishedTimes(articles)
	sort.Stable(featuredFirst{byPublishedDesc{articles: articles, times: times}})
}

func publishedTimes(articles []Article) []time.Time {
	times := make([]time.Time, len(articles))
	for i, a := range articles {
		times[i], _ = a.PublishedTime()
	}
	return times
}

type byPublishedDesc struct {
	articles []Article
	times    []time.Time
}

func (s byPublishedDesc) Len() int { return len(s.articles) }

func (s byPublishedDesc) Less(i, j int) bool {
	return s.times[i].After(s.times[j])
}

func (s byPublishedDesc) Swap(i, j int) {
	s.articles[i], s.articles[j] = s.articles[j], s.articles[i]
	s.times[i], s.times[j] = s.times[j], s.times[i]
}

type featuredFirst struct {
	byPublishedDesc
}

func (s featuredFirst) Less(i, j int) bool {
	fi, fj := s.articles[i].Featured, s.articles[j].Featured
	if fi != fj {
		return fi
	}
	return s.byPublishedDesc.Less(i, j)
}

// Categories returns the sorted, duplicate-free union of every article's categories.
func Categories(articles []Article) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, a := range articles {
		for _, c := range a.Categories {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}

// LatestOfType returns the newest article of the given type in an already sorted slice.
func LatestOfType(articles []Article, t ArticleType) (Article, bool) {
	for _, a := range articles {
		if a.Type == t {
			return a, true
		}
	}
	return Article{}, false
}
