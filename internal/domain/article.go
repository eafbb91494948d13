package domain

import (
	"slices"
	"strings"
	"time"
)

// ArticleType records where an article came from.
type ArticleType string

const (
	// ArticleTypeJournal marks articles syndicated from the external journal feed.
	ArticleTypeJournal ArticleType = "journal"
	// ArticleTypeLocal marks articles curated in the site-local data file.
	ArticleTypeLocal ArticleType = "local"
	// ArticleTypeExternal marks curated articles published elsewhere.
	ArticleTypeExternal ArticleType = "external"
)

var ValidArticleTypes = []ArticleType{
	ArticleTypeJournal,
	ArticleTypeLocal,
	ArticleTypeExternal,
}

func (t ArticleType) Valid() bool {
	return slices.Contains(ValidArticleTypes, t)
}

type Article struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Excerpt       string      `json:"excerpt"`
	Content       string      `json:"content"`
	Link          string      `json:"link"`
	ExternalLink  string      `json:"externalLink,omitempty"`
	PublishedAt   string      `json:"publishedAt"`
	Author        string      `json:"author"`
	Categories    []string    `json:"categories"`
	Image         *string     `json:"image,omitempty"`
	Type          ArticleType `json:"type,omitempty"`
	Collaboration string      `json:"collaboration,omitempty"`
	Featured      bool        `json:"featured,omitempty"`
}

// PublishedTime parses PublishedAt. Unparseable values report false and the zero time.
func (a Article) PublishedTime() (time.Time, bool) {
	return ParsePublished(a.PublishedAt)
}

var publishedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParsePublished accepts ISO 8601 timestamps as well as the RFC 1123 dates found in raw RSS pubDate fields.
func ParsePublished(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Feed is the normalized result of fetching a syndication feed.
type Feed struct {
	Title       string
	Description string
	Articles    []Article
}

type SourceCounts struct {
	Local    int `json:"local"`
	Journal  int `json:"journal"`
	External int `json:"external"`
}

// Collection is the aggregated, date-sorted view over every news source.
// A published Collection is never modified.
type Collection struct {
	Articles    []Article    `json:"articles"`
	TotalCount  int          `json:"totalCount"`
	LastUpdated time.Time    `json:"lastUpdated"`
	Sources     SourceCounts `json:"sources"`
	Error       string       `json:"error,omitempty"`
}

// Snapshot is the durable on-disk copy of the journal feed.
type Snapshot struct {
	LastUpdated       time.Time `json:"lastUpdated"`
	FeedTitle         string    `json:"feedTitle"`
	FeedDescription   string    `json:"feedDescription"`
	Articles          []Article `json:"articles"`
	LatestArticleID   *string   `json:"latestArticleId"`
	LatestArticleDate *string   `json:"latestArticleDate"`
	Error             *string   `json:"error,omitempty"`
}

// Degraded reports whether the snapshot was written after a failed fetch.
func (s Snapshot) Degraded() bool {
	return s.Error != nil
}

type LocalNews struct {
	LastUpdated string    `json:"lastUpdated"`
	Articles    []Article `json:"articles"`
}

// JournalArticles is what a syndicated source yields: articles plus when they were produced.
type JournalArticles struct {
	LastUpdated time.Time `json:"lastUpdated"`
	Articles    []Article `json:"articles"`
	// Error carries a degradation notice from the source, for example an error snapshot.
	Error string `json:"error,omitempty"`
}
