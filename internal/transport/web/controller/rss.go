package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/neuravox/newsfeed/internal/command"
	"github.com/neuravox/newsfeed/internal/domain"
)

// RSS re-publishes the newest articles of the aggregated collection as an RSS 2.0 feed.
type RSS struct {
	News            command.Command[command.LatestNewsRequest, []domain.Article]
	FeedHostname    string
	FeedPath        string
	FeedTitle       string
	FeedDescription string
	FeedAuthorName  string
	FeedAuthorEmail string
	Limit           int
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       c.FeedTitle,
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: c.FeedDescription,
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	articles, err := c.News.Execute(r.Context(), command.LatestNewsRequest{Limit: c.Limit})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch articles for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, a := range articles {
		item := &feeds.Item{
			Id:          a.ID,
			IsPermaLink: "false",
			Title:       a.Title,
			Link:        &feeds.Link{Href: articleLink(a)},
			Description: a.Excerpt,
			Author:      &feeds.Author{Name: a.Author},
		}
		if published, ok := a.PublishedTime(); ok {
			item.Created = published
		}
		if a.Image != nil && *a.Image != "" {
			item.Enclosure = &feeds.Enclosure{Url: *a.Image, Type: imageMIMEType(*a.Image), Length: "0"}
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

// articleLink points external articles at the publication that ran them.
func articleLink(a domain.Article) string {
	if a.ExternalLink != "" {
		return a.ExternalLink
	}
	return a.Link
}

func imageMIMEType(u string) string {
	u = strings.ToLower(u)
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	switch {
	case strings.HasSuffix(u, ".png"):
		return "image/png"
	case strings.HasSuffix(u, ".gif"):
		return "image/gif"
	case strings.HasSuffix(u, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
