package rss

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssHeader = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
	xmlns:content="http://purl.org/rss/1.0/modules/content/"
	xmlns:dc="http://purl.org/dc/elements/1.1/"
	xmlns:media="http://search.yahoo.com/mrss/">
<channel>
<title>Test Journal</title>
<link>https://journal.example.org</link>
<description>Writing on AI policy</description>
`

const rssFooter = `</channel></rss>`

func rssDocument(items ...string) string {
	return rssHeader + strings.Join(items, "\n") + rssFooter
}

func parseItem(t *testing.T, item string) *gofeed.Item {
	t.Helper()
	feed, err := gofeed.NewParser().ParseString(rssDocument(item))
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	return feed.Items[0]
}

func TestFetcher_FetchFeed(t *testing.T) {
	var items []string
	for i := 0; i < 25; i++ {
		items = append(items, fmt.Sprintf(`<item>
			<title>Article %d</title>
			<link>https://journal.example.org/p/%d</link>
			<pubDate>Mon, 02 Jan 2006 15:04:05 +0000</pubDate>
		</item>`, i, i))
	}
	body := rssDocument(items...)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	feed, err := NewFetcher(srv.Client(), 0).FetchFeed(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Test Journal", feed.Title)
	assert.Equal(t, "Writing on AI policy", feed.Description)
	require.Len(t, feed.Articles, DefaultMaxItems)
	for i, a := range feed.Articles {
		assert.Equal(t, fmt.Sprintf("Article %d", i), a.Title)
		assert.Equal(t, fmt.Sprintf("https://journal.example.org/p/%d", i), a.ID)
		assert.Equal(t, "2006-01-02T15:04:05Z", a.PublishedAt)
	}
}

func TestFetcher_FetchFeed_Errors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "server_error",
			status:  http.StatusInternalServerError,
			body:    "boom",
			wantErr: "returned status 500",
		},
		{
			name:    "not_a_feed",
			status:  http.StatusOK,
			body:    "this is not xml",
			wantErr: "parsing feed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewFetcher(srv.Client(), 0).FetchFeed(context.Background(), srv.URL)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestFetcher_FetchFeed_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewFetcher(nil, 0).FetchFeed(context.Background(), url)
	require.Error(t, err)
}

func TestNormalizeItem_Image(t *testing.T) {
	cases := []struct {
		name      string
		item      string
		wantImage string
	}{
		{
			name: "enclosure_preferred_over_inline",
			item: `<item><title>A</title><link>https://j.example.org/a</link>
				<enclosure url="https://cdn.example.org/cover.JPG" type="image/jpeg" length="10"/>
				<content:encoded><![CDATA[<p>Hi <img src="https://cdn.example.org/inline.png"/></p>]]></content:encoded>
			</item>`,
			wantImage: "https://cdn.example.org/cover.JPG",
		},
		{
			name: "non_image_enclosure_skipped_for_media_content",
			item: `<item><title>A</title><link>https://j.example.org/a</link>
				<enclosure url="https://cdn.example.org/episode.mp3" type="audio/mpeg" length="10"/>
				<media:content url="https://cdn.example.org/media.webp" medium="image"/>
				<content:encoded><![CDATA[<img src="https://cdn.example.org/inline.png"/>]]></content:encoded>
			</item>`,
			wantImage: "https://cdn.example.org/media.webp",
		},
		{
			name: "inline_image_from_content",
			item: `<item><title>A</title><link>https://j.example.org/a</link>
				<content:encoded><![CDATA[<p>Text</p><img alt="x" src="https://cdn.example.org/first.gif"><img src="https://cdn.example.org/second.gif">]]></content:encoded>
			</item>`,
			wantImage: "https://cdn.example.org/first.gif",
		},
		{
			name:      "no_image",
			item:      `<item><title>A</title><link>https://j.example.org/a</link><description>Plain</description></item>`,
			wantImage: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NormalizeItem(parseItem(t, tc.item))
			if tc.wantImage == "" {
				assert.Nil(t, a.Image)
				return
			}
			require.NotNil(t, a.Image)
			assert.Equal(t, tc.wantImage, *a.Image)
		})
	}
}

func TestNormalizeItem_Fields(t *testing.T) {
	cases := []struct {
		name        string
		item        string
		wantID      string
		wantTitle   string
		wantAuthor  string
		wantExcerpt string
		wantDate    string
		wantCats    []string
	}{
		{
			name: "full_item",
			item: `<item>
				<title>AI Governance Framework</title>
				<link>https://j.example.org/governance</link>
				<guid isPermaLink="false">post-42</guid>
				<dc:creator>Ada Obi</dc:creator>
				<category>Africa AI Policy</category>
				<category>Governance</category>
				<pubDate>Tue, 10 Jun 2025 08:00:00 +0000</pubDate>
				<description><![CDATA[<p>First paragraph.</p>
<p>Second paragraph.</p>]]></description>
			</item>`,
			wantID:      "post-42",
			wantTitle:   "AI Governance Framework",
			wantAuthor:  "Ada Obi",
			wantExcerpt: "First paragraph.",
			wantDate:    "2025-06-10T08:00:00Z",
			wantCats:    []string{"Africa AI Policy", "Governance"},
		},
		{
			name:        "link_used_as_id_and_missing_title",
			item:        `<item><link>https://j.example.org/untitled</link></item>`,
			wantID:      "https://j.example.org/untitled",
			wantTitle:   "",
			wantAuthor:  "",
			wantExcerpt: "",
			wantDate:    "",
			wantCats:    []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NormalizeItem(parseItem(t, tc.item))
			assert.Equal(t, tc.wantID, a.ID)
			assert.Equal(t, tc.wantTitle, a.Title)
			assert.Equal(t, tc.wantAuthor, a.Author)
			assert.Equal(t, tc.wantExcerpt, a.Excerpt)
			assert.Equal(t, tc.wantDate, a.PublishedAt)
			assert.Equal(t, tc.wantCats, a.Categories)
		})
	}
}

func TestNormalizeItem_GeneratesID(t *testing.T) {
	a := NormalizeItem(parseItem(t, `<item><description>No identity at all</description></item>`))
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "", a.Title)
}

func TestExcerpt(t *testing.T) {
	long := strings.Repeat("word ", 40)

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "first_line_only", input: "\n  Line one  \nLine two", want: "Line one"},
		{name: "collapses_whitespace", input: "a   b\tc", want: "a b c"},
		{name: "truncated", input: long, want: strings.TrimSpace(long[:150]) + "..."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Excerpt(tc.input))
		})
	}
}
