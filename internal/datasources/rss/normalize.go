package rss

import (
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"github.com/neuravox/newsfeed/internal/domain"
)

const excerptMaxRunes = 150

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// NormalizeItem maps one feed entry onto the canonical article shape.
// Every optional field is resolved from a fixed list of source fields, first non-empty wins.
func NormalizeItem(item *gofeed.Item) domain.Article {
	summary := ItemSummary(item)

	a := domain.Article{
		ID:          ItemID(item),
		Title:       item.Title,
		Excerpt:     Excerpt(summary),
		Content:     firstNonEmpty(item.Content, item.Description),
		Link:        item.Link,
		PublishedAt: ItemPublished(item),
		Author:      ItemAuthor(item),
		Categories:  append([]string{}, item.Categories...),
		Type:        domain.ArticleTypeJournal,
	}
	if img := ItemImage(item); img != "" {
		a.Image = &img
	}
	return a
}

// ItemID prefers the guid, then the link, and generates an identifier when neither is present.
func ItemID(item *gofeed.Item) string {
	if id := firstNonEmpty(item.GUID, item.Link); id != "" {
		return id
	}
	return uuid.NewString()
}

// ItemPublished prefers the parsed publish date, then the raw publish string, then the update date.
func ItemPublished(item *gofeed.Item) string {
	switch {
	case item.PublishedParsed != nil:
		return item.PublishedParsed.UTC().Format(time.RFC3339)
	case strings.TrimSpace(item.Published) != "":
		return strings.TrimSpace(item.Published)
	case item.UpdatedParsed != nil:
		return item.UpdatedParsed.UTC().Format(time.RFC3339)
	default:
		return strings.TrimSpace(item.Updated)
	}
}

// ItemAuthor checks the author element, then the authors list, then dc:creator.
func ItemAuthor(item *gofeed.Item) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	for _, p := range item.Authors {
		if p != nil && p.Name != "" {
			return p.Name
		}
	}
	if item.DublinCoreExt != nil {
		for _, c := range item.DublinCoreExt.Creator {
			if c != "" {
				return c
			}
		}
	}
	return ""
}

// ItemSummary returns the HTML-stripped description, else the stripped content.
// Line breaks are kept so callers can pick out the first paragraph.
func ItemSummary(item *gofeed.Item) string {
	if s := strings.TrimSpace(StripHTML(item.Description)); s != "" {
		return s
	}
	return strings.TrimSpace(StripHTML(item.Content))
}

// ItemImage tries an image enclosure, then media:content, then the first inline <img>.
func ItemImage(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && isImageURL(enc.URL) {
			return enc.URL
		}
	}

	if media, ok := item.Extensions["media"]; ok {
		for _, c := range media["content"] {
			if u := c.Attrs["url"]; u != "" {
				return u
			}
		}
	}

	for _, html := range []string{item.Content, item.Description} {
		if src := FirstImageSrc(html); src != "" {
			return src
		}
	}
	return ""
}

// FirstImageSrc returns the src of the first <img> element in an HTML fragment.
func FirstImageSrc(html string) string {
	if !strings.Contains(html, "<img") && !strings.Contains(html, "<IMG") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return src
}

// StripHTML returns the text content of an HTML fragment with line breaks kept.
func StripHTML(html string) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return doc.Text()
}

// Excerpt takes the first line of text and cuts it to 150 runes.
func Excerpt(text string) string {
	line := text
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			line = l
			break
		}
	}
	line = collapseSpace(line)

	runes := []rune(line)
	if len(runes) <= excerptMaxRunes {
		return line
	}
	return strings.TrimSpace(string(runes[:excerptMaxRunes])) + "..."
}

func isImageURL(raw string) bool {
	if raw == "" {
		return false
	}
	p := raw
	if u, err := url.Parse(raw); err == nil {
		p = u.Path
	}
	_, ok := imageExtensions[strings.ToLower(path.Ext(p))]
	return ok
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
