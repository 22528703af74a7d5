package service

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"environews/internal/modules/feed/domain"
	"environews/internal/shared/textutil"
)

const (
	noTitlePlaceholder = "(no title)"
	sourceNameMax      = 80
)

// Normalizer coerces as-parsed feed entries into canonical Items.
type Normalizer struct {
	summaryMax int
	now        func() time.Time
}

// NewNormalizer creates a normalizer that truncates summaries to
// summaryMax runes.
func NewNormalizer(summaryMax int) *Normalizer {
	return &Normalizer{summaryMax: summaryMax, now: time.Now}
}

// Normalize converts one entry into an Item tagged with the source's
// category. The second return value is false when the entry has no
// usable link and therefore no identity.
func (n *Normalizer) Normalize(entry *gofeed.Item, source domain.FeedSource, feedTitle string) (domain.Item, bool) {
	link := strings.TrimSpace(entry.Link)
	if link == "" {
		return domain.Item{}, false
	}

	title := textutil.Clean(entry.Title)
	if title == "" {
		title = noTitlePlaceholder
	}

	summary := entry.Description
	if summary == "" {
		summary = entry.Content
	}
	summary = textutil.Truncate(textutil.Clean(summary), n.summaryMax)

	return domain.Item{
		Title:       title,
		Link:        link,
		Source:      n.sourceName(feedTitle, source),
		Summary:     summary,
		PublishedAt: n.publishedAt(entry),
		Category:    source.Category,
		IdentityKey: domain.IdentityKey(link),
	}, true
}

// publishedAt resolves the entry timestamp: published, then updated,
// then the fetch time. Unparseable date strings leave the parsed fields
// nil and fall through.
func (n *Normalizer) publishedAt(entry *gofeed.Item) time.Time {
	if entry.PublishedParsed != nil {
		return entry.PublishedParsed.UTC()
	}
	if entry.UpdatedParsed != nil {
		return entry.UpdatedParsed.UTC()
	}
	return n.now().UTC()
}

func (n *Normalizer) sourceName(feedTitle string, source domain.FeedSource) string {
	name := textutil.Clean(feedTitle)
	if name == "" {
		name = strings.TrimSpace(source.Title)
	}
	if name == "" {
		name = source.URL
	}
	return textutil.Truncate(name, sourceNameMax)
}
