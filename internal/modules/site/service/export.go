package service

import (
	"os"

	"github.com/gorilla/feeds"
	"github.com/samber/lo"
	"github.com/samber/oops"

	feeddomain "environews/internal/modules/feed/domain"
	"environews/internal/modules/site/domain"
)

// ExportRSS writes the merged global digest as an RSS 2.0 document so
// the aggregated view is itself subscribable.
func ExportRSS(ctx *domain.Context, path string) error {
	feed := &feeds.Feed{
		Title:       ctx.SiteName,
		Link:        &feeds.Link{Href: "index.html"},
		Description: "Cross-category digest of all configured sources",
		Created:     ctx.BuiltAt,
	}

	feed.Items = lo.Map(ctx.Global, func(item feeddomain.Item, _ int) *feeds.Item {
		return &feeds.Item{
			Title:       item.Title,
			Link:        &feeds.Link{Href: item.Link},
			Description: item.Summary,
			Author:      &feeds.Author{Name: item.Source},
			Created:     item.PublishedAt,
			Id:          item.IdentityKey,
		}
	})

	rss, err := feed.ToRss()
	if err != nil {
		return oops.With("context", "rendering rss digest").Wrap(err)
	}

	if err := os.WriteFile(path, []byte(rss), 0644); err != nil {
		return oops.With("path", path).Wrap(err)
	}
	return nil
}
