package service

import (
	"time"

	"github.com/samber/lo"

	feeddomain "environews/internal/modules/feed/domain"
	feedservice "environews/internal/modules/feed/service"
	"environews/internal/modules/site/domain"
	"environews/internal/shared/config"
)

const updatedAtLayout = "2006-01-02 15:04 UTC"

// Builder assembles the rendering context from the per-category item
// lists produced by the pipeline.
type Builder struct {
	cfg *config.Config
}

// NewBuilder creates a context builder.
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build produces the final rendering context: the per-category pages in
// configured order plus the merged global digest under its own, larger
// cap. The merge copies into a fresh slice so the category lists stay
// untouched for their own views.
func (b *Builder) Build(pages map[string][]feeddomain.Item, now time.Time) *domain.Context {
	nav := lo.Map(b.cfg.Categories, func(cat config.Category, _ int) domain.NavEntry {
		return domain.NavEntry{Key: cat.Key, Label: cat.Label, Href: cat.Key + ".html"}
	})

	ordered := lo.Map(b.cfg.Categories, func(cat config.Category, _ int) domain.Page {
		return domain.Page{Key: cat.Key, Label: cat.Label, Items: pages[cat.Key]}
	})

	global := make([]feeddomain.Item, 0)
	for _, page := range ordered {
		global = append(global, page.Items...)
	}
	global = feedservice.Bound(global, b.cfg.Site.GlobalCap)

	return &domain.Context{
		SiteName:  b.cfg.Site.Name,
		Nav:       nav,
		Pages:     ordered,
		Global:    global,
		UpdatedAt: now.UTC().Format(updatedAtLayout),
		BuiltAt:   now.UTC(),
	}
}
