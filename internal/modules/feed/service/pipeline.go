package service

import (
	"context"
	"log/slog"
	"time"

	"environews/internal/modules/feed/domain"
	"environews/internal/shared/config"
)

// Pipeline runs the whole aggregation pass: fetch, normalize, merge,
// dedupe and bound every configured category. It holds no state between
// runs; each Run recomputes everything from the live sources.
type Pipeline struct {
	cfg        *config.Config
	aggregator *Aggregator
}

// NewPipeline wires a pipeline from configuration.
func NewPipeline(cfg *config.Config) *Pipeline {
	fetcher := NewFetcher(time.Duration(cfg.Site.FetchTimeoutSec) * time.Second)
	normalizer := NewNormalizer(cfg.Site.SummaryMax)
	return &Pipeline{
		cfg:        cfg,
		aggregator: NewAggregator(fetcher, normalizer, cfg.Site.Workers),
	}
}

// Run produces the bounded, deduplicated item list for every category,
// keyed by category key. Individual source failures never surface here;
// a category whose sources all failed simply comes back empty.
func (p *Pipeline) Run(ctx context.Context) map[string][]domain.Item {
	pages := make(map[string][]domain.Item, len(p.cfg.Categories))

	for _, category := range p.cfg.Categories {
		merged, _ := p.aggregator.Aggregate(ctx, category)
		bounded := Bound(Dedupe(merged), p.cfg.Site.CategoryCap)
		pages[category.Key] = bounded

		slog.Info("Category ready",
			"category", category.Key,
			"items", len(bounded))
	}

	return pages
}
