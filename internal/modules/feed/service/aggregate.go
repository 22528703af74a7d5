package service

import (
	"context"
	"log/slog"
	"sync"

	"environews/internal/modules/feed/domain"
	"environews/internal/shared/config"
)

// Aggregator fans a category's sources through the fetcher and
// normalizer and merges the results. Per-source failures are contained
// here: they are logged, recorded on the FetchResult, and never
// propagated.
type Aggregator struct {
	fetcher    *Fetcher
	normalizer *Normalizer
	workers    int
}

// NewAggregator creates an aggregator with a bounded fetch worker pool.
func NewAggregator(fetcher *Fetcher, normalizer *Normalizer, workers int) *Aggregator {
	if workers < 1 {
		workers = 1
	}
	return &Aggregator{
		fetcher:    fetcher,
		normalizer: normalizer,
		workers:    workers,
	}
}

// fetchJob pairs a source with its configured position so results can
// be merged in configured order.
type fetchJob struct {
	idx    int
	source domain.FeedSource
}

// Aggregate fetches every source of a category concurrently and returns
// the merged, pre-dedup item list along with the per-source results.
// Each job writes its own result slot, so the merged order follows the
// configured source order no matter which fetch finishes first. That
// keeps "first-seen" stable across runs for the deduplicator's
// tie-breaking.
func (a *Aggregator) Aggregate(ctx context.Context, category config.Category) ([]domain.Item, []domain.FetchResult) {
	jobs := make(chan fetchJob, len(category.Sources))
	results := make([]domain.FetchResult, len(category.Sources))

	var wg sync.WaitGroup

	for i := 0; i < a.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results[job.idx] = a.fetchSource(ctx, job.source)
			}
		}()
	}

	for i, source := range category.Sources {
		jobs <- fetchJob{idx: i, source: source}
	}
	close(jobs)
	wg.Wait()

	items := make([]domain.Item, 0)
	for _, result := range results {
		items = append(items, result.Items...)
	}

	slog.Info("Category aggregated",
		"category", category.Key,
		"sources", len(category.Sources),
		"items", len(items))

	return items, results
}

// fetchSource performs one fetch attempt and normalizes whatever it
// yielded. Each worker collects into its own result record, so no
// shared list is written during the fetch itself.
func (a *Aggregator) fetchSource(ctx context.Context, source domain.FeedSource) domain.FetchResult {
	result := domain.FetchResult{Source: source}

	feed, outcome, err := a.fetcher.Fetch(ctx, source.URL)
	result.Outcome = outcome
	result.Err = err

	if feed != nil {
		result.FeedTitle = feed.Title
		for _, entry := range feed.Items {
			item, ok := a.normalizer.Normalize(entry, source, feed.Title)
			if !ok {
				// No link means no identity; dropped silently.
				continue
			}
			result.Items = append(result.Items, item)
		}
	}

	switch outcome {
	case domain.FetchOutcomeOk:
		slog.Info("Source fetched",
			"url", source.URL,
			"category", source.Category,
			"outcome", outcome,
			"items", len(result.Items))
	case domain.FetchOutcomeWarning:
		slog.Warn("Source malformed",
			"url", source.URL,
			"category", source.Category,
			"items", len(result.Items),
			"error", err)
	default:
		slog.Error("Source unavailable",
			"url", source.URL,
			"category", source.Category,
			"error", err)
	}

	return result
}
