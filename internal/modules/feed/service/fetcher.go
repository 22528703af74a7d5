package service

import (
	"context"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samber/oops"

	"environews/internal/modules/feed/domain"
)

const (
	// Some feed hosts refuse empty or default user agents, so the
	// client identifies itself explicitly.
	userAgent    = "environews/1.0 (feed aggregator)"
	acceptHeader = "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8"
)

// Fetcher retrieves one feed document over HTTP and parses it.
type Fetcher struct {
	client *http.Client
	parser *gofeed.Parser
}

// NewFetcher creates a fetcher whose requests are bounded by timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		parser: gofeed.NewParser(),
	}
}

// Fetch retrieves and parses a single feed URL. The returned outcome
// distinguishes an unreachable source from a document that was fetched
// but could not be fully parsed; neither is an error the caller has to
// stop for.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*gofeed.Feed, domain.FetchOutcome, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.FetchOutcomeFailed, oops.With("url", url).Wrap(err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, domain.FetchOutcomeFailed, oops.With("url", url, "context", "request failed").Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.FetchOutcomeFailed, oops.With("url", url, "status", resp.StatusCode).Errorf("unexpected status %d", resp.StatusCode)
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		// The document arrived but is structurally broken. Keep whatever
		// the parser salvaged and surface the problem as a warning.
		if feed == nil {
			return nil, domain.FetchOutcomeWarning, oops.With("url", url, "context", "malformed feed").Wrap(err)
		}
		return feed, domain.FetchOutcomeWarning, oops.With("url", url, "context", "malformed feed").Wrap(err)
	}

	return feed, domain.FetchOutcomeOk, nil
}
