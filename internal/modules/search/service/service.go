package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/oops"

	"environews/internal/modules/search/domain"
	"environews/internal/shared/config"
)

const (
	searchEndpoint = "https://html.duckduckgo.com/html/"
	searchRegion   = "ir-fa"
	maxResults     = 15
	queryDelay     = 2 * time.Second

	// Browser-like identity; the HTML endpoint rejects obvious bots.
	browserUA = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	// Narrows each keyword to tender/auction/inquiry announcements.
	querySuffix = "(site:.ir OR site:.org OR site:.com) (مناقصه OR مزایده OR استعلام)"
)

var defaultKeywords = []string{
	"مناقصه توربو بلوئر",
	"میکسر مستغرق",
	"دکانتر آبگیری سانتریفیوژ",
	"دیفیوزر هوادهی",
	"CHP",
	"بیوگاز",
	"UV",
}

var spaceRe = regexp.MustCompile(`\s+`)

// Service runs keyword searches against DuckDuckGo's HTML endpoint and
// assembles the crawler report.
type Service struct {
	client   *http.Client
	endpoint string
	delay    time.Duration
	keywords []string
	now      func() time.Time
}

// New creates a search service. Keywords come from the site config,
// falling back to the built-in tender equipment list.
func New(cfg *config.Config) *Service {
	keywords := cfg.Site.SearchKeywords
	if len(keywords) == 0 {
		keywords = defaultKeywords
	}
	return &Service{
		client:   &http.Client{Timeout: 25 * time.Second},
		endpoint: searchEndpoint,
		delay:    queryDelay,
		keywords: keywords,
		now:      time.Now,
	}
}

// Run sweeps every keyword and returns the report. Per-query failures
// are recorded inside the report; the sweep itself always completes.
func (s *Service) Run(ctx context.Context) *domain.Report {
	report := &domain.Report{
		UpdatedAt: s.now().UTC().Format("2006-01-02 15:04 UTC"),
		Queries:   make([]domain.QueryResult, 0, len(s.keywords)),
	}

	for i, keyword := range s.keywords {
		query := normalizeQuery(keyword + " " + querySuffix)
		slog.Info("Searching", "keyword", keyword)

		result := domain.QueryResult{Keyword: keyword, Query: query}
		items, err := s.search(ctx, query)
		if err != nil {
			result.Error = err.Error()
			slog.Warn("Query failed", "keyword", keyword, "error", err)
		}
		result.Items = items
		report.Queries = append(report.Queries, result)

		// Politeness delay between queries, skipped after the last one.
		if i < len(s.keywords)-1 {
			select {
			case <-ctx.Done():
				return report
			case <-time.After(s.delay):
			}
		}
	}

	return report
}

func (s *Service) search(ctx context.Context, query string) ([]domain.Result, error) {
	form := url.Values{}
	form.Set("q", query)
	form.Set("kl", searchRegion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, oops.With("query", query).Wrap(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", browserUA)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, oops.With("query", query, "context", "request failed").Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, oops.With("query", query, "status", resp.StatusCode).Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, oops.With("query", query, "context", "parsing result page").Wrap(err)
	}

	return parseResults(doc), nil
}

// parseResults pulls title, link and snippet out of the result page.
func parseResults(doc *goquery.Document) []domain.Result {
	results := make([]domain.Result, 0, maxResults)

	doc.Find("a.result__a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Text())
		link := strings.TrimSpace(sel.AttrOr("href", ""))
		snippet := strings.TrimSpace(sel.Closest(".result").Find(".result__snippet").Text())

		if title != "" && strings.HasPrefix(link, "http") {
			results = append(results, domain.Result{Title: title, Link: link, Snippet: snippet})
		}
		return len(results) < maxResults
	})

	return results
}

func normalizeQuery(q string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(q, " "))
}
