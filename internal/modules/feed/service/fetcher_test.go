package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"environews/internal/modules/feed/domain"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Sample Water News</title>
    <link>https://example.org</link>
    <item>
      <title>Pipeline upgrade announced</title>
      <link>https://example.org/pipeline</link>
      <description>Major upgrade</description>
      <pubDate>Mon, 01 Jan 2024 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Reservoir at capacity</title>
      <link>https://example.org/reservoir</link>
      <description>Full again</description>
      <pubDate>Mon, 01 Jan 2024 12:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestFetchParsesFeed(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	feed, outcome, err := NewFetcher(5*time.Second).Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, domain.FetchOutcomeOk, outcome)
	require.NotNil(t, feed)
	assert.Equal(t, "Sample Water News", feed.Title)
	assert.Len(t, feed.Items, 2)

	// descriptive client identity, not Go's default
	assert.Contains(t, gotUA, "environews")
	assert.Contains(t, gotAccept, "application/rss+xml")
	assert.Contains(t, gotAccept, "application/atom+xml")
}

func TestFetchNon2xxIsFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	feed, outcome, err := NewFetcher(5*time.Second).Fetch(context.Background(), srv.URL)

	assert.Nil(t, feed)
	assert.Equal(t, domain.FetchOutcomeFailed, outcome)
	assert.Error(t, err)
}

func TestFetchMalformedDocumentIsWarning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>definitely not a feed"))
	}))
	defer srv.Close()

	_, outcome, err := NewFetcher(5*time.Second).Fetch(context.Background(), srv.URL)

	assert.Equal(t, domain.FetchOutcomeWarning, outcome)
	assert.Error(t, err)
}

func TestFetchUnreachableHostIsFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	feed, outcome, err := NewFetcher(time.Second).Fetch(context.Background(), srv.URL)

	assert.Nil(t, feed)
	assert.Equal(t, domain.FetchOutcomeFailed, outcome)
	assert.Error(t, err)
}
