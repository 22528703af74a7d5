package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// FeedSource is one configured RSS/Atom source belonging to a category.
type FeedSource struct {
	URL      string `json:"url" koanf:"url"`
	Title    string `json:"title,omitempty" koanf:"title"`
	Category string `json:"category" koanf:"category"`
}

// Item is the canonical record an entry is reduced to after
// normalization. All fields are populated; entries that cannot satisfy
// that (no link) never become Items.
type Item struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Source      string    `json:"source"`
	Summary     string    `json:"summary"`
	PublishedAt time.Time `json:"published_at"`
	Category    string    `json:"category"`
	IdentityKey string    `json:"identity_key"`
}

// FetchResult is the explicit outcome of one source fetch. Failures are
// carried here instead of being returned as errors so one bad source
// never interrupts a category.
type FetchResult struct {
	Source    FeedSource
	Outcome   FetchOutcome
	FeedTitle string
	Items     []Item
	Err       error
}

// IdentityKey derives the deduplication key for a link by hashing it
// and keeping a short stable prefix.
func IdentityKey(link string) string {
	hash := sha256.Sum256([]byte(strings.TrimSpace(link)))
	return hex.EncodeToString(hash[:])[:16]
}
