package domain

import (
	"time"

	feeddomain "environews/internal/modules/feed/domain"
)

// NavEntry is one navigation link on every rendered page.
type NavEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Page is the bounded, ordered item list for one category.
type Page struct {
	Key   string            `json:"key"`
	Label string            `json:"label"`
	Items []feeddomain.Item `json:"items"`
}

// Context is everything the rendering step needs: the per-category
// pages and the cross-category digest shown on the home view.
type Context struct {
	SiteName  string            `json:"site_name"`
	Nav       []NavEntry        `json:"nav"`
	Pages     []Page            `json:"pages"`
	Global    []feeddomain.Item `json:"global"`
	UpdatedAt string            `json:"updated_at"`
	BuiltAt   time.Time         `json:"built_at"`
}
