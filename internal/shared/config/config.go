package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"

	"environews/internal/modules/feed/domain"
	"environews/internal/shared/errors"
)

// Category is one topical bucket with its configured sources.
type Category struct {
	Key     string
	Label   string
	Sources []domain.FeedSource
}

// Site holds display metadata and pipeline limits.
type Site struct {
	Name            string   `koanf:"site_name"`
	OutputDir       string   `koanf:"output_dir"`
	DataDir         string   `koanf:"data_dir"`
	CategoryCap     int      `koanf:"category_cap"`
	GlobalCap       int      `koanf:"global_cap"`
	SummaryMax      int      `koanf:"summary_max"`
	FetchTimeoutSec int      `koanf:"fetch_timeout_sec"`
	Workers         int      `koanf:"workers"`
	HTTPPort        string   `koanf:"http_port"`
	SearchKeywords  []string `koanf:"search_keywords"`
}

type Config struct {
	Site       Site
	Categories []Category
}

var feedsFiles = []string{
	"feeds.yaml",
	"feeds.yml",
	"feeds.json",
	"feeds.toml",
}

var siteFiles = []string{
	"site.yaml",
	"site.yml",
	"site.json",
	"site.toml",
}

// Load reads the feed map and the optional site metadata document. A
// missing or unreadable feed map is the only fatal configuration error.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom loads configuration files relative to dir.
func LoadFrom(dir string) (*Config, error) {
	site, err := loadSite(dir)
	if err != nil {
		return nil, err
	}

	categories, err := loadCategories(dir)
	if err != nil {
		return nil, err
	}

	return &Config{Site: *site, Categories: categories}, nil
}

func loadSite(dir string) (*Site, error) {
	k := koanf.New(".")

	siteFile, found := lo.Find(siteFiles, func(name string) bool {
		_, err := os.Stat(filepath.Join(dir, name))
		return err == nil
	})

	if found {
		path := filepath.Join(dir, siteFile)
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, oops.With("site_file", path).Wrap(err)
		}
	}

	// Environment variables override file values
	if err := k.Load(env.Provider("ENVIRONEWS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ENVIRONEWS_"))
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("site_name") {
		k.Set("site_name", "Environ News+")
	}
	if !k.Exists("output_dir") {
		k.Set("output_dir", "site")
	}
	if !k.Exists("data_dir") {
		k.Set("data_dir", "data")
	}
	if !k.Exists("category_cap") {
		k.Set("category_cap", 50)
	}
	if !k.Exists("global_cap") {
		k.Set("global_cap", 250)
	}
	if !k.Exists("summary_max") {
		k.Set("summary_max", 400)
	}
	if !k.Exists("fetch_timeout_sec") {
		k.Set("fetch_timeout_sec", 20)
	}
	if !k.Exists("workers") {
		k.Set("workers", 5)
	}
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}

	var site Site
	if err := k.Unmarshal("", &site); err != nil {
		return nil, oops.With("context", "unmarshaling site config").Wrap(err)
	}

	return &site, nil
}

func loadCategories(dir string) ([]Category, error) {
	feedsFile, found := lo.Find(feedsFiles, func(name string) bool {
		_, err := os.Stat(filepath.Join(dir, name))
		return err == nil
	})
	if !found {
		return nil, errors.ErrMissingFeeds
	}

	path := filepath.Join(dir, feedsFile)
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, oops.With("feeds_file", path).Wrap(err)
	}

	keys := topLevelKeys(k)
	if len(keys) == 0 {
		return nil, errors.ErrNoCategories
	}

	categories := make([]Category, 0, len(keys))
	for _, key := range keys {
		cat := Category{Key: key, Label: key}

		// A category is either a bare list of sources or a mapping with
		// an optional label and a sources list.
		raw := k.Get(key)
		if _, isMap := raw.(map[string]interface{}); isMap {
			if label := k.String(key + ".label"); label != "" {
				cat.Label = label
			}
			cat.Sources = parseSources(k.Get(key+".sources"), key)
		} else {
			cat.Sources = parseSources(raw, key)
		}

		categories = append(categories, cat)
	}

	return categories, nil
}

// parseSources accepts both bare URL strings and {url, title} mappings.
func parseSources(raw interface{}, category string) []domain.FeedSource {
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	return lo.FilterMap(list, func(entry interface{}, _ int) (domain.FeedSource, bool) {
		switch v := entry.(type) {
		case string:
			url := strings.TrimSpace(v)
			if url == "" {
				return domain.FeedSource{}, false
			}
			return domain.FeedSource{URL: url, Category: category}, true
		case map[string]interface{}:
			url, _ := v["url"].(string)
			url = strings.TrimSpace(url)
			if url == "" {
				return domain.FeedSource{}, false
			}
			title, _ := v["title"].(string)
			return domain.FeedSource{URL: url, Title: strings.TrimSpace(title), Category: category}, true
		default:
			return domain.FeedSource{}, false
		}
	})
}

// orderKey is reserved in the feeds file for an explicit category order;
// it is never treated as a category itself.
const orderKey = "order"

// topLevelKeys returns the category keys. Keys listed under the reserved
// "order" key come first, in that order; the rest follow alphabetically.
func topLevelKeys(k *koanf.Koanf) []string {
	seen := map[string]bool{}
	keys := []string{}
	for _, key := range k.Keys() {
		top := strings.SplitN(key, ".", 2)[0]
		if top == orderKey {
			continue
		}
		if !seen[top] {
			seen[top] = true
			keys = append(keys, top)
		}
	}
	sort.Strings(keys)

	rank := map[string]int{}
	for i, key := range k.Strings(orderKey) {
		rank[key] = i + 1
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ri, iOrdered := rank[keys[i]]
		rj, jOrdered := rank[keys[j]]
		if iOrdered != jOrdered {
			return iOrdered
		}
		return ri < rj
	})
	return keys
}

func parserFor(path string) (koanf.Parser, error) {
	ext := filepath.Ext(path)
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, oops.Errorf("unsupported config file extension: %s", ext)
	}
}
