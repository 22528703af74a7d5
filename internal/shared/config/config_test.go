package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"environews/internal/shared/config"
	sharederrors "environews/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadFromMissingFeeds(t *testing.T) {
	dir := t.TempDir()

	_, err := config.LoadFrom(dir)
	assert.ErrorIs(t, err, sharederrors.ErrMissingFeeds)
}

func TestLoadFromBareURLList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "feeds.yaml", `
water:
  - https://example.org/water.xml
  - "  https://example.org/rivers.xml  "
environment:
  - https://example.org/env.xml
`)

	cfg, err := config.LoadFrom(dir)
	require.NoError(t, err)

	require.Len(t, cfg.Categories, 2)
	// categories come back in stable sorted order
	assert.Equal(t, "environment", cfg.Categories[0].Key)
	assert.Equal(t, "water", cfg.Categories[1].Key)

	water := cfg.Categories[1]
	assert.Equal(t, "water", water.Label)
	require.Len(t, water.Sources, 2)
	assert.Equal(t, "https://example.org/water.xml", water.Sources[0].URL)
	assert.Equal(t, "https://example.org/rivers.xml", water.Sources[1].URL)
	assert.Equal(t, "water", water.Sources[0].Category)
}

func TestLoadFromExplicitOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "feeds.yaml", `
order: [water, tenders]
tenders:
  - https://example.org/tenders.xml
environment:
  - https://example.org/env.xml
water:
  - https://example.org/water.xml
air:
  - https://example.org/air.xml
`)

	cfg, err := config.LoadFrom(dir)
	require.NoError(t, err)

	require.Len(t, cfg.Categories, 4)
	// "order" is never a category; listed keys lead, the rest trail
	// alphabetically.
	assert.Equal(t, "water", cfg.Categories[0].Key)
	assert.Equal(t, "tenders", cfg.Categories[1].Key)
	assert.Equal(t, "air", cfg.Categories[2].Key)
	assert.Equal(t, "environment", cfg.Categories[3].Key)
}

func TestLoadFromLabeledCategoryWithTitledSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "feeds.yaml", `
tenders:
  label: "مناقصه‌ها"
  sources:
    - url: https://example.org/tenders.xml
      title: Tender Watch
    - https://example.org/more-tenders.xml
`)

	cfg, err := config.LoadFrom(dir)
	require.NoError(t, err)

	require.Len(t, cfg.Categories, 1)
	cat := cfg.Categories[0]
	assert.Equal(t, "tenders", cat.Key)
	assert.Equal(t, "مناقصه‌ها", cat.Label)
	require.Len(t, cat.Sources, 2)
	assert.Equal(t, "Tender Watch", cat.Sources[0].Title)
	assert.Equal(t, "https://example.org/more-tenders.xml", cat.Sources[1].URL)
}

func TestLoadFromSiteDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "feeds.yaml", "water:\n  - https://example.org/w.xml\n")

	cfg, err := config.LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "Environ News+", cfg.Site.Name)
	assert.Equal(t, 50, cfg.Site.CategoryCap)
	assert.Equal(t, 250, cfg.Site.GlobalCap)
	assert.Equal(t, 400, cfg.Site.SummaryMax)
	assert.Equal(t, 5, cfg.Site.Workers)
	assert.Equal(t, "site", cfg.Site.OutputDir)
}

func TestLoadFromSiteOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "feeds.yaml", "water:\n  - https://example.org/w.xml\n")
	writeFile(t, dir, "site.json", `{
  "site_name": "My News",
  "category_cap": 5,
  "global_cap": 30,
  "search_keywords": ["biogas", "UV"]
}`)

	cfg, err := config.LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "My News", cfg.Site.Name)
	assert.Equal(t, 5, cfg.Site.CategoryCap)
	assert.Equal(t, 30, cfg.Site.GlobalCap)
	assert.Equal(t, []string{"biogas", "UV"}, cfg.Site.SearchKeywords)
	// untouched values keep their defaults
	assert.Equal(t, 400, cfg.Site.SummaryMax)
}

func TestLoadFromEmptyFeeds(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "feeds.yaml", "")

	_, err := config.LoadFrom(dir)
	assert.ErrorIs(t, err, sharederrors.ErrNoCategories)
}
