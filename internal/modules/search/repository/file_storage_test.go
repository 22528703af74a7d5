package repository_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"environews/internal/modules/search/domain"
	"environews/internal/modules/search/repository"
)

func TestSaveReport(t *testing.T) {
	dir := t.TempDir()

	repo, err := repository.NewFileStorage(dir)
	require.NoError(t, err)

	report := &domain.Report{
		UpdatedAt: "2024-07-01 09:30 UTC",
		Queries: []domain.QueryResult{
			{
				Keyword: "biogas",
				Query:   "biogas tender",
				Items: []domain.Result{
					{Title: "hit", Link: "https://example.org/1", Snippet: "snippet"},
				},
			},
			{Keyword: "UV", Query: "UV tender", Error: "request failed"},
		},
	}

	require.NoError(t, repo.SaveReport(report))

	data, err := os.ReadFile(filepath.Join(dir, "crawler.json"))
	require.NoError(t, err)

	var loaded domain.Report
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, report.UpdatedAt, loaded.UpdatedAt)
	require.Len(t, loaded.Queries, 2)
	assert.Equal(t, "https://example.org/1", loaded.Queries[0].Items[0].Link)
	assert.Equal(t, "request failed", loaded.Queries[1].Error)
}

func TestNewFileStorageCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := repository.NewFileStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
