package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/oops"

	"environews/internal/modules/search/domain"
)

const reportFile = "crawler.json"

// FileStorage implements Repository on the local file system. The
// report is a single JSON artifact overwritten on every run.
type FileStorage struct {
	basePath string
	mu       sync.Mutex
}

// NewFileStorage creates a file-based report repository under basePath.
func NewFileStorage(basePath string) (Repository, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create data directory").Wrap(err)
	}
	return &FileStorage{basePath: basePath}, nil
}

func (s *FileStorage) SaveReport(report *domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.basePath, reportFile)
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return oops.With("path", path, "context", "failed to marshal report").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return oops.With("path", path).Wrap(err)
	}
	return nil
}
