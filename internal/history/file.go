package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the history blob as a single JSON file on disk, the
// local-only equivalent of the browser storage the analyzer grew up with.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to the given file path. The file
// is created on first save; a missing file loads as an empty history.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the whole blob from disk. A missing file is not an error.
func (s *FileStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file %s: %w", s.path, err)
	}
	return data, nil
}

// Save writes the whole blob, via a temp file and rename so a crash
// mid-write cannot leave a half-written collection behind.
func (s *FileStore) Save(_ context.Context, blob []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create history directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close history file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace history file %s: %w", s.path, err)
	}
	return nil
}
