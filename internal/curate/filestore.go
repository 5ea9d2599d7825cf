package curate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the file extension used for every dataset in a FileStore.
const Ext = ".jsonl"

// FileStore implements Store using one JSONL file per dataset in a directory.
type FileStore struct {
	Dir string
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("curate: create store dir: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

// Path returns the file backing the named dataset.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.Dir, name+Ext)
}

func (s *FileStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("curate: list: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	return names, nil
}

func (s *FileStore) Load(_ context.Context, name string) (*Dataset, error) {
	records, err := ReadFile(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("curate: load %q: %w", name, err)
	}
	return &Dataset{Name: name, Records: records}, nil
}

func (s *FileStore) Save(_ context.Context, d *Dataset) error {
	path := s.Path(d.Name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("curate: create %q: %w", d.Name, err)
	}
	if err := Write(f, d.Records); err != nil {
		f.Close()
		return fmt.Errorf("curate: write %q: %w", d.Name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("curate: close %q: %w", d.Name, err)
	}
	return nil
}
