// Package lastitem persists the one remembered media path between runs.
package lastitem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes the remembered item file.
type Store struct {
	path string
}

// NewStore returns a store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the remembered path. A missing file means nothing is
// remembered and is not an error.
func (s *Store) Load() (string, error) {
	if s == nil || s.path == "" {
		return "", nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read last item: %w", err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line), nil
}

// Save overwrites the file with item on a single line.
func (s *Store) Save(item string) error {
	if s == nil || s.path == "" {
		return errors.New("last item store has no path")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(item+"\n"), 0o644); err != nil {
		return fmt.Errorf("write last item: %w", err)
	}
	return nil
}
