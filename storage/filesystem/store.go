package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/phoneme"
	"github.com/revelaction/pluralis/storage"
)

const runDir = "runs"

// Store keeps phoneme caches and runs as JSON files under a directory.
type Store struct {
	root string
}

var _ storage.Repository = (*Store)(nil)

// NewStore creates a filesystem store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, runDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{root: dir}, nil
}

func (s *Store) cachePath(class noun.Class) string {
	return filepath.Join(s.root, "phonemes_"+class.String()+".json")
}

// ReadCache returns storage.ErrNotFound when no cache was written for class.
func (s *Store) ReadCache(class noun.Class) (*phoneme.Cache, error) {
	var c phoneme.Cache
	if err := readJSON(s.cachePath(class), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) WriteCache(c *phoneme.Cache) error {
	return writeJSON(s.cachePath(c.Class), c)
}

// readJSON reads and unmarshals the JSON file at path.
func readJSON(path string, v any) error {
	f, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", filepath.Base(path), storage.ErrNotFound)
		}
		return fmt.Errorf("IO error: %w", err)
	}

	if err := json.Unmarshal(f, v); err != nil {
		return fmt.Errorf("JSON decoding error in %s: %w", filepath.Base(path), err)
	}

	return nil
}

// writeJSON writes v to a temporary file and renames it over path, so that
// readers never see a partial file.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
