// Package filestore keeps the encoded problem list in a single JSON file.
// It stores and returns raw JSON text and never interprets the records;
// decoding belongs to the jsonapi boundary.
package filestore

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const emptyList = "[]"

// Store reads and writes one JSON file.
type Store struct {
	path string
}

// New creates a Store for the file at path. The file does not need to exist.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the file contents. A missing or blank file reads as an empty
// list.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return emptyList, nil
	}
	if err != nil {
		return "", fmt.Errorf("filestore: read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return emptyList, nil
	}
	return string(data), nil
}

// Save replaces the file contents atomically: data is written to a temp file
// in the same directory and renamed over the target.
func (s *Store) Save(data string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("filestore: create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: create temp in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.WriteString(data); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("filestore: replace %s: %w", s.path, err)
	}
	return nil
}
