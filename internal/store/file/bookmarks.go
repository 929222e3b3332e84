// Package file provides a file-backed BookmarkStore for deployments
// without redis. The on-disk value is the same JSON array the redis
// backend stores, so the two are interchangeable.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillbridge/directory/internal/domain"
	"github.com/skillbridge/directory/internal/store"
)

// Store persists the bookmark set to a single JSON file.
type Store struct {
	path string
}

// NewStore creates a file bookmark store at the given path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// Load reads the persisted bookmark set. A missing file is an empty
// set, not an error.
func (s *Store) Load(_ context.Context) ([]domain.BookmarkEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.BookmarkEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read bookmarks file: %w", err)
	}

	entries, err := store.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bookmarks file: %w", err)
	}
	return entries, nil
}

// Persist overwrites the bookmarks file with the full set. The write
// goes through a temp file and rename so a crash mid-write never
// leaves a corrupt set behind.
func (s *Store) Persist(_ context.Context, entries []domain.BookmarkEntry) error {
	data, err := store.Encode(entries)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create bookmarks dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".bookmarks-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write bookmarks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace bookmarks file: %w", err)
	}
	return nil
}
