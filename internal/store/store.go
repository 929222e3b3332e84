package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/skillbridge/directory/internal/domain"
)

// BookmarkStore persists the bookmark set as a whole. The set is
// serialized to a JSON array and written under a single durable key on
// every mutation (full overwrite, not incremental append), so the
// storage mechanism stays swappable: redis, a file, or an in-memory
// fake all satisfy the same contract.
type BookmarkStore interface {
	// Load reads the persisted set. A missing key yields an empty set
	// and no error; a corrupt payload yields an error the caller is
	// expected to degrade on, not abort.
	Load(ctx context.Context) ([]domain.BookmarkEntry, error)

	// Persist overwrites the durable key with the full set.
	Persist(ctx context.Context, entries []domain.BookmarkEntry) error
}

// Encode serializes a bookmark set to its wire form.
func Encode(entries []domain.BookmarkEntry) ([]byte, error) {
	if entries == nil {
		entries = []domain.BookmarkEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bookmarks: %w", err)
	}
	return data, nil
}

// Decode parses the wire form back into a bookmark set, preserving
// array order.
func Decode(data []byte) ([]domain.BookmarkEntry, error) {
	if len(data) == 0 {
		return []domain.BookmarkEntry{}, nil
	}
	var entries []domain.BookmarkEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookmarks: %w", err)
	}
	if entries == nil {
		entries = []domain.BookmarkEntry{}
	}
	return entries, nil
}

// Memory is an in-process BookmarkStore used in tests and as a
// last-resort backend. FailPersist forces Persist errors to exercise
// degradation paths.
type Memory struct {
	mu          sync.Mutex
	data        []byte
	FailPersist bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) ([]domain.BookmarkEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Decode(m.data)
}

func (m *Memory) Persist(_ context.Context, entries []domain.BookmarkEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailPersist {
		return fmt.Errorf("persist failed: storage quota exceeded")
	}

	data, err := Encode(entries)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}
