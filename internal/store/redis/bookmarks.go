package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/skillbridge/directory/internal/domain"
	"github.com/skillbridge/directory/internal/store"
)

// Store is the redis-backed BookmarkStore. The whole set lives under
// one key with no TTL: bookmarks survive across sessions until
// externally cleared.
type Store struct {
	client *redis.Client
}

// NewStore creates a new redis bookmark store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Load reads the persisted bookmark set. An absent key is an empty
// set, not an error.
func (s *Store) Load(ctx context.Context) ([]domain.BookmarkEntry, error) {
	data, err := s.client.Get(ctx, BookmarksKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.BookmarkEntry{}, nil
		}
		return nil, fmt.Errorf("failed to load bookmarks: %w", err)
	}

	entries, err := store.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bookmarks: %w", err)
	}
	return entries, nil
}

// Persist overwrites the bookmark key with the full set.
func (s *Store) Persist(ctx context.Context, entries []domain.BookmarkEntry) error {
	data, err := store.Encode(entries)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, BookmarksKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist bookmarks: %w", err)
	}
	return nil
}
