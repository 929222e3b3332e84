package bookmarks

import (
	"github.com/skillbridge/directory/internal/domain"
)

// Set is the ordered bookmark collection: insertion order is
// preserved, and a composite-key index gives O(1) membership checks
// for the presenter's per-card bookmark indicator. At most one entry
// exists per (id, type) pair; the controller enforces that on toggle.
type Set struct {
	entries []domain.BookmarkEntry
	index   map[string]int
}

// NewSet builds a set from loaded entries. Duplicate (id, type) pairs
// in the persisted payload are dropped, keeping the first occurrence.
func NewSet(entries []domain.BookmarkEntry) *Set {
	s := &Set{
		entries: make([]domain.BookmarkEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		if _, dup := s.index[entry.Key()]; dup {
			continue
		}
		s.index[entry.Key()] = len(s.entries)
		s.entries = append(s.entries, entry)
	}
	return s
}

// Contains reports whether an (id, type) pair is bookmarked.
func (s *Set) Contains(id int, itemType domain.ItemType) bool {
	_, ok := s.index[domain.BookmarkKey(id, itemType)]
	return ok
}

// Entries returns the set in insertion order. The returned slice is a
// copy; mutating it does not affect the set.
func (s *Set) Entries() []domain.BookmarkEntry {
	out := make([]domain.BookmarkEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of saved entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// add appends an entry. The caller must have checked membership first.
func (s *Set) add(entry domain.BookmarkEntry) {
	s.index[entry.Key()] = len(s.entries)
	s.entries = append(s.entries, entry)
}

// remove deletes the entry for the pair and reindexes the tail.
// Uniqueness guarantees there is at most one match.
func (s *Set) remove(id int, itemType domain.ItemType) bool {
	key := domain.BookmarkKey(id, itemType)
	pos, ok := s.index[key]
	if !ok {
		return false
	}

	s.entries = append(s.entries[:pos], s.entries[pos+1:]...)
	delete(s.index, key)
	for i := pos; i < len(s.entries); i++ {
		s.index[s.entries[i].Key()] = i
	}
	return true
}
