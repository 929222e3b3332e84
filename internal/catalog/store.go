package catalog

import (
	"sync"
	"time"

	"github.com/skillbridge/directory/internal/domain"
)

// State describes catalog availability as seen by consumers.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// Store holds the loaded catalog in memory. Both collections are
// swapped together on Replace, so a reader can never observe one
// populated and the other empty mid-load. Reads return the collection
// slices as-is; the catalog is immutable between replacements.
type Store struct {
	mu       sync.RWMutex
	catalog  domain.Catalog
	state    State
	loadedAt time.Time
}

// NewStore creates an empty store in the loading state.
func NewStore() *Store {
	return &Store{state: StateLoading}
}

// Replace swaps in a freshly loaded catalog wholesale and marks the
// store ready.
func (s *Store) Replace(catalog domain.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog = catalog
	s.state = StateReady
	s.loadedAt = time.Now()
}

// Catalog returns the current catalog.
func (s *Store) Catalog() domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.catalog
}

// Courses returns the loaded course collection in source order.
func (s *Store) Courses() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.catalog.Courses
}

// Internships returns the loaded internship collection in source order.
func (s *Store) Internships() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.catalog.Internships
}

// Lookup finds an item by id within a variant.
func (s *Store) Lookup(id int, itemType domain.ItemType) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.catalog.Lookup(id, itemType)
}

// State returns the current availability state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Ready reports whether a catalog has been loaded.
func (s *Store) Ready() bool {
	return s.State() == StateReady
}

// LoadedAt returns the timestamp of the last wholesale replacement.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt
}

// Counts returns the sizes of both collections.
func (s *Store) Counts() (courses, internships int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.catalog.Courses), len(s.catalog.Internships)
}
