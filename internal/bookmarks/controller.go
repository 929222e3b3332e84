package bookmarks

import (
	"context"
	"sync"
	"time"

	"github.com/skillbridge/directory/internal/catalog"
	"github.com/skillbridge/directory/internal/domain"
	"github.com/skillbridge/directory/internal/logger"
	"github.com/skillbridge/directory/internal/store"
)

// Result is what a toggle hands back to the presenter.
type Result struct {
	// Added is true when the toggle saved a new entry, false when it
	// removed an existing one.
	Added bool `json:"added"`

	// Entry is the snapshot that was saved; nil on removal.
	Entry *domain.BookmarkEntry `json:"entry,omitempty"`

	// Persisted is false when the durable write failed. The in-memory
	// state still reflects the toggle for the rest of the session.
	Persisted bool `json:"persisted"`
}

// Controller owns the bookmark set and its persistence. All mutation
// goes through Toggle, which serializes mutation-then-persist under
// one mutex so a toggle always observes the result of every prior
// toggle on the same pair.
type Controller struct {
	mu      sync.Mutex
	set     *Set
	store   store.BookmarkStore
	catalog *catalog.Store
	logger  logger.Logger
	now     func() time.Time
}

// NewController creates a controller over an empty set. Call Load to
// hydrate from the persisted state.
func NewController(st store.BookmarkStore, cat *catalog.Store, log logger.Logger) *Controller {
	return &Controller{
		set:     NewSet(nil),
		store:   st,
		catalog: cat,
		logger:  log,
		now:     time.Now,
	}
}

// Load hydrates the set from the store, once at startup. Absent or
// corrupt persisted state degrades to an empty set; it never fails the
// session.
func (c *Controller) Load(ctx context.Context) {
	entries, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Warn("failed to load persisted bookmarks, starting empty",
			logger.Error(err))
		entries = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.set = NewSet(entries)

	c.logger.Info("bookmarks loaded",
		logger.Int("count", c.set.Len()))
}

// Toggle flips bookmark membership for an (id, type) pair.
//
// If the pair is saved, its entry is removed. Otherwise the item is
// looked up in the catalog, snapshotted with the current timestamp and
// appended; domain.ErrItemNotFound means no mutation happened at all.
// Every mutation triggers a full persist; a persist failure is logged
// and surfaced via Result.Persisted but does not undo the in-memory
// change or block the user.
func (c *Controller) Toggle(ctx context.Context, id int, itemType domain.ItemType) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.set.remove(id, itemType) {
		return Result{Added: false, Persisted: c.persist(ctx)}, nil
	}

	item, ok := c.catalog.Lookup(id, itemType)
	if !ok {
		// Internal inconsistency: toggle for an item the catalog does
		// not know. Leave the set untouched.
		c.logger.Warn("bookmark toggle for unknown item",
			logger.Int("id", id),
			logger.String("type", string(itemType)))
		return Result{}, domain.ErrItemNotFound
	}
	item.Type = itemType

	entry := domain.NewBookmarkEntry(item, c.now())
	c.set.add(entry)

	return Result{Added: true, Entry: &entry, Persisted: c.persist(ctx)}, nil
}

// Contains reports whether a pair is currently bookmarked.
func (c *Controller) Contains(id int, itemType domain.ItemType) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.set.Contains(id, itemType)
}

// Entries returns the current set in insertion order.
func (c *Controller) Entries() []domain.BookmarkEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.set.Entries()
}

// Count returns the number of saved entries.
func (c *Controller) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.set.Len()
}

// persist writes the full set, best effort. Called with the mutex held.
func (c *Controller) persist(ctx context.Context) bool {
	if err := c.store.Persist(ctx, c.set.Entries()); err != nil {
		c.logger.Warn("failed to persist bookmarks, changes are session-only",
			logger.Error(err))
		return false
	}
	return true
}
