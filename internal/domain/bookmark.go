package domain

import (
	"fmt"
	"time"
)

// BookmarkEntry is a saved item. It is a snapshot of the item's fields
// at save time, not a reference: later catalog edits do not propagate
// to already-saved entries, so the saved list stays renderable even
// when a source document changes or disappears.
type BookmarkEntry struct {
	Item

	// SavedDate is the save timestamp in RFC 3339 form, matching the
	// persisted wire format.
	SavedDate string `json:"savedDate"`
}

// NewBookmarkEntry snapshots an item into a bookmark entry. The item's
// Type must already be set; now becomes the entry's SavedDate.
func NewBookmarkEntry(item Item, now time.Time) BookmarkEntry {
	return BookmarkEntry{
		Item:      item,
		SavedDate: now.UTC().Format(time.RFC3339),
	}
}

// Key returns the composite membership key for this entry.
func (e BookmarkEntry) Key() string {
	return BookmarkKey(e.ID, e.Type)
}

// BookmarkKey derives the composite key identifying a bookmark.
// At most one entry may exist per (id, type) pair.
func BookmarkKey(id int, itemType ItemType) string {
	return fmt.Sprintf("%s:%d", itemType, id)
}
