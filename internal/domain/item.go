package domain

import "fmt"

// ItemType discriminates the two catalog variants.
type ItemType string

const (
	TypeCourse     ItemType = "course"
	TypeInternship ItemType = "internship"
)

// ParseItemType validates a raw type string coming from the outside
// (persisted bookmarks, toggle requests).
func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case TypeCourse, TypeInternship:
		return ItemType(s), nil
	default:
		return "", fmt.Errorf("unknown item type: %q", s)
	}
}

// Item is a single directory record, course or internship.
//
// The two variants share identity and presentation fields and each
// carries a few fields of its own. A single struct with a Type
// discriminant keeps search and bookmarking uniform across both
// collections.
type Item struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is unique within a variant and stable across loads.
	ID int `json:"id"`

	// Type tells which variant this record is.
	Type ItemType `json:"type,omitempty"`

	// ─────────────────────────────
	// Shared presentation fields
	// ─────────────────────────────

	Title       string `json:"title"`
	Description string `json:"description"`

	// Category is one of an open enumerated set ("programming",
	// "design", "marketing", ...). Filters match it exactly.
	Category string `json:"category"`

	// Level is "beginner", "intermediate" or "advanced".
	Level string `json:"level"`

	// URL is the external resource to open.
	URL string `json:"url"`

	// Icon is a display glyph for the card.
	Icon string `json:"icon"`

	Duration string `json:"duration,omitempty"`

	// ─────────────────────────────
	// Course-only fields
	// ─────────────────────────────

	Provider string   `json:"provider,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Skills   []string `json:"skills,omitempty"`

	// ─────────────────────────────
	// Internship-only fields
	// ─────────────────────────────

	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	Paid         bool     `json:"paid,omitempty"`
	Salary       *string  `json:"salary,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
}

// Catalog is the full set of loaded items, partitioned by variant.
// Both slices preserve source-document order. A catalog is replaced
// wholesale on reload, never patched in place.
type Catalog struct {
	Courses     []Item
	Internships []Item
}

// Lookup finds an item by id within the given variant.
func (c Catalog) Lookup(id int, itemType ItemType) (Item, bool) {
	items := c.Courses
	if itemType == TypeInternship {
		items = c.Internships
	}
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Categories returns the distinct categories present across both
// collections, in first-seen order.
func (c Catalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, item := range append(append([]Item{}, c.Courses...), c.Internships...) {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}
