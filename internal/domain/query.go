package domain

import "strings"

// Query is the tuple driving a search: free text plus the two
// exact-match dropdown filters. An empty component matches everything.
type Query struct {
	// Text is free-form user input, matched case-insensitively as a
	// substring against an item's text fields.
	Text string

	// Category filters on Item.Category with a case-sensitive exact
	// match. Values come from a controlled set, not free text.
	Category string

	// Level filters on Item.Level, same semantics as Category.
	Level string
}

// NewQuery normalizes raw input into a Query. Text is trimmed and
// lowercased once here so matching never has to re-normalize; the
// dropdown filters are passed through untouched.
func NewQuery(text, category, level string) Query {
	return Query{
		Text:     strings.ToLower(strings.TrimSpace(text)),
		Category: category,
		Level:    level,
	}
}

// IsEmpty reports whether the query filters nothing out.
func (q Query) IsEmpty() bool {
	return q.Text == "" && q.Category == "" && q.Level == ""
}
