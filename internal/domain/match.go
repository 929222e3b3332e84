package domain

import "strings"

// Search filters items against a query. It is a pure function: no
// side effects, no residual state, safe to call repeatedly. The result
// is a subsequence of items in their original order; no relevance
// re-ranking happens at this layer. An empty result is a valid,
// non-error outcome.
func Search(items []Item, query Query) []Item {
	if query.IsEmpty() {
		return items
	}

	matched := make([]Item, 0, len(items))
	for _, item := range items {
		if Matches(item, query) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Matches reports whether a single item satisfies the query. All three
// predicate components must hold (conjunctive).
func Matches(item Item, query Query) bool {
	return matchesText(item, query.Text) &&
		matchesExact(item.Category, query.Category) &&
		matchesExact(item.Level, query.Level)
}

// matchesText checks the lowercased query text against the item's text
// fields: title, description, provider/company, location, and every
// element of skills/requirements. First hit short-circuits. A nil
// skills/requirements slice simply contributes no match.
func matchesText(item Item, text string) bool {
	if text == "" {
		return true
	}

	if containsFold(item.Title, text) ||
		containsFold(item.Description, text) ||
		containsFold(item.Provider, text) ||
		containsFold(item.Company, text) ||
		containsFold(item.Location, text) {
		return true
	}

	for _, skill := range item.Skills {
		if containsFold(skill, text) {
			return true
		}
	}
	for _, req := range item.Requirements {
		if containsFold(req, text) {
			return true
		}
	}
	return false
}

// matchesExact implements the dropdown predicate: absent filter means
// match-all, otherwise the field must equal the filter exactly.
func matchesExact(field, filter string) bool {
	return filter == "" || field == filter
}

// containsFold does a case-insensitive substring check. The needle is
// already lowercased by NewQuery; only the haystack needs folding.
func containsFold(haystack, needle string) bool {
	if haystack == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}
