package domain

import "errors"

// ErrItemNotFound is returned when a toggle targets an (id, type) pair
// that is not present in the loaded catalog. Callers treat it as a
// silent no-op: the bookmark set is never mutated for an unknown item.
var ErrItemNotFound = errors.New("item not found in catalog")
