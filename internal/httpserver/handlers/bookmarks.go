package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillbridge/directory/internal/bookmarks"
	"github.com/skillbridge/directory/internal/domain"
	"github.com/skillbridge/directory/internal/httpserver/deps"
	"github.com/skillbridge/directory/internal/logger"
)

// Notification texts surfaced to the user; the controller only reports
// added/removed, presentation wording lives here.
const (
	msgSaved   = "Saved to your collection!"
	msgRemoved = "Removed from saved items"
)

type bookmarksResponse struct {
	Bookmarks []domain.BookmarkEntry `json:"bookmarks"`
	Count     int                    `json:"count"`
}

// ListBookmarks returns the saved set in insertion order.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := d.Bookmarks.Entries()
		writeJSON(w, http.StatusOK, bookmarksResponse{
			Bookmarks: entries,
			Count:     len(entries),
		})
	}
}

type toggleRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

type toggleResponse struct {
	bookmarks.Result
	Message string `json:"message"`
}

// ToggleBookmark flips bookmark membership for one item and reports
// the new state plus the notification text for the presenter.
func ToggleBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req toggleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		itemType, err := domain.ParseItemType(req.Type)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := d.Bookmarks.Toggle(r.Context(), req.ID, itemType)
		if err != nil {
			if errors.Is(err, domain.ErrItemNotFound) {
				// Unknown item: nothing was mutated.
				writeError(w, http.StatusNotFound, "item not found")
				return
			}
			d.Logger.Error("bookmark toggle failed",
				logger.Int("id", req.ID),
				logger.String("type", req.Type),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "toggle failed")
			return
		}

		message := msgRemoved
		if result.Added {
			message = msgSaved
		}

		writeJSON(w, http.StatusOK, toggleResponse{
			Result:  result,
			Message: message,
		})
	}
}
