package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/skillbridge/directory/internal/httpserver/deps"
	"github.com/skillbridge/directory/internal/httpserver/handlers"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Get("/api/bookmarks", handlers.ListBookmarks(d))
	r.Post("/api/bookmarks/toggle", handlers.ToggleBookmark(d))
}
