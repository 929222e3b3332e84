package handlers

import (
	"net/http"

	"github.com/skillbridge/directory/internal/httpserver/deps"
)

type catalogResponse struct {
	State       string          `json:"state"`
	Courses     []annotatedItem `json:"courses"`
	Internships []annotatedItem `json:"internships"`
	Categories  []string        `json:"categories"`
}

// Catalog returns the full loaded catalog plus its availability state,
// so the front end can show the loading placeholder until both
// collections are in.
func Catalog(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalogResponse{
			State:       string(d.Catalog.State()),
			Courses:     annotate(d.Catalog.Courses(), d),
			Internships: annotate(d.Catalog.Internships(), d),
			Categories:  d.Catalog.Catalog().Categories(),
		})
	}
}
