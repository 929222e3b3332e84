package handlers

import (
	"net/http"

	"github.com/skillbridge/directory/internal/domain"
	"github.com/skillbridge/directory/internal/httpserver/deps"
	"github.com/skillbridge/directory/internal/logger"
)

// annotatedItem decorates an item with its bookmark indicator state so
// the presenter can render the saved/unsaved icon per card.
type annotatedItem struct {
	domain.Item
	Bookmarked bool `json:"bookmarked"`
}

type searchCounts struct {
	Courses     int `json:"courses"`
	Internships int `json:"internships"`
}

type searchResponse struct {
	Courses     []annotatedItem `json:"courses"`
	Internships []annotatedItem `json:"internships"`
	Counts      searchCounts    `json:"counts"`
}

// Search filters both collections against the query parameters and
// returns the filtered views in original catalog order.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		query := domain.NewQuery(params.Get("q"), params.Get("category"), params.Get("level"))

		courses := domain.Search(d.Catalog.Courses(), query)
		internships := domain.Search(d.Catalog.Internships(), query)

		d.Logger.Debug("search request",
			logger.String("text", query.Text),
			logger.String("category", query.Category),
			logger.String("level", query.Level),
			logger.Int("courses", len(courses)),
			logger.Int("internships", len(internships)))

		writeJSON(w, http.StatusOK, searchResponse{
			Courses:     annotate(courses, d),
			Internships: annotate(internships, d),
			Counts: searchCounts{
				Courses:     len(courses),
				Internships: len(internships),
			},
		})
	}
}

func annotate(items []domain.Item, d deps.Deps) []annotatedItem {
	out := make([]annotatedItem, 0, len(items))
	for _, item := range items {
		out = append(out, annotatedItem{
			Item:       item,
			Bookmarked: d.Bookmarks.Contains(item.ID, item.Type),
		})
	}
	return out
}
