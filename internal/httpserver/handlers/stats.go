package handlers

import (
	"net/http"

	"github.com/skillbridge/directory/internal/httpserver/deps"
)

type statsResponse struct {
	TotalCourses        int `json:"total_courses"`
	TotalInternships    int `json:"total_internships"`
	BookmarkedItems     int `json:"bookmarked_items"`
	CategoriesAvailable int `json:"categories_available"`
}

// Stats reports directory totals.
func Stats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, internships := d.Catalog.Counts()
		writeJSON(w, http.StatusOK, statsResponse{
			TotalCourses:        courses,
			TotalInternships:    internships,
			BookmarkedItems:     d.Bookmarks.Count(),
			CategoriesAvailable: len(d.Catalog.Catalog().Categories()),
		})
	}
}
