package handlers

import (
	"net/http"

	"github.com/skillbridge/directory/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool   `json:"ready"`
	State string `json:"state"`
}

// Readyz reports readiness: the service is ready once the catalog has
// been loaded (from its sources or the built-in fallback).
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ready := d.Catalog.Ready()
		status := http.StatusOK
		if !ready {
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, readyzResponse{
			Ready: ready,
			State: string(d.Catalog.State()),
		})
	}
}
