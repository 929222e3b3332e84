package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/skillbridge/directory/internal/httpserver/deps"
	"github.com/skillbridge/directory/internal/httpserver/handlers"
	"github.com/skillbridge/directory/internal/httpserver/mw"
)

func init() { Register(registerSearch) }

func registerSearch(r chi.Router, d deps.Deps) {
	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:           d.SearchRateBurst,
		RefillPerMinute: d.SearchRateRefill,
		TrustProxy:      d.TrustProxy,
	})).Get("/api/search", handlers.Search(d))
}
