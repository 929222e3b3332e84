package deps

import (
	"time"

	"github.com/skillbridge/directory/internal/bookmarks"
	"github.com/skillbridge/directory/internal/catalog"
	"github.com/skillbridge/directory/internal/logger"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Catalog   *catalog.Store        // in-memory catalog, both collections
	Bookmarks *bookmarks.Controller // bookmark set + persistence

	ReloadTrigger chan struct{} // channel to trigger a manual catalog reload

	CORSOrigins  []string // origins allowed to call the API
	AllowedHosts []string // Host headers allowed on ops routes
	AllowedCIDRS []string // IPs allowed on ops routes
	TrustProxy   bool     // true if running behind a trusted reverse proxy

	SearchRateBurst  int // token bucket burst for the search route
	SearchRateRefill int // tokens refilled per IP per minute
}
