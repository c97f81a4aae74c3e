package params

import (
	"os"
	"path/filepath"
	"time"
)

const (
	RouteGPXFileName    = "route.gpx"
	ActivityGPXFileName = "activity.gpx"

	RouteCacheDBName = "routes.db"
)

var RouteCacheBucket = []byte("routes")

var DatadirRoot = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return filepath.Join(home, ".catwalk")
}()

var (
	// WebRateLimitCount is the number of generate calls a client may make
	// within WebRateLimitWindow before getting 429'd.
	WebRateLimitCount  = 5
	WebRateLimitWindow = 5 * time.Minute

	// WebResultCacheSize bounds the in-memory LRU of generated results.
	WebResultCacheSize = 32
)
