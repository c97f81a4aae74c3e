package params

import (
	"os"
	"time"
)

// Route profiles understood by the directions service.
const (
	RouteProfileFootWalking = "foot-walking"
	RouteProfileCyclingRoad = "cycling-road"
)

type ORSConfig struct {
	// BaseURL is the directions endpoint root, without a trailing slash.
	BaseURL string

	// APIKey authorizes requests. Empty means unauthenticated (the
	// service will reject; fatal to the run, never retried here).
	APIKey string

	Timeout time.Duration

	// RoundTripPoints is the number of via points the service uses
	// when inventing a round trip.
	RoundTripPoints int

	// CachePath is the bbolt file for fetched-route replay.
	// Empty disables the cache.
	CachePath string
}

func DefaultORSConfig() *ORSConfig {
	return &ORSConfig{
		BaseURL:         "https://api.openrouteservice.org/v2/directions",
		APIKey:          os.Getenv("ORS_API_KEY"),
		Timeout:         30 * time.Second,
		RoundTripPoints: 5,
	}
}
