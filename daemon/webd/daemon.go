// Package webd serves synthetic activity generation over HTTP: fetch a
// round trip from the route source, run the synthesis engine, answer with
// JSON profiles or a GPX document.
package webd

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jellydator/ttlcache/v3"

	"github.com/rotblauer/catwalk/ors"
	"github.com/rotblauer/catwalk/params"
)

type WebDaemon struct {
	Config *params.WebDaemonConfig
	logger *slog.Logger

	routes ors.RouteSource

	// limiter counts generate calls per client IP inside a TTL window.
	limiter *ttlcache.Cache[string, int]

	// results replays recent identical generate requests from memory.
	results *lru.Cache[uint64, cachedResult]
}

type cachedResult struct {
	contentType string
	body        []byte
}

func NewWebDaemon(config *params.WebDaemonConfig, routes ors.RouteSource) (*WebDaemon, error) {
	if config == nil {
		config = params.DefaultWebDaemonConfig()
	}
	results, err := lru.New[uint64, cachedResult](params.WebResultCacheSize)
	if err != nil {
		return nil, err
	}
	limiter := ttlcache.New[string, int](
		ttlcache.WithTTL[string, int](params.WebRateLimitWindow))
	go limiter.Start()

	return &WebDaemon{
		Config:  config,
		logger:  slog.With("d", "web"),
		routes:  routes,
		limiter: limiter,
		results: results,
	}, nil
}

// Run starts the HTTP server (ListenAndServe) and waits for it,
// returning any server error.
func (s *WebDaemon) Run() error {
	router := s.NewRouter()
	log.Printf("Starting web daemon on %s", s.Config.Address)
	return http.ListenAndServe(s.Config.Address, router)
}

func (s *WebDaemon) NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(false)
	router.Use(loggingMiddleware)

	apiRoutes := router.NewRoute().Subrouter()

	// All API routes use permissive CORS settings.
	apiRoutes.Use(permissiveCorsMiddleware)

	// /ping is a simple server healthcheck endpoint
	apiRoutes.Path("/ping").HandlerFunc(pingPong)

	generateRoutes := apiRoutes.NewRoute().Subrouter()
	generateRoutes.Use(s.rateLimitMiddleware)

	generateRoutes.Path("/generate").HandlerFunc(s.handleGenerate).Methods(http.MethodPost)
	generateRoutes.Path("/generate/gpx").HandlerFunc(s.handleGenerateGPX).Methods(http.MethodPost)

	return router
}
