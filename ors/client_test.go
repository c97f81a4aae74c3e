package ors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/paulmach/orb"

	"github.com/rotblauer/catwalk/params"
)

const routeGPXFixture = `<?xml version="1.0" encoding="UTF-8"?>
<gpx xmlns="http://www.topografix.com/GPX/1/1" version="1.1" creator="openrouteservice">
  <rte>
    <rtept lat="59.914428" lon="10.705898"><ele>12.3</ele></rtept>
    <rtept lat="59.914501" lon="10.706101"><ele>12.9</ele></rtept>
    <rtept lat="59.914602" lon="10.706202"><ele>13.1</ele></rtept>
  </rte>
</gpx>`

func newTestClient(t *testing.T, handler http.HandlerFunc, withCache bool) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := params.DefaultORSConfig()
	cfg.BaseURL = server.URL
	cfg.APIKey = "test-key"
	if withCache {
		cfg.CachePath = filepath.Join(t.TempDir(), params.RouteCacheDBName)
	}

	client, err := NewClient(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, server
}

func TestClientRoundTrip(t *testing.T) {
	t.Run("FetchesWaypoints", testClientRoundTrip_FetchesWaypoints)
	t.Run("CacheReplays", testClientRoundTrip_CacheReplays)
	t.Run("ErrorSurfaced", testClientRoundTrip_ErrorSurfaced)
}

func testClientRoundTrip_FetchesWaypoints(t *testing.T) {
	var sawAuth, sawPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization")
		sawPath = r.URL.Path
		_, _ = w.Write([]byte(routeGPXFixture))
	}, false)

	waypoints, err := client.RoundTrip(context.Background(), RoundTripParams{
		Start:  orb.Point{10.705898, 59.914428},
		Length: 8000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(waypoints) != 3 {
		t.Fatalf("unexpected waypoint count: %d", len(waypoints))
	}
	if sawAuth != "test-key" {
		t.Errorf("unexpected auth header: %q", sawAuth)
	}
	// Zero profile defaults to foot-walking.
	if !strings.Contains(sawPath, params.RouteProfileFootWalking) {
		t.Errorf("unexpected path: %q", sawPath)
	}
}

func testClientRoundTrip_CacheReplays(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(routeGPXFixture))
	}, true)

	p := RoundTripParams{Start: orb.Point{10.705898, 59.914428}, Length: 8000}
	for i := 0; i < 3; i++ {
		if _, err := client.RoundTrip(context.Background(), p); err != nil {
			t.Fatal(err)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("unexpected upstream hits: %d", n)
	}

	// A different request misses the cache.
	p.Length = 4000
	if _, err := client.RoundTrip(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if n := hits.Load(); n != 2 {
		t.Errorf("unexpected upstream hits: %d", n)
	}
}

func testClientRoundTrip_ErrorSurfaced(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":2003,"message":"Key not authorised"}}`))
	}, false)

	_, err := client.RoundTrip(context.Background(), RoundTripParams{
		Start: orb.Point{10.705898, 59.914428}, Length: 8000,
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "Key not authorised") {
		t.Errorf("service message not surfaced: %v", err)
	}
}
