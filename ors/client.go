// Package ors fetches round-trip routes from an OpenRouteService-compatible
// directions API. It is a collaborator of the synthesis engine, not part of
// it: the engine only ever sees the ordered waypoints this package returns.
package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/paulmach/orb"
	"github.com/tidwall/gjson"

	"github.com/rotblauer/catwalk/params"
	"github.com/rotblauer/catwalk/types/gpxfile"
	"github.com/rotblauer/catwalk/types/track"
)

// RouteSource supplies an ordered waypoint route. Callers do not care how it
// was produced, only that it is ordered and has at least two points.
type RouteSource interface {
	RoundTrip(ctx context.Context, p RoundTripParams) ([]track.Waypoint, error)
}

// RoundTripParams describes a round-trip route request.
// The zero Profile and Points get defaults.
type RoundTripParams struct {
	Start   orb.Point // lon, lat
	Length  int       // meters
	Points  int       // via points the service invents
	Profile string    // params.RouteProfile*
}

func (p RoundTripParams) withDefaults(cfg *params.ORSConfig) RoundTripParams {
	if p.Profile == "" {
		p.Profile = params.RouteProfileFootWalking
	}
	if p.Points == 0 {
		p.Points = cfg.RoundTripPoints
	}
	return p
}

// Client talks to the directions service, replaying identical requests from
// an on-disk cache when one is configured.
type Client struct {
	Config *params.ORSConfig

	http   *http.Client
	cache  *routeCache
	logger *slog.Logger
}

func NewClient(cfg *params.ORSConfig) (*Client, error) {
	if cfg == nil {
		cfg = params.DefaultORSConfig()
	}
	c := &Client{
		Config: cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: slog.With("d", "ors"),
	}
	if cfg.CachePath != "" {
		cache, err := openRouteCache(cfg.CachePath)
		if err != nil {
			return nil, fmt.Errorf("ors: open route cache: %w", err)
		}
		c.cache = cache
	}
	return c, nil
}

func (c *Client) Close() error {
	if c.cache == nil {
		return nil
	}
	return c.cache.close()
}

// RoundTrip fetches a round-trip route and returns its ordered waypoints.
// A failed fetch is fatal to the run; retry policy, if any, is the caller's.
func (c *Client) RoundTrip(ctx context.Context, p RoundTripParams) ([]track.Waypoint, error) {
	p = p.withDefaults(c.Config)

	data, cached, err := c.fetch(ctx, p)
	if err != nil {
		return nil, err
	}

	waypoints, err := gpxfile.ParseRoute(data)
	if err != nil {
		return nil, fmt.Errorf("ors: parse route: %w", err)
	}
	c.logger.Info("Route ready",
		"waypoints", humanize.Comma(int64(len(waypoints))),
		"size", humanize.Bytes(uint64(len(data))),
		"cached", cached)
	return waypoints, nil
}

// RoundTripGPX fetches a round-trip route and returns the raw GPX document
// as the service produced it, for callers that want the file, not the points.
func (c *Client) RoundTripGPX(ctx context.Context, p RoundTripParams) ([]byte, error) {
	p = p.withDefaults(c.Config)
	data, cached, err := c.fetch(ctx, p)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Route GPX ready",
		"size", humanize.Bytes(uint64(len(data))),
		"cached", cached)
	return data, nil
}

func (c *Client) fetch(ctx context.Context, p RoundTripParams) (data []byte, cached bool, err error) {
	if c.cache != nil {
		if data, ok := c.cache.get(p); ok {
			return data, true, nil
		}
	}

	payload := map[string]interface{}{
		"coordinates": [][]float64{{p.Start.Lon(), p.Start.Lat()}},
		"options": map[string]interface{}{
			"round_trip": map[string]interface{}{
				"length": p.Length,
				"points": p.Points,
			},
		},
		"elevation":         true,
		"instructions":      false,
		"geometry_simplify": false,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, false, err
	}

	url := fmt.Sprintf("%s/%s/gpx?gpxType=track", c.Config.BaseURL, p.Profile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Authorization", c.Config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("ors: fetch route: %w", err)
	}
	defer resp.Body.Close()

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, err
	}
	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(data, "error.message").String()
		if msg == "" {
			msg = string(data)
		}
		return nil, false, fmt.Errorf("ors: fetch route: %d - %s", resp.StatusCode, msg)
	}

	if c.cache != nil {
		if err := c.cache.put(p, data); err != nil {
			c.logger.Warn("Failed to cache route", "error", err)
		}
	}
	return data, false, nil
}
