// Package synth is the synthetic track synthesis engine: it turns a sparse
// waypoint route into a dense one-sample-per-second activity recording with
// interpolated positions and plausible heart-rate and cadence signals.
//
// The pipeline is single-threaded and strictly feed-forward: speed profile,
// then elevation deltas, then physiology and interpolated positions, then
// assembly. Each stage produces a new immutable series; nothing upstream is
// mutated. Where a route comes from (a directions service, a map tool, a
// file) is not this package's business.
package synth

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rotblauer/catwalk/params"
	"github.com/rotblauer/catwalk/types/track"
)

// ErrNoWaypoints reports a route with fewer than two usable waypoints.
var ErrNoWaypoints = errors.New("route needs at least two usable waypoints")

// Synthesize runs the whole pipeline over an ordered waypoint route.
//
// A zero-duration configuration yields an empty track, not an error.
// Pass a seeded rng for reproducible output; nil gets a time-seeded one.
func Synthesize(cfg params.SynthConfig, waypoints []track.Waypoint, rng *rand.Rand) (track.Track, error) {
	if len(waypoints) < 2 {
		return nil, ErrNoWaypoints
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	totalSeconds := cfg.TotalSeconds()
	if totalSeconds <= 0 {
		return track.Track{}, nil
	}

	profile := NewSpeedProfile(totalSeconds, cfg.AvgSpeed, cfg.SpeedDecrease, cfg.FluctuationScale, rng)
	elevationChanges := ElevationChanges(waypoints, cfg.AvgSpeed, totalSeconds)

	bpm := NewBPMProfile(totalSeconds, cfg.AvgBPM, cfg.AvgSpeed, profile, elevationChanges, rng)
	cad := NewCadenceProfile(totalSeconds, cfg.AvgCadence, cfg.AvgSpeed, profile, elevationChanges, rng)

	points := Interpolate(waypoints, profile, totalSeconds)

	start := cfg.StartTime
	if start.IsZero() {
		start = time.Now().UTC()
	}
	return Assemble(points, bpm, cad, start)
}
