package synth

import (
	"math"
	"testing"

	"github.com/rotblauer/catwalk/types/track"
)

func TestElevationChanges(t *testing.T) {
	t.Run("DistributesLegDelta", testElevationChanges_DistributesLegDelta)
	t.Run("PadsAndTruncates", testElevationChanges_PadsAndTruncates)
}

func testElevationChanges_DistributesLegDelta(t *testing.T) {
	waypoints := []track.Waypoint{
		track.NewWaypoint(0, 0, 100),
		track.NewWaypoint(0.00899, 0, 120), // ~1000m, +20m
	}
	const avgSpeed = 4.0
	changes := ElevationChanges(waypoints, avgSpeed, 300)
	if len(changes) != 300 {
		t.Fatalf("unexpected length: %d", len(changes))
	}

	// ~250 leg seconds carry the climb evenly; the zero-padding follows.
	sum := 0.0
	nonzero := 0
	for _, c := range changes {
		sum += c
		if c != 0 {
			nonzero++
		}
	}
	if math.Abs(sum-20) > 1e-6 {
		t.Errorf("distributed deltas sum to %v, want 20", sum)
	}
	if nonzero < 248 || nonzero > 251 {
		t.Errorf("unexpected leg seconds: %d", nonzero)
	}
	for i := nonzero; i < len(changes); i++ {
		if changes[i] != 0 {
			t.Fatalf("padding not zero at %d: %v", i, changes[i])
		}
	}
}

func testElevationChanges_PadsAndTruncates(t *testing.T) {
	waypoints := []track.Waypoint{
		track.NewWaypoint(0, 0, 100),
		track.NewWaypoint(0.00899, 0, 120),
	}
	if changes := ElevationChanges(waypoints, 4.0, 10); len(changes) != 10 {
		t.Errorf("unexpected truncated length: %d", len(changes))
	}
	if changes := ElevationChanges(waypoints, 4.0, 0); len(changes) != 0 {
		t.Errorf("unexpected length for zero duration: %d", len(changes))
	}
	if changes := ElevationChanges(nil, 4.0, 5); len(changes) != 5 {
		t.Errorf("unexpected length for empty route: %d", len(changes))
	}
}
