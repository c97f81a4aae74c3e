package synth

import (
	"math"
	"testing"

	"github.com/rotblauer/catwalk/types/track"
)

func constantProfile(totalSeconds int, speed float64) SpeedProfile {
	p := make(SpeedProfile, totalSeconds)
	for i := range p {
		p[i] = speed
	}
	return p
}

func TestInterpolate(t *testing.T) {
	t.Run("KilometerDueNorth", testInterpolate_KilometerDueNorth)
	t.Run("ZeroDistanceLeg", testInterpolate_ZeroDistanceLeg)
	t.Run("DurationAuthoritative", testInterpolate_DurationAuthoritative)
	t.Run("Empty", testInterpolate_Empty)
}

// Two waypoints ~1000 m apart due north at 4 m/s should interpolate to
// ~250 points with strictly increasing latitude and constant longitude.
func testInterpolate_KilometerDueNorth(t *testing.T) {
	waypoints := []track.Waypoint{
		track.NewWaypoint(0, 0, 100),
		track.NewWaypoint(0.00899, 0, 110),
	}
	const totalSeconds = 600
	points := Interpolate(waypoints, constantProfile(totalSeconds, 4.0), totalSeconds)

	if len(points) < 248 || len(points) > 251 {
		t.Fatalf("unexpected point count: %d", len(points))
	}
	lastLat := 0.0
	for i, pt := range points {
		if pt.Point.Lat() <= lastLat {
			t.Fatalf("latitude not increasing at %d: %v <= %v", i, pt.Point.Lat(), lastLat)
		}
		lastLat = pt.Point.Lat()
		if math.Abs(pt.Point.Lon()) > 1e-6 {
			t.Fatalf("longitude drifted at %d: %v", i, pt.Point.Lon())
		}
	}
	// Elevation interpolates linearly from 100 toward 110.
	if ele := points[len(points)-1].Ele; math.Abs(ele-110) > 1e-6 {
		t.Errorf("unexpected final elevation: %v", ele)
	}
	if ele := points[0].Ele; ele <= 100 || ele >= 110 {
		t.Errorf("unexpected first elevation: %v", ele)
	}
}

// A zero-distance leg still advances time by one sample.
func testInterpolate_ZeroDistanceLeg(t *testing.T) {
	w := track.NewWaypoint(40.741895, -73.989308, 10)
	points := Interpolate([]track.Waypoint{w, w}, constantProfile(10, 4.0), 10)
	if len(points) != 1 {
		t.Fatalf("unexpected point count: %d", len(points))
	}
	if points[0].Ele != 10 {
		t.Errorf("unexpected elevation: %v", points[0].Ele)
	}
}

// The activity duration is authoritative: once the elapsed counter reaches
// it, remaining waypoints are dropped.
func testInterpolate_DurationAuthoritative(t *testing.T) {
	waypoints := []track.Waypoint{
		track.NewWaypoint(0, 0, 0),
		track.NewWaypoint(0.00899, 0, 0),
		track.NewWaypoint(0.01798, 0, 0),
		track.NewWaypoint(0.02697, 0, 0),
	}
	const totalSeconds = 100 // first ~1000m leg alone takes ~250s at 4 m/s
	points := Interpolate(waypoints, constantProfile(totalSeconds, 4.0), totalSeconds)
	// The whole first leg emits, then the counter has passed totalSeconds.
	if len(points) < 248 || len(points) > 251 {
		t.Fatalf("unexpected point count: %d", len(points))
	}
}

func testInterpolate_Empty(t *testing.T) {
	waypoints := []track.Waypoint{
		track.NewWaypoint(0, 0, 0),
		track.NewWaypoint(0.00899, 0, 0),
	}
	if points := Interpolate(waypoints, SpeedProfile{}, 0); len(points) != 0 {
		t.Errorf("unexpected points for zero duration: %d", len(points))
	}
	if points := Interpolate(nil, constantProfile(10, 4.0), 10); len(points) != 0 {
		t.Errorf("unexpected points for empty route: %d", len(points))
	}
}
