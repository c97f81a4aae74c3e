package track

import (
	"time"

	"github.com/paulmach/orb"

	"github.com/rotblauer/catwalk/geo/geodesy"
)

// Waypoint is a single route-defining geographic point with elevation.
// Waypoints are immutable once parsed; consecutive waypoints define a leg.
type Waypoint struct {
	Point orb.Point // lon, lat
	Ele   float64   // meters
}

func NewWaypoint(lat, lon, ele float64) Waypoint {
	return Waypoint{Point: orb.Point{lon, lat}, Ele: ele}
}

func (w Waypoint) Lat() float64 { return w.Point.Lat() }
func (w Waypoint) Lon() float64 { return w.Point.Lon() }

// TrackPoint is one second of a synthesized activity:
// a position with elevation, a timestamp, and physiology signals.
type TrackPoint struct {
	Point orb.Point
	Ele   float64
	Time  time.Time
	HR    int // bpm, clamped [60,200] at synthesis
	Cad   int // rpm, clamped [30,150] at synthesis
}

// Track is the final second-resolution artifact.
// It is created once per synthesis run and not mutated after.
type Track []TrackPoint

func (t Track) IsEmpty() bool { return len(t) == 0 }

func (t Track) Duration() time.Duration {
	if len(t) < 2 {
		return 0
	}
	return t[len(t)-1].Time.Sub(t[0].Time)
}

// DistanceTraversed sums the leg distances over the whole track, in meters.
func (t Track) DistanceTraversed() (distance float64) {
	for i := 1; i < len(t); i++ {
		distance += geodesy.Distance(t[i-1].Point, t[i].Point)
	}
	return distance
}

// RouteDistance sums the leg distances of a waypoint sequence, in meters.
func RouteDistance(waypoints []Waypoint) (distance float64) {
	for i := 1; i < len(waypoints); i++ {
		distance += geodesy.Distance(waypoints[i-1].Point, waypoints[i].Point)
	}
	return distance
}
