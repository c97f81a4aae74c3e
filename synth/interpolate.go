package synth

import (
	"github.com/rotblauer/catwalk/geo/geodesy"
	"github.com/rotblauer/catwalk/types/track"
)

// Interpolate densifies a waypoint route into per-second positions.
//
// Each leg gets a constant speed (the profile sample at the leg's starting
// second) and a constant bearing — a straight-line approximation, not a true
// curve. A leg always takes at least one second, so a zero-distance leg
// still emits exactly one point. Emission stops once the elapsed-second
// counter reaches totalSeconds, waypoints remaining or not: the activity
// duration is authoritative, not the route length.
//
// Per-leg durations are floored independently against a single global
// counter, so cumulative timing drifts a little. That is intentional;
// consumers get one-sample-per-second granularity either way.
func Interpolate(waypoints []track.Waypoint, profile SpeedProfile, totalSeconds int) []track.Waypoint {
	points := make([]track.Waypoint, 0, totalSeconds)
	if totalSeconds <= 0 {
		return points
	}
	elapsed := 0
	for i := 0; i < len(waypoints)-1; i++ {
		leg := interpolateLeg(waypoints[i], waypoints[i+1], profile.At(elapsed))
		points = append(points, leg...)
		elapsed += len(leg)
		if elapsed >= totalSeconds {
			break
		}
	}
	return points
}

func interpolateLeg(p1, p2 track.Waypoint, speed float64) []track.Waypoint {
	distance := geodesy.Distance(p1.Point, p2.Point)

	legSeconds := 0
	if speed > 0 {
		legSeconds = int(distance / speed)
	}
	if legSeconds == 0 {
		legSeconds = 1
	}

	bearing := geodesy.Bearing(p1.Point, p2.Point)
	eleDiff := p2.Ele - p1.Ele

	leg := make([]track.Waypoint, 0, legSeconds)
	for i := 1; i <= legSeconds; i++ {
		fraction := float64(i) / float64(legSeconds)
		leg = append(leg, track.Waypoint{
			Point: geodesy.Destination(p1.Point, bearing, speed*float64(i)),
			Ele:   p1.Ele + eleDiff*fraction,
		})
	}
	return leg
}
