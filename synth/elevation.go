package synth

import (
	"github.com/rotblauer/catwalk/geo/geodesy"
	"github.com/rotblauer/catwalk/types/track"
)

// ElevationChanges derives the per-second elevation-delta series from the
// route: each leg's total elevation change is spread evenly across the
// seconds the leg takes at avgSpeed. The series is zero-padded or truncated
// to exactly totalSeconds samples.
func ElevationChanges(waypoints []track.Waypoint, avgSpeed float64, totalSeconds int) []float64 {
	if totalSeconds <= 0 {
		return []float64{}
	}
	changes := make([]float64, 0, totalSeconds)
	for i := 0; i < len(waypoints)-1; i++ {
		eleChange := waypoints[i+1].Ele - waypoints[i].Ele
		distance := geodesy.Distance(waypoints[i].Point, waypoints[i+1].Point)
		legSeconds := 0
		if avgSpeed > 0 {
			legSeconds = int(distance / avgSpeed)
		}
		for j := 0; j < legSeconds; j++ {
			changes = append(changes, eleChange/float64(legSeconds))
		}
	}
	if len(changes) >= totalSeconds {
		return changes[:totalSeconds]
	}
	for len(changes) < totalSeconds {
		changes = append(changes, 0)
	}
	return changes
}
