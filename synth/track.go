package synth

import (
	"errors"
	"fmt"
	"time"

	"github.com/rotblauer/catwalk/types/track"
)

// ErrMisaligned reports series that still disagree in length after the
// documented trim/pad fix-up. Unreachable given the fix-up rule; treated
// as an invariant violation, not a recoverable condition.
var ErrMisaligned = errors.New("track series misaligned")

// Assemble aligns the interpolated positions with the physiology series and
// a 1 Hz timestamp sequence, producing the final Track.
//
// The interpolated point count N may differ from the physiology length T
// because per-leg durations round down. Alignment rule: series longer than
// N truncate, series shorter than N repeat their last sample. Sample i
// always belongs to position i.
func Assemble(points []track.Waypoint, bpm, cad []int, start time.Time) (track.Track, error) {
	n := len(points)

	bpm = fitLength(bpm, n)
	cad = fitLength(cad, n)
	if len(bpm) != n || len(cad) != n {
		return nil, fmt.Errorf("%w: %d points, %d hr, %d cad", ErrMisaligned, n, len(bpm), len(cad))
	}

	out := make(track.Track, n)
	for i, pt := range points {
		out[i] = track.TrackPoint{
			Point: pt.Point,
			Ele:   pt.Ele,
			Time:  start.Add(time.Duration(i) * time.Second),
			HR:    bpm[i],
			Cad:   cad[i],
		}
	}
	return out, nil
}

// fitLength trims or edge-pads the series to exactly n samples.
func fitLength(series []int, n int) []int {
	if len(series) > n {
		return series[:n]
	}
	if len(series) < n {
		if len(series) == 0 {
			return make([]int, n)
		}
		last := series[len(series)-1]
		for len(series) < n {
			series = append(series, last)
		}
	}
	return series
}
