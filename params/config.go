package params

import (
	"time"

	"github.com/rotblauer/catwalk/common"
)

// SynthConfig parameterizes one synthetic-activity run.
// All knobs are free-standing; nothing is positional.
type SynthConfig struct {
	// AvgSpeed is the target mean speed in meters/second.
	AvgSpeed float64

	// RouteLength is the intended route length in meters.
	// It drives the activity duration estimate: seconds = RouteLength / AvgSpeed * DurationFactor.
	RouteLength float64

	// DurationFactor pads the duration estimate so the speed profile
	// outlasts the route under the 90%-of-average speed floor.
	DurationFactor float64

	AvgBPM     float64
	AvgCadence float64

	// SpeedDecrease is the total intended slowdown (m/s) across the run.
	SpeedDecrease float64

	// FluctuationScale is the stddev of the per-second speed noise (m/s).
	FluctuationScale float64

	// StartTime stamps the first track point. Zero means time.Now().UTC().
	StartTime time.Time

	// WithCadence includes cadence in the serialized extension block.
	WithCadence bool
}

func DefaultSynthConfig() SynthConfig {
	return SynthConfig{
		AvgSpeed:         common.SpeedOfWalkingFast,
		RouteLength:      8000,
		DurationFactor:   1.3,
		AvgBPM:           100,
		AvgCadence:       80,
		SpeedDecrease:    0.2,
		FluctuationScale: 1.8,
		WithCadence:      false,
	}
}

// TotalSeconds is the planned activity duration for the configured
// route length and mean speed.
func (c SynthConfig) TotalSeconds() int {
	if c.AvgSpeed <= 0 {
		return 0
	}
	factor := c.DurationFactor
	if factor <= 0 {
		factor = 1
	}
	return int(c.RouteLength / c.AvgSpeed * factor)
}
