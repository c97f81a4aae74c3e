package synth

import (
	"math/rand"

	"github.com/rotblauer/catwalk/common"
)

// Heart rate and cadence bounds. Signals are illustrative, not measured,
// but they stay physiologically plausible.
const (
	BPMMin = 60
	BPMMax = 200

	CadenceMin = 30
	CadenceMax = 150
)

// Warm-up ramp shape: a sigmoid centered at 20% of the run, steep enough
// to plateau early.
const (
	warmupCenter    = 0.2
	warmupSteepness = 12
	warmupDepthBPM  = 20
)

// NewBPMProfile synthesizes a heart-rate series of totalSeconds samples.
// The first sample is a cold start at avgBPM-20; subsequent seconds climb a
// sigmoid warm-up ramp, track speed deviation (x10) and elevation change
// (x8), then jitter by one and clamp to [BPMMin, BPMMax].
//
// Sample t corresponds to position sample t, index for index.
func NewBPMProfile(totalSeconds int, avgBPM, avgSpeed float64, speed SpeedProfile, elevationChanges []float64, rng *rand.Rand) []int {
	if totalSeconds <= 0 {
		return []int{}
	}
	bpm := make([]int, totalSeconds)
	bpm[0] = int(common.Clamp(avgBPM-warmupDepthBPM, BPMMin, BPMMax))
	for t := 1; t < totalSeconds; t++ {
		progress := float64(t) / float64(totalSeconds)
		ramp := common.Sigmoid(warmupSteepness * (progress - warmupCenter))
		base := -warmupDepthBPM + warmupDepthBPM*ramp

		total := avgBPM + base +
			(speed.At(t)-avgSpeed)*10 +
			elevationChangeAt(elevationChanges, t)*8 +
			jitter(rng)
		bpm[t] = int(common.Clamp(total, BPMMin, BPMMax))
	}
	return bpm
}

// NewCadenceProfile synthesizes a cadence series of totalSeconds samples.
// Cadence has no warm-up ramp; it starts at avgCadence (plus jitter) and
// tracks speed deviation (x3) and elevation change (x2), clamped to
// [CadenceMin, CadenceMax].
func NewCadenceProfile(totalSeconds int, avgCadence, avgSpeed float64, speed SpeedProfile, elevationChanges []float64, rng *rand.Rand) []int {
	if totalSeconds <= 0 {
		return []int{}
	}
	cad := make([]int, totalSeconds)
	cad[0] = int(common.Clamp(avgCadence+jitter(rng), CadenceMin, CadenceMax))
	for t := 1; t < totalSeconds; t++ {
		total := avgCadence +
			(speed.At(t)-avgSpeed)*3 +
			elevationChangeAt(elevationChanges, t)*2 +
			jitter(rng)
		cad[t] = int(common.Clamp(total, CadenceMin, CadenceMax))
	}
	return cad
}

func elevationChangeAt(changes []float64, t int) float64 {
	if t < len(changes) {
		return changes[t]
	}
	return 0
}

func jitter(rng *rand.Rand) float64 {
	return float64(rng.Intn(3) - 1)
}
