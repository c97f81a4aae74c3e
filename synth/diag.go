package synth

import (
	"github.com/montanaflynn/stats"

	"github.com/rotblauer/catwalk/common"
)

// ProfileStats is an optional diagnostic summary of a generated series.
// The generator itself never renders anything; callers who want a look at
// the profile ask for this and log or plot it themselves.
type ProfileStats struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
}

func SummarizeProfile(series []float64) ProfileStats {
	data := stats.Float64Data(series)
	mustFloat := func(fn func() (float64, error)) float64 {
		out, err := fn()
		if err != nil {
			return 0
		}
		return common.DecimalToFixed(out, 3)
	}
	return ProfileStats{
		Mean:   mustFloat(data.Mean),
		Median: mustFloat(data.Median),
		Min:    mustFloat(data.Min),
		Max:    mustFloat(data.Max),
		StdDev: mustFloat(data.StandardDeviation),
	}
}
