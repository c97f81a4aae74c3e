package synth

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// SpeedProfile is the per-second planned-speed series (m/s) that drives
// both interpolation and physiology. Length is fixed at construction.
type SpeedProfile []float64

// speedPolyDegree smooths the raw per-second noise into a continuous-looking
// curve while keeping its overall shape.
const speedPolyDegree = 10

// SpeedFloorFactor is the fraction of the average speed below which no
// profile sample may fall. No negative or implausibly slow seconds.
const SpeedFloorFactor = 0.90

// NewSpeedProfile builds a speed series of totalSeconds samples around
// avgSpeed: normal noise (scale stddev) fit with a least-squares polynomial,
// less a linear 0..speedDecrease fatigue ramp, floored at
// SpeedFloorFactor*avgSpeed. The first noise sample is pinned to
// 0.2*avgSpeed for a slow start.
//
// Reproducibility is the caller's problem: pass a seeded rng.
func NewSpeedProfile(totalSeconds int, avgSpeed, speedDecrease, scale float64, rng *rand.Rand) SpeedProfile {
	if totalSeconds <= 0 {
		return SpeedProfile{}
	}

	desired := make([]float64, totalSeconds)
	for i := range desired {
		desired[i] = avgSpeed + rng.NormFloat64()*scale
	}
	desired[0] = avgSpeed + 0.2*avgSpeed

	// The time axis is scaled to [0,1]; a raw second axis makes the
	// degree-10 Vandermonde hopelessly ill-conditioned.
	ts := make([]float64, totalSeconds)
	for i := range ts {
		if totalSeconds > 1 {
			ts[i] = float64(i) / float64(totalSeconds-1)
		}
	}

	degree := speedPolyDegree
	if degree > totalSeconds-1 {
		degree = totalSeconds - 1
	}

	profile := make(SpeedProfile, totalSeconds)
	coeffs, err := fitPolynomial(ts, desired, degree)
	if err != nil {
		// Degenerate fit. The raw noisy series still has the right
		// mean and floor, so use it as-is.
		copy(profile, desired)
	} else {
		for i := range profile {
			profile[i] = evalPolynomial(coeffs, ts[i])
		}
	}

	for i := range profile {
		decline := speedDecrease * float64(i) / float64(totalSeconds)
		profile[i] -= decline
		if floor := avgSpeed * SpeedFloorFactor; profile[i] < floor {
			profile[i] = floor
		}
	}
	return profile
}

// At returns the sample at second i, clamping i to the profile tail.
func (p SpeedProfile) At(i int) float64 {
	if len(p) == 0 {
		return 0
	}
	if i >= len(p) {
		i = len(p) - 1
	}
	if i < 0 {
		i = 0
	}
	return p[i]
}

// fitPolynomial solves the least-squares polynomial of the given degree
// through (xs, ys), returning coefficients lowest order first.
func fitPolynomial(xs, ys []float64, degree int) ([]float64, error) {
	a := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		v := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, v)
			v *= x
		}
	}
	b := mat.NewVecDense(len(ys), ys)

	var qr mat.QR
	qr.Factorize(a)
	var c mat.VecDense
	if err := qr.SolveVecTo(&c, false, b); err != nil {
		return nil, err
	}
	out := make([]float64, degree+1)
	for j := range out {
		out[j] = c.AtVec(j)
	}
	return out, nil
}

// evalPolynomial evaluates coefficients (lowest order first) at x, Horner style.
func evalPolynomial(coeffs []float64, x float64) float64 {
	v := 0.0
	for j := len(coeffs) - 1; j >= 0; j-- {
		v = v*x + coeffs[j]
	}
	return v
}
