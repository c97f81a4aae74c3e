package synth

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rotblauer/catwalk/common"
)

func TestNewBPMProfile(t *testing.T) {
	t.Run("Clamped", testNewBPMProfile_Clamped)
	t.Run("WarmupRamp", testNewBPMProfile_WarmupRamp)
	t.Run("Empty", testNewBPMProfile_Empty)
}

// Heart rate stays in [60,200] for any finite speed/elevation input.
func testNewBPMProfile_Clamped(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const totalSeconds = 100

	wild := make(SpeedProfile, totalSeconds)
	climbs := make([]float64, totalSeconds)
	for i := range wild {
		wild[i] = float64(i%7) * 50 // far above any plausible pace
		climbs[i] = float64(i%5-2) * 100
	}
	bpm := NewBPMProfile(totalSeconds, 100, 4.0, wild, climbs, rng)
	if len(bpm) != totalSeconds {
		t.Fatalf("unexpected length: %d", len(bpm))
	}
	for i, v := range bpm {
		if v < BPMMin || v > BPMMax {
			t.Errorf("sample %d out of range: %d", i, v)
		}
	}
}

// With zero speed deviation and flat terrain, the series follows the
// warm-up ramp from avgBPM-20, within jitter.
func testNewBPMProfile_WarmupRamp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const avgBPM, avgSpeed = 100.0, 4.0
	const totalSeconds = 5

	bpm := NewBPMProfile(totalSeconds, avgBPM, avgSpeed,
		constantProfile(totalSeconds, avgSpeed), make([]float64, totalSeconds), rng)

	if bpm[0] != 80 {
		t.Fatalf("unexpected cold start: %d", bpm[0])
	}
	if bpm[1] < bpm[0] {
		t.Errorf("warm-up not climbing: %d -> %d", bpm[0], bpm[1])
	}
	for tt := 1; tt < totalSeconds; tt++ {
		progress := float64(tt) / float64(totalSeconds)
		ramp := common.Sigmoid(12 * (progress - 0.2))
		want := avgBPM - 20 + 20*ramp
		if math.Abs(float64(bpm[tt])-want) > 2 {
			t.Errorf("sample %d off ramp: got %d, want ~%v", tt, bpm[tt], want)
		}
	}
}

func testNewBPMProfile_Empty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if bpm := NewBPMProfile(0, 100, 4.0, SpeedProfile{}, nil, rng); len(bpm) != 0 {
		t.Errorf("unexpected samples: %d", len(bpm))
	}
}

func TestNewCadenceProfile(t *testing.T) {
	t.Run("Clamped", testNewCadenceProfile_Clamped)
	t.Run("Steady", testNewCadenceProfile_Steady)
}

func testNewCadenceProfile_Clamped(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const totalSeconds = 100

	wild := make(SpeedProfile, totalSeconds)
	drops := make([]float64, totalSeconds)
	for i := range wild {
		wild[i] = -100 // nonsense input still clamps
		drops[i] = -500
	}
	cad := NewCadenceProfile(totalSeconds, 80, 4.0, wild, drops, rng)
	if len(cad) != totalSeconds {
		t.Fatalf("unexpected length: %d", len(cad))
	}
	for i, v := range cad {
		if v < CadenceMin || v > CadenceMax {
			t.Errorf("sample %d out of range: %d", i, v)
		}
	}
}

// No warm-up ramp: flat inputs keep cadence at the average, within jitter.
func testNewCadenceProfile_Steady(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const avgCadence, avgSpeed = 80.0, 4.0
	const totalSeconds = 30

	cad := NewCadenceProfile(totalSeconds, avgCadence, avgSpeed,
		constantProfile(totalSeconds, avgSpeed), make([]float64, totalSeconds), rng)
	for i, v := range cad {
		if math.Abs(float64(v)-avgCadence) > 1 {
			t.Errorf("sample %d off average: %d", i, v)
		}
	}
}
