package geodesy

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestDistance(t *testing.T) {
	t.Run("Identity", testDistance_Identity)
	t.Run("KnownLeg", testDistance_KnownLeg)
}

func testDistance_Identity(t *testing.T) {
	pts := []orb.Point{
		{0, 0},
		{10.705898, 59.914428},
		{-73.989308, 40.741895},
	}
	for _, p := range pts {
		if d := Distance(p, p); d != 0 {
			t.Errorf("unexpected nonzero distance: %v", d)
		}
	}
}

func testDistance_KnownLeg(t *testing.T) {
	// 0.00899 degrees of latitude is very nearly 1000 meters.
	a, b := orb.Point{0, 0}, orb.Point{0, 0.00899}
	d := Distance(a, b)
	if math.Abs(d-1000) > 5 {
		t.Errorf("unexpected distance: %v", d)
	}
}

func TestBearing(t *testing.T) {
	origin := orb.Point{10.705898, 59.914428}
	cases := []struct {
		name string
		to   orb.Point
		want float64
	}{
		{"North", orb.Point{10.705898, 59.924428}, 0},
		{"East", orb.Point{10.715898, 59.914428}, 90},
		{"South", orb.Point{10.705898, 59.904428}, 180},
		{"West", orb.Point{10.695898, 59.914428}, 270},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Bearing(origin, c.to)
			if got < 0 || got >= 360 {
				t.Fatalf("bearing out of range: %v", got)
			}
			diff := math.Abs(got - c.want)
			if diff > 180 {
				diff = 360 - diff
			}
			if diff > 1 {
				t.Errorf("unexpected bearing: got %v, want ~%v", got, c.want)
			}
		})
	}
}

func TestDestination(t *testing.T) {
	t.Run("ZeroDistance", testDestination_ZeroDistance)
	t.Run("RoundTrip", testDestination_RoundTrip)
}

func testDestination_ZeroDistance(t *testing.T) {
	p := orb.Point{-73.989308, 40.741895}
	got := Destination(p, 123, 0)
	if math.Abs(got.Lon()-p.Lon()) > 1e-6 || math.Abs(got.Lat()-p.Lat()) > 1e-6 {
		t.Errorf("unexpected destination: %v", got)
	}
}

func testDestination_RoundTrip(t *testing.T) {
	origin := orb.Point{10.705898, 59.914428}
	for bearing := 0.0; bearing < 360; bearing += 45 {
		for _, distance := range []float64{1, 10, 500, 1000, 10_000} {
			dest := Destination(origin, bearing, distance)
			got := Distance(origin, dest)
			if math.Abs(got-distance) > distance*1e-3+1e-6 {
				t.Errorf("bearing %v distance %v: round trip measured %v", bearing, distance, got)
			}
		}
	}
}
