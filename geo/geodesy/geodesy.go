// Package geodesy answers the two geodesic problems the interpolator asks:
// how far/which way between two points (inverse), and where a bearing and
// distance from an origin lands (direct). Spherical model, mean earth radius.
package geodesy

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Distance returns the great-circle distance between p1 and p2 in meters.
func Distance(p1, p2 orb.Point) float64 {
	return geo.Distance(p1, p2)
}

// Bearing returns the initial compass bearing from p1 toward p2,
// normalized to [0, 360) degrees.
func Bearing(p1, p2 orb.Point) float64 {
	return math.Mod(geo.Bearing(p1, p2)+360, 360)
}

// Destination returns the point reached by traveling distance meters
// from origin along bearing degrees.
func Destination(origin orb.Point, bearing, distance float64) orb.Point {
	return geo.PointAtBearingAndDistance(origin, bearing, distance)
}
