// Package borehole converts oriented drill-core alpha/beta measurements into
// global plane orientations and assigns depth-stamped measurements to hole
// survey stations.
//
// Angle definitions follow the televiewer/core-orientation conventions in
// https://www.sciencedirect.com/science/article/pii/S0098300413000551.
package borehole

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/core.report/internal/angles"
	"github.com/banshee-data/core.report/internal/structure"
)

// OrientationLine declares which side of the core the beta reference line
// was marked on.
type OrientationLine int

const (
	// Top marks the reference line on the roof of the inclined hole profile.
	Top OrientationLine = iota
	// Bottom marks it on the floor; beta angles are offset by 180 degrees
	// relative to the Top convention.
	Bottom
)

// String implements fmt.Stringer.
func (l OrientationLine) String() string {
	switch l {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Orient holds one validated borehole-relative measurement together with the
// hole attitude at the measurement depth. All fields are radians; the
// constructor takes degrees.
type Orient struct {
	// bearing is the azimuth of the hole trajectory projected to horizontal,
	// clockwise from north, [0, 360] degrees at construction.
	bearing float64
	// inclination is the angle of the trajectory from horizontal,
	// [-90, 90] degrees at construction. Negative means drilling downward;
	// positive values are reserved for upward drilling underground.
	inclination float64
	// alpha is the acute dihedral angle between the fracture plane and the
	// core axis, [0, 90] degrees at construction.
	alpha float64
	// beta is the clockwise angle (looking down-hole) from the reference
	// line to the lower inflexion point of the fracture trace,
	// [0, 360] degrees at construction.
	beta float64
}

// NewOrient validates the four angles (degrees), applies the reference-line
// adjustment to beta and returns the measurement with radian internals. Any
// out-of-range angle aborts construction with an OutOfRangeError naming the
// offending field.
func NewOrient(bearing, inclination, alpha, beta float64, line OrientationLine) (Orient, error) {
	if _, err := angles.Validate("bearing", bearing, angles.AzimuthMin, angles.AzimuthMax); err != nil {
		return Orient{}, err
	}
	if _, err := angles.Validate("inclination", inclination, -90.0, 90.0); err != nil {
		return Orient{}, err
	}
	if _, err := angles.Validate("alpha", alpha, angles.DipMin, angles.DipMax); err != nil {
		return Orient{}, err
	}
	if _, err := angles.Validate("beta", beta, angles.AzimuthMin, angles.AzimuthMax); err != nil {
		return Orient{}, err
	}

	if line == Bottom {
		beta += 180.0
		if beta > 360.0 {
			beta -= 360.0
		}
	}

	const degToRad = math.Pi / 180.0
	return Orient{
		bearing:     bearing * degToRad,
		inclination: inclination * degToRad,
		alpha:       alpha * degToRad,
		beta:        beta * degToRad,
	}, nil
}

// Plane derives strike, dip and dip direction from the pole orientation and
// returns the full plane. The already-computed trend, plunge and dip
// direction are passed through explicitly so the stored values cannot drift
// from the derived ones by a second rounding.
func (o Orient) Plane() (structure.Plane, error) {
	trend, plunge := o.TrendAndPlunge()

	strike, err := angles.StrikeFromTrend(trend)
	if err != nil {
		return structure.Plane{}, err
	}
	dip, err := angles.DipFromPlunge(plunge)
	if err != nil {
		return structure.Plane{}, err
	}
	dipDirection, err := angles.DipDirectionFromStrike(strike)
	if err != nil {
		return structure.Plane{}, err
	}

	return structure.NewPlane(strike, dip, structure.Optional{
		DipDirection: structure.Float64(dipDirection),
		Trend:        structure.Float64(trend),
		Plunge:       structure.Float64(plunge),
	})
}

// TrendAndPlunge returns the orientation of the pole to the measured plane
// in decimal degrees.
func (o Orient) TrendAndPlunge() (trend, plunge float64) {
	n := o.normalGlobal()
	nx, ny, nz := n.AtVec(0), n.AtVec(1), n.AtVec(2)

	// Azimuth of the pole projected to horizontal. When the pole is
	// vertical the projection vanishes and any trend would do; use zero
	// rather than letting the division produce NaN.
	var apparentTrend float64
	if horiz := math.Sqrt(nx*nx + ny*ny); horiz > 0 {
		apparentTrend = math.Acos(clamp(nx/horiz, -1, 1))
	}

	trendRad := math.Pi/2 - apparentTrend
	if ny <= 0 {
		trendRad = math.Pi/2 + apparentTrend
	}
	if trendRad < 0 {
		trendRad += 2 * math.Pi
	}

	// The normal of a downward-dipping plane points down; negate so the
	// plunge of the pole comes out positive.
	plungeRad := -math.Asin(clamp(nz, -1, 1))

	const radToDeg = 180.0 / math.Pi
	return trendRad * radToDeg, plungeRad * radToDeg
}

// clamp keeps rotation round-off from pushing inverse-trig arguments past
// the unit interval.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalBorehole is the unit normal of the measured plane in hole-local
// coordinates, where the hole axis lies along +x.
func (o Orient) normalBorehole() *mat.VecDense {
	return mat.NewVecDense(3, []float64{
		math.Cos(o.alpha) * math.Cos(o.beta),
		math.Cos(o.alpha) * math.Sin(o.beta),
		math.Sin(o.alpha),
	})
}

// normalGlobal rotates the hole-local normal into global coordinates:
// first about y to tilt the hole axis to its true inclination, then about z
// to swing it onto its true bearing.
func (o Orient) normalGlobal() *mat.VecDense {
	var tilted, global mat.VecDense
	tilted.MulVec(o.yRotation(), o.normalBorehole())
	global.MulVec(o.zRotation(), &tilted)
	return &global
}

func (o Orient) yRotation() *mat.Dense {
	i := math.Pi/2 - o.inclination
	return mat.NewDense(3, 3, []float64{
		math.Cos(i), 0, math.Sin(i),
		0, 1, 0,
		-math.Sin(i), 0, math.Cos(i),
	})
}

func (o Orient) zRotation() *mat.Dense {
	b := math.Pi/2 - o.bearing
	return mat.NewDense(3, 3, []float64{
		math.Cos(b), -math.Sin(b), 0,
		math.Sin(b), math.Cos(b), 0,
		0, 0, 1,
	})
}

// AlphaBeta is a convenience that orients a single measurement and returns
// the resulting plane.
func AlphaBeta(bearing, inclination, alpha, beta float64, line OrientationLine) (structure.Plane, error) {
	o, err := NewOrient(bearing, inclination, alpha, beta, line)
	if err != nil {
		return structure.Plane{}, err
	}
	return o.Plane()
}
