// Package structure defines the canonical representations of planar and
// linear structural orientations in decimal degrees.
package structure

import (
	"github.com/banshee-data/core.report/internal/angles"
)

// Lineation is the orientation of a linear feature: the azimuth of the
// feature projected to horizontal (trend, clockwise from north) and its
// downward angle from horizontal (plunge). For a Plane the lineation of
// interest is the pole, the downward-pointing normal vector.
type Lineation struct {
	Trend  float64 `json:"trend"`
	Plunge float64 `json:"plunge"`
}

// NewLineation validates trend and plunge and returns the lineation.
func NewLineation(trend, plunge float64) (Lineation, error) {
	if _, err := angles.Validate("trend", trend, angles.AzimuthMin, angles.AzimuthMax); err != nil {
		return Lineation{}, err
	}
	if _, err := angles.Validate("plunge", plunge, angles.DipMin, angles.DipMax); err != nil {
		return Lineation{}, err
	}
	return Lineation{Trend: trend, Plunge: plunge}, nil
}

// Plane is a planar structure. Strike is the azimuth of the intersection of
// the plane with horizontal, dip the steepest angle below horizontal, dip
// direction the azimuth of the dip vector (strike + 90), and Pole the
// trend/plunge of the downward normal.
type Plane struct {
	Strike       float64   `json:"strike"`
	Dip          float64   `json:"dip"`
	DipDirection float64   `json:"dip_direction"`
	Pole         Lineation `json:"pole"`
}

// Optional carries the derivable Plane fields a caller may supply
// explicitly. Nil fields are derived from strike and dip. Supplied fields
// are range-checked but deliberately not cross-checked against strike/dip;
// the orientation engine always passes values it derived itself, and this
// keeps a caller's already-rounded numbers intact.
type Optional struct {
	DipDirection *float64
	Trend        *float64
	Plunge       *float64
}

// NewPlane builds a Plane from strike and dip, deriving any optional field
// that was not supplied. All fields are validated; the first violation
// aborts construction.
func NewPlane(strike, dip float64, opt Optional) (Plane, error) {
	if _, err := angles.Validate("strike", strike, angles.AzimuthMin, angles.AzimuthMax); err != nil {
		return Plane{}, err
	}
	if _, err := angles.Validate("dip", dip, angles.DipMin, angles.DipMax); err != nil {
		return Plane{}, err
	}

	dipDirection, err := derive(opt.DipDirection, strike, angles.DipDirectionFromStrike)
	if err != nil {
		return Plane{}, err
	}
	if _, err := angles.Validate("dip_direction", dipDirection, angles.AzimuthMin, angles.AzimuthMax); err != nil {
		return Plane{}, err
	}

	plunge, err := derive(opt.Plunge, dip, angles.PlungeFromDip)
	if err != nil {
		return Plane{}, err
	}

	trend, err := derive(opt.Trend, strike, angles.TrendFromStrike)
	if err != nil {
		return Plane{}, err
	}

	pole, err := NewLineation(trend, plunge)
	if err != nil {
		return Plane{}, err
	}

	return Plane{
		Strike:       strike,
		Dip:          dip,
		DipDirection: dipDirection,
		Pole:         pole,
	}, nil
}

// derive returns *supplied when present, otherwise fn(from).
func derive(supplied *float64, from float64, fn func(float64) (float64, error)) (float64, error) {
	if supplied != nil {
		return *supplied, nil
	}
	return fn(from)
}

// Float64 returns a pointer to v, for populating Optional fields inline.
func Float64(v float64) *float64 { return &v }
