// Package angles provides range validation and conversions between the
// angular conventions used for planar structural measurements.
package angles

import "fmt"

// Bounds for the angular quantities handled by this package, in decimal
// degrees. Azimuthal angles (strike, trend, dip direction, bearing) live in
// [0, 360]; inclination-like angles (dip, plunge) live in [0, 90].
const (
	AzimuthMin = 0.0
	AzimuthMax = 360.0
	DipMin     = 0.0
	DipMax     = 90.0
)

// OutOfRangeError reports an angle outside its declared closed interval.
type OutOfRangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s value %v is out of range [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

// Validate returns value unchanged when min <= value <= max, and an
// OutOfRangeError naming the field otherwise. Equality at either bound is
// always valid.
func Validate(field string, value, min, max float64) (float64, error) {
	if value < min || value > max {
		return 0, &OutOfRangeError{Field: field, Value: value, Min: min, Max: max}
	}
	return value, nil
}

// clockwiseFrom adds the offset to a pre-validated azimuthal angle and wraps
// the sum back below max. Inputs are non-negative so a single subtraction is
// enough; no modulo of a negative value can occur.
func clockwiseFrom(field string, input, add, min, max float64) (float64, error) {
	if _, err := Validate(field, input, min, max); err != nil {
		return 0, err
	}
	out := input + add
	if out > max {
		out -= max
	}
	return out, nil
}

// DipDirectionFromStrike returns the dip direction for a strike in decimal
// degrees: strike + 90, wrapped back into range.
func DipDirectionFromStrike(strike float64) (float64, error) {
	return clockwiseFrom("strike", strike, 90.0, AzimuthMin, AzimuthMax)
}

// StrikeFromTrend returns the strike for a pole trend in decimal degrees:
// trend + 90, wrapped back into range.
func StrikeFromTrend(trend float64) (float64, error) {
	return clockwiseFrom("trend", trend, 90.0, AzimuthMin, AzimuthMax)
}

// TrendFromStrike returns the pole trend for a strike in decimal degrees:
// strike + 270, wrapped back into range. Equivalent to strike - 90.
func TrendFromStrike(strike float64) (float64, error) {
	return clockwiseFrom("strike", strike, 270.0, AzimuthMin, AzimuthMax)
}

// PlungeFromDip returns the plunge of the pole to a plane with the given dip.
func PlungeFromDip(dip float64) (float64, error) {
	return perpendicular("dip", dip)
}

// DipFromPlunge returns the dip of the plane whose pole has the given plunge.
func DipFromPlunge(plunge float64) (float64, error) {
	return perpendicular("plunge", plunge)
}

// perpendicular returns 90 - angle. The conversion is its own inverse and is
// closed over [0, 90].
func perpendicular(field string, angle float64) (float64, error) {
	if _, err := Validate(field, angle, DipMin, DipMax); err != nil {
		return 0, err
	}
	return 90.0 - angle, nil
}
