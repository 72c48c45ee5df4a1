package angle

import (
	"errors"
	"fmt"
	"math"
)

// Tolerance is the equality tolerance of [Angle.Equal], in radians.
const Tolerance = 1e-10

// ErrDivisionByZero is returned by [Angle.Div] when the divisor is zero.
var ErrDivisionByZero = errors.New("angle: division by zero")

// Angle is an angular value in canonical form: the stored radians always
// lie in [0, 2π). The zero value is the zero angle.
type Angle struct {
	rad float64
}

// normalize reduces rad modulo 2π into [0, 2π). NaN and ±Inf map to NaN.
func normalize(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	// Round-off in the addition can bump the sum back up to 2π.
	if rad >= 2*math.Pi {
		rad = 0
	}
	return rad
}

// FromRadians returns the angle of rad radians, normalized into [0, 2π).
func FromRadians(rad float64) Angle {
	return Angle{rad: normalize(rad)}
}

// FromDegrees returns the angle of deg degrees, normalized into [0, 2π).
func FromDegrees(deg float64) Angle {
	return FromRadians(deg * math.Pi / 180)
}

// Radians returns the canonical radian value, in [0, 2π).
func (a Angle) Radians() float64 {
	return a.rad
}

// Degrees returns the angle rounded to the nearest integer degree.
// Values within rounding distance of 2π report 360, not 0; use
// [Angle.DegreesExact] when that distinction matters.
func (a Angle) Degrees() int {
	return int(math.Round(a.rad * 180 / math.Pi))
}

// DegreesExact returns the angle in fractional degrees, in [0, 360).
func (a Angle) DegreesExact() float64 {
	return a.rad * 180 / math.Pi
}

// WithRadians returns a new angle holding rad, normalized.
func (a Angle) WithRadians(rad float64) Angle {
	return FromRadians(rad)
}

// WithDegrees returns a new angle holding deg degrees, normalized.
func (a Angle) WithDegrees(deg float64) Angle {
	return FromDegrees(deg)
}

// Add returns a+o, normalized.
func (a Angle) Add(o Angle) Angle {
	return FromRadians(a.rad + o.rad)
}

// AddRadians returns the angle advanced by rad radians, normalized.
func (a Angle) AddRadians(rad float64) Angle {
	return FromRadians(a.rad + rad)
}

// Sub returns a−o, normalized. Subtracting a larger angle wraps:
// 0° − 90° is 270°.
func (a Angle) Sub(o Angle) Angle {
	return FromRadians(a.rad - o.rad)
}

// SubRadians returns the angle moved back by rad radians, normalized.
func (a Angle) SubRadians(rad float64) Angle {
	return FromRadians(a.rad - rad)
}

// Mul returns the angle scaled by factor, normalized.
func (a Angle) Mul(factor float64) Angle {
	return FromRadians(a.rad * factor)
}

// Div returns the angle divided by divisor, normalized. A zero divisor
// fails with [ErrDivisionByZero]; the error is never absorbed into a NaN
// or infinite angle.
func (a Angle) Div(divisor float64) (Angle, error) {
	if divisor == 0 {
		return Angle{}, ErrDivisionByZero
	}
	return FromRadians(a.rad / divisor), nil
}

// Plus returns rad+a, normalized. It mirrors [Angle.AddRadians] with the
// scalar on the left.
func Plus(rad float64, a Angle) Angle {
	return FromRadians(rad + a.rad)
}

// Minus returns rad−a, normalized.
func Minus(rad float64, a Angle) Angle {
	return FromRadians(rad - a.rad)
}

// Times returns a scaled by factor, normalized. It mirrors [Angle.Mul]
// with the scalar on the left.
func Times(factor float64, a Angle) Angle {
	return FromRadians(factor * a.rad)
}

// Equal reports whether the two angles are within [Tolerance] of each
// other on the circle. Canonical values just below 2π compare equal to
// values just above 0.
func (a Angle) Equal(o Angle) bool {
	d := math.Abs(a.rad - o.rad)
	return d < Tolerance || 2*math.Pi-d < Tolerance
}

// Less reports whether a precedes o in the linear order on [0, 2π).
// The order is not cyclic: 350° is greater than 10°.
func (a Angle) Less(o Angle) bool {
	return a.rad < o.rad
}

// Greater reports whether a follows o in the linear order on [0, 2π).
func (a Angle) Greater(o Angle) bool {
	return a.rad > o.rad
}

// LessEq reports whether a does not follow o in the linear order.
func (a Angle) LessEq(o Angle) bool {
	return !a.Greater(o)
}

// GreaterEq reports whether a does not precede o in the linear order.
func (a Angle) GreaterEq(o Angle) bool {
	return !a.Less(o)
}

// Lerp linearly interpolates between two angles in the linear order,
// normalizing the result.
func (a Angle) Lerp(o Angle, t float64) Angle {
	return FromRadians(a.rad + t*(o.rad-a.rad))
}

// Sincos returns the sine and cosine of the angle.
func (a Angle) Sincos() (sin, cos float64) {
	return math.Sincos(a.rad)
}

// IsNaN reports whether the angle is NaN. Constructing an angle from NaN
// or ±Inf radians yields a NaN angle.
func (a Angle) IsNaN() bool {
	return math.IsNaN(a.rad)
}

func (a Angle) String() string {
	return fmt.Sprintf("%d°", a.Degrees())
}

// GoString returns the angle as a [FromRadians] call carrying the raw
// canonical value, for %#v diagnostics.
func (a Angle) GoString() string {
	return fmt.Sprintf("angle.FromRadians(%v)", a.rad)
}
