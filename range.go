package angle

import (
	"math"
)

// Range is the arc swept from Start to End in the increasing direction,
// wrapping past 2π back to 0 when End precedes Start in the linear
// order. Each endpoint has its own inclusivity flag. Ranges are
// directional arcs, not [min, max] pairs.
type Range struct {
	Start         Angle
	End           Angle
	IncludesStart bool
	IncludesEnd   bool
}

// Closed returns the range [start, end], both endpoints included.
func Closed(start, end Angle) Range {
	return Range{Start: start, End: end, IncludesStart: true, IncludesEnd: true}
}

// Open returns the range (start, end), both endpoints excluded.
func Open(start, end Angle) Range {
	return Range{Start: start, End: end}
}

// ClosedRadians returns the closed range between two raw radian values,
// normalized.
func ClosedRadians(start, end float64) Range {
	return Closed(FromRadians(start), FromRadians(end))
}

// OpenRadians returns the open range between two raw radian values,
// normalized.
func OpenRadians(start, end float64) Range {
	return Open(FromRadians(start), FromRadians(end))
}

// Length returns the arc length from Start to End in the increasing
// direction, in [0, 2π). A wrapped range measures the long way around:
// Length of 350° to 10° is 20° in radians. Inclusivity flags do not
// affect the length; a zero-length range may be a point or empty.
func (r Range) Length() float64 {
	length := r.End.Radians() - r.Start.Radians()
	if length < 0 {
		length += 2 * math.Pi
	}
	return length
}

// Contains reports whether x lies between Start and End in the linear
// order, with each bound strict or not per its inclusivity flag.
//
// For a wrapped range (End before Start in the linear order) the
// conjunction cannot hold and Contains reports false even for points on
// the arc; see the package documentation.
func (r Range) Contains(x Angle) bool {
	var leftOk, rightOk bool
	if r.IncludesStart {
		leftOk = x.GreaterEq(r.Start)
	} else {
		leftOk = x.Greater(r.Start)
	}
	if r.IncludesEnd {
		rightOk = x.LessEq(r.End)
	} else {
		rightOk = x.Less(r.End)
	}
	return leftOk && rightOk
}

// ContainsRange reports whether r contains both endpoints of o. This is
// an endpoint check only: it does not prove full subset containment when
// either range wraps.
func (r Range) ContainsRange(o Range) bool {
	return r.Contains(o.Start) && r.Contains(o.End)
}

// Equal reports whether the two ranges have equal endpoints (per
// [Angle.Equal]) and identical inclusivity flags.
func (r Range) Equal(o Range) bool {
	return r.Start.Equal(o.Start) && r.End.Equal(o.End) &&
		r.IncludesStart == o.IncludesStart && r.IncludesEnd == o.IncludesEnd
}

// disjoint reports whether one range entirely precedes the other in the
// linear order. Ranges touching at an endpoint are not disjoint,
// regardless of inclusivity.
func (r Range) disjoint(o Range) bool {
	return r.End.Less(o.Start) || o.End.Less(r.Start)
}

// Union returns the set union of the two ranges.
//
// If the ranges overlap per the ordering-based test (neither entirely
// precedes the other), the result is one merged range spanning from the
// earlier start to the later end, each merged endpoint keeping the flag
// of the operand that supplied it; on exact endpoint ties the receiver's
// flag wins. Otherwise the result is both ranges unchanged, receiver
// first.
func (r Range) Union(o Range) []Range {
	if r.disjoint(o) {
		return []Range{r, o}
	}
	merged := r
	if o.Start.Less(r.Start) {
		merged.Start, merged.IncludesStart = o.Start, o.IncludesStart
	}
	if o.End.Greater(r.End) {
		merged.End, merged.IncludesEnd = o.End, o.IncludesEnd
	}
	return []Range{merged}
}

// Diff returns the set difference r∖o as zero, one, or two ranges.
//
// Every cut endpoint taken from o carries the inverted flag: a bound
// that o included is excluded from the remainder, and vice versa.
// Endpoints of r that o does not cut keep their flags.
func (r Range) Diff(o Range) []Range {
	if r.disjoint(o) {
		return []Range{r}
	}
	if o.ContainsRange(r) {
		return nil
	}
	if r.ContainsRange(o) {
		var out []Range
		// Left and right remainders, each skipped when degenerate: the
		// cut coincides with r's endpoint and the flags leave nothing.
		if r.Start.Less(o.Start) || (r.Start.Equal(o.Start) && r.IncludesStart && !o.IncludesStart) {
			out = append(out, Range{r.Start, o.Start, r.IncludesStart, !o.IncludesStart})
		}
		if o.End.Less(r.End) || (o.End.Equal(r.End) && !o.IncludesEnd && r.IncludesEnd) {
			out = append(out, Range{o.End, r.End, !o.IncludesEnd, r.IncludesEnd})
		}
		return out
	}
	var out []Range
	if r.Contains(o.Start) {
		out = append(out, Range{r.Start, o.Start, r.IncludesStart, !o.IncludesStart})
	}
	if r.Contains(o.End) {
		out = append(out, Range{o.End, r.End, !o.IncludesEnd, r.IncludesEnd})
	}
	return out
}

// Midpoint returns the angle halfway along the arc from Start to End.
// Unlike [Range.Contains], it is correct for wrapped ranges: the
// midpoint of 350° to 10° is 0°.
func (r Range) Midpoint() Angle {
	return r.Start.AddRadians(r.Length() / 2)
}

// IsWrapped reports whether the arc crosses 2π, that is, whether End
// precedes Start in the linear order.
func (r Range) IsWrapped() bool {
	return r.End.Less(r.Start)
}

// IsPoint reports whether the range denotes a single angle: zero length
// with both endpoints included. A zero-length range with an excluded
// endpoint denotes the empty set.
func (r Range) IsPoint() bool {
	return r.Start.Equal(r.End) && r.IncludesStart && r.IncludesEnd
}

// IsNaN reports whether either endpoint is NaN.
func (r Range) IsNaN() bool {
	return r.Start.IsNaN() || r.End.IsNaN()
}

func (r Range) String() string {
	left, right := "[", "]"
	if !r.IncludesStart {
		left = "("
	}
	if !r.IncludesEnd {
		right = ")"
	}
	return left + r.Start.String() + "; " + r.End.String() + right
}

// GoString returns the range as a struct literal for %#v diagnostics.
func (r Range) GoString() string {
	return "angle.Range{Start: " + r.Start.GoString() +
		", End: " + r.End.GoString() +
		", IncludesStart: " + boolString(r.IncludesStart) +
		", IncludesEnd: " + boolString(r.IncludesEnd) + "}"
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
