// Package angle models angular values and directional arcs on a circle,
// and implements set algebra (union, difference, containment) over those
// arcs with open/closed endpoint semantics.
//
// # Angles
//
// [Angle] is an immutable value type holding an angle in canonical form:
// every constructor and every arithmetic operation reduces its result
// modulo 2π into [0, 2π). Equality ([Angle.Equal]) is deliberately
// tolerant: two angles are equal when their canonical forms are within
// [Tolerance] of each other on the circle, which absorbs floating-point
// drift and identifies 0 with 2π.
//
// Ordering ([Angle.Less] and friends) compares canonical radian values
// directly. It is a linear order on [0, 2π), not a cyclic one: 350° is
// greater than 10°, even though the arc from 350° forward to 10° is only
// 20° long.
//
// # Ranges
//
// [Range] is the arc swept from Start to End in the increasing direction,
// wrapping past 2π when End precedes Start in the linear order. Each
// endpoint carries its own inclusivity flag, so ranges can be closed,
// open, or half-open. [Range.Union] and [Range.Diff] return slices of
// zero, one, or two ranges; callers must handle all three cardinalities.
//
// # Wraparound caveat
//
// [Range.Contains] and [Range.ContainsRange] test endpoints in the linear
// order only. For a wrapped range (one whose End precedes its Start) they
// do not describe the arc: a point that lies on the wrapped portion is
// reported as not contained. Union and difference consult the same
// predicates and inherit the limitation for wrapped operands. This
// matches the behavior of the system this package descends from and is
// kept for compatibility; see [Range.IsWrapped] to detect the case.
package angle
