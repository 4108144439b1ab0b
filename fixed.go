// seehuhn.de/go/trapezoid - an exact-arithmetic polygon tessellator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package trapezoid

import "math/bits"

// Fixed is a signed 32-bit fixed-point coordinate. All geometry in this
// package is expressed directly in terms of Fixed values — there is no
// separate "units" concept and no floating point anywhere in the sweep.
type Fixed = int32

// Point is a pair of fixed-point coordinates. Points are compared
// lexicographically with y major, x minor — this is the ordering the sweep
// advances through.
type Point struct {
	X, Y Fixed
}

// comparePoints implements the y-major, x-minor total order used for event
// ordering (spec §3, "Point").
func comparePoints(a, b Point) int {
	if a.Y != b.Y {
		if a.Y < b.Y {
			return -1
		}
		return 1
	}
	if a.X != b.X {
		if a.X < b.X {
			return -1
		}
		return 1
	}
	return 0
}

// Line is an ordered pair of points. By construction P1.Y <= P2.Y.
type Line struct {
	P1, P2 Point
}

// newLine builds a Line from two endpoints, swapping them if necessary so
// that P1 is the upper (smaller-y) endpoint. For horizontal segments
// (equal y), the point with the smaller x becomes P1; the input converter
// drops horizontal edges before calling newLine (see edgesFromContour and
// the open question in SPEC_FULL.md §9).
func newLine(a, b Point) Line {
	if a.Y < b.Y || (a.Y == b.Y && a.X <= b.X) {
		return Line{P1: a, P2: b}
	}
	return Line{P1: b, P2: a}
}

func (l Line) equal(o Line) bool {
	return l.P1 == o.P1 && l.P2 == o.P2
}

// dx, dy return the line's direction vector from P1 to P2. By construction
// dy >= 0. Callers must ensure this fits in 32 bits (spec §3's "Deltas ...
// assumed to fit in 32 bits" precondition); checkDelta validates that for
// fallible entry points.
func (l Line) dx() int32 { return l.P2.X - l.P1.X }
func (l Line) dy() int32 { return l.P2.Y - l.P1.Y }

// checkDelta reports ErrCoordinateOverflow if the line's endpoint deltas do
// not fit in a signed 32-bit integer, i.e. if the subtraction above would
// have overflowed. Fixed-point coordinates are already int32, so the only
// way to violate the precondition is for both endpoints to sit near
// opposite ends of the int32 range; we detect that by comparing in the
// wider int64 domain.
func checkDelta(l Line) error {
	dx64 := int64(l.P2.X) - int64(l.P1.X)
	dy64 := int64(l.P2.Y) - int64(l.P1.Y)
	if dx64 != int64(int32(dx64)) || dy64 != int64(int32(dy64)) {
		return ErrCoordinateOverflow
	}
	return nil
}

// ---------------------------------------------------------------------
// Wide-integer kernel (spec component A).
//
// int128 represents a signed 128-bit integer as a sign-extended high word
// (hi) and an unsigned low word (lo) — the standard two-limb big-integer
// representation, so that comparison reduces to comparing hi then lo.
// math/bits.Mul64/Add64/Sub64 give the native-width 64-bit primitives the
// spec calls for; int128 is built from those rather than from a portable
// limb-by-limb fallback, since Go's own standard library already is that
// native-width surface on every platform it supports.
// ---------------------------------------------------------------------

type int128 struct {
	hi int64
	lo uint64
}

// mul32x32to64 is the 32x32->64 signed multiply. The product of two int32
// values always fits in int64, so this is exact without any special care.
func mul32x32to64(a, b int32) int64 {
	return int64(a) * int64(b)
}

// mul64x32to128 is the 64x32->128 signed multiply used by
// edgesCompareXForYGeneral's general case.
func mul64x32to128(a int64, b int32) int128 {
	return mul64x64to128(a, int64(b))
}

// mul64x64to128 is the 64x64->128 signed multiply.
func mul64x64to128(a, b int64) int128 {
	negA, negB := a < 0, b < 0
	ua, ub := uint64(a), uint64(b)
	if negA {
		ua = uint64(-a)
	}
	if negB {
		ub = uint64(-b)
	}
	hi, lo := bits.Mul64(ua, ub)
	p := int128{hi: int64(hi), lo: lo}
	if negA != negB {
		p = neg128(p)
	}
	return p
}

func add128(a, b int128) int128 {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(uint64(a.hi), uint64(b.hi), carry)
	return int128{hi: int64(hi), lo: lo}
}

func sub128(a, b int128) int128 {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hi, _ := bits.Sub64(uint64(a.hi), uint64(b.hi), borrow)
	return int128{hi: int64(hi), lo: lo}
}

func neg128(a int128) int128 {
	return sub128(int128{}, a)
}

// cmp128 is the signed 128-bit compare, returning -1, 0, or 1.
func cmp128(a, b int128) int {
	if a.hi != b.hi {
		if a.hi < b.hi {
			return -1
		}
		return 1
	}
	if a.lo != b.lo {
		if a.lo < b.lo {
			return -1
		}
		return 1
	}
	return 0
}

func (a int128) negative() bool { return a.hi < 0 }

// divRem128by64 divides the signed 128-bit value num by the signed 64-bit
// value den, returning a 32-bit quotient and 64-bit remainder (spec
// component A's "specialised 96-bit / 64-bit -> 32-bit quotient with 64-bit
// remainder"). num is accepted as a full int128 for uniformity with the
// other wide-int primitives, but by construction (it is always the product
// of a 32-bit and a 64-bit quantity, as required by
// edges-at-y intersection computation) its magnitude never exceeds 96
// bits.
//
// On overflow of the 32-bit quotient, it saturates to 2^31-1 and sets the
// remainder to den, mirroring the source's defensive overflow sentinel so
// callers that check for it can detect the condition.
func divRem128by64(num int128, den int64) (quo int32, rem int64) {
	negNum := num.negative()
	negDen := den < 0

	unum := num
	if negNum {
		unum = neg128(unum)
	}
	udenU := uint64(den)
	if negDen {
		udenU = uint64(-den)
	}

	uquo, urem := udivrem128by64(uint64(unum.hi), unum.lo, udenU)

	if uquo > 0x7FFFFFFF {
		rem = den
		return 0x7FFFFFFF, rem
	}

	quo = int32(uquo)
	if negNum != negDen {
		quo = -quo
	}
	if negNum {
		rem = -int64(urem)
	} else {
		rem = int64(urem)
	}
	return quo, rem
}

// udivrem128by64 performs unsigned 128/64 -> (quotient, remainder) division
// via restoring binary long division. hi, lo together form the unsigned
// 128-bit numerator; den must be non-zero. This is O(64) word operations —
// negligible next to the rest of the sweep, and exact by construction
// rather than relying on any particular hardware wide-divide instruction.
func udivrem128by64(hi, lo uint64, den uint64) (quo uint64, rem uint64) {
	for i := 127; i >= 0; i-- {
		rem <<= 1
		var bit uint64
		if i >= 64 {
			bit = (hi >> uint(i-64)) & 1
		} else {
			bit = (lo >> uint(i)) & 1
		}
		rem |= bit

		quo <<= 1
		if rem >= den {
			rem -= den
			quo |= 1
		}
	}
	return quo, rem
}

// fixedMulDivFloor returns floor(a*b/c) with an intermediate 64-bit
// product, rounding toward minus infinity rather than truncating toward
// zero. It is the building block for computing an edge's x at a given y
// (_borast_fixed_mul_div_floor in the source).
func fixedMulDivFloor(a, b, c int32) int32 {
	num := mul32x32to64(a, b)
	quo, rem := divRem128by64(int128{hi: num >> 63, lo: uint64(num)}, int64(c))
	if rem != 0 && (rem < 0) != (c < 0) {
		quo--
	}
	return quo
}

// intersectionXAtY returns the x-coordinate of line l at height y, computed
// exactly. Callers must have y within [l.P1.Y, l.P2.Y] for the result to be
// meaningful; at the endpoints themselves the exact endpoint x is returned
// without going through the division at all, per
// _line_compute_intersection_x_for_y.
func intersectionXAtY(l Line, y Fixed) Fixed {
	if y == l.P1.Y {
		return l.P1.X
	}
	if y == l.P2.Y {
		return l.P2.X
	}
	dy := l.dy()
	if dy == 0 {
		return l.P1.X
	}
	return l.P1.X + fixedMulDivFloor(y-l.P1.Y, l.dx(), dy)
}
