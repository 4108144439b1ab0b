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

// This file implements the exact geometric predicates of spec component B,
// ported from the comparison identities in
// src/borast/borast-bentley-ottmann.c (_slope_compare,
// edges_compare_x_for_y_general, edge_compare_for_y_against_x,
// edges_compare_x_for_y). Every comparison here returns a signed int whose
// sign is the three-way result: negative means a < b, zero means equal,
// positive means a > b.

// slopeCompare compares the slope of line a to the slope of line b, where
// slope is measured as dx/dy along the top-to-bottom direction vector (the
// inverse of the usual rise-over-run). Both lines are assumed to go
// top-to-bottom (dy >= 0 by construction of Line), so the comparison
// dx_a/dy_a vs dx_b/dy_b can be computed without division as
// dx_a*dy_b vs dx_b*dy_a, with no sign flip.
func slopeCompare(a, b Line) int {
	adx, bdx := a.dx(), b.dx()

	// Vertical lines first.
	if adx == 0 {
		return int(-sign32(bdx))
	}
	if bdx == 0 {
		return int(sign32(adx))
	}

	// Opposite x-directions.
	if (adx ^ bdx) < 0 {
		return int(sign32(adx))
	}

	ady, bdy := a.dy(), b.dy()
	adxBdy := mul32x32to64(adx, bdy)
	bdxAdy := mul32x32to64(bdx, ady)
	return cmp64(adxBdy, bdxAdy)
}

func sign32(x int32) int32 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

func cmp64(a, b int64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// edgesCompareXForYGeneral compares the x-coordinates of lines a and b at
// Y = y without rounding, using the rearranged identity described in
// SPEC_FULL.md / spec §4.B. It is the fallback used once neither line's x
// at y is already known exactly (see edgesCompareXForY).
func edgesCompareXForYGeneral(a, b Line, y Fixed) int {
	// Bounding-box rejection.
	aMin, aMax := minMax(a.P1.X, a.P2.X)
	bMin, bMax := minMax(b.P1.X, b.P2.X)
	if aMax < bMin {
		return -1
	}
	if aMin > bMax {
		return 1
	}

	ady, adx := a.dy(), a.dx()
	bdy, bdx := b.dy(), b.dx()
	dx := a.P1.X - b.P1.X

	haveDx := dx != 0
	haveAdx := adx != 0
	haveBdx := bdx != 0

	switch {
	case !haveDx && !haveAdx && !haveBdx:
		return 0
	case haveDx && !haveAdx && !haveBdx:
		// A_dy * B_dy * (A_x - B_x) vs 0; ady*bdy is positive definite.
		return int(sign32(dx))
	case !haveDx && haveAdx && !haveBdx:
		// 0 vs -(y-A_y)*A_dx*B_dy; bdy*(y-a.top) is positive definite.
		return int(sign32(adx))
	case !haveDx && !haveAdx && haveBdx:
		// 0 vs (y-B_y)*B_dx*A_dy; ady*(y-b.top) is positive definite.
		return int(-sign32(bdx))
	case !haveDx && haveAdx && haveBdx:
		if (adx ^ bdx) < 0 {
			return int(sign32(adx))
		}
		if a.P1.Y == b.P1.Y {
			adxBdy := mul32x32to64(adx, bdy)
			bdxAdy := mul32x32to64(bdx, ady)
			return cmp64(adxBdy, bdxAdy)
		}
		A := mul64x32to128(mul32x32to64(adx, bdy), y-a.P1.Y)
		B := mul64x32to128(mul32x32to64(bdx, ady), y-b.P1.Y)
		return cmp128(A, B)
	case haveDx && haveAdx && !haveBdx:
		if (-adx^dx) < 0 {
			return int(sign32(dx))
		}
		adyDx := mul32x32to64(ady, dx)
		dyAdx := mul32x32to64(a.P1.Y-y, adx)
		return cmp64(adyDx, dyAdx)
	case haveDx && !haveAdx && haveBdx:
		if (bdx ^ dx) < 0 {
			return int(sign32(dx))
		}
		bdyDx := mul32x32to64(bdy, dx)
		dyBdx := mul32x32to64(y-b.P1.Y, bdx)
		return cmp64(bdyDx, dyBdx)
	default: // haveDx && haveAdx && haveBdx
		L := mul64x32to128(mul32x32to64(ady, bdy), dx)
		A := mul64x32to128(mul32x32to64(adx, bdy), y-a.P1.Y)
		B := mul64x32to128(mul32x32to64(bdx, ady), y-b.P1.Y)
		return cmp128(L, sub128(B, A))
	}
}

func minMax(a, b Fixed) (Fixed, Fixed) {
	if a < b {
		return a, b
	}
	return b, a
}

// edgeCompareForYAgainstX compares the x-coordinate of line a at height y
// against the literal x, using only 64-bit multiplies.
func edgeCompareForYAgainstX(a Line, y, x Fixed) int {
	if x < a.P1.X && x < a.P2.X {
		return 1
	}
	if x > a.P1.X && x > a.P2.X {
		return -1
	}

	adx := a.dx()
	dx := x - a.P1.X
	if adx == 0 {
		return int(-sign32(dx))
	}
	if dx == 0 || (adx^dx) < 0 {
		return int(sign32(adx))
	}

	dy := y - a.P1.Y
	ady := a.dy()
	L := mul32x32to64(dy, adx)
	R := mul32x32to64(dx, ady)
	return cmp64(L, R)
}

// edgesCompareXForY compares the x-coordinates of lines a and b at Y = y.
// If the sweep is currently sitting exactly on an endpoint of either line,
// its x there is already known exactly and the single-line comparison can
// be used directly, avoiding the general 128-bit path.
func edgesCompareXForY(a, b Line, y Fixed) int {
	haveAX, ax := edgeXIfAtEndpoint(a, y)
	haveBX, bx := edgeXIfAtEndpoint(b, y)

	switch {
	case !haveAX && !haveBX:
		return edgesCompareXForYGeneral(a, b, y)
	case haveAX && !haveBX:
		return -edgeCompareForYAgainstX(b, y, ax)
	case !haveAX && haveBX:
		return edgeCompareForYAgainstX(a, y, bx)
	default:
		return int(sign32(ax - bx))
	}
}

func edgeXIfAtEndpoint(l Line, y Fixed) (bool, Fixed) {
	if y == l.P1.Y {
		return true, l.P1.X
	}
	if y == l.P2.Y {
		return true, l.P2.X
	}
	return false, 0
}

// edgesCollinear reports whether a and b lie on the same infinite line:
// equal slopes and a shared point.
func edgesCollinear(a, b Line) bool {
	if a.equal(b) {
		return true
	}
	if slopeCompare(a, b) != 0 {
		return false
	}
	// The choice of y must be within both lines' extent; using whichever
	// line starts later guarantees the other line (which started no
	// later) is defined there.
	switch {
	case a.P1.Y == b.P1.Y:
		return a.P1.X == b.P1.X
	case a.P1.Y < b.P1.Y:
		return edgeCompareForYAgainstX(a, b.P1.Y, b.P1.X) == 0
	default:
		return edgeCompareForYAgainstX(b, a.P1.Y, a.P1.X) == 0
	}
}
