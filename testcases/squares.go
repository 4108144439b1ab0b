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

package testcases

func square(x0, y0, x1, y1 int32, outer bool) Contour {
	return Contour{
		Outer: outer,
		Points: []Point{
			{X: x0, Y: y0},
			{X: x1, Y: y0},
			{X: x1, Y: y1},
			{X: x0, Y: y1},
		},
	}
}

// UnitSquare is a single 10x10 square, no holes: the baseline case for
// both fill rules.
var UnitSquare = TestCase{
	Name:                   "unit_square",
	Contours:               []Contour{square(0, 0, 10, 10, true)},
	WantEvenOddTraps:       1,
	WantWindingTraps:       1,
	WantEvenOddDoubledArea: 200,
	WantWindingDoubledArea: 200,
}

// SquareWithHole is a 20x20 square with a 10x10 square hole centred
// inside it, wound the same rotational sense as the outer boundary —
// exercising the Outer-flag sign flip rather than reversed winding.
var SquareWithHole = TestCase{
	Name: "square_with_hole",
	Contours: []Contour{
		square(0, 0, 20, 20, true),
		square(5, 5, 15, 15, false),
	},
	WantEvenOddTraps:       4,
	WantWindingTraps:       4,
	WantEvenOddDoubledArea: 600,
	WantWindingDoubledArea: 600,
}

// TwoOverlappingSquares is two same-orientation outer squares whose
// interiors partially overlap: even-odd excludes the overlap (XOR), while
// winding includes it, so the two rules disagree on both trapezoid count
// and covered area.
var TwoOverlappingSquares = TestCase{
	Name: "two_overlapping_squares",
	Contours: []Contour{
		square(0, 0, 10, 10, true),
		square(5, 5, 15, 15, true),
	},
	WantEvenOddTraps: 4,
	WantWindingTraps: 2,
	// Even-odd excludes the overlap (XOR: 100+100-2*25), winding includes
	// it once (union: 100+100-25) — the two fill rules genuinely disagree
	// on the covered area here, not just on trapezoid count.
	WantEvenOddDoubledArea: 300,
	WantWindingDoubledArea: 350,
}

// CollinearAdjacentRectangles is two rectangles sharing a common vertical
// boundary with no gap and no overlap: the shared boundary is two
// distinct active edges (one per rectangle) that happen to lie on the
// same infinite line. Per spec.md §8 scenario 6, the sweep must detect
// that collinear adjacency and emit a single trapezoid spanning both
// rectangles, not two separate ones meeting at a seam.
var CollinearAdjacentRectangles = TestCase{
	Name: "collinear_adjacent_rectangles",
	Contours: []Contour{
		square(0, 0, 5, 10, true),
		square(5, 0, 10, 10, true),
	},
	WantEvenOddTraps:       1,
	WantWindingTraps:       1,
	WantEvenOddDoubledArea: 200,
	WantWindingDoubledArea: 200,
}
