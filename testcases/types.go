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

// Package testcases holds canonical polygon fixtures shared by the
// tessellator's own tests, in the style of the teacher's testcases
// package: a table of named TestCase values built once and consumed by
// several _test.go files instead of each defining its own ad hoc inputs.
package testcases

// Point and Contour mirror the root package's types structurally (a
// package holding test fixtures cannot import the package under test's
// unexported pieces, and importing the root package here would be a
// cyclic-looking dependency for a support package, so these are plain
// data the root package's tests convert on the way in).
type Point struct {
	X, Y int32
}

type Contour struct {
	Points []Point
	Outer  bool
}

// TestCase is one named polygon fixture together with the expected
// number of trapezoids each fill rule should produce and the expected
// total covered area (twice the signed area, to stay in exact integers —
// see the root package's area round-trip test).
type TestCase struct {
	Name     string
	Contours []Contour

	WantEvenOddTraps int
	WantWindingTraps int

	// WantEvenOddDoubledArea, WantWindingDoubledArea are twice the area
	// (to stay in exact integers — see the root package's area round-trip
	// test) covered under each fill rule. Most fixtures here have no
	// overlapping contours, so the two agree; TwoOverlappingSquares is
	// the one fixture where they differ on purpose.
	WantEvenOddDoubledArea int64
	WantWindingDoubledArea int64
}

// All is every fixture, in declaration order.
var All = []TestCase{
	UnitSquare,
	Triangle,
	SquareWithHole,
	TwoOverlappingSquares,
	HorizontalCapTriangle,
	CollinearAdjacentRectangles,
}
