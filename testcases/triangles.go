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

// Triangle has its flat (horizontal, dropped) edge at the top (y=0) and
// its apex at the bottom (y=10).
var Triangle = TestCase{
	Name: "triangle",
	Contours: []Contour{{
		Outer: true,
		Points: []Point{
			{X: 0, Y: 0},
			{X: 10, Y: 0},
			{X: 5, Y: 10},
		},
	}},
	WantEvenOddTraps:       1,
	WantWindingTraps:       1,
	WantEvenOddDoubledArea: 100,
	WantWindingDoubledArea: 100,
}

// HorizontalCapTriangle is Triangle turned upside down: its flat (dropped)
// edge is at the bottom and its apex at the top, checking that horizontal
// edges are handled the same regardless of which endpoint of the sweep
// they sit at.
var HorizontalCapTriangle = TestCase{
	Name: "horizontal_cap_triangle",
	Contours: []Contour{{
		Outer: true,
		Points: []Point{
			{X: 0, Y: 10},
			{X: 10, Y: 10},
			{X: 5, Y: 0},
		},
	}},
	WantEvenOddTraps:       1,
	WantWindingTraps:       1,
	WantEvenOddDoubledArea: 100,
	WantWindingDoubledArea: 100,
}
