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

import (
	"fmt"
	"testing"
)

// makeORing builds a two-contour "O" shape (an outer square with a
// concentric square hole of half its side) with the given outer side
// length, as a stand-in for the
// teacher's makeOPath circle benchmark fixture: cheap to generate at any
// size and exercises both an outer contour and a hole through the same
// sweep.
func makeORing(size int32) Polygon {
	outerR := size / 2
	innerR := size / 4
	cx, cy := size/2, size/2

	outer := Contour{
		Points: []Point{
			{X: cx - outerR, Y: cy - outerR},
			{X: cx + outerR, Y: cy - outerR},
			{X: cx + outerR, Y: cy + outerR},
			{X: cx - outerR, Y: cy + outerR},
		},
		Outer: true,
	}
	// Same cyclic point order as outer (top-left, top-right, bottom-right,
	// bottom-left): the Outer flag alone carries the hole semantics (see
	// edgesFromContour's dir formula in edge.go), not a reversed point
	// order.
	hole := Contour{
		Points: []Point{
			{X: cx - innerR, Y: cy - innerR},
			{X: cx + innerR, Y: cy - innerR},
			{X: cx + innerR, Y: cy + innerR},
			{X: cx - innerR, Y: cy + innerR},
		},
		Outer: false,
	}
	return Polygon{outer, hole}
}

// BenchmarkTessellate measures a one-shot Tessellate call (construct +
// sweep) across a range of polygon sizes.
func BenchmarkTessellate(b *testing.B) {
	sizes := []int32{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			poly := makeORing(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if _, err := Tessellate(poly, Winding); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTessellatorReuse measures a reused Tessellator, the path a
// caller sweeping many polygons in sequence should take: buffers settle
// into their steady-state capacity after the first couple of iterations
// instead of growing from zero on every call.
func BenchmarkTessellatorReuse(b *testing.B) {
	sizes := []int32{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			poly := makeORing(size)
			tess := NewTessellator()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if _, err := tess.Tessellate(poly, Winding); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
