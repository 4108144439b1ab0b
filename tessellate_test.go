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
	"testing"

	"seehuhn.de/go/trapezoid/testcases"
)

func toPolygon(contours []testcases.Contour) Polygon {
	poly := make(Polygon, len(contours))
	for i, c := range contours {
		pts := make([]Point, len(c.Points))
		for j, p := range c.Points {
			pts[j] = Point{X: p.X, Y: p.Y}
		}
		poly[i] = Contour{Points: pts, Outer: c.Outer}
	}
	return poly
}

func totalDoubledArea(store *Store) int64 {
	var sum int64
	for _, tr := range store.Trapezoids() {
		sum += tr.doubledArea()
	}
	return sum
}

func TestTessellateFixtures(t *testing.T) {
	for _, tc := range testcases.All {
		tc := tc
		t.Run(tc.Name+"_evenodd", func(t *testing.T) {
			poly := toPolygon(tc.Contours)
			store, err := Tessellate(poly, EvenOdd)
			if err != nil {
				t.Fatalf("Tessellate: %v", err)
			}
			if got := store.Len(); got != tc.WantEvenOddTraps {
				t.Errorf("trapezoid count = %d, want %d", got, tc.WantEvenOddTraps)
			}
			if got := totalDoubledArea(store); got != tc.WantEvenOddDoubledArea {
				t.Errorf("doubled area = %d, want %d", got, tc.WantEvenOddDoubledArea)
			}
		})
		t.Run(tc.Name+"_winding", func(t *testing.T) {
			poly := toPolygon(tc.Contours)
			store, err := Tessellate(poly, Winding)
			if err != nil {
				t.Fatalf("Tessellate: %v", err)
			}
			if got := store.Len(); got != tc.WantWindingTraps {
				t.Errorf("trapezoid count = %d, want %d", got, tc.WantWindingTraps)
			}
			if got := totalDoubledArea(store); got != tc.WantWindingDoubledArea {
				t.Errorf("doubled area = %d, want %d", got, tc.WantWindingDoubledArea)
			}
		})
	}
}

// TestYMonotone checks the structural invariant that every emitted
// trapezoid has strictly positive height and that trapezoids for a given
// fixture appear in non-decreasing top order, matching the sweep's
// top-to-bottom emission order.
func TestYMonotone(t *testing.T) {
	for _, tc := range testcases.All {
		store, err := Tessellate(toPolygon(tc.Contours), EvenOdd)
		if err != nil {
			t.Fatalf("%s: Tessellate: %v", tc.Name, err)
		}
		prevTop := Fixed(-1 << 31)
		for i, tr := range store.Trapezoids() {
			if tr.Top >= tr.Bottom {
				t.Errorf("%s: trapezoid %d has non-positive height: top=%d bottom=%d", tc.Name, i, tr.Top, tr.Bottom)
			}
			if tr.Top < prevTop {
				t.Errorf("%s: trapezoid %d out of y-order: top=%d after previous top=%d", tc.Name, i, tr.Top, prevTop)
			}
			prevTop = tr.Top
		}
	}
}

// TestDeterminism checks that running the same tessellation twice (with
// independent Tessellators) produces byte-for-byte identical output.
func TestDeterminism(t *testing.T) {
	for _, tc := range testcases.All {
		poly := toPolygon(tc.Contours)
		a, err := Tessellate(poly, EvenOdd)
		if err != nil {
			t.Fatalf("%s: Tessellate: %v", tc.Name, err)
		}
		b, err := Tessellate(poly, EvenOdd)
		if err != nil {
			t.Fatalf("%s: Tessellate: %v", tc.Name, err)
		}
		ta, tb := a.Trapezoids(), b.Trapezoids()
		if len(ta) != len(tb) {
			t.Fatalf("%s: non-deterministic trapezoid count: %d vs %d", tc.Name, len(ta), len(tb))
		}
		for i := range ta {
			if ta[i] != tb[i] {
				t.Errorf("%s: trapezoid %d differs between runs: %+v vs %+v", tc.Name, i, ta[i], tb[i])
			}
		}
	}
}

// TestTessellatorReuse checks that a single Tessellator produces the same
// result across repeated calls, and that Reset leaves no state bleeding
// from one polygon into the next.
func TestTessellatorReuse(t *testing.T) {
	tess := NewTessellator(WithInitialEventCapacity(2), WithInitialTrapCapacity(1))
	for i := 0; i < 3; i++ {
		for _, tc := range testcases.All {
			store, err := tess.Tessellate(toPolygon(tc.Contours), EvenOdd)
			if err != nil {
				t.Fatalf("iteration %d, %s: %v", i, tc.Name, err)
			}
			if got := store.Len(); got != tc.WantEvenOddTraps {
				t.Errorf("iteration %d, %s: trapezoid count = %d, want %d", i, tc.Name, got, tc.WantEvenOddTraps)
			}
		}
	}
}

// TestEmptyPolygon checks that a polygon with no usable edges (every
// segment horizontal, or no contours) succeeds with an empty store rather
// than failing.
func TestEmptyPolygon(t *testing.T) {
	degenerate := Polygon{{
		Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
		Outer:  true,
	}}
	store, err := Tessellate(degenerate, EvenOdd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d trapezoids", store.Len())
	}

	store, err = Tessellate(nil, EvenOdd)
	if err != nil {
		t.Fatalf("unexpected error for nil polygon: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store for nil polygon, got %d trapezoids", store.Len())
	}
}

func TestCoordinateOverflowRejected(t *testing.T) {
	poly := Polygon{{
		Points: []Point{
			{X: -1 << 31, Y: 0},
			{X: 1<<31 - 1, Y: 1},
			{X: 0, Y: 10},
		},
		Outer: true,
	}}
	if _, err := Tessellate(poly, EvenOdd); err == nil {
		t.Fatalf("expected ErrCoordinateOverflow")
	}
}

func TestAllocationBudgetExceeded(t *testing.T) {
	square := testcases.UnitSquare
	_, err := Tessellate(toPolygon(square.Contours), EvenOdd, WithAllocationBudget(1))
	if err == nil {
		t.Fatalf("expected ErrNoMemory for a 2-edge polygon under a 1-edge budget")
	}
}
