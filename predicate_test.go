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

import "testing"

func TestSlopeCompare(t *testing.T) {
	vertical := newLine(Point{X: 5, Y: 0}, Point{X: 5, Y: 10})
	steep := newLine(Point{X: 0, Y: 0}, Point{X: 1, Y: 10})
	shallow := newLine(Point{X: 0, Y: 0}, Point{X: 9, Y: 10})

	if slopeCompare(vertical, steep) >= 0 {
		t.Errorf("vertical should sort before a line sloping to the right")
	}
	if slopeCompare(steep, shallow) >= 0 {
		t.Errorf("steep (smaller dx) should sort before shallow")
	}
	if slopeCompare(steep, steep) != 0 {
		t.Errorf("a line should compare equal to itself")
	}
}

func TestEdgesCompareXForY(t *testing.T) {
	left := newLine(Point{X: 0, Y: 0}, Point{X: 0, Y: 10})
	right := newLine(Point{X: 10, Y: 0}, Point{X: 10, Y: 10})
	diag := newLine(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})

	if c := edgesCompareXForY(left, right, 5); c >= 0 {
		t.Errorf("left should be strictly left of right at y=5")
	}
	if c := edgesCompareXForY(left, diag, 0); c != 0 {
		t.Errorf("left and diag share (0,0): expected equal at y=0, got %d", c)
	}
	if c := edgesCompareXForY(left, diag, 10); c >= 0 {
		t.Errorf("at y=10 left (x=0) should be left of diag (x=10)")
	}
}

func TestEdgesCollinear(t *testing.T) {
	a := newLine(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	b := newLine(Point{X: 2, Y: 2}, Point{X: 20, Y: 20})
	c := newLine(Point{X: 0, Y: 0}, Point{X: 10, Y: 11})

	if !edgesCollinear(a, b) {
		t.Errorf("a and b lie on y=x and should be collinear")
	}
	if edgesCollinear(a, c) {
		t.Errorf("a and c have different slopes and should not be collinear")
	}
}
