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

// Trapezoid is one output region: bounded above by Y = Top, below by
// Y = Bottom, and on the sides by the (possibly sloped) Left and Right
// lines. It is only ever constructed with Top < Bottom — degenerate
// zero-height trapezoids are suppressed by the emitter before they reach
// the store.
type Trapezoid struct {
	Top, Bottom Fixed
	Left, Right Line
}

// TopLeftX, TopRightX, BottomLeftX, BottomRightX recover the four corners
// of the trapezoid. They are not stored directly — Left and Right retain
// their original endpoints so callers can recover slope — and must be
// computed with the exact fixed-point intersection routine rather than
// interpolated in floating point.
func (t Trapezoid) TopLeftX() Fixed     { return intersectionXAtY(t.Left, t.Top) }
func (t Trapezoid) TopRightX() Fixed    { return intersectionXAtY(t.Right, t.Top) }
func (t Trapezoid) BottomLeftX() Fixed  { return intersectionXAtY(t.Left, t.Bottom) }
func (t Trapezoid) BottomRightX() Fixed { return intersectionXAtY(t.Right, t.Bottom) }

// doubledArea returns twice the signed area of the trapezoid (a trapezoid
// with parallel horizontal sides of length w1 at the top and w2 at the
// bottom over height h has area (w1+w2)*h/2; doubling keeps the
// computation in exact integers for the round-trip property in
// SPEC_FULL.md §2.4).
func (t Trapezoid) doubledArea() int64 {
	h := int64(t.Bottom) - int64(t.Top)
	topW := int64(t.TopRightX()) - int64(t.TopLeftX())
	botW := int64(t.BottomRightX()) - int64(t.BottomLeftX())
	return h * (topW + botW)
}

// Box is an axis-aligned rectangle in fixed-point coordinates, used by
// Store.InitBoxes.
type Box struct {
	P1, P2 Point
}

// Store is a growable, ordered collection of trapezoids: the externally
// visible result container of a tessellation (spec component G). It is
// the Sink of spec §6 — rather than a push callback, callers read the
// result back out of a concrete, reusable slice, mirroring the teacher's
// own "write results into a caller-owned container" shape.
//
// The zero value is not ready for use; construct with NewStore or reuse
// one via Reset.
type Store struct {
	traps []Trapezoid

	// IsRectilinear is true if every trapezoid's Left and Right are
	// vertical lines.
	IsRectilinear bool
	// IsRectangular is true if every trapezoid is an axis-aligned
	// rectangle (IsRectilinear and Left.P1.X != Right.P1.X).
	IsRectangular bool
	// MaybeRegion is a hint: false implies the store is definitely not
	// the union of integer-aligned rectangles. It starts true and is
	// cleared as soon as a counter-example is appended; it is never set
	// back to true.
	MaybeRegion bool
}

// NewStore creates an empty Store with room for capacity trapezoids
// before its first reallocation.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultInitialTrapCapacity
	}
	return &Store{
		traps:         make([]Trapezoid, 0, capacity),
		IsRectilinear: true,
		IsRectangular: true,
		MaybeRegion:   true,
	}
}

// Len returns the number of trapezoids currently stored.
func (s *Store) Len() int { return len(s.traps) }

// Trapezoids returns the stored trapezoids in emission (scan) order. The
// returned slice aliases the store's internal buffer and is invalidated by
// the next Append/Reset.
func (s *Store) Trapezoids() []Trapezoid { return s.traps }

// Append adds one trapezoid, in sweep (scan) order, to the store. top must
// be strictly less than bottom; the emitter enforces this before calling
// Append, so it is a precondition here rather than a checked error.
//
// rectilinear tells the store whether both of this trapezoid's sides are
// vertical — the emitter already knows this from the edges it is closing,
// so the store does not need to re-derive it from the geometry.
func (s *Store) Append(top, bottom Fixed, left, right Line, rectilinear bool) {
	t := Trapezoid{Top: top, Bottom: bottom, Left: left, Right: right}
	s.traps = append(s.traps, t)

	if s.IsRectilinear && !rectilinear {
		s.IsRectilinear = false
		s.IsRectangular = false
	}
	if s.IsRectangular && (left.P1.X == right.P1.X) {
		s.IsRectangular = false
	}
	if s.MaybeRegion {
		s.MaybeRegion = isIntegerFixed(left.P1.X) && isIntegerFixed(left.P1.Y) &&
			isIntegerFixed(right.P2.X) && isIntegerFixed(right.P2.Y)
	}
}

// isIntegerFixed reports whether a Fixed coordinate already represents an
// integer pixel boundary. This package's Fixed has no fractional scale of
// its own (coordinates are plain 32-bit integers, spec §3), so every value
// qualifies; the hook exists so callers layering a fractional convention
// on top of Fixed (e.g. reserving low bits for sub-pixel precision) can
// still get a meaningful MaybeRegion hint by shadowing this package with
// their own scaled Append.
func isIntegerFixed(Fixed) bool { return true }

// Reset clears the store for reuse while retaining its backing array's
// capacity, in the style of the teacher's Rasteriser.Reset — repeated
// tessellations can reuse one Store without the allocator churn of
// creating a new one each time.
func (s *Store) Reset() {
	s.traps = s.traps[:0]
	s.IsRectilinear = true
	s.IsRectangular = true
	s.MaybeRegion = true
}

// InitBoxes rebuilds the store from a set of axis-aligned boxes, one
// trapezoid per box, without running the sweep (SPEC_FULL.md §4,
// grounded on _borast_traps_init_boxes). This is useful for composing
// rectangular clip regions where paying for a full Bentley–Ottmann pass
// would be wasted work.
func (s *Store) InitBoxes(boxes []Box) {
	s.traps = s.traps[:0]
	if cap(s.traps) < len(boxes) {
		s.traps = make([]Trapezoid, 0, len(boxes))
	}
	s.IsRectilinear = true
	s.IsRectangular = true
	s.MaybeRegion = true
	for _, b := range boxes {
		left := Line{P1: b.P1, P2: Point{X: b.P1.X, Y: b.P2.Y}}
		right := Line{P1: Point{X: b.P2.X, Y: b.P1.Y}, P2: b.P2}
		s.Append(b.P1.Y, b.P2.Y, left, right, true)
	}
}

// Extents returns the integer bounding box of every trapezoid in the
// store (grounded on _borast_traps_extents): each sloped side is
// evaluated exactly at the trapezoid's own top and bottom, rather than
// trusting the line's stored endpoints, since a Left/Right line can run
// past the trapezoid it bounds when it was shared with a neighbour.
func (s *Store) Extents() (box Box, ok bool) {
	if len(s.traps) == 0 {
		return Box{}, false
	}

	minX, minY := int32(1<<31-1), int32(1<<31-1)
	maxX, maxY := int32(-1<<31), int32(-1<<31)

	for _, t := range s.traps {
		if t.Top < minY {
			minY = t.Top
		}
		if t.Bottom > maxY {
			maxY = t.Bottom
		}

		if x := t.TopLeftX(); x < minX {
			minX = x
		}
		if x := t.BottomLeftX(); x < minX {
			minX = x
		}
		if x := t.TopRightX(); x > maxX {
			maxX = x
		}
		if x := t.BottomRightX(); x > maxX {
			maxX = x
		}
	}

	return Box{P1: Point{X: minX, Y: minY}, P2: Point{X: maxX, Y: maxY}}, true
}

// Translate shifts every trapezoid by (dx, dy) in place
// (_borast_traps_translate).
func (s *Store) Translate(dx, dy Fixed) {
	for i := range s.traps {
		t := &s.traps[i]
		t.Top += dy
		t.Bottom += dy
		t.Left.P1.X += dx
		t.Left.P1.Y += dy
		t.Left.P2.X += dx
		t.Left.P2.Y += dy
		t.Right.P1.X += dx
		t.Right.P1.Y += dy
		t.Right.P2.X += dx
		t.Right.P2.Y += dy
	}
}

// TranslateScale returns a new Store holding every trapezoid of s
// translated by (tx, ty) and then scaled by (sx, sy), using exact
// fixed-point multiplication throughout
// (_borast_trapezoid_array_translate_and_scale).
func (s *Store) TranslateScale(tx, ty, sx, sy Fixed) *Store {
	out := NewStore(len(s.traps))
	for _, t := range s.traps {
		scale := func(p Point) Point {
			return Point{
				X: fixedMulDivFloor(p.X+tx, sx, 1),
				Y: fixedMulDivFloor(p.Y+ty, sy, 1),
			}
		}
		nt := Trapezoid{
			Top:    fixedMulDivFloor(t.Top+ty, sy, 1),
			Bottom: fixedMulDivFloor(t.Bottom+ty, sy, 1),
			Left:   Line{P1: scale(t.Left.P1), P2: scale(t.Left.P2)},
			Right:  Line{P1: scale(t.Right.P1), P2: scale(t.Right.P2)},
		}
		out.Append(nt.Top, nt.Bottom, nt.Left, nt.Right, t.Left.P1.X == t.Left.P2.X && t.Right.P1.X == t.Right.P2.X)
	}
	return out
}
