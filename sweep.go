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

import "sort"

// Tessellator is a reusable Bentley–Ottmann driver (spec component F). A
// single Tessellator can be used for many polygons in sequence; Reset
// (called automatically at the start of Tessellate/TessellateContour)
// gives back its buffers' capacity instead of their contents, in the
// style of the teacher's Rasteriser, so repeated calls reuse the arena,
// scratch slices and store once they have grown to the size a caller's
// polygons need. The per-row event lists drained from the queue are
// still allocated on every call.
type Tessellator struct {
	opts tessellatorOptions

	arena []activeEdge
	line  sweepLine
	queue *eventQueue
	store *Store

	startScratch []*activeEdge
	spanScratch  []spanPair
	edgeScratch  []edge
	stopped      []*activeEdge
}

// NewTessellator builds a Tessellator. With no options it uses
// DefaultInitialEventCapacity / DefaultInitialTrapCapacity and a no-op
// Tracer.
func NewTessellator(opts ...Option) *Tessellator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tessellator{
		opts:  o,
		arena: make([]activeEdge, 0, o.initialEventCap),
		store: NewStore(o.initialTrapCap),
	}
	t.queue = newEventQueue(nil)
	return t
}

// Reset clears all of a Tessellator's buffers for reuse, retaining their
// capacity.
func (t *Tessellator) Reset() {
	t.arena = t.arena[:0]
	t.line.reset()
	t.queue.reset(nil)
	t.store.Reset()
	t.startScratch = t.startScratch[:0]
	t.spanScratch = t.spanScratch[:0]
	t.edgeScratch = t.edgeScratch[:0]
	t.stopped = t.stopped[:0]
}

// Tessellate sweeps every contour of poly together under the given fill
// rule and returns the resulting trapezoids. The returned *Store is
// owned by the Tessellator and is only valid until the next call to
// Tessellate or TessellateContour on the same Tessellator.
func (t *Tessellator) Tessellate(poly Polygon, rule FillRule) (*Store, error) {
	t.Reset()
	for _, c := range poly {
		var err error
		t.edgeScratch, err = edgesFromContour(c, t.edgeScratch)
		if err != nil {
			return nil, err
		}
	}
	return t.run(rule)
}

// TessellateContour sweeps a single contour, treating it as if it were
// the sole member of a one-contour Polygon.
func (t *Tessellator) TessellateContour(c Contour, rule FillRule) (*Store, error) {
	t.Reset()
	var err error
	t.edgeScratch, err = edgesFromContour(c, t.edgeScratch)
	if err != nil {
		return nil, err
	}
	return t.run(rule)
}

// run executes the sweep over t.edgeScratch, already populated by the
// caller, and returns t.store.
func (t *Tessellator) run(rule FillRule) (*Store, error) {
	n := len(t.edgeScratch)
	if t.opts.maxEdges > 0 && n > t.opts.maxEdges {
		return nil, ErrNoMemory
	}
	if cap(t.arena) < n {
		t.arena = make([]activeEdge, 0, n)
	}
	for _, e := range t.edgeScratch {
		t.arena = append(t.arena, activeEdge{
			line:   e.line,
			top:    e.top,
			bottom: e.bottom,
			dir:    e.dir,
		})
	}

	if cap(t.startScratch) < n {
		t.startScratch = make([]*activeEdge, n)
	} else {
		t.startScratch = t.startScratch[:n]
	}
	for i := range t.arena {
		t.startScratch[i] = &t.arena[i]
	}

	// Sort by start point (y major, x minor). SliceStable keeps ties in
	// their original (contour, edge) order, which is the deterministic
	// tie-break the rest of the sweep relies on.
	sort.SliceStable(t.startScratch, func(a, b int) bool {
		return comparePoints(t.startScratch[a].line.P1, t.startScratch[b].line.P1) < 0
	})

	t.queue.reset(t.startScratch)
	t.line.reset()

	for {
		y, ok := t.queue.peekY()
		if !ok {
			break
		}
		t.opts.tracer.Event("row at y=%d", y)

		// STOP: unlink from the sweep line. An edge leaving with a
		// deferred trap still open moves to t.stopped rather than
		// closing immediately — spec §4.F lets a same-y START on a
		// collinear edge inherit it below, avoiding a spurious
		// close-then-reopen at a shared vertex.
		stops := t.queue.drainStopsAtY(y)
		for _, e := range stops {
			t.line.remove(e)
			if e.trapOpen {
				t.stopped = append(t.stopped, e)
			}
		}

		// START: insert into the sweep line, schedule its STOP, and try
		// to inherit a deferred trap from a just-stopped collinear edge
		// whose bottom is this edge's top (spec §4.F).
		starts := t.queue.drainStartsAtY(y)
		for _, e := range starts {
			t.line.insert(e, y)
			t.queue.addStop(e)
			for i, s := range t.stopped {
				if edgesCollinear(s.line, e.line) {
					e.trapOpen = true
					e.trapTop = s.trapTop
					e.trapRight = s.trapRight
					s.trapOpen = false
					t.stopped = append(t.stopped[:i], t.stopped[i+1:]...)
					break
				}
			}
		}

		// Finalise whatever is left in t.stopped: nothing further at this
		// y can inherit it, so any still-open deferred trap closes at its
		// own edge's bottom, which is exactly y.
		for _, s := range t.stopped {
			if s.trapOpen {
				t.emitTrap(t.store, s, y)
			}
		}
		t.stopped = t.stopped[:0]

		t.reconcileSpans(t.store, y, rule)
	}

	return t.store, nil
}

// Tessellate is a convenience entry point that builds a fresh
// Tessellator, sweeps poly once, and returns the resulting Store. For
// repeated tessellation, construct a Tessellator with NewTessellator and
// call its Tessellate method directly to reuse its buffers.
func Tessellate(poly Polygon, rule FillRule, opts ...Option) (*Store, error) {
	return NewTessellator(opts...).Tessellate(poly, rule)
}

// TessellateContour is the single-contour counterpart of Tessellate.
func TessellateContour(c Contour, rule FillRule, opts ...Option) (*Store, error) {
	return NewTessellator(opts...).TessellateContour(c, rule)
}
