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

import "github.com/google/btree"

// This file implements spec component C: the dual-source event queue.
// START events are known in full up front (one per non-horizontal edge,
// at the edge's top) and are sorted once into an array. STOP events
// (one per edge still active, at its bottom) become known only as edges
// are inserted into the sweep line, so they need an ordered structure
// that supports insertion during the sweep; github.com/google/btree's
// generic BTreeG fills that role, the way it backs the sweep-line event
// queue in mikenye/geom2d's plane-sweep implementation.

// stopEvent is one entry in the STOP b-tree: the point at which an
// active edge leaves the sweep line.
type stopEvent struct {
	point Point
	seq   uint64 // breaks ties between stop events at the same point
	edge  *activeEdge
}

// stopEventLess is the BTreeG ordering function: point order first (y
// major, x minor), then insertion sequence, so that two edges stopping
// at the exact same point dequeue in the order they were inserted into
// the sweep line rather than in whatever order a tree rebalance happens
// to visit them.
func stopEventLess(a, b stopEvent) bool {
	if c := comparePoints(a.point, b.point); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

// eventQueue merges the sorted START array with the dynamically growing
// STOP b-tree into a single ordered source of events, breaking ties so
// that STOP always precedes START at the same point (spec §3's
// determinism requirement). STOPs at the same point are ordered by a
// monotonic seq counter assigned in addStop; STARTs at the same point
// keep the order of the stable sort that built the array.
type eventQueue struct {
	starts    []*activeEdge
	startNext int

	stops   *btree.BTreeG[stopEvent]
	nextSeq uint64
}

func newEventQueue(starts []*activeEdge) *eventQueue {
	return &eventQueue{
		starts: starts,
		stops:  btree.NewG(btreeDegree, stopEventLess),
	}
}

// addStop schedules e's bottom endpoint as a future STOP event.
func (q *eventQueue) addStop(e *activeEdge) {
	q.nextSeq++
	q.stops.ReplaceOrInsert(stopEvent{point: Point{X: e.line.P2.X, Y: e.bottom}, seq: q.nextSeq, edge: e})
}

// peekY returns the y of the next pending event without consuming it, and
// false if the queue is empty. The driver processes one full row (every
// event sharing this y, across all x) before recomputing spans:
// reconciling mid-row (after only some of the row's same-y events have
// been applied) would see a transiently inconsistent active list —
// e.g. a span whose right edge hasn't started yet looks unclosed even
// though it will close later in the same row.
func (q *eventQueue) peekY() (Fixed, bool) {
	haveStart := q.startNext < len(q.starts)
	haveStop := false
	var stopY Fixed
	q.stops.Ascend(func(item stopEvent) bool {
		haveStop = true
		stopY = item.point.Y
		return false
	})

	switch {
	case !haveStart && !haveStop:
		return 0, false
	case haveStart && !haveStop:
		return q.starts[q.startNext].line.P1.Y, true
	case !haveStart && haveStop:
		return stopY, true
	default:
		startY := q.starts[q.startNext].line.P1.Y
		if stopY <= startY {
			return stopY, true
		}
		return startY, true
	}
}

// drainStopsAtY removes and returns every STOP event at exactly y, in
// ascending-x (then seq) order.
func (q *eventQueue) drainStopsAtY(y Fixed) []*activeEdge {
	var out []*activeEdge
	for {
		var item stopEvent
		var found bool
		q.stops.Ascend(func(it stopEvent) bool {
			item, found = it, true
			return false
		})
		if !found || item.point.Y != y {
			break
		}
		q.stops.Delete(item)
		out = append(out, item.edge)
	}
	return out
}

// drainStartsAtY removes and returns every START event at exactly y, in
// array order (the array is pre-sorted by (y, x), spec §3).
func (q *eventQueue) drainStartsAtY(y Fixed) []*activeEdge {
	var out []*activeEdge
	for q.startNext < len(q.starts) && q.starts[q.startNext].line.P1.Y == y {
		out = append(out, q.starts[q.startNext])
		q.startNext++
	}
	return out
}

// reset restores the queue to hold a fresh set of starts with no
// pending stops, for Tessellator buffer reuse.
func (q *eventQueue) reset(starts []*activeEdge) {
	q.starts = starts
	q.startNext = 0
	q.nextSeq = 0
	q.stops.Clear(true)
}
