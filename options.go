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

// Default tunables for a freshly constructed Tessellator. These mirror the
// source's stack-embedded array sizes (spec §5): enough headroom for small
// polygons to avoid reallocating; larger inputs grow the buffers on demand.
const (
	DefaultInitialEventCapacity = 64
	DefaultInitialTrapCapacity  = 16
	btreeDegree                 = 32
)

// Option configures a Tessellator at construction time. Options validate
// eagerly and panic on nonsensical values (a negative capacity, a nil
// tracer) since those are programmer errors, not data-dependent failures —
// in the style of katalvlaran/lvlath's matrix.Option constructors.
type Option func(*tessellatorOptions)

type tessellatorOptions struct {
	tracer          Tracer
	initialEventCap int
	initialTrapCap  int
	maxEdges        int // 0 means unbounded
}

func defaultOptions() tessellatorOptions {
	return tessellatorOptions{
		tracer:          noopTracer{},
		initialEventCap: DefaultInitialEventCapacity,
		initialTrapCap:  DefaultInitialTrapCapacity,
	}
}

// WithAllocationBudget caps the number of edges a single sweep may hold in
// its arena. A polygon whose edge count would exceed n makes Tessellate /
// TessellateContour return ErrNoMemory instead of growing further. This
// exists to let callers (and this package's own tests) exercise the
// out-of-memory path deterministically, without needing to actually
// exhaust the host's memory. n must be positive.
func WithAllocationBudget(n int) Option {
	if n <= 0 {
		panic("trapezoid: WithAllocationBudget requires n > 0")
	}
	return func(o *tessellatorOptions) {
		o.maxEdges = n
	}
}

// WithTracer injects a Tracer that receives one line of text per sweep
// row and per emitted trapezoid. A nil tracer is rejected in favour of
// the default no-op — pass nothing instead of nil to disable tracing.
func WithTracer(t Tracer) Option {
	if t == nil {
		panic("trapezoid: WithTracer requires a non-nil Tracer")
	}
	return func(o *tessellatorOptions) {
		o.tracer = t
	}
}

// WithInitialEventCapacity sets the initial size of the edge/event arena.
// It must be positive; the arena still grows past this on demand.
func WithInitialEventCapacity(n int) Option {
	if n <= 0 {
		panic("trapezoid: WithInitialEventCapacity requires n > 0")
	}
	return func(o *tessellatorOptions) {
		o.initialEventCap = n
	}
}

// WithInitialTrapCapacity sets the initial capacity of the output
// trapezoid store. It must be positive.
func WithInitialTrapCapacity(n int) Option {
	if n <= 0 {
		panic("trapezoid: WithInitialTrapCapacity requires n > 0")
	}
	return func(o *tessellatorOptions) {
		o.initialTrapCap = n
	}
}
