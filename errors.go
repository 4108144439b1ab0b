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

import "errors"

// Sentinel errors returned by the tessellator. Callers should use
// errors.Is rather than comparing error values directly, so that future
// wrapping (fmt.Errorf("...: %w", ...)) at a call boundary does not break
// detection.
var (
	// ErrCoordinateOverflow is returned when an edge's endpoint deltas (dx
	// or dy) do not fit in a signed 32-bit integer. The predicates require
	// this precondition to produce correct comparisons; inputs that
	// violate it are rejected rather than silently mis-tessellated.
	ErrCoordinateOverflow = errors.New("trapezoid: edge delta overflows 32 bits")

	// ErrNoMemory is returned when a sweep would need to grow its edge
	// arena past a caller-configured allocation budget (WithAllocationBudget).
	// Go's allocator does not itself report this condition to callers —
	// make/append panic on true exhaustion — so the budget is the hook
	// that lets this sentinel, carried over from the source's malloc
	// failure path, actually be exercised and tested.
	ErrNoMemory = errors.New("trapezoid: allocation budget exceeded")
)
