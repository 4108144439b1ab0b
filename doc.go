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

// Package trapezoid tessellates arbitrary planar polygons — possibly
// multi-contour, with holes, described by straight edges in 32-bit
// fixed-point coordinates — into non-overlapping trapezoids whose top and
// bottom edges are horizontal.
//
// The implementation is a Bentley–Ottmann plane sweep specialised for
// tessellation rather than general intersection reporting: it does not
// insert new events for edge crossings, relying instead on exact
// (overflow-free) integer comparison of edges at the current sweep
// position to keep the active edge list correctly ordered between
// endpoints. This is correct for the intended input domain of simple
// (non-self-intersecting) contours.
//
// All coordinate arithmetic is exact: no floating point is used anywhere
// in the sweep, the predicates, or the trapezoid geometry.
package trapezoid
