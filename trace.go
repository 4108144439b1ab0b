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

import "log"

// Tracer receives a line of diagnostic text for every sweep row (all
// events sharing one y) and every trapezoid emitted. It replaces the source's env-var-gated
// event_log (SPEC_FULL.md §2.2): instead of a global debug switch, a
// Tracer is injected at construction via WithTracer and defaults to a
// no-op, so tracing costs nothing unless a caller opts in.
type Tracer interface {
	Event(format string, args ...any)
}

type noopTracer struct{}

func (noopTracer) Event(string, ...any) {}

// LogTracer writes each traced line to an embedded *log.Logger. Use
// NewLogTracer(log.Default()) (or any other *log.Logger) to watch a sweep
// run, in the style of the debug Printf calls in
// github.com/mikenye/geom2d's plane-sweep implementation.
type LogTracer struct {
	logger *log.Logger
}

// NewLogTracer wraps logger as a Tracer. A nil logger is treated as
// log.Default().
func NewLogTracer(logger *log.Logger) *LogTracer {
	if logger == nil {
		logger = log.Default()
	}
	return &LogTracer{logger: logger}
}

func (t *LogTracer) Event(format string, args ...any) {
	t.logger.Printf(format, args...)
}
