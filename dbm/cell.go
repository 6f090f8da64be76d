// SPDX-License-Identifier: MIT
// Package dbm implements the difference-bound-matrix algebra over the
// semiring (ℤ ∪ {∞}, min, +): canonical, sound representations of convex
// clock zones, generalizing github.com/katalvlaran/lvlath/matrix's dense
// float64 Matrix to the integer-with-strictness cells a zone needs.
//
// Clock 0 is the implicit reference clock, always valued 0; a DBM of
// dimension d represents constraints over d-1 real clocks plus the
// reference clock.
package dbm

import "fmt"

// Cmp is the comparator carried by a DBM cell: a constraint "x - y cmp c".
type Cmp bool

// The two comparators a clock constraint may carry.
const (
	Le Cmp = false // x - y <= c
	Lt Cmp = true  // x - y < c
)

func (c Cmp) String() string {
	if c == Lt {
		return "<"
	}
	return "<="
}

// MaxValue/MinValue bound the finite range of a cell's Value; any sum
// clamping past these saturates to Infinity (see sum). Chosen well below
// math.MaxInt64/2 so that summing two finite cells can never silently wrap.
const (
	MaxValue = int64(1) << 40
	MinValue = -MaxValue
)

// Cell is one entry of a DBM: the pair (Value, Cmp) encoding "x - y Cmp
// Value". Infinity (no constraint) is the distinguished Cell{MaxValue, Lt}.
type Cell struct {
	Value int64
	Cmp   Cmp
}

// Infinity denotes "no constraint" (x - y < +∞).
var Infinity = Cell{Value: MaxValue, Cmp: Lt}

// LeZero is the diagonal value (x - x <= 0), and the identification x == y.
var LeZero = Cell{Value: 0, Cmp: Le}

// LtZero marks the emptiness sentinel stored at D[0][0] when a zone is empty
// (x0 - x0 < 0, an unsatisfiable constraint since x0 - x0 is always 0).
var LtZero = Cell{Value: 0, Cmp: Lt}

// IsInfinity reports whether c carries no constraint.
func (c Cell) IsInfinity() bool { return c.Value >= MaxValue }

// of builds a finite cell "cmp value"; callers must ensure value is in range.
func of(cmp Cmp, value int64) Cell { return Cell{Value: value, Cmp: cmp} }

// Less reports whether a is a strictly tighter bound than b: either a
// smaller numeric bound, or an equal bound where a is strict and b is not.
func (a Cell) Less(b Cell) bool {
	if a.Value != b.Value {
		return a.Value < b.Value
	}
	return a.Cmp == Lt && b.Cmp == Le
}

// LessEq reports a <= b in the DBM cell ordering (a is at least as tight).
func (a Cell) LessEq(b Cell) bool { return a == b || a.Less(b) }

// Min returns the tighter (numerically smaller) of two cells.
func Min(a, b Cell) Cell {
	if b.Less(a) {
		return b
	}
	return a
}

// Sum adds two cells under the DBM semiring: value-wise addition, saturating
// at Infinity, and the comparator is strict iff either operand is strict.
// Grounded on original_source/src/dbm/dbm.cc's `sum`.
func Sum(a, b Cell) Cell {
	if a.IsInfinity() || b.IsInfinity() {
		return Infinity
	}
	v := a.Value + b.Value
	if v >= MaxValue {
		return Infinity
	}
	if v <= MinValue {
		v = MinValue
	}
	cmp := Le
	if a.Cmp == Lt || b.Cmp == Lt {
		cmp = Lt
	}
	return Cell{Value: v, Cmp: cmp}
}

// Add adds a plain integer to a cell's value (used by reset_to_sum), with
// overflow/underflow reported explicitly rather than silently saturated,
// since it is invoked from contexts the §7 error taxonomy calls out as
// "arithmetic range errors".
func Add(c Cell, delta int64) (Cell, error) {
	if c.IsInfinity() {
		return Infinity, nil
	}
	v := c.Value + delta
	if v >= MaxValue {
		return Cell{}, fmt.Errorf("dbm: Add(%v,%d): %w", c, delta, ErrOverflow)
	}
	if v <= MinValue {
		return Cell{}, fmt.Errorf("dbm: Add(%v,%d): %w", c, delta, ErrUnderflow)
	}
	return Cell{Value: v, Cmp: c.Cmp}, nil
}

func (c Cell) String() string {
	if c.IsInfinity() {
		return "<inf"
	}
	return fmt.Sprintf("%s%d", c.Cmp, c.Value)
}
