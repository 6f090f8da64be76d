// SPDX-License-Identifier: MIT
//
// Core zone-mutating operations of spec.md §4.1. Every operation here
// preserves consistency+tightness as a post-condition unless it returns
// Empty, in which case only the D[0][0]==LtZero sentinel is guaranteed.
//
// Grounded on original_source/src/dbm/dbm.cc for exact semantics; the
// local-retighten-after-mutate idiom mirrors matrix.FloydWarshall's
// validate-then-mutate-then-relax shape.
package dbm

// Constrain intersects d with the constraint "x - y Cmp value" in place.
// Returns Empty if the resulting zone is unsatisfiable. Idempotent when the
// constraint is already implied (spec.md §8): the value-comparison guard
// below is exactly that check.
func (d *DBM) Constrain(x, y int, cmp Cmp, value int64) (Status, error) {
	if x < 0 || x >= d.dim || y < 0 || y >= d.dim {
		return NonEmpty, dbmErrorf("Constrain", ErrClockOutOfRange)
	}
	c := of(cmp, value)
	if !c.Less(d.at(x, y)) {
		return NonEmpty, nil // already implied
	}
	d.set(x, y, c)
	return d.tightenLocal(x, y), nil
}

// ConstrainAll applies a batch of clock constraints, short-circuiting on the
// first that empties the zone (matching original_source's batch constrain).
type Constraint struct {
	X, Y  int
	Cmp   Cmp
	Value int64
}

func (d *DBM) ConstrainAll(cs []Constraint) (Status, error) {
	for _, c := range cs {
		st, err := d.Constrain(c.X, c.Y, c.Cmp, c.Value)
		if err != nil {
			return NonEmpty, err
		}
		if st == Empty {
			return Empty, nil
		}
	}
	return NonEmpty, nil
}

// ResetToValue sets clock x to the constant value (x := value), value >= 0.
// Grounded on original_source's reset_to_value.
func (d *DBM) ResetToValue(x int, value int64) error {
	if x < 0 || x >= d.dim {
		return dbmErrorf("ResetToValue", ErrClockOutOfRange)
	}
	if value < 0 {
		return dbmErrorf("ResetToValue", ErrNegativeValue)
	}
	d.set(x, 0, of(Le, value))
	d.set(0, x, of(Le, -value))
	for y := 1; y < d.dim; y++ {
		if y == x {
			continue
		}
		d.set(x, y, Sum(d.at(x, 0), d.at(0, y)))
		d.set(y, x, Sum(d.at(y, 0), d.at(0, x)))
	}
	return nil
}

// ResetToClock identifies clock x with clock y (x := y).
// Grounded on original_source's reset_to_clock.
func (d *DBM) ResetToClock(x, y int) error {
	if x < 0 || x >= d.dim || y <= 0 || y >= d.dim {
		return dbmErrorf("ResetToClock", ErrClockOutOfRange)
	}
	for z := 0; z < d.dim; z++ {
		d.set(x, z, d.at(y, z))
		d.set(z, x, d.at(z, y))
	}
	d.set(x, x, LeZero)
	return nil
}

// ResetToSum sets x := y + value (value >= 0), the general offset reset.
// Grounded on original_source's reset_to_sum.
func (d *DBM) ResetToSum(x, y int, value int64) error {
	if x < 0 || x >= d.dim || y < 0 || y >= d.dim {
		return dbmErrorf("ResetToSum", ErrClockOutOfRange)
	}
	if value < 0 {
		return dbmErrorf("ResetToSum", ErrNegativeValue)
	}
	for z := 0; z < d.dim; z++ {
		xz, err := Add(d.at(y, z), value)
		if err != nil {
			return dbmErrorf("ResetToSum", err)
		}
		zx, err := Add(d.at(z, y), -value)
		if err != nil {
			return dbmErrorf("ResetToSum", err)
		}
		d.set(x, z, xz)
		d.set(z, x, zx)
	}
	d.set(x, x, LeZero)
	return nil
}

// Reset dispatches to the right specialised reset per spec.md §4.1: a
// point reset when y is the reference clock, a clock copy when value==0,
// else the general offset reset.
func (d *DBM) Reset(x, y int, value int64) error {
	switch {
	case y == 0:
		return d.ResetToValue(x, value)
	case value == 0:
		return d.ResetToClock(x, y)
	default:
		return d.ResetToSum(x, y, value)
	}
}

// FreeClock existentially projects x out of the zone: x becomes unbounded
// above and its lower bound collapses to the reference clock's.
// Grounded on original_source's free_clock.
func (d *DBM) FreeClock(x int) error {
	if x < 0 || x >= d.dim {
		return dbmErrorf("FreeClock", ErrClockOutOfRange)
	}
	for y := 0; y < d.dim; y++ {
		d.set(x, y, Infinity)
		d.set(y, x, d.at(y, 0))
	}
	d.set(x, x, LeZero)
	return nil
}

// OpenUp lets time elapse: every clock may grow without bound.
// Grounded on original_source's open_up.
func (d *DBM) OpenUp() {
	for i := 1; i < d.dim; i++ {
		d.set(i, 0, Infinity)
	}
}

// OpenDown reverses time: every clock may shrink to its greatest lower
// bound implied by any other clock. Grounded on original_source's open_down.
func (d *DBM) OpenDown() {
	for i := 1; i < d.dim; i++ {
		min := Infinity
		for j := 1; j < d.dim; j++ {
			min = Min(min, d.at(j, i))
		}
		d.set(0, i, min)
	}
}

// Intersection returns the cell-wise min of a and b, fully tightened.
// Grounded on original_source's intersection + matrix's shape-validate
// idiom (ValidateSquare before the hot loop).
func Intersection(a, b *DBM) (*DBM, Status, error) {
	if a.dim != b.dim {
		return nil, NonEmpty, dbmErrorf("Intersection", ErrDimensionMismatch)
	}
	out := &DBM{dim: a.dim, data: make([]Cell, len(a.data))}
	for i := range out.data {
		out.data[i] = Min(a.data[i], b.data[i])
	}
	return out, out.tightenFull(), nil
}
