// SPDX-License-Identifier: MIT
//
// Scaling and single-valuation concretisation, used to build concrete
// counter-example clock valuations from a symbolic zone (spec.md §4.1,
// "constrain_to_single_valuation ... for counter-example concretisation").
// Grounded on original_source/src/dbm/dbm.cc: scale_up, scale_down.
package dbm

import "fmt"

// ScaleUp multiplies every finite bound by factor (factor > 0), reporting
// an explicit overflow/underflow error instead of silently saturating,
// since the caller needs the exact scaled integer valuation.
func (d *DBM) ScaleUp(factor int64) error {
	if factor <= 0 {
		return fmt.Errorf("dbm.ScaleUp: factor must be positive, got %d", factor)
	}
	for i, c := range d.data {
		if c.IsInfinity() {
			continue
		}
		if c.Value > 0 && MaxValue/factor < c.Value {
			return dbmErrorf("ScaleUp", ErrOverflow)
		}
		if c.Value < 0 && MinValue/factor > c.Value {
			return dbmErrorf("ScaleUp", ErrUnderflow)
		}
		d.data[i] = Cell{Value: c.Value * factor, Cmp: c.Cmp}
	}
	return nil
}

// ScaleDown divides every finite bound by factor (factor > 0), failing if
// any bound is not evenly divisible.
func (d *DBM) ScaleDown(factor int64) error {
	if factor <= 0 {
		return fmt.Errorf("dbm.ScaleDown: factor must be positive, got %d", factor)
	}
	for i, c := range d.data {
		if c.IsInfinity() {
			continue
		}
		if c.Value%factor != 0 {
			return dbmErrorf("ScaleDown", ErrNotDivisible)
		}
		d.data[i] = Cell{Value: c.Value / factor, Cmp: c.Cmp}
	}
	return nil
}

// AdmitsIntegerValue reports whether clock x's interval, as constrained by
// d, contains at least one integer.
func (d *DBM) AdmitsIntegerValue(x int) bool {
	dx0 := d.at(x, 0)
	if dx0.IsInfinity() {
		return true
	}
	d0x := d.at(0, x)
	return !(dx0.Cmp == Lt && d0x.Cmp == Lt && -(dx0.Value-1) == d0x.Value)
}

// ConstrainToSingleValuation iteratively narrows d to a single integer
// valuation per clock, scaling the whole DBM by 2 whenever a clock's
// interval is open and contains no integer at the current scale. Returns
// the final scale factor (the denominator of the concrete rational
// valuation over the original, unscaled clocks).
func (d *DBM) ConstrainToSingleValuation() (int64, error) {
	if d.IsEmpty() {
		return 0, dbmErrorf("ConstrainToSingleValuation", ErrEmptyZone)
	}
	scale := int64(1)
	for x := 1; x < d.dim; x++ {
		for !d.AdmitsIntegerValue(x) {
			if err := d.ScaleUp(2); err != nil {
				return 0, err
			}
			scale *= 2
		}
		// pick the greatest integer <= the upper bound of x (x - 0 <= c).
		dx0 := d.at(x, 0)
		var v int64
		if dx0.IsInfinity() {
			v = 0 // unbounded above: pin to the lower bound, which is >= 0.
			d0x := d.at(0, x)
			if !d0x.IsInfinity() {
				v = -d0x.Value
			}
		} else if dx0.Cmp == Lt {
			v = dx0.Value - 1
		} else {
			v = dx0.Value
		}
		if err := d.ResetToValue(x, v); err != nil {
			return 0, err
		}
		if st := d.tightenFull(); st == Empty {
			return 0, dbmErrorf("ConstrainToSingleValuation", ErrEmptyZone)
		}
	}
	return scale, nil
}
