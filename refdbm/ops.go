// SPDX-License-Identifier: MIT
package refdbm

import "github.com/ticktac-project/tchecker-go/dbm"

// Synchronize intersects every pair of reference clocks with equality
// (spread 0): the zero-spread case of BoundSpread. Grounded on
// original_source's synchronize (== bound_spread(rdbm, r, 0)).
func (r *RefDBM) Synchronize() dbm.Status {
	return r.BoundSpread(0, allRefClocks(r.vars.RefCount))
}

// BoundSpread intersects the reference clocks named in subset pairwise with
// "t1 - t2 <= spread", then re-tightens w.r.t. those reference clocks only
// (a restricted Floyd-Warshall pass, cheaper than a full one).
// Grounded on original_source's bound_spread.
func (r *RefDBM) BoundSpread(spread int64, subset []int) dbm.Status {
	le := dbm.Cell{Value: spread, Cmp: dbm.Le}
	d := r.D
	for _, t1 := range subset {
		for _, t2 := range subset {
			c, _ := d.At(t1, t2)
			nc := dbm.Min(c, le)
			d.Constrain(t1, t2, nc.Cmp, nc.Value) //nolint:errcheck // indices are in-range by construction
		}
	}
	// restricted tightening through each reference clock in subset only.
	n := r.vars.Size
	for _, t := range subset {
		for x := 0; x < n; x++ {
			if x == t {
				continue
			}
			xt, _ := d.At(x, t)
			if xt.IsInfinity() {
				continue
			}
			for y := 0; y < n; y++ {
				if y == t {
					continue
				}
				ty, _ := d.At(t, y)
				if ty.IsInfinity() {
					continue
				}
				xy, _ := d.At(x, y)
				cand := dbm.Sum(xt, ty)
				if cand.Less(xy) {
					d.Constrain(x, y, cand.Cmp, cand.Value) //nolint:errcheck
				}
			}
			xx, _ := d.At(x, x)
			if xx.Less(dbm.LeZero) {
				return dbm.Empty
			}
		}
	}
	return dbm.NonEmpty
}

func allRefClocks(refcount int) []int {
	out := make([]int, refcount)
	for i := range out {
		out[i] = i
	}
	return out
}

// AsynchronousOpenUp lets the reference clocks in allowed elapse
// independently: for each such reference clock t, every clock's distance to
// t becomes unbounded. Grounded on original_source's asynchronous_open_up.
func (r *RefDBM) AsynchronousOpenUp(allowed []bool) {
	for t := 0; t < r.vars.RefCount; t++ {
		if !allowed[t] {
			continue
		}
		for x := 0; x < r.vars.Size; x++ {
			if x == t {
				continue
			}
			r.D.Constrain(x, t, dbm.Lt, dbm.MaxValue-1) //nolint:errcheck // widen, never empties
		}
	}
}

// ResetToReferenceClock replaces offset clock x's row/column by those of
// its reference clock tau(x) (x := 0 in its own process's local time).
// Grounded on original_source's reset_to_reference_clock.
func (r *RefDBM) ResetToReferenceClock(x int) error {
	tx := r.vars.Tau[x]
	if tx == x {
		return nil
	}
	return r.D.ResetToClock(x, tx)
}

// ToDBM projects a synchronized RefDBM to a conventional DBM over the
// user (offset) clocks, with the shared reference-clock value becoming the
// new reference clock 0. Requires r.IsSynchronized().
func (r *RefDBM) ToDBM() (*dbm.DBM, error) {
	dim := r.vars.Size - r.vars.RefCount + 1
	out, err := dbm.Universal(dim)
	if err != nil {
		return nil, err
	}
	offsets := make([]int, 0, dim-1)
	for x := r.vars.RefCount; x < r.vars.Size; x++ {
		offsets = append(offsets, x)
	}
	for i, oi := range offsets {
		c0i, _ := r.D.At(r.vars.Tau[oi], oi)
		ci0, _ := r.D.At(oi, r.vars.Tau[oi])
		out.Constrain(0, i+1, c0i.Cmp, c0i.Value) //nolint:errcheck
		out.Constrain(i+1, 0, ci0.Cmp, ci0.Value) //nolint:errcheck
		for j := i + 1; j < len(offsets); j++ {
			oj := offsets[j]
			cij, _ := r.D.At(oi, oj)
			cji, _ := r.D.At(oj, oi)
			out.Constrain(i+1, j+1, cij.Cmp, cij.Value) //nolint:errcheck
			out.Constrain(j+1, i+1, cji.Cmp, cji.Value) //nolint:errcheck
		}
	}
	return out, nil
}

// IsSyncALULe is the sync-aware inclusion test of spec.md §4.2: a is
// included in the aLU-abstraction of b up to reference-clock
// resynchronisation, using for each offset clock x the minimum over all
// reference clocks of a's representative column as the comparison basis.
// As in dbm.IsALULe, a NoBound coordinate is never abstracted.
func IsSyncALULe(a, b *RefDBM, l, u []int64) bool {
	n := a.vars.Size
	for x := 0; x < n; x++ {
		ux := boundAt(u, x, a.vars)
		ax0 := bestRowToClock(a, x)
		if ux != dbm.NoBound && ax0.Less(dbm.Cell{Value: -ux, Cmp: dbm.Le}) {
			continue
		}
		for y := 0; y < n; y++ {
			if x == y {
				continue
			}
			ly := boundAt(l, y, a.vars)
			byx, _ := b.D.At(y, x)
			ayx, _ := a.D.At(y, x)
			if byx.Less(ayx) && (ly == dbm.NoBound || dbm.Sum(byx, dbm.Cell{Value: -ly, Cmp: dbm.Lt}).Less(ax0)) {
				return false
			}
		}
	}
	return true
}

// bestRowToClock returns the tightest (minimum) distance from any
// reference clock to x, the sync-aware analogue of dbm's D[0][x].
func bestRowToClock(d *RefDBM, x int) dbm.Cell {
	best := dbm.Infinity
	for t := 0; t < d.vars.RefCount; t++ {
		c, _ := d.D.At(t, x)
		best = dbm.Min(best, c)
	}
	return best
}

func boundAt(m []int64, i int, v Variables) int64 {
	if i < v.RefCount {
		return 0
	}
	idx := i - v.RefCount
	if idx < 0 || idx >= len(m) {
		return dbm.NoBound
	}
	return m[idx]
}
