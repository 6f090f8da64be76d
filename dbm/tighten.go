// SPDX-License-Identifier: MIT
//
// Purpose:
//   - Canonical Floyd-Warshall tightening, fixed k->i->j loop order.
//   - Shared by every operation that must restore tightness after a cell
//     mutation; in-place, O(dim^3) full form, O(dim^2) local retighten.
//
// Grounded on github.com/katalvlaran/lvlath/matrix/impl_floydwarshall.go's
// floydWarshallInPlace: same loop nesting and the same "no path through k"
// short-circuit, generalized from the float64 +Inf sentinel to Cell.IsInfinity.
package dbm

// tightenFull runs full Floyd-Warshall closure in place. Returns Empty if
// any diagonal cell becomes negative, leaving D[0][0] set to LtZero per the
// emptiness sentinel convention (matches original_source's tighten()).
func (d *DBM) tightenFull() Status {
	n := d.dim
	data := d.data

	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			if i == k || data[i*n+k].IsInfinity() {
				continue // optimization: no path i->k means k can't help i->*
			}
			baseI := i * n
			ik := data[baseI+k]
			for j := 0; j < n; j++ {
				cand := Sum(ik, data[baseK+j])
				if cand.Less(data[baseI+j]) {
					data[baseI+j] = cand
				}
			}
			if data[baseI+i].Less(LeZero) {
				data[0] = LtZero
				return Empty
			}
		}
	}
	return NonEmpty
}

// tightenLocal re-tightens after a single cell D[x][y] was lowered, using
// the standard two-pass retighten: first propagate i->x->y and i->y->j,
// then recheck consistency. O(dim^2). Mirrors original_source's two-argument
// tighten(dbm,dim,x,y).
func (d *DBM) tightenLocal(x, y int) Status {
	n := d.dim
	if d.at(x, y).IsInfinity() {
		return NonEmpty // MAY_BE_EMPTY collapses to NonEmpty: dbm was tight before
	}
	dxy := d.at(x, y)
	for i := 0; i < n; i++ {
		if i != x {
			cand := Sum(d.at(i, x), dxy)
			if cand.Less(d.at(i, y)) {
				d.set(i, y, cand)
			}
		}
		diy := d.at(i, y)
		for j := 0; j < n; j++ {
			cand := Sum(diy, d.at(y, j))
			if cand.Less(d.at(i, j)) {
				d.set(i, j, cand)
			}
		}
		if d.at(i, i).Less(LeZero) {
			d.set(0, 0, LtZero)
			return Empty
		}
	}
	return NonEmpty
}
