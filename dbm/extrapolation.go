// SPDX-License-Identifier: MIT
//
// Abstraction operators: the finite-quotient approximations that make the
// zone graph a terminating exploration (spec.md §4.1, §4.8). NoBound is
// represented by MaxValue (a clock whose bound map entry is MaxValue is
// never abstracted, matching the "infinite bound encodes never abstract
// this coordinate" convention of spec.md §3).
//
// Grounded on original_source/src/dbm/dbm.cc: extra_m, extra_m_plus,
// extra_lu, extra_lu_plus, is_alu_le, is_am_le, transcribed case-by-case.
package dbm

// NoBound marks a clock coordinate that must never be abstracted.
const NoBound = MaxValue

// bound reads a per-clock bound map: index 0 (the reference clock) reads
// as 0 (M(0) == 0 in the original), and clock i >= 1 reads m[i-1].
func bound(m []int64, i int) int64 {
	if i == 0 {
		return 0
	}
	return m[i-1]
}

// ExtraM is the aM abstraction (spec.md §4.1), parameterised by a single
// per-clock bound map m (indices 1..dim-1).
func (d *DBM) ExtraM(m []int64) {
	modified := false
	n := d.dim

	for j := 1; j < n; j++ {
		if d.at(0, j) == LeZero {
			continue
		}
		mj := bound(m, j)
		if -d.at(0, j).Value > mj {
			if mj == NoBound {
				d.set(0, j, LeZero)
			} else {
				d.set(0, j, of(Lt, -mj))
			}
			modified = true
		}
	}

	for i := 1; i < n; i++ {
		mi := bound(m, i)
		for j := 0; j < n; j++ {
			if i == j || d.at(i, j).IsInfinity() {
				continue
			}
			mj := bound(m, j)
			cij := d.at(i, j).Value
			switch {
			case cij > mi:
				d.set(i, j, Infinity)
				modified = true
			case -cij > mj:
				if mj == NoBound {
					d.set(i, j, Infinity)
				} else {
					d.set(i, j, of(Lt, -mj))
				}
				modified = true
			}
		}
	}

	if modified {
		d.tightenFull()
	}
}

// ExtraMPlus is the sharper aM+ abstraction: it additionally promotes whole
// rows whose distance from the reference clock already exceeds the bound.
func (d *DBM) ExtraMPlus(m []int64) {
	modified := false
	n := d.dim

	for i := 1; i < n; i++ {
		mi := bound(m, i)
		c0i := d.at(0, i).Value
		if -c0i > mi {
			for j := 0; j < n; j++ {
				if i == j || d.at(i, j).IsInfinity() {
					continue
				}
				d.set(i, j, Infinity)
				modified = true
			}
			continue
		}
		for j := 0; j < n; j++ {
			if i == j || d.at(i, j).IsInfinity() {
				continue
			}
			mj := bound(m, j)
			c0j := d.at(0, j).Value
			cij := d.at(i, j).Value
			if cij > mi || -c0j > mj {
				d.set(i, j, Infinity)
				modified = true
			}
		}
	}

	for j := 1; j < n; j++ {
		mj := bound(m, j)
		c0j := d.at(0, j).Value
		if -c0j > mj {
			if mj == NoBound {
				d.set(0, j, LeZero)
			} else {
				d.set(0, j, of(Lt, -mj))
			}
			modified = true
		}
	}

	if modified {
		d.tightenFull()
	}
}

// ExtraLU is the aLU abstraction, parameterised by separate lower (l) and
// upper (u) per-clock bound maps.
func (d *DBM) ExtraLU(l, u []int64) {
	modified := false
	n := d.dim

	for j := 1; j < n; j++ {
		if d.at(0, j) == LeZero {
			continue
		}
		uj := bound(u, j)
		if -d.at(0, j).Value > uj {
			if uj == NoBound {
				d.set(0, j, LeZero)
			} else {
				d.set(0, j, of(Lt, -uj))
			}
			modified = true
		}
	}

	for i := 1; i < n; i++ {
		li := bound(l, i)
		for j := 0; j < n; j++ {
			if i == j || d.at(i, j).IsInfinity() {
				continue
			}
			uj := bound(u, j)
			cij := d.at(i, j).Value
			switch {
			case cij > li:
				d.set(i, j, Infinity)
				modified = true
			case -cij > uj:
				if uj == NoBound {
					d.set(i, j, Infinity)
				} else {
					d.set(i, j, of(Lt, -uj))
				}
				modified = true
			}
		}
	}

	if modified {
		d.tightenFull()
	}
}

// ExtraLUPlus is the sharper aLU+ abstraction (the default WQO for
// covering reachability, spec.md §4.8's termination requirement).
func (d *DBM) ExtraLUPlus(l, u []int64) {
	modified := false
	n := d.dim

	for i := 1; i < n; i++ {
		li := bound(l, i)
		c0i := d.at(0, i).Value
		if -c0i > li {
			for j := 0; j < n; j++ {
				if i == j || d.at(i, j).IsInfinity() {
					continue
				}
				d.set(i, j, Infinity)
				modified = true
			}
			continue
		}
		for j := 0; j < n; j++ {
			if i == j || d.at(i, j).IsInfinity() {
				continue
			}
			uj := bound(u, j)
			c0j := d.at(0, j).Value
			cij := d.at(i, j).Value
			if cij > li || -c0j > uj {
				d.set(i, j, Infinity)
				modified = true
			}
		}
	}

	for j := 1; j < n; j++ {
		uj := bound(u, j)
		c0j := d.at(0, j).Value
		if -c0j > uj {
			if uj == NoBound {
				d.set(0, j, LeZero)
			} else {
				d.set(0, j, of(Lt, -uj))
			}
			modified = true
		}
	}

	if modified {
		d.tightenFull()
	}
}

// IsALULe implements the sound aLU-inclusion predicate of spec.md §4.1:
// a is included in the aLU(l,u)-abstraction of b iff there is no witness
// pair (x,y) violating the three conjuncts below.
func IsALULe(a, b *DBM, l, u []int64) bool {
	n := a.dim
	for x := 0; x < n; x++ {
		// A NoBound coordinate is never abstracted, so the conjuncts that
		// involve its bound always hold and the test is plain inclusion.
		ux := bound(u, x)
		if ux != NoBound && a.at(0, x).Less(of(Le, -ux)) {
			continue
		}
		for y := 0; y < n; y++ {
			if x == y {
				continue
			}
			ly := bound(l, y)
			byx := b.at(y, x)
			ayx := a.at(y, x)
			if byx.Less(ayx) && (ly == NoBound || Sum(byx, of(Lt, -ly)).Less(a.at(0, x))) {
				return false
			}
		}
	}
	return true
}

// IsAMLe is the aM specialisation of IsALULe (l == u == m).
func IsAMLe(a, b *DBM, m []int64) bool { return IsALULe(a, b, m, m) }
