// SPDX-License-Identifier: MIT
package syncprod

import "github.com/ticktac-project/tchecker-go/system"

// Vloc is a fixed-size vector mapping each process id to its current
// location id. Vloc values are immutable once constructed; mutating
// operations return a fresh Vloc (spec.md §3).
type Vloc []int

// InitialVloc builds the Vloc where every process sits at its initial
// location.
func InitialVloc(sys *system.System) Vloc {
	v := make(Vloc, len(sys.Processes))
	for i, p := range sys.Processes {
		v[i] = p.InitialLocation
	}
	return v
}

// Clone returns an independent copy.
func (v Vloc) Clone() Vloc {
	out := make(Vloc, len(v))
	copy(out, v)
	return out
}

// Equal reports component-wise equality.
func (v Vloc) Equal(o Vloc) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// With returns a copy of v with process pid moved to loc, leaving v
// itself unmodified.
func (v Vloc) With(pid, loc int) Vloc {
	out := v.Clone()
	out[pid] = loc
	return out
}
