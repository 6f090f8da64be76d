// SPDX-License-Identifier: MIT
//
// Package refdbm generalises package dbm to several reference clocks, one
// per process cluster, for local-time / partial-order semantics
// (spec.md §4.2). It composes a plain dbm.DBM with a clock-to-reference-
// clock map the way core.Graph composes its adjacencyList on top of the
// shared vertices/edges maps: the base algebra (Floyd-Warshall tightening,
// cell comparisons) is reused unchanged; only the indexing is layered.
//
// Grounded on original_source/src/dbm/refdbm.cc.
package refdbm

import (
	"fmt"

	"github.com/ticktac-project/tchecker-go/dbm"
)

// Variables describes the reference-clock layout of a RefDBM: RefCount
// reference clocks occupy indices [0,RefCount), offset clocks occupy
// [RefCount,Size); Tau maps each offset clock's index to its reference
// clock's index.
type Variables struct {
	Size     int
	RefCount int
	Tau      []int // len == Size; Tau[i] for i < RefCount is i itself
}

// ErrBadVariables is returned when Variables is malformed (e.g. Tau sized
// wrong, or an offset clock maps to something other than a reference
// clock).
var ErrBadVariables = fmt.Errorf("refdbm: malformed reference-clock layout")

func (v Variables) validate() error {
	if v.RefCount < 1 || v.Size < v.RefCount || len(v.Tau) != v.Size {
		return ErrBadVariables
	}
	for i := 0; i < v.RefCount; i++ {
		if v.Tau[i] != i {
			return ErrBadVariables
		}
	}
	for i := v.RefCount; i < v.Size; i++ {
		if v.Tau[i] < 0 || v.Tau[i] >= v.RefCount {
			return ErrBadVariables
		}
	}
	return nil
}

// RefDBM wraps a plain dbm.DBM whose dimension equals Variables.Size.
type RefDBM struct {
	vars Variables
	D    *dbm.DBM
}

func newWith(v Variables, d *dbm.DBM, err error) (*RefDBM, error) {
	if err != nil {
		return nil, err
	}
	if verr := v.validate(); verr != nil {
		return nil, verr
	}
	return &RefDBM{vars: v, D: d}, nil
}

// Universal builds the unconstrained RefDBM over v.
func Universal(v Variables) (*RefDBM, error) {
	d, err := dbm.Universal(v.Size)
	return newWith(v, d, err)
}

// UniversalPositive builds the RefDBM where every clock is bounded below by
// its reference clock (conceptually "zero").
func UniversalPositive(v Variables) (*RefDBM, error) {
	d, err := dbm.Universal(v.Size)
	if err != nil {
		return nil, err
	}
	for x := v.RefCount; x < v.Size; x++ {
		t := v.Tau[x]
		if st, cerr := d.Constrain(t, x, dbm.Le, 0); cerr != nil || st == dbm.Empty {
			return nil, fmt.Errorf("refdbm.UniversalPositive: %v", cerr)
		}
	}
	return newWith(v, d, nil)
}

// Zero builds the RefDBM where every clock, including every reference
// clock, equals 0.
func Zero(v Variables) (*RefDBM, error) {
	d, err := dbm.Zero(v.Size)
	return newWith(v, d, err)
}

// Empty builds the canonical empty RefDBM.
func Empty(v Variables) (*RefDBM, error) {
	d, err := dbm.NewEmpty(v.Size)
	return newWith(v, d, err)
}

// IsEmpty, IsConsistent, IsTight delegate to the underlying DBM.
func (r *RefDBM) IsEmpty() bool      { return r.D.IsEmpty() }
func (r *RefDBM) IsConsistent() bool { return r.D.IsConsistent() }
func (r *RefDBM) IsTight() bool      { return r.D.IsTight() }

// IsPositive reports D[tau(x)][x] <= LeZero for every offset clock x
// (spec.md §3: "Positivity means D[τ(x), x] ≤ (0, ≤)").
func (r *RefDBM) IsPositive() bool {
	for x := r.vars.RefCount; x < r.vars.Size; x++ {
		c, err := r.D.At(r.vars.Tau[x], x)
		if err != nil {
			return false
		}
		if dbm.LeZero.Less(c) {
			return false
		}
	}
	return true
}

// IsSynchronized reports that every pair of reference clocks is pinned
// equal: D[t1][t2] == D[t2][t1] == LeZero (spec.md §3).
func (r *RefDBM) IsSynchronized() bool {
	for t1 := 0; t1 < r.vars.RefCount; t1++ {
		for t2 := 0; t2 < r.vars.RefCount; t2++ {
			if t1 == t2 {
				continue
			}
			c12, _ := r.D.At(t1, t2)
			c21, _ := r.D.At(t2, t1)
			if c12 != dbm.LeZero || c21 != dbm.LeZero {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent deep copy.
func (r *RefDBM) Clone() *RefDBM {
	return &RefDBM{vars: r.vars, D: r.D.Clone()}
}

// Equal and LessEq delegate to the underlying DBM; they are meaningful
// only between RefDBMs built over the same Variables layout.
func (r *RefDBM) Equal(o *RefDBM) bool   { return r.D.Equal(o.D) }
func (r *RefDBM) LessEq(o *RefDBM) bool  { return r.D.LessEq(o.D) }
