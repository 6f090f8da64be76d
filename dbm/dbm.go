// SPDX-License-Identifier: MIT
package dbm

import "fmt"

// dbmErrorf wraps an underlying error with method context, mirroring
// matrix/impl_dense.go's denseErrorf idiom.
func dbmErrorf(method string, err error) error {
	return fmt.Errorf("dbm.%s: %w", method, err)
}

// DBM is a dense dim×dim difference-bound matrix, row-major, mirroring the
// flat-buffer layout of matrix.Dense but over Cell instead of float64.
//
// Index 0 is the reference clock (always 0); indices [1,dim) are the real
// clocks. A DBM is consistent iff every diagonal cell is LeZero, and tight
// iff D[i][j] <= D[i][k] + D[k][j] for all i,j,k. Emptiness is the sentinel
// D[0][0] == LtZero (D[0][0].Less(LeZero)).
type DBM struct {
	dim  int
	data []Cell
}

// Status is returned by operations that may detect emptiness.
type Status int

const (
	NonEmpty Status = iota
	Empty
)

// Dim returns the dimension (1 + number of real clocks).
func (d *DBM) Dim() int { return d.dim }

func (d *DBM) at(i, j int) Cell { return d.data[i*d.dim+j] }
func (d *DBM) set(i, j int, c Cell) { d.data[i*d.dim+j] = c }

// At returns D[i][j], validating indices.
func (d *DBM) At(i, j int) (Cell, error) {
	if i < 0 || i >= d.dim || j < 0 || j >= d.dim {
		return Cell{}, dbmErrorf("At", ErrClockOutOfRange)
	}
	return d.at(i, j), nil
}

// alloc builds a zero-valued dim×dim backing buffer, validating shape the
// way matrix.NewDense validates rows/cols before allocating.
func alloc(dim int) (*DBM, error) {
	if dim < 1 {
		return nil, dbmErrorf("alloc", ErrBadShape)
	}
	return &DBM{dim: dim, data: make([]Cell, dim*dim)}, nil
}

// Universal returns the DBM with no constraint at all besides the
// diagonal: every clock may take any real value (including negative).
// Grounded on original_source/src/dbm/dbm.cc:universal.
func Universal(dim int) (*DBM, error) {
	d, err := alloc(dim)
	if err != nil {
		return nil, err
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			d.set(i, j, Infinity)
		}
		d.set(i, i, LeZero)
	}
	return d, nil
}

// UniversalPositive returns the DBM for ℝ^dim_{>=0}: every real clock is
// unconstrained above but bounded below by 0.
// Grounded on original_source/src/dbm/dbm.cc:universal_positive.
func UniversalPositive(dim int) (*DBM, error) {
	d, err := alloc(dim)
	if err != nil {
		return nil, err
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j || i == 0 {
				d.set(i, j, LeZero)
			} else {
				d.set(i, j, Infinity)
			}
		}
	}
	return d, nil
}

// Zero returns the DBM representing the single valuation where every clock
// is 0. Grounded on original_source/src/dbm/dbm.cc:zero.
func Zero(dim int) (*DBM, error) {
	d, err := alloc(dim)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		d.data[i] = LeZero
	}
	return d, nil
}

// NewEmpty returns the canonical empty DBM (∅), recognizable by the
// D[0][0] == LtZero sentinel.
// Grounded on original_source/src/dbm/dbm.cc:empty.
func NewEmpty(dim int) (*DBM, error) {
	d, err := Universal(dim)
	if err != nil {
		return nil, err
	}
	d.set(0, 0, LtZero)
	return d, nil
}

// IsEmpty reports the D[0][0] < LeZero sentinel (spec.md §3 "Emptiness is
// signalled by D[0,0] < (0, ≤)").
func (d *DBM) IsEmpty() bool { return d.at(0, 0).Less(LeZero) }

// IsConsistent reports that every diagonal cell equals LeZero.
func (d *DBM) IsConsistent() bool {
	for i := 0; i < d.dim; i++ {
		if d.at(i, i) != LeZero {
			return false
		}
	}
	return true
}

// IsPositive reports that every clock is constrained to be >= 0
// (D[0][x] <= LeZero for all x), per spec.md §3.
func (d *DBM) IsPositive() bool {
	for x := 0; x < d.dim; x++ {
		if LeZero.Less(d.at(0, x)) {
			return false
		}
	}
	return true
}

// IsTight reports D[i][j] <= D[i][k] + D[k][j] for all i,j,k.
// O(dim^3); intended for tests/assertions, not the hot path.
func (d *DBM) IsTight() bool {
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			for k := 0; k < d.dim; k++ {
				if Sum(d.at(i, k), d.at(k, j)).Less(d.at(i, j)) {
					return false
				}
			}
		}
	}
	return true
}

// Equal reports whether two tight DBMs represent identical zones.
func Equal(a, b *DBM) bool {
	if a.dim != b.dim {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Included reports whether a's zone is included in b's zone: a[i][j] <= b[i][j]
// for all i,j. Both must be tight.
func Included(a, b *DBM) bool {
	if a.dim != b.dim {
		return false
	}
	for i := range a.data {
		if b.data[i].Less(a.data[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy.
func (d *DBM) Clone() *DBM {
	cp := &DBM{dim: d.dim, data: make([]Cell, len(d.data))}
	copy(cp.data, d.data)
	return cp
}
