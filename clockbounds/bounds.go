// SPDX-License-Identifier: MIT
package clockbounds

import (
	"errors"
	"fmt"
)

// NoBound marks a clock with no extrapolation bound in a given location,
// mirroring dbm.NoBound (kept distinct to avoid an import cycle: dbm does
// not know about locations).
const NoBound = int64(1) << 40

// ErrDimensionMismatch is returned when two tables or a table and a clock
// count disagree.
var ErrDimensionMismatch = errors.New("clockbounds: dimension mismatch")

// ErrClockOutOfRange is returned by Get/Set when the clock index is outside
// [0,NClocks).
var ErrClockOutOfRange = errors.New("clockbounds: clock index out of range")

// ErrLocationOutOfRange is returned by Get/Set when the location index is
// outside [0,NLocations).
var ErrLocationOutOfRange = errors.New("clockbounds: location index out of range")

func boundsErrorf(method string, err error) error {
	return fmt.Errorf("clockbounds.%s: %w", method, err)
}

// Table is a dense, row-major map from (location, clock) to a bound value,
// one row per location, laid out the way gridgraph.GridGraph lays out its
// cell values by (row,col).
type Table struct {
	nLocations int
	nClocks    int
	data       []int64
}

// NewTable allocates a Table with every entry set to NoBound.
func NewTable(nLocations, nClocks int) (*Table, error) {
	if nLocations < 0 || nClocks < 0 {
		return nil, boundsErrorf("NewTable", fmt.Errorf("negative dimension"))
	}
	t := &Table{nLocations: nLocations, nClocks: nClocks, data: make([]int64, nLocations*nClocks)}
	for i := range t.data {
		t.data[i] = NoBound
	}
	return t, nil
}

// NLocations and NClocks report the table's dimensions.
func (t *Table) NLocations() int { return t.nLocations }
func (t *Table) NClocks() int    { return t.nClocks }

func (t *Table) index(loc, clock int) (int, error) {
	if loc < 0 || loc >= t.nLocations {
		return 0, ErrLocationOutOfRange
	}
	if clock < 0 || clock >= t.nClocks {
		return 0, ErrClockOutOfRange
	}
	return loc*t.nClocks + clock, nil
}

// Get returns the bound for clock at loc.
func (t *Table) Get(loc, clock int) (int64, error) {
	i, err := t.index(loc, clock)
	if err != nil {
		return 0, boundsErrorf("Get", err)
	}
	return t.data[i], nil
}

// Set stores the bound for clock at loc.
func (t *Table) Set(loc, clock int, value int64) error {
	i, err := t.index(loc, clock)
	if err != nil {
		return boundsErrorf("Set", err)
	}
	t.data[i] = value
	return nil
}

// Row returns the raw bound slice for loc, clock-indexed. The slice aliases
// the table's backing array; callers must not retain it past the next Set.
func (t *Table) Row(loc int) ([]int64, error) {
	if loc < 0 || loc >= t.nLocations {
		return nil, boundsErrorf("Row", ErrLocationOutOfRange)
	}
	start := loc * t.nClocks
	return t.data[start : start+t.nClocks], nil
}

// Clone returns an independent deep copy.
func (t *Table) Clone() *Table {
	data := make([]int64, len(t.data))
	copy(data, t.data)
	return &Table{nLocations: t.nLocations, nClocks: t.nClocks, data: data}
}

// Maps bundles a location's L and U extrapolation tables together, the way
// original_source's clockbounds_t pairs L and U per location.
type Maps struct {
	L *Table
	U *Table
}

// NewMaps allocates paired, NoBound-initialised L and U tables.
func NewMaps(nLocations, nClocks int) (*Maps, error) {
	l, err := NewTable(nLocations, nClocks)
	if err != nil {
		return nil, boundsErrorf("NewMaps", err)
	}
	u, err := NewTable(nLocations, nClocks)
	if err != nil {
		return nil, boundsErrorf("NewMaps", err)
	}
	return &Maps{L: l, U: u}, nil
}

func maxBound(a, b int64) int64 {
	if a == NoBound || b == NoBound {
		return NoBound
	}
	if a > b {
		return a
	}
	return b
}

// FillLocalMMap sets m[loc][clock] = max(L[loc][clock], U[loc][clock]) for
// every location and clock, grounded on original_source's
// fill_local_m_map: a single bound map subsuming both L and U whenever a
// caller only needs the coarser ExtraM abstraction.
func FillLocalMMap(lu *Maps) (*Table, error) {
	if lu.L.nLocations != lu.U.nLocations || lu.L.nClocks != lu.U.nClocks {
		return nil, boundsErrorf("FillLocalMMap", ErrDimensionMismatch)
	}
	m, err := NewTable(lu.L.nLocations, lu.L.nClocks)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = maxBound(lu.L.data[i], lu.U.data[i])
	}
	return m, nil
}

// GlobalBound returns, for a single clock, the componentwise max of its
// bound across every location in the table: the global (location-
// independent) L or U parameter used when no per-location refinement is
// requested.
func GlobalBound(t *Table, clock int) (int64, error) {
	if clock < 0 || clock >= t.nClocks {
		return 0, boundsErrorf("GlobalBound", ErrClockOutOfRange)
	}
	best := int64(0)
	for loc := 0; loc < t.nLocations; loc++ {
		v, _ := t.Get(loc, clock)
		best = maxBound(best, v)
	}
	return best, nil
}

// GlobalRow returns the full clock-indexed vector of GlobalBound values, the
// shape ExtraLU/ExtraM take as their l/u or m parameter.
func (t *Table) GlobalRow() []int64 {
	out := make([]int64, t.nClocks)
	for c := 0; c < t.nClocks; c++ {
		out[c], _ = GlobalBound(t, c)
	}
	return out
}

// ForLocations returns the componentwise max of t's rows at the given
// location indices: the bound map for a Vloc made of several processes,
// one location index per process, each process's own Table already
// restricted to its own local clocks via the same clock numbering.
func ForLocations(t *Table, locs []int) ([]int64, error) {
	out := make([]int64, t.nClocks)
	for c := 0; c < t.nClocks; c++ {
		out[c] = int64(0)
	}
	for _, loc := range locs {
		row, err := t.Row(loc)
		if err != nil {
			return nil, boundsErrorf("ForLocations", err)
		}
		for c, v := range row {
			out[c] = maxBound(out[c], v)
		}
	}
	return out, nil
}
