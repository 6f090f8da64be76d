// SPDX-License-Identifier: MIT
package statekey

import (
	"hash/fnv"

	"github.com/ticktac-project/tchecker-go/zg"
)

// Hash combines the discrete part (Vloc, IntVars) and the zone's cells
// into a single FNV-1a digest.
func Hash(s zg.State) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeInt := func(v int64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	for _, l := range s.Vloc {
		writeInt(int64(l))
	}
	for _, v := range s.IntVars {
		writeInt(v)
	}
	if s.Zone != nil {
		dim := s.Zone.D.Dim()
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				c, _ := s.Zone.D.At(i, j)
				writeInt(c.Value)
				if c.Cmp {
					writeInt(1)
				} else {
					writeInt(0)
				}
			}
		}
	}
	return h.Sum64()
}

// Equal reports exact equality of the discrete state and the zone.
func Equal(a, b zg.State) bool {
	if !equalInts(a.Vloc, b.Vloc) || !equalInt64s(a.IntVars, b.IntVars) {
		return false
	}
	if a.Zone == nil || b.Zone == nil {
		return a.Zone == b.Zone
	}
	return a.Zone.Equal(b.Zone)
}

// LessEq reports whether a is covered by b: same discrete state, and
// a's zone included in b's.
func LessEq(a, b zg.State) bool {
	if !equalInts(a.Vloc, b.Vloc) || !equalInt64s(a.IntVars, b.IntVars) {
		return false
	}
	if a.Zone == nil || b.Zone == nil {
		return a.Zone == b.Zone
	}
	return a.Zone.LessEq(b.Zone)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInt64s(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
