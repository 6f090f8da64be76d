// SPDX-License-Identifier: MIT
package dbm_test

import (
	"fmt"
	"testing"

	"github.com/ticktac-project/tchecker-go/dbm"
)

// benchDims are the DBM dimensions to benchmark, matching
// matrix/bench_test.go's size-table shape.
var benchDims = []int{4, 16, 64}

// BenchmarkConstrain exercises the local Floyd-Warshall retighten every
// Constrain call runs: one upper bound x <= x+1 per clock x on a universal
// zone, so every call actually lowers a cell from infinity.
func BenchmarkConstrain(b *testing.B) {
	b.ReportAllocs()
	for _, dim := range benchDims {
		dim := dim
		b.Run(fmt.Sprintf("dim=%d", dim), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := dbm.Universal(dim)
				if err != nil {
					b.Fatalf("Universal: %v", err)
				}
				for x := 1; x < dim; x++ {
					if _, err := d.Constrain(x, 0, dbm.Le, int64(x+1)); err != nil {
						b.Fatalf("Constrain: %v", err)
					}
				}
			}
		})
	}
}

// BenchmarkConstrainAll benchmarks a single batched constraint set applied
// to an already-tight zone, the shape zg.Next uses per transition.
func BenchmarkConstrainAll(b *testing.B) {
	b.ReportAllocs()
	for _, dim := range benchDims {
		dim := dim
		cs := make([]dbm.Constraint, 0, dim-1)
		for x := 1; x < dim; x++ {
			cs = append(cs, dbm.Constraint{X: x, Y: 0, Cmp: dbm.Le, Value: int64(x + 1)})
		}
		b.Run(fmt.Sprintf("dim=%d", dim), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				d, err := dbm.Universal(dim)
				if err != nil {
					b.Fatalf("Universal: %v", err)
				}
				b.StartTimer()
				if _, err := d.ConstrainAll(cs); err != nil {
					b.Fatalf("ConstrainAll: %v", err)
				}
			}
		})
	}
}
