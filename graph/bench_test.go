// SPDX-License-Identifier: MIT
package graph_test

import (
	"fmt"
	"testing"

	"github.com/ticktac-project/tchecker-go/graph"
)

// benchSizes are the per-run node counts, matching matrix/bench_test.go's
// size-table shape.
var benchSizes = []int{100, 1000, 10000}

func intHash(x int) uint64 { return uint64(x) * 2654435761 }
func intEq(a, b int) bool  { return a == b }
func intLE(a, b int) bool  { return a <= b }

// BenchmarkFindGraphAddOrFind benchmarks the hash/probe/insert path a
// zone-graph search hits on every successor computed: the first n
// iterations insert brand new states and every later one revisits an
// already-stored one.
func BenchmarkFindGraphAddOrFind(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			pool := graph.NewPool[int](n)
			find := graph.NewFindGraph[int](pool, intHash, intEq, n/4+1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				find.AddOrFind(i % n)
			}
		})
	}
}

// BenchmarkCoverGraphInsert benchmarks the bucket-scan covering check
// covreach.Run performs on every newly expanded node, against the
// representatives left after inserting n increasing values. Ints are
// totally ordered under <=, so each bucket keeps only its largest value
// and every timed insertion is covered by it.
func BenchmarkCoverGraphInsert(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			pool := graph.NewPool[int](n)
			g := graph.NewGraph[int, struct{}](pool)
			cg := graph.NewCoverGraph[int, struct{}](g, intHash, intLE, n/4+1)
			for i := 0; i < n; i++ {
				id := pool.Alloc(i * 2)
				cg.Insert(id)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				id := pool.Alloc((i % n) * 2)
				cg.Insert(id)
			}
		})
	}
}
