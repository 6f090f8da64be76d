// SPDX-License-Identifier: MIT
package path

import (
	"errors"
	"fmt"

	"github.com/ticktac-project/tchecker-go/graph"
)

// ErrNodeNotFound is returned when a NodeID names a freed or
// never-allocated node.
var ErrNodeNotFound = errors.New("path: node not found")

// Step is one edge of a replayed path: the state it left from, the
// label it carried, and the state it reached.
type Step[S, L any] struct {
	From  S
	Label L
	To    S
}

// TreeEdgeTo reconstructs the sequence of edges from target back to
// whichever node first discovered it has no incoming edge (the root
// of the exploration), by repeatedly following each node's first
// incoming edge — the edge that put it in the graph in the first
// place, Subsumption edges included. Edges are returned in root-to-
// target order.
func TreeEdgeTo[S, L any](g *graph.Graph[S, L], target graph.NodeID) ([]graph.EdgeID, error) {
	var edges []graph.EdgeID
	cur := target
	for {
		n := g.Pool.Get(cur)
		if n == nil {
			return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, cur)
		}
		in := n.In()
		if len(in) == 0 {
			break
		}
		eid := in[0]
		e := g.Edge(eid)
		edges = append(edges, eid)
		cur = e.Src
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges, nil
}

// Of replays edges — a TreeEdgeTo result, or one of ndfs.Result's
// Prefix/Cycle slices — into the ordered sequence of states and labels
// it visits, read out of g's pool.
func Of[S, L any](g *graph.Graph[S, L], edges []graph.EdgeID) ([]Step[S, L], error) {
	steps := make([]Step[S, L], 0, len(edges))
	for _, eid := range edges {
		e := g.Edge(eid)
		if e == nil {
			return nil, fmt.Errorf("path: edge %d not found", eid)
		}
		src := g.Pool.Get(e.Src)
		tgt := g.Pool.Get(e.Tgt)
		if src == nil || tgt == nil {
			return nil, fmt.Errorf("%w: edge %d has a freed endpoint", ErrNodeNotFound, eid)
		}
		steps = append(steps, Step[S, L]{From: src.State, Label: e.Label, To: tgt.State})
	}
	return steps, nil
}
