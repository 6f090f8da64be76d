// SPDX-License-Identifier: MIT
package graph

import "errors"

// ErrNodeHasEdges is returned by RemoveNode when the node still has
// incident edges; spec.md §3 requires a node's edge lists be empty
// before it can leave the graph.
var ErrNodeHasEdges = errors.New("graph: node still has incident edges")

// Graph is the directed exploration graph of spec.md §3: a pool of
// nodes plus a slab of edges, each edge tagged Actual or Subsumption.
// Graph owns storage only; which nodes are reachable/visited is tracked
// by a FindGraph or CoverGraph layered on top of the same Pool.
type Graph[S any, L any] struct {
	Pool  *Pool[S]
	edges []Edge[L]
}

// NewGraph returns an empty graph backed by pool.
func NewGraph[S any, L any](pool *Pool[S]) *Graph[S, L] {
	return &Graph[S, L]{Pool: pool}
}

// AddEdge creates a directed edge of the given kind from src to tgt and
// links it into both endpoints' adjacency lists. Both endpoints must
// already be allocated in the graph's pool.
func (g *Graph[S, L]) AddEdge(kind EdgeKind, src, tgt NodeID, label L) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge[L]{id: id, Kind: kind, Src: src, Tgt: tgt, Label: label})
	if sn := g.Pool.Get(src); sn != nil {
		sn.out = append(sn.out, id)
	}
	if tn := g.Pool.Get(tgt); tn != nil {
		tn.in = append(tn.in, id)
	}
	return id
}

// Edge returns the edge stored at id.
func (g *Graph[S, L]) Edge(id EdgeID) *Edge[L] {
	if int(id) < 0 || int(id) >= len(g.edges) {
		return nil
	}
	return &g.edges[id]
}

// RemoveNode frees id's slot in the pool. It fails with ErrNodeHasEdges
// if id still has any incoming or outgoing edge; callers that want to
// relocate a covered node's edges to its covering node should call
// MoveIncomingEdges first.
func (g *Graph[S, L]) RemoveNode(id NodeID) error {
	n := g.Pool.Get(id)
	if n == nil {
		return nil
	}
	if len(n.out) != 0 || len(n.in) != 0 {
		return ErrNodeHasEdges
	}
	g.Pool.Free(id)
	return nil
}

// RemoveOutgoingEdges detaches every edge leaving id from its target's
// incoming adjacency list and clears id's own outgoing list, leaving
// those edges unreachable from any node still in the graph. Used
// together with MoveIncomingEdges to strip a fully evicted cover-graph
// representative of every incident edge before it is freed, matching
// "remove edges(cn')" in the covering-reachability pseudocode.
func (g *Graph[S, L]) RemoveOutgoingEdges(id NodeID) {
	n := g.Pool.Get(id)
	if n == nil {
		return
	}
	removed := n.out
	n.out = nil
	for _, eid := range removed {
		e := g.Edge(eid)
		if e == nil {
			continue
		}
		if tn := g.Pool.Get(e.Tgt); tn != nil {
			tn.in = removeEdgeID(tn.in, eid)
		}
	}
}

func removeEdgeID(s []EdgeID, id EdgeID) []EdgeID {
	for i, x := range s {
		if x == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// MoveIncomingEdges retargets every edge entering from onto to and
// retags it Subsumption. Used when a CoverGraph evicts from because
// to's state covers it: from's predecessors now point at its covering
// node to, and the relocated edges themselves witness the subsumption
// rather than the original step.
func (g *Graph[S, L]) MoveIncomingEdges(from, to NodeID) {
	fn := g.Pool.Get(from)
	if fn == nil {
		return
	}
	moved := fn.in
	fn.in = nil
	for _, eid := range moved {
		e := g.Edge(eid)
		if e == nil {
			continue
		}
		e.Kind = Subsumption
		e.Tgt = to
		if tn := g.Pool.Get(to); tn != nil {
			tn.in = append(tn.in, eid)
		}
	}
}
