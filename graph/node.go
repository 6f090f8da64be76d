// SPDX-License-Identifier: MIT
package graph

// Node wraps a shared symbolic state plus the mutable flags and
// bookkeeping fields spec.md §3 attaches to it: initial, final, current,
// an integer dfsnum used by the SCC algorithms, and a bucket position
// used by the cover-graph. A Node's identity is its NodeID, not its
// address: the pool may move the backing array on growth.
type Node[S any] struct {
	id    NodeID
	State S

	Initial bool
	Final   bool
	Current bool
	DFSNum  int

	// stored and bucket record this node's position in whichever
	// bucketed table (find-graph or cover-graph) currently owns it, so
	// that removal does not require a linear bucket scan.
	stored bool
	bucket int

	out []EdgeID
	in  []EdgeID
}

// ID returns the node's identity within its pool.
func (n *Node[S]) ID() NodeID { return n.id }

// Out returns the ids of edges leaving this node, in insertion order.
func (n *Node[S]) Out() []EdgeID { return n.out }

// In returns the ids of edges entering this node, in insertion order.
func (n *Node[S]) In() []EdgeID { return n.in }

// Stored reports whether the node currently occupies a bucket in a
// find-graph or cover-graph table, and if so which bucket.
func (n *Node[S]) Stored() (bucket int, ok bool) { return n.bucket, n.stored }
