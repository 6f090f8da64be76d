// SPDX-License-Identifier: MIT
package graph

// Hasher computes a content hash for a state, used to place it in a
// ShareTable bucket. Equal two states must hash equal.
type Hasher[S any] func(S) uint64

// Equaler reports whether two states are the same symbolic state for
// the purposes of exact node sharing (the find-graph).
type Equaler[S any] func(a, b S) bool

// LessEq reports whether a is covered by b (a's behaviours are a subset
// of b's), the partial order the cover-graph dedups against. A state
// for which LessEq(a, a) is false is unusable with a CoverGraph.
type LessEq[S any] func(a, b S) bool

// ShareTable is a content-addressed hash table over a Pool: given a
// state, it finds an already-allocated node carrying an equal state. It
// does not allocate; callers allocate new nodes in the Pool and insert
// their ids. It is the generic mechanism both FindGraph and
// CoverGraph bucket their nodes with; FindGraph uses it directly under
// Equaler, CoverGraph layers LessEq comparisons on top of the same
// bucket array.
//
// Grounded on core's map-based vertex table, generalised from a
// string key to a caller-supplied hash/equality pair since symbolic
// states have no natural string form.
type ShareTable[S any] struct {
	pool    *Pool[S]
	hash    Hasher[S]
	buckets [][]NodeID
}

// NewShareTable returns a table with the given bucket count. numBuckets
// must be positive.
func NewShareTable[S any](pool *Pool[S], hash Hasher[S], numBuckets int) *ShareTable[S] {
	if numBuckets < 1 {
		numBuckets = 1
	}
	return &ShareTable[S]{pool: pool, hash: hash, buckets: make([][]NodeID, numBuckets)}
}

func (t *ShareTable[S]) bucketOf(h uint64) int {
	return int(h % uint64(len(t.buckets)))
}

// find scans the bucket for h, returning the first id for which eq
// reports true against state, or (noNode, false).
func (t *ShareTable[S]) find(h uint64, state S, eq Equaler[S]) (NodeID, bool) {
	b := t.bucketOf(h)
	for _, id := range t.buckets[b] {
		n := t.pool.Get(id)
		if n != nil && eq(n.State, state) {
			return id, true
		}
	}
	return noNode, false
}

// insert places id (already allocated in pool, carrying state) into its
// hash bucket and records the bucket on the node, so that removal does
// not need to rescan.
func (t *ShareTable[S]) insert(h uint64, id NodeID) {
	b := t.bucketOf(h)
	t.buckets[b] = append(t.buckets[b], id)
	if n := t.pool.Get(id); n != nil {
		n.stored = true
		n.bucket = b
	}
}

// remove detaches id from its recorded bucket. It is a no-op if id is
// not currently stored in this table.
func (t *ShareTable[S]) remove(id NodeID) {
	n := t.pool.Get(id)
	if n == nil || !n.stored {
		return
	}
	b := n.bucket
	bucket := t.buckets[b]
	for i, other := range bucket {
		if other == id {
			t.buckets[b] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	n.stored = false
}

// bucketNodes returns the ids currently sharing h's bucket, for
// CoverGraph's LE scan.
func (t *ShareTable[S]) bucketNodes(h uint64) []NodeID {
	return t.buckets[t.bucketOf(h)]
}
