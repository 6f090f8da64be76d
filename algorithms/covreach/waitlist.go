// SPDX-License-Identifier: MIT
package covreach

import (
	"github.com/ticktac-project/tchecker-go/algorithms/internal/options"
	"github.com/ticktac-project/tchecker-go/graph"
)

// waitlist is the deque covreach pops nodes from, per options.Order.
// Removal of an evicted node is lazy: it is marked in removed and
// skipped when later popped, rather than scanned out of items
// immediately, since the only other reference to it in the spec
// algorithm is by membership check at pop time.
type waitlist struct {
	order   options.Order
	items   []graph.NodeID
	removed map[graph.NodeID]bool
}

func newWaitlist(order options.Order) *waitlist {
	return &waitlist{order: order, removed: make(map[graph.NodeID]bool)}
}

func (w *waitlist) push(id graph.NodeID) {
	if w.removed[id] {
		// id was evicted and its pool slot reused by this new node: drop
		// the evicted node's stale entries so only the new one is popped.
		kept := w.items[:0]
		for _, other := range w.items {
			if other != id {
				kept = append(kept, other)
			}
		}
		w.items = kept
		delete(w.removed, id)
	}
	w.items = append(w.items, id)
}

func (w *waitlist) remove(id graph.NodeID) {
	w.removed[id] = true
}

// pop returns the next live node, or (0, false) once the list is
// drained of anything not marked removed.
func (w *waitlist) pop() (graph.NodeID, bool) {
	for len(w.items) > 0 {
		var id graph.NodeID
		if w.order == options.Depth {
			last := len(w.items) - 1
			id = w.items[last]
			w.items = w.items[:last]
		} else {
			id = w.items[0]
			w.items = w.items[1:]
		}
		if w.removed[id] {
			continue
		}
		return id, true
	}
	return 0, false
}
