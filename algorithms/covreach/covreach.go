// SPDX-License-Identifier: MIT
package covreach

import (
	"github.com/ticktac-project/tchecker-go/algorithms/internal/options"
	"github.com/ticktac-project/tchecker-go/algorithms/internal/statekey"
	"github.com/ticktac-project/tchecker-go/graph"
	"github.com/ticktac-project/tchecker-go/syncprod"
	"github.com/ticktac-project/tchecker-go/system"
	"github.com/ticktac-project/tchecker-go/zg"
)

// Status summarises how a Run terminated.
type Status int

const (
	// Exhausted means the waiting list emptied without finding a node
	// satisfying the target predicate.
	Exhausted Status = iota
	// Reached means a node satisfying the target predicate was found.
	Reached
	// Incomplete means the search stopped early, either because the
	// context was cancelled or Options.MaxNodes was reached; the
	// resulting graph is a sound but possibly partial exploration.
	Incomplete
)

// Stats counts what a Run did, the way the teacher's search packages
// report diagnostics alongside their traversal result.
type Stats struct {
	Explored int
	Covered  int
}

// Result is what Run returns: the explored graph (actual edges plus,
// when covering is enabled, subsumption edges), the status, and the id
// of the node that satisfied the target predicate when Status ==
// Reached.
type Result struct {
	Status Status
	Graph  *graph.Graph[zg.State, syncprod.Vedge]
	Found  graph.NodeID
	Stats  Stats
}

// Run explores sys's zone-graph transition system from its initial
// state, in the order and with the covering policy opts selects,
// stopping as soon as a node satisfying target is found.
//
// Grounded on original_source's covreach::algorithm::run: the waiting
// list drains depth-/breadth-first, every successor is tested against
// the covering structure before being queued, and a covered successor
// contributes a Subsumption edge from its predecessor (not from
// itself) to whichever existing node covers it.
func Run(sys *system.System, target func(zg.State) bool, opts ...options.Option) (*Result, error) {
	cfg := options.Apply(opts...)

	pool := graph.NewPool[zg.State](64)
	g := graph.NewGraph[zg.State, syncprod.Vedge](pool)

	var find *graph.FindGraph[zg.State]
	var cover *graph.CoverGraph[zg.State, syncprod.Vedge]
	if cfg.Covering == options.Cover {
		cover = graph.NewCoverGraph[zg.State, syncprod.Vedge](g, statekey.Hash, statekey.LessEq, 257)
	} else {
		find = graph.NewFindGraph[zg.State](pool, statekey.Hash, statekey.Equal, 257)
	}

	result := &Result{Graph: g}

	initState, initStatus, err := zg.Initialize(sys)
	if err != nil {
		return nil, err
	}
	if initStatus != zg.OK {
		result.Status = Exhausted
		return result, nil
	}

	w := newWaitlist(cfg.Order)

	initID := pool.Alloc(initState)
	if cover != nil {
		action, _, evicted := cover.Insert(initID)
		for _, e := range evicted {
			w.remove(e)
			result.Stats.Covered++
		}
		if action == graph.Covered {
			_ = g.RemoveNode(initID)
			result.Stats.Covered++
			result.Status = Exhausted
			return result, nil
		}
	} else {
		find.AddOrFind(initState)
	}
	w.push(initID)
	result.Stats.Explored++

	for {
		select {
		case <-cfg.Ctx.Done():
			result.Status = Incomplete
			return result, nil
		default:
		}

		id, ok := w.pop()
		if !ok {
			result.Status = Exhausted
			return result, nil
		}
		node := pool.Get(id)
		if node == nil {
			continue
		}
		if cfg.OnExpand != nil {
			cfg.OnExpand(id, node.State)
		}
		if target(node.State) {
			result.Status = Reached
			result.Found = id
			return result, nil
		}

		for vedge := range syncprod.Outgoing(sys, node.State.Vloc) {
			if cfg.EdgeFilter != nil && !cfg.EdgeFilter(vedge) {
				continue
			}
			succ, nstatus, err := zg.Next(sys, node.State, vedge, cfg.ZoneOptions)
			if err != nil {
				return nil, err
			}
			if nstatus != zg.OK {
				continue
			}
			if cfg.NodeFilter != nil && !cfg.NodeFilter(succ) {
				continue
			}

			if cover != nil {
				succID := pool.Alloc(succ)
				action, coveredBy, evicted := cover.Insert(succID)
				if action == graph.Covered {
					g.AddEdge(graph.Subsumption, id, coveredBy, vedge)
					_ = g.RemoveNode(succID)
					result.Stats.Covered++
					continue
				}
				g.AddEdge(graph.Actual, id, succID, vedge)
				for _, e := range evicted {
					w.remove(e)
					result.Stats.Covered++
				}
				w.push(succID)
				result.Stats.Explored++
			} else {
				succID, created := find.AddOrFind(succ)
				g.AddEdge(graph.Actual, id, succID, vedge)
				if created {
					w.push(succID)
					result.Stats.Explored++
				}
			}

			if cfg.MaxNodes > 0 && result.Stats.Explored >= cfg.MaxNodes {
				result.Status = Incomplete
				return result, nil
			}
		}
	}
}
