// SPDX-License-Identifier: MIT
package couvreur

import (
	"iter"

	"github.com/ticktac-project/tchecker-go/algorithms/internal/options"
	"github.com/ticktac-project/tchecker-go/algorithms/internal/statekey"
	"github.com/ticktac-project/tchecker-go/graph"
	"github.com/ticktac-project/tchecker-go/syncprod"
	"github.com/ticktac-project/tchecker-go/system"
	"github.com/ticktac-project/tchecker-go/zg"
)

// Result is what Run returns: whether an accepting cycle was found, and
// the graph explored while looking for one.
type Result struct {
	CycleFound bool
	Graph      *graph.Graph[zg.State, syncprod.Vedge]
}

type rootEntry struct {
	id     graph.NodeID
	labels uint64
}

type todoEntry struct {
	id    graph.NodeID
	state zg.State
	next  func() (syncprod.Vedge, bool)
	stop  func()
}

// RunGeneralized checks generalised Büchi emptiness: labelOf returns
// the indices (in [0,numSets)) of the acceptance sets a state belongs
// to; an accepting cycle is one that visits every acceptance set at
// least once.
func RunGeneralized(sys *system.System, numSets int, labelOf func(zg.State) []int, opts ...options.Option) (*Result, error) {
	target := uint64(1)<<uint(numSets) - 1
	return run(sys, func(s zg.State) uint64 {
		var mask uint64
		for _, i := range labelOf(s) {
			mask |= 1 << uint(i)
		}
		return mask
	}, target, opts...)
}

// RunBuechi checks single Büchi emptiness: final reports whether a
// state is accepting. This is the numSets=1 special case of
// RunGeneralized, spec.md §4.9's "single-Büchi variant".
func RunBuechi(sys *system.System, final func(zg.State) bool, opts ...options.Option) (*Result, error) {
	return run(sys, func(s zg.State) uint64 {
		if final(s) {
			return 1
		}
		return 0
	}, 1, opts...)
}

// run is the iterative Couvreur algorithm of spec.md §4.9: three
// explicit stacks (roots, active, todo) replace the classic recursive
// formulation, and Go 1.23's iter.Pull lets a lazily-expanded
// successor iterator be paused at the top of todo and resumed without
// re-computing earlier successors.
func run(sys *system.System, labelOf func(zg.State) uint64, target uint64, opts ...options.Option) (*Result, error) {
	cfg := options.Apply(opts...)

	pool := graph.NewPool[zg.State](64)
	g := graph.NewGraph[zg.State, syncprod.Vedge](pool)
	find := graph.NewFindGraph[zg.State](pool, statekey.Hash, statekey.Equal, 257)

	result := &Result{Graph: g}

	initState, initStatus, err := zg.Initialize(sys)
	if err != nil {
		return nil, err
	}
	if initStatus != zg.OK {
		return result, nil
	}

	count := 0
	var roots []rootEntry
	var active []graph.NodeID
	var todo []*todoEntry

	stopAll := func() {
		for _, e := range todo {
			e.stop()
		}
	}

	push := func(id graph.NodeID, state zg.State) {
		count++
		n := pool.Get(id)
		n.DFSNum = count
		n.Current = true
		next, stop := iter.Pull(syncprod.Outgoing(sys, state.Vloc))
		todo = append(todo, &todoEntry{id: id, state: state, next: next, stop: stop})
		roots = append(roots, rootEntry{id: id, labels: labelOf(state)})
		active = append(active, id)
	}

	closeSCC := func(id graph.NodeID) {
		roots = roots[:len(roots)-1]
		for {
			n := len(active) - 1
			u := active[n]
			active = active[:n]
			pool.Get(u).Current = false
			if u == id {
				return
			}
		}
	}

	mergeSCC := func(tid graph.NodeID) bool {
		tDFS := pool.Get(tid).DFSNum
		var l uint64
		cycle := false
		for {
			n := len(roots) - 1
			top := roots[n]
			roots = roots[:n]
			l |= top.labels
			if l&target == target {
				cycle = true
			}
			if pool.Get(top.id).DFSNum <= tDFS {
				roots = append(roots, rootEntry{id: top.id, labels: l})
				return cycle
			}
		}
	}

	initID, _ := find.AddOrFind(initState)
	push(initID, initState)

	for len(todo) > 0 {
		entry := todo[len(todo)-1]

		vedge, ok := entry.next()
		if !ok {
			entry.stop()
			if roots[len(roots)-1].id == entry.id {
				closeSCC(entry.id)
			}
			todo = todo[:len(todo)-1]
			continue
		}
		if cfg.EdgeFilter != nil && !cfg.EdgeFilter(vedge) {
			continue
		}

		succ, nstatus, err := zg.Next(sys, entry.state, vedge, cfg.ZoneOptions)
		if err != nil {
			stopAll()
			return nil, err
		}
		if nstatus != zg.OK {
			continue
		}
		if cfg.NodeFilter != nil && !cfg.NodeFilter(succ) {
			continue
		}

		tid, _ := find.AddOrFind(succ)
		g.AddEdge(graph.Actual, entry.id, tid, vedge)

		tnode := pool.Get(tid)
		switch {
		case tnode.DFSNum == 0:
			push(tid, succ)
		case tnode.Current:
			if mergeSCC(tid) {
				result.CycleFound = true
				stopAll()
				return result, nil
			}
		}

		if cfg.MaxNodes > 0 && find.Len() >= cfg.MaxNodes {
			stopAll()
			return result, nil
		}
	}

	return result, nil
}
