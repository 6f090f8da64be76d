// SPDX-License-Identifier: MIT
package ndfs

import (
	"github.com/ticktac-project/tchecker-go/algorithms/internal/options"
	"github.com/ticktac-project/tchecker-go/algorithms/internal/statekey"
	"github.com/ticktac-project/tchecker-go/graph"
	"github.com/ticktac-project/tchecker-go/syncprod"
	"github.com/ticktac-project/tchecker-go/system"
	"github.com/ticktac-project/tchecker-go/zg"
)

// Status summarises how Run terminated.
type Status int

const (
	// NoCycle means no lasso through a final node exists in the
	// explored state space.
	NoCycle Status = iota
	// CycleFound means a lasso was found; Prefix and Cycle name its
	// edges.
	CycleFound
)

// Result is what Run returns: the explored graph, whether a lasso was
// found, and, when one was, the edges leading from the initial state
// to the loop root (Prefix) and around the loop back to it (Cycle).
type Result struct {
	Status Status
	Graph  *graph.Graph[zg.State, syncprod.Vedge]
	Prefix []graph.EdgeID
	Cycle  []graph.EdgeID
}

// succInfo is one cached outgoing transition of an expanded node.
type succInfo struct {
	edgeID graph.EdgeID
	nodeID graph.NodeID
	state  zg.State
}

// ndfsEntry is a waiting-stack frame: a node together with a cursor
// into its (already expanded) successor list, the Go translation of
// lasso_path_extraction.hh's ndfs_entry_t.
type ndfsEntry struct {
	id    graph.NodeID
	state zg.State
	succs []succInfo
	idx   int
}

type searcher struct {
	sys   *system.System
	cfg   options.Options
	find  *graph.FindGraph[zg.State]
	g     *graph.Graph[zg.State, syncprod.Vedge]
	final func(zg.State) bool

	cyan map[graph.NodeID]bool
	blue map[graph.NodeID]bool
	red  map[graph.NodeID]bool

	expanded map[graph.NodeID][]succInfo
}

// expand computes and caches id's outgoing transitions the first time
// it is visited, adding an Actual edge to the graph for each one that
// survives filtering. Later visits, whether from the blue or the red
// pass, reuse the cached slice instead of re-running the transition
// relation or adding duplicate edges.
func (s *searcher) expand(id graph.NodeID, state zg.State) ([]succInfo, error) {
	if succs, ok := s.expanded[id]; ok {
		return succs, nil
	}
	var succs []succInfo
	for vedge := range syncprod.Outgoing(s.sys, state.Vloc) {
		if s.cfg.EdgeFilter != nil && !s.cfg.EdgeFilter(vedge) {
			continue
		}
		succ, status, err := zg.Next(s.sys, state, vedge, s.cfg.ZoneOptions)
		if err != nil {
			return nil, err
		}
		if status != zg.OK {
			continue
		}
		if s.cfg.NodeFilter != nil && !s.cfg.NodeFilter(succ) {
			continue
		}
		sid, _ := s.find.AddOrFind(succ)
		eid := s.g.AddEdge(graph.Actual, id, sid, vedge)
		succs = append(succs, succInfo{edgeID: eid, nodeID: sid, state: succ})
	}
	s.expanded[id] = succs
	return succs, nil
}

func (s *searcher) newEntry(id graph.NodeID, state zg.State) (*ndfsEntry, error) {
	succs, err := s.expand(id, state)
	if err != nil {
		return nil, err
	}
	return &ndfsEntry{id: id, state: state, succs: succs}, nil
}

// blueDFS discovers final nodes; on post-order visit of one it launches
// redDFS looking for a path back to the blue stack. It returns the
// edges of a lasso from start to a node satisfying s.final, or nil if
// none exists reachable from start.
func (s *searcher) blueDFS(startID graph.NodeID, startState zg.State) ([]graph.EdgeID, error) {
	start, err := s.newEntry(startID, startState)
	if err != nil {
		return nil, err
	}
	s.cyan[startID] = true
	stack := []*ndfsEntry{start}
	var edges []graph.EdgeID

	for len(stack) > 0 {
		entry := stack[len(stack)-1]

		if entry.idx < len(entry.succs) {
			next := entry.succs[entry.idx]
			entry.idx++

			if !s.cyan[next.nodeID] && !s.blue[next.nodeID] {
				ne, err := s.newEntry(next.nodeID, next.state)
				if err != nil {
					return nil, err
				}
				s.cyan[next.nodeID] = true
				stack = append(stack, ne)
				edges = append(edges, next.edgeID)
			}
			continue
		}

		if s.final(entry.state) {
			redEdges, err := s.redDFS(entry.id, entry.state)
			if err != nil {
				return nil, err
			}
			if len(redEdges) > 0 {
				edges = append(edges, redEdges...)
				return edges, nil
			}
		}

		s.blue[entry.id] = true
		delete(s.cyan, entry.id)
		stack = stack[:len(stack)-1]
		if len(edges) > 0 {
			edges = edges[:len(edges)-1]
		}
	}

	return nil, nil
}

// redDFS searches from start for a path to a node still on the blue
// stack (cyan). It returns the closing edge sequence, or nil if start's
// reachable set (excluding nodes already closed red) contains no cyan
// node.
func (s *searcher) redDFS(startID graph.NodeID, startState zg.State) ([]graph.EdgeID, error) {
	start, err := s.newEntry(startID, startState)
	if err != nil {
		return nil, err
	}
	s.red[startID] = true
	stack := []*ndfsEntry{start}
	var edges []graph.EdgeID

	for len(stack) > 0 {
		entry := stack[len(stack)-1]

		if entry.idx >= len(entry.succs) {
			stack = stack[:len(stack)-1]
			if len(edges) > 0 {
				edges = edges[:len(edges)-1]
			}
			continue
		}

		next := entry.succs[entry.idx]
		entry.idx++

		if s.cyan[next.nodeID] {
			edges = append(edges, next.edgeID)
			return edges, nil
		}
		if !s.red[next.nodeID] {
			ne, err := s.newEntry(next.nodeID, next.state)
			if err != nil {
				return nil, err
			}
			s.red[next.nodeID] = true
			stack = append(stack, ne)
			edges = append(edges, next.edgeID)
		}
	}

	return nil, nil
}

// splitLasso divides a closing edge sequence into the prefix leading
// to the loop root and the cycle around it, following
// lasso_path_extraction.hh's run(): the loop root is the target of the
// last edge, and the prefix is whatever leads from the first edge's
// source up to the first occurrence of the loop root as a target.
func splitLasso(g *graph.Graph[zg.State, syncprod.Vedge], edges []graph.EdgeID) (prefix, cycle []graph.EdgeID) {
	if len(edges) == 0 {
		return nil, nil
	}
	loopRoot := g.Edge(edges[len(edges)-1]).Tgt
	first := g.Edge(edges[0]).Src

	i := 0
	if loopRoot != first {
		for {
			e := g.Edge(edges[i])
			prefix = append(prefix, edges[i])
			i++
			if e.Tgt == loopRoot {
				break
			}
		}
	}
	cycle = append(cycle, edges[i:]...)
	return prefix, cycle
}

// Run looks for a lasso through a node satisfying final, reachable
// from sys's initial state, exploring lazily into the returned graph.
func Run(sys *system.System, final func(zg.State) bool, opts ...options.Option) (*Result, error) {
	cfg := options.Apply(opts...)

	pool := graph.NewPool[zg.State](64)
	g := graph.NewGraph[zg.State, syncprod.Vedge](pool)
	find := graph.NewFindGraph[zg.State](pool, statekey.Hash, statekey.Equal, 257)

	s := &searcher{
		sys: sys, cfg: cfg, find: find, g: g, final: final,
		cyan:     make(map[graph.NodeID]bool),
		blue:     make(map[graph.NodeID]bool),
		red:      make(map[graph.NodeID]bool),
		expanded: make(map[graph.NodeID][]succInfo),
	}

	result := &Result{Graph: g}

	initState, initStatus, err := zg.Initialize(sys)
	if err != nil {
		return nil, err
	}
	if initStatus != zg.OK {
		return result, nil
	}

	initID, _ := find.AddOrFind(initState)
	edges, err := s.blueDFS(initID, initState)
	if err != nil {
		return nil, err
	}
	if edges == nil {
		return result, nil
	}

	result.Status = CycleFound
	result.Prefix, result.Cycle = splitLasso(g, edges)
	return result, nil
}
