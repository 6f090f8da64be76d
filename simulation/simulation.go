// SPDX-License-Identifier: MIT
package simulation

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ticktac-project/tchecker-go/algorithms/internal/options"
	"github.com/ticktac-project/tchecker-go/algorithms/internal/statekey"
	"github.com/ticktac-project/tchecker-go/graph"
	"github.com/ticktac-project/tchecker-go/syncprod"
	"github.com/ticktac-project/tchecker-go/system"
	"github.com/ticktac-project/tchecker-go/zg"
)

// ErrStuck is returned by Step/RandomStep when the current state has
// no enabled successor.
var ErrStuck = errors.New("simulation: no enabled successor from current state")

// ErrChoiceOutOfRange is returned by Step when index does not name one
// of the current state's enabled choices.
var ErrChoiceOutOfRange = errors.New("simulation: choice index out of range")

// defaultSeed is used when New is called with seed 0, the same "0
// means deterministic default, not random" policy tsp/rng.go applies
// to its heuristics.
const defaultSeed int64 = 1

// Choice is one transition enabled from the driver's current state.
type Choice struct {
	Edge  syncprod.Vedge
	State zg.State
}

// Driver steps through a system's zone graph one transition at a time.
// It never covers: every state it visits is kept in the explored graph
// exactly as reached, and a revisited state can gain further outgoing
// edges across separate Step calls, making Graph a multigraph rather
// than a tree.
type Driver struct {
	sys  *system.System
	cfg  options.Options
	pool *graph.Pool[zg.State]
	g    *graph.Graph[zg.State, syncprod.Vedge]
	find *graph.FindGraph[zg.State]
	rng  *rand.Rand
	cur  graph.NodeID
}

// New builds a driver positioned at sys's initial state.
func New(sys *system.System, seed int64, opts ...options.Option) (*Driver, error) {
	cfg := options.Apply(opts...)

	pool := graph.NewPool[zg.State](64)
	g := graph.NewGraph[zg.State, syncprod.Vedge](pool)
	find := graph.NewFindGraph[zg.State](pool, statekey.Hash, statekey.Equal, 257)

	initState, status, err := zg.Initialize(sys)
	if err != nil {
		return nil, err
	}
	if status != zg.OK {
		return nil, fmt.Errorf("simulation: initial state rejected with status %v", status)
	}

	initID, _ := find.AddOrFind(initState)
	if n := pool.Get(initID); n != nil {
		n.Initial = true
	}

	if seed == 0 {
		seed = defaultSeed
	}

	d := &Driver{
		sys: sys, cfg: cfg, pool: pool, g: g, find: find,
		rng: rand.New(rand.NewSource(seed)),
		cur: initID,
	}
	if cfg.OnExpand != nil {
		cfg.OnExpand(initID, initState)
	}
	return d, nil
}

// Current returns the driver's current node id and state.
func (d *Driver) Current() (graph.NodeID, zg.State) {
	return d.cur, d.pool.Get(d.cur).State
}

// Graph returns the subgraph explored so far.
func (d *Driver) Graph() *graph.Graph[zg.State, syncprod.Vedge] { return d.g }

// Choices lists the transitions enabled from the current state, in
// syncprod.Outgoing order, after applying the driver's EdgeFilter and
// NodeFilter.
func (d *Driver) Choices() ([]Choice, error) {
	_, state := d.Current()
	var choices []Choice
	for vedge := range syncprod.Outgoing(d.sys, state.Vloc) {
		if d.cfg.EdgeFilter != nil && !d.cfg.EdgeFilter(vedge) {
			continue
		}
		succ, status, err := zg.Next(d.sys, state, vedge, d.cfg.ZoneOptions)
		if err != nil {
			return nil, err
		}
		if status != zg.OK {
			continue
		}
		if d.cfg.NodeFilter != nil && !d.cfg.NodeFilter(succ) {
			continue
		}
		choices = append(choices, Choice{Edge: vedge, State: succ})
	}
	return choices, nil
}

// Step advances along the index-th enabled choice, recording the step
// in the explored graph and making its target the new current state.
func (d *Driver) Step(index int) (graph.NodeID, error) {
	choices, err := d.Choices()
	if err != nil {
		return 0, err
	}
	if len(choices) == 0 {
		return 0, ErrStuck
	}
	if index < 0 || index >= len(choices) {
		return 0, ErrChoiceOutOfRange
	}
	return d.advance(choices[index]), nil
}

// RandomStep advances along a uniformly chosen enabled transition.
func (d *Driver) RandomStep() (graph.NodeID, error) {
	choices, err := d.Choices()
	if err != nil {
		return 0, err
	}
	if len(choices) == 0 {
		return 0, ErrStuck
	}
	return d.advance(choices[d.rng.Intn(len(choices))]), nil
}

func (d *Driver) advance(choice Choice) graph.NodeID {
	id, _ := d.find.AddOrFind(choice.State)
	d.g.AddEdge(graph.Actual, d.cur, id, choice.Edge)
	d.cur = id
	if d.cfg.OnExpand != nil {
		d.cfg.OnExpand(id, choice.State)
	}
	return id
}

// Run takes up to n random steps, stopping early — without error — the
// first time the driver gets stuck, and returns how many steps it
// actually took.
func (d *Driver) Run(n int) (int, error) {
	for i := 0; i < n; i++ {
		if _, err := d.RandomStep(); err != nil {
			if errors.Is(err, ErrStuck) {
				return i, nil
			}
			return i, err
		}
	}
	return n, nil
}
