// SPDX-License-Identifier: MIT
package options

import (
	"context"

	"github.com/ticktac-project/tchecker-go/graph"
	"github.com/ticktac-project/tchecker-go/syncprod"
	"github.com/ticktac-project/tchecker-go/zg"
)

// Order selects whether a waiting-list based search pops the oldest
// (Breadth) or the most recently pushed (Depth) node, spec.md §4.8's
// "BFS or DFS per policy".
type Order int

const (
	Breadth Order = iota
	Depth
)

// Covering selects whether covreach drops subsumed nodes (Cover) or
// keeps every distinct state (Uncovered, i.e. plain reachability using
// a graph.FindGraph instead of a graph.CoverGraph).
type Covering int

const (
	Uncovered Covering = iota
	Cover
)

// Options is the common configuration surface of covreach, couvreur
// and ndfs.
type Options struct {
	// Ctx allows cancellation of a long-running covreach search;
	// couvreur and ndfs do not read it.
	Ctx context.Context

	// Order chooses the waiting-list discipline for covreach.
	Order Order

	// Covering chooses whether covreach applies subsumption.
	Covering Covering

	// ZoneOptions configures the extrapolation operator applied by
	// zg.Next at every step.
	ZoneOptions zg.Options

	// NodeFilter, if non-nil, restricts which nodes are ever expanded;
	// a node for which it returns false is treated as absent. Used to
	// impose target labels (covreach) or final-node predicates (ndfs).
	NodeFilter func(zg.State) bool

	// EdgeFilter, if non-nil, restricts which outgoing Vedges are
	// followed from an expanded node; a Vedge for which it returns
	// false is not taken.
	EdgeFilter func(syncprod.Vedge) bool

	// OnExpand, if non-nil, is called every time a node is popped from
	// the waiting list and about to be expanded.
	OnExpand func(id graph.NodeID, state zg.State)

	// MaxNodes, if positive, stops the search once that many nodes
	// have been stored. covreach then returns Status Incomplete;
	// couvreur stops without a distinct status; ndfs does not read it.
	MaxNodes int
}

// Option mutates an Options value.
type Option func(*Options)

// Default returns an Options with Background context, breadth-first
// order, no covering, no extrapolation, no filters or hooks, and no
// node cap.
func Default() Options {
	return Options{
		Ctx:      context.Background(),
		Order:    Breadth,
		Covering: Uncovered,
	}
}

func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func WithOrder(order Order) Option {
	return func(o *Options) { o.Order = order }
}

func WithCovering(c Covering) Option {
	return func(o *Options) { o.Covering = c }
}

func WithZoneOptions(zo zg.Options) Option {
	return func(o *Options) { o.ZoneOptions = zo }
}

func WithNodeFilter(fn func(zg.State) bool) Option {
	return func(o *Options) { o.NodeFilter = fn }
}

func WithEdgeFilter(fn func(syncprod.Vedge) bool) Option {
	return func(o *Options) { o.EdgeFilter = fn }
}

func WithOnExpand(fn func(id graph.NodeID, state zg.State)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

func WithMaxNodes(n int) Option {
	return func(o *Options) { o.MaxNodes = n }
}

// Apply folds a list of Option over Default().
func Apply(opts ...Option) Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
