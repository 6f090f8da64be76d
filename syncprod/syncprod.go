// SPDX-License-Identifier: MIT
package syncprod

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ticktac-project/tchecker-go/system"
)

// ErrIncompatibleEdge is returned by Next when some participating edge's
// source location does not match the current Vloc.
var ErrIncompatibleEdge = errors.New("syncprod: incompatible edge")

// WeakMatchMode resolves spec.md §9's ambiguity over weakly-synchronised
// events with no matching edge.
type WeakMatchMode int

const (
	// WeakMatchPartial enables a synchronisation once every strong
	// constraint matches and at least one constraint overall matches;
	// weak constraints without a match are simply dropped from the
	// resulting Vedge. This is the default, grounded on
	// original_source's synchronizer.hh.
	WeakMatchPartial WeakMatchMode = iota

	// WeakMatchRequireAll additionally requires every weak constraint to
	// match, turning weak into a cosmetic label with no behavioural
	// difference from strong. Offered for callers that want the
	// strictest possible reading of spec.md §4.4.
	WeakMatchRequireAll
)

// Option configures Outgoing's enabled-synchronisation test.
type Option func(*Options)

// Options holds the resolved configuration for Outgoing.
type Options struct {
	WeakMatch WeakMatchMode
}

// DefaultOptions returns WeakMatchPartial.
func DefaultOptions() Options { return Options{WeakMatch: WeakMatchPartial} }

// WithWeakMatchMode overrides the default weak-synchronisation policy.
func WithWeakMatchMode(m WeakMatchMode) Option {
	return func(o *Options) { o.WeakMatch = m }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// candidateEdges returns the edge ids leaving vloc's location for
// process pid over event, in declaration order.
func candidateEdges(sys *system.System, vloc Vloc, pid, event int) []int {
	var out []int
	for _, eid := range sys.OutgoingEdges(vloc[pid]) {
		if sys.Edges[eid].Event == event {
			out = append(out, eid)
		}
	}
	return out
}

// Outgoing lazily enumerates every Vedge enabled at vloc: one per
// enabled synchronisation (expanded as a Cartesian product over its
// matching processes) plus one per asynchronous edge of every process,
// per spec.md §4.4.
func Outgoing(sys *system.System, vloc Vloc, opts ...Option) iter.Seq[Vedge] {
	cfg := resolve(opts)
	return func(yield func(Vedge) bool) {
		for _, sync := range sys.Syncs {
			if !yieldSync(sys, vloc, sync, cfg, yield) {
				return
			}
		}
		for pid, p := range sys.Processes {
			for _, eid := range p.OutEdges {
				if vloc[pid] != sys.Edges[eid].Src {
					continue
				}
				if !sys.EventIsAsynchronous(sys.Edges[eid].Event) {
					continue
				}
				ve := NewVedge(len(sys.Processes))
				ve[pid] = eid
				if !yield(ve) {
					return
				}
			}
		}
	}
}

// yieldSync expands one synchronisation's Cartesian product of matching
// edges, returning false if the consumer asked to stop.
func yieldSync(sys *system.System, vloc Vloc, sync system.Sync, cfg Options, yield func(Vedge) bool) bool {
	type axis struct {
		pid        int
		candidates []int
		mandatory  bool
	}
	axes := make([]axis, 0, len(sync.Constraints))
	anyMatch := false
	for _, c := range sync.Constraints {
		cs := candidateEdges(sys, vloc, c.ProcessID, c.Event)
		mandatory := c.Strength == system.Strong || cfg.WeakMatch == WeakMatchRequireAll
		if len(cs) == 0 {
			if mandatory {
				return true // not enabled; skip this sync entirely
			}
			continue // weak, unmatched, dropped
		}
		anyMatch = true
		axes = append(axes, axis{pid: c.ProcessID, candidates: cs, mandatory: mandatory})
	}
	if !anyMatch || len(axes) == 0 {
		return true
	}

	// Cartesian product over axes, one index counter per axis,
	// incremented like builder's nested row/col loops generalised to N
	// dimensions.
	idx := make([]int, len(axes))
	for {
		ve := NewVedge(len(sys.Processes))
		for i, ax := range axes {
			ve[ax.pid] = ax.candidates[idx[i]]
		}
		if !yield(ve) {
			return false
		}
		pos := len(axes) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(axes[pos].candidates) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}
	return true
}

// Next applies vedge to vloc: every participating process pid must
// currently sit at vedge[pid]'s source location, or Next returns
// ErrIncompatibleEdge. Only participating processes move.
func Next(sys *system.System, vloc Vloc, vedge Vedge) (Vloc, error) {
	for pid, eid := range vedge {
		if eid == NoEdge {
			continue
		}
		e := sys.Edges[eid]
		if vloc[pid] != e.Src {
			return nil, fmt.Errorf("Next: process %d: %w", pid, ErrIncompatibleEdge)
		}
	}
	out := vloc.Clone()
	for pid, eid := range vedge {
		if eid == NoEdge {
			continue
		}
		out[pid] = sys.Edges[eid].Tgt
	}
	return out, nil
}
