// SPDX-License-Identifier: MIT
package zg

import (
	"github.com/ticktac-project/tchecker-go/clockbounds"
	"github.com/ticktac-project/tchecker-go/dbm"
	"github.com/ticktac-project/tchecker-go/refdbm"
	"github.com/ticktac-project/tchecker-go/syncprod"
	"github.com/ticktac-project/tchecker-go/system"
	"github.com/ticktac-project/tchecker-go/ta"
	"github.com/ticktac-project/tchecker-go/vm"
)

// Variant selects which DBM abstraction operator Next applies after
// computing a successor zone, spec.md §4.1's four extrapolation
// operators plus the option of none at all.
type Variant int

const (
	NoExtrapolation Variant = iota
	ExtraM
	ExtraMPlus
	ExtraLU
	ExtraLUPlus
)

// Options configures Next's extrapolation pass. Bounds is required for
// every Variant except NoExtrapolation; its clock numbering must align
// with the System's (index 0 is the offset clock at System.Clocks[1]).
type Options struct {
	Variant Variant
	Bounds  *clockbounds.Maps
}

// State is a zone-graph symbolic state: (vloc, intvars valuation, zone),
// spec.md §3.
type State struct {
	Vloc    syncprod.Vloc
	IntVars []int64
	Zone    *refdbm.RefDBM
}

func refVars(sys *system.System) refdbm.Variables {
	n := sys.NumClocks()
	tau := make([]int, n)
	return refdbm.Variables{Size: n, RefCount: 1, Tau: tau}
}

// canDelay reports whether time may elapse while control sits at vloc:
// spec.md §6's committed/urgent locations forbid any delay, so every
// process's current location must be neither.
func canDelay(sys *system.System, vloc syncprod.Vloc) bool {
	for _, loc := range vloc {
		l := sys.Locations[loc]
		if l.Committed || l.Urgent {
			return false
		}
	}
	return true
}

// Initialize builds the initial symbolic state: the initial Vloc and
// integer-variable valuation from ta.Initial, and the zone obtained by
// intersecting {0} with every initial location's invariant, then (unless
// some initial location is committed or urgent) letting time elapse and
// re-intersecting the invariant, matching Next's own src-invariant step.
func Initialize(sys *system.System) (State, Status, error) {
	vloc, intvars, inv, taStatus := ta.Initial(sys)
	if taStatus != ta.OK {
		return State{}, fromTA(taStatus), nil
	}

	zone, err := refdbm.Zero(refVars(sys))
	if err != nil {
		return State{}, OK, err
	}
	if st, err := applyConstraints(zone, inv); err != nil {
		return State{}, OK, err
	} else if st == dbm.Empty {
		return State{}, ClocksEmptyZone, nil
	}

	if canDelay(sys, vloc) {
		zone.D.OpenUp()
		if st, err := applyConstraints(zone, inv); err != nil {
			return State{}, OK, err
		} else if st == dbm.Empty {
			return State{}, ClocksEmptyZone, nil
		}
	}

	return State{Vloc: vloc, IntVars: intvars, Zone: zone}, OK, nil
}

func applyConstraints(zone *refdbm.RefDBM, cs []vm.ClockConstraint) (dbm.Status, error) {
	for _, c := range cs {
		st, err := zone.D.Constrain(c.X, c.Y, c.Cmp, c.C)
		if err != nil {
			return dbm.NonEmpty, err
		}
		if st == dbm.Empty {
			return dbm.Empty, nil
		}
	}
	return dbm.NonEmpty, nil
}

func applyResets(zone *refdbm.RefDBM, rs []vm.ClockReset) error {
	for _, r := range rs {
		if err := zone.D.Reset(r.X, r.Y, r.C); err != nil {
			return err
		}
	}
	return nil
}

// Next computes the successor of state over vedge: ta.Step for the
// integer-variable side, then the zone is updated in the standard order
// (source invariant, time-elapse, re-intersect source invariant, guard,
// reset, target invariant, time-elapse, re-intersect target invariant),
// extrapolated per opts, and re-synchronised. Time only elapses across a
// source (or target) vloc when none of its locations is committed or
// urgent (spec.md §6), and each open-up is immediately re-cut by the
// invariant it just stepped past, since delaying can only ever reach
// valuations the invariant still admits.
func Next(sys *system.System, state State, vedge syncprod.Vedge, opts Options) (State, Status, error) {
	nvloc, nintvars, res, taStatus := ta.Step(sys, state.Vloc, state.IntVars, vedge)
	if taStatus != ta.OK {
		return State{}, fromTA(taStatus), nil
	}

	zone := state.Zone.Clone()

	if st, err := applyConstraints(zone, res.SrcInvariant); err != nil {
		return State{}, OK, err
	} else if st == dbm.Empty {
		return State{}, ClocksSrcInvariantViolated, nil
	}

	if canDelay(sys, state.Vloc) {
		zone.D.OpenUp()
		if st, err := applyConstraints(zone, res.SrcInvariant); err != nil {
			return State{}, OK, err
		} else if st == dbm.Empty {
			return State{}, ClocksSrcInvariantViolated, nil
		}
	}

	if st, err := applyConstraints(zone, res.Guard); err != nil {
		return State{}, OK, err
	} else if st == dbm.Empty {
		return State{}, ClocksGuardViolated, nil
	}

	if err := applyResets(zone, res.ClockReset); err != nil {
		return State{}, OK, err
	}

	if st, err := applyConstraints(zone, res.TgtInvariant); err != nil {
		return State{}, OK, err
	} else if st == dbm.Empty {
		return State{}, ClocksTgtInvariantViolated, nil
	}

	if canDelay(sys, nvloc) {
		zone.D.OpenUp()
		if st, err := applyConstraints(zone, res.TgtInvariant); err != nil {
			return State{}, OK, err
		} else if st == dbm.Empty {
			return State{}, ClocksTgtInvariantViolated, nil
		}
	}

	extrapolate(zone, sys, nvloc, opts)

	if zone.Synchronize() == dbm.Empty || zone.IsEmpty() {
		return State{}, ClocksEmptyZone, nil
	}

	return State{Vloc: nvloc, IntVars: nintvars, Zone: zone}, OK, nil
}

func extrapolate(zone *refdbm.RefDBM, sys *system.System, vloc syncprod.Vloc, opts Options) {
	if opts.Variant == NoExtrapolation || opts.Bounds == nil {
		return
	}
	locs := make([]int, len(vloc))
	copy(locs, vloc)

	switch opts.Variant {
	case ExtraM:
		m, err := clockbounds.FillLocalMMap(opts.Bounds)
		if err != nil {
			return
		}
		row, err := clockbounds.ForLocations(m, locs)
		if err != nil {
			return
		}
		zone.D.ExtraM(row)
	case ExtraMPlus:
		m, err := clockbounds.FillLocalMMap(opts.Bounds)
		if err != nil {
			return
		}
		row, err := clockbounds.ForLocations(m, locs)
		if err != nil {
			return
		}
		zone.D.ExtraMPlus(row)
	case ExtraLU:
		l, errL := clockbounds.ForLocations(opts.Bounds.L, locs)
		u, errU := clockbounds.ForLocations(opts.Bounds.U, locs)
		if errL != nil || errU != nil {
			return
		}
		zone.D.ExtraLU(l, u)
	case ExtraLUPlus:
		l, errL := clockbounds.ForLocations(opts.Bounds.L, locs)
		u, errU := clockbounds.ForLocations(opts.Bounds.U, locs)
		if errL != nil || errU != nil {
			return
		}
		zone.D.ExtraLUPlus(l, u)
	}
}
