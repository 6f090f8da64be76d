// SPDX-License-Identifier: MIT
package ta

import (
	"github.com/ticktac-project/tchecker-go/syncprod"
	"github.com/ticktac-project/tchecker-go/system"
	"github.com/ticktac-project/tchecker-go/vm"
)

// Result bundles Step's clock side-effects: the constraints and resets
// collected at each of the five steps, in the order the caller (package
// zg) must apply them to a zone.
type Result struct {
	SrcInvariant []vm.ClockConstraint
	Guard        []vm.ClockConstraint
	ClockReset   []vm.ClockReset
	TgtInvariant []vm.ClockConstraint
}

func intvarBounds(sys *system.System) []vm.IntVarDomain {
	out := make([]vm.IntVarDomain, len(sys.IntVars))
	for i, v := range sys.IntVars {
		out[i] = vm.IntVarDomain{Min: v.Min, Max: v.Max}
	}
	return out
}

// Initial computes the initial state's intvars valuation and checks the
// initial Vloc's invariant, per spec.md §7's initialisation contract.
func Initial(sys *system.System) (syncprod.Vloc, []int64, []vm.ClockConstraint, Status) {
	vloc := syncprod.InitialVloc(sys)
	intvars := make([]int64, len(sys.IntVars))
	for i, v := range sys.IntVars {
		intvars[i] = v.InitialValue
	}
	bounds := intvarBounds(sys)

	var inv []vm.ClockConstraint
	for pid, loc := range vloc {
		_ = pid
		ok, tainted, _ := runInvariant(sys, loc, intvars, bounds, &inv)
		if tainted {
			return vloc, intvars, inv, IntvarsStatementFailed
		}
		if !ok {
			return vloc, intvars, inv, IntvarsSrcInvariantViolated
		}
	}
	return vloc, intvars, inv, OK
}

// runInvariant evaluates loc's invariant, collecting any clock constraints
// it pushes into sink. An invariant is a guard-shaped program: it must
// never reset a clock, so any reset collected while running it marks the
// result tainted — spec.md §4.5's cross-contamination check — and the
// caller must report IntvarsStatementFailed rather than an ordinary
// invariant violation.
func runInvariant(sys *system.System, loc int, intvars []int64, bounds []vm.IntVarDomain, sink *[]vm.ClockConstraint) (ok bool, tainted bool, err error) {
	prog := sys.Locations[loc].Invariant
	if len(prog) == 0 {
		return true, false, nil
	}
	scratch := append([]int64(nil), intvars...)
	var noResets []vm.ClockReset
	res, err := vm.Run(prog, scratch, bounds, sink, &noResets)
	if err != nil {
		return false, false, err
	}
	if len(noResets) != 0 {
		return false, true, nil
	}
	return res != 0, false, nil
}

// Step computes the successor of (vloc, intvars) over vedge, following
// the fixed order: source invariant, syncprod application, guard,
// statement, target invariant. It returns the freshly collected clock
// constraints/resets and the resulting Status; on anything but OK, the
// returned vloc and intvars are nil.
func Step(sys *system.System, vloc syncprod.Vloc, intvars []int64, vedge syncprod.Vedge) (syncprod.Vloc, []int64, Result, Status) {
	bounds := intvarBounds(sys)
	var res Result

	for _, loc := range vloc {
		ok, tainted, _ := runInvariant(sys, loc, intvars, bounds, &res.SrcInvariant)
		if tainted {
			return nil, nil, res, IntvarsStatementFailed
		}
		if !ok {
			return nil, nil, res, IntvarsSrcInvariantViolated
		}
	}

	nvloc, err := syncprod.Next(sys, vloc, vedge)
	if err != nil {
		return nil, nil, res, IncompatibleEdge
	}

	participants := vedge.Participants()
	for _, pid := range participants {
		e := sys.Edges[vedge[pid]]
		if len(e.Guard) == 0 {
			continue
		}
		scratch := append([]int64(nil), intvars...)
		var noResets []vm.ClockReset
		result, err := vm.Run(e.Guard, scratch, bounds, &res.Guard, &noResets)
		if err != nil {
			return nil, nil, res, IntvarsGuardViolated
		}
		if len(noResets) != 0 {
			return nil, nil, res, IntvarsStatementFailed
		}
		if result == 0 {
			return nil, nil, res, IntvarsGuardViolated
		}
	}

	newIntvars := append([]int64(nil), intvars...)
	for _, pid := range participants {
		e := sys.Edges[vedge[pid]]
		if len(e.Statement) == 0 {
			continue
		}
		var noConstraints []vm.ClockConstraint
		if _, err := vm.Run(e.Statement, newIntvars, bounds, &noConstraints, &res.ClockReset); err != nil {
			return nil, nil, res, IntvarsStatementFailed
		}
		if len(noConstraints) != 0 {
			return nil, nil, res, IntvarsStatementFailed
		}
	}

	for _, loc := range nvloc {
		ok, tainted, _ := runInvariant(sys, loc, newIntvars, bounds, &res.TgtInvariant)
		if tainted {
			return nil, nil, res, IntvarsStatementFailed
		}
		if !ok {
			return nil, nil, res, IntvarsTgtInvariantViolated
		}
	}

	return nvloc, newIntvars, res, OK
}
