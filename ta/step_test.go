package ta_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ticktac-project/tchecker-go/syncprod"
	"github.com/ticktac-project/tchecker-go/system"
	"github.com/ticktac-project/tchecker-go/ta"
	"github.com/ticktac-project/tchecker-go/vm"
)

func counterSystem(t *testing.T) *system.System {
	t.Helper()
	b := system.NewBuilder()
	p0, err := b.AddProcess("counter")
	require.NoError(t, err)
	_, err = b.AddIntVar("x", 0, 10, 0)
	require.NoError(t, err)

	loc, err := b.AddLocation(p0, "loc", true, false, false, nil)
	require.NoError(t, err)

	guard := vm.Program{
		{Op: vm.OpLoad, Operand: 0},
		{Op: vm.OpPush, Operand: 5},
		{Op: vm.OpLt},
		{Op: vm.OpRet},
	}
	statement := vm.Program{
		{Op: vm.OpLoad, Operand: 0},
		{Op: vm.OpPush, Operand: 1},
		{Op: vm.OpAdd},
		{Op: vm.OpStore, Operand: 0},
		{Op: vm.OpRet},
	}
	_, err = b.AddEdge(p0, loc, "tick", loc, guard, statement)
	require.NoError(t, err)

	sys, err := b.Build()
	require.NoError(t, err)
	return sys
}

func firstVedge(t *testing.T, sys *system.System, vloc syncprod.Vloc) syncprod.Vedge {
	t.Helper()
	for ve := range syncprod.Outgoing(sys, vloc) {
		return ve
	}
	t.Fatal("no outgoing vedge")
	return nil
}

func TestInitial_SetsInitialValue(t *testing.T) {
	sys := counterSystem(t)
	_, intvars, _, status := ta.Initial(sys)
	require.Equal(t, ta.OK, status)
	require.Equal(t, int64(0), intvars[0])
}

func TestStep_AppliesStatementUnderGuard(t *testing.T) {
	sys := counterSystem(t)
	vloc, intvars, _, status := ta.Initial(sys)
	require.Equal(t, ta.OK, status)

	vedge := firstVedge(t, sys, vloc)
	nvloc, nintvars, _, st := ta.Step(sys, vloc, intvars, vedge)
	require.Equal(t, ta.OK, st)
	require.Equal(t, int64(1), nintvars[0])
	require.Equal(t, vloc, nvloc) // self-loop, same location
}

func TestStep_GuardViolationStopsAtBound(t *testing.T) {
	sys := counterSystem(t)
	vloc, intvars, _, status := ta.Initial(sys)
	require.Equal(t, ta.OK, status)

	for i := 0; i < 5; i++ {
		vedge := firstVedge(t, sys, vloc)
		nvloc, nintvars, _, st := ta.Step(sys, vloc, intvars, vedge)
		require.Equal(t, ta.OK, st)
		vloc, intvars = nvloc, nintvars
	}
	require.Equal(t, int64(5), intvars[0])

	vedge := firstVedge(t, sys, vloc)
	_, _, _, st := ta.Step(sys, vloc, intvars, vedge)
	require.Equal(t, ta.IntvarsGuardViolated, st)
}

// statementPushesClockConstraintSystem: an edge whose statement illegally
// pushes a clock constraint instead of only resetting clocks, exercising
// spec.md §4.5's cross-contamination check.
func statementPushesClockConstraintSystem(t *testing.T) *system.System {
	t.Helper()
	b := system.NewBuilder()
	p0, err := b.AddProcess("p")
	require.NoError(t, err)
	loc, err := b.AddLocation(p0, "l", true, false, false, nil)
	require.NoError(t, err)

	statement := vm.Program{
		{Op: vm.OpPush, Operand: 0}, // x
		{Op: vm.OpPush, Operand: 0}, // y
		{Op: vm.OpPush, Operand: 0}, // cmp (Le)
		{Op: vm.OpPush, Operand: 1}, // c
		{Op: vm.OpPushClockConstraint},
		{Op: vm.OpPush, Operand: 1},
		{Op: vm.OpRet},
	}
	_, err = b.AddEdge(p0, loc, "e", loc, nil, statement)
	require.NoError(t, err)

	sys, err := b.Build()
	require.NoError(t, err)
	return sys
}

func TestStep_StatementPushingClockConstraintFails(t *testing.T) {
	sys := statementPushesClockConstraintSystem(t)
	vloc, intvars, _, status := ta.Initial(sys)
	require.Equal(t, ta.OK, status)

	vedge := firstVedge(t, sys, vloc)
	_, _, _, st := ta.Step(sys, vloc, intvars, vedge)
	require.Equal(t, ta.IntvarsStatementFailed, st)
}

// guardResetsClockSystem: an edge whose guard illegally pushes a clock
// reset instead of only constraints, the other half of the same
// cross-contamination check.
func guardResetsClockSystem(t *testing.T) *system.System {
	t.Helper()
	b := system.NewBuilder()
	p0, err := b.AddProcess("p")
	require.NoError(t, err)
	loc, err := b.AddLocation(p0, "l", true, false, false, nil)
	require.NoError(t, err)

	guard := vm.Program{
		{Op: vm.OpPush, Operand: 0}, // x
		{Op: vm.OpPush, Operand: 0}, // y
		{Op: vm.OpPush, Operand: 0}, // c
		{Op: vm.OpPushClockReset},
		{Op: vm.OpPush, Operand: 1},
		{Op: vm.OpRet},
	}
	_, err = b.AddEdge(p0, loc, "e", loc, guard, nil)
	require.NoError(t, err)

	sys, err := b.Build()
	require.NoError(t, err)
	return sys
}

func TestStep_GuardResettingClockFails(t *testing.T) {
	sys := guardResetsClockSystem(t)
	vloc, intvars, _, status := ta.Initial(sys)
	require.Equal(t, ta.OK, status)

	vedge := firstVedge(t, sys, vloc)
	_, _, _, st := ta.Step(sys, vloc, intvars, vedge)
	require.Equal(t, ta.IntvarsStatementFailed, st)
}
