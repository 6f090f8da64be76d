package covreach_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ticktac-project/tchecker-go/algorithms/covreach"
	"github.com/ticktac-project/tchecker-go/algorithms/internal/options"
	"github.com/ticktac-project/tchecker-go/graph"
	"github.com/ticktac-project/tchecker-go/system"
	"github.com/ticktac-project/tchecker-go/vm"
	"github.com/ticktac-project/tchecker-go/zg"
)

// counterSystem: one intvar x in [0,10], a self-loop on "up" incrementing
// x while x<5, so reachability from x==0 visits exactly x in {0,...,5}
// before the guard blocks further progress.
func counterSystem(t *testing.T) *system.System {
	t.Helper()
	b := system.NewBuilder()
	p0, err := b.AddProcess("p")
	require.NoError(t, err)
	_, err = b.AddClock("x") // unused but exercises clock bookkeeping
	require.NoError(t, err)
	xv, err := b.AddIntVar("x", 0, 10, 0)
	require.NoError(t, err)

	loc, err := b.AddLocation(p0, "l", true, false, false, nil)
	require.NoError(t, err)

	guard := vm.Program{
		{Op: vm.OpLoad, Operand: int64(xv)}, {Op: vm.OpPush, Operand: 5},
		{Op: vm.OpLt},
		{Op: vm.OpRet},
	}
	statement := vm.Program{
		{Op: vm.OpLoad, Operand: int64(xv)}, {Op: vm.OpPush, Operand: 1}, {Op: vm.OpAdd},
		{Op: vm.OpStore, Operand: int64(xv)},
		{Op: vm.OpPush, Operand: 1},
		{Op: vm.OpRet},
	}
	_, err = b.AddEdge(p0, loc, "up", loc, guard, statement)
	require.NoError(t, err)

	sys, err := b.Build()
	require.NoError(t, err)
	return sys
}

func TestRun_FindsTargetByValue(t *testing.T) {
	sys := counterSystem(t)
	target := func(s zg.State) bool { return len(s.IntVars) > 0 && s.IntVars[0] == 3 }

	res, err := covreach.Run(sys, target, options.WithOrder(options.Breadth))
	require.NoError(t, err)
	require.Equal(t, covreach.Reached, res.Status)
	require.Equal(t, int64(3), res.Graph.Pool.Get(res.Found).State.IntVars[0])
}

func TestRun_ExhaustsWhenTargetUnreachable(t *testing.T) {
	sys := counterSystem(t)
	target := func(s zg.State) bool { return len(s.IntVars) > 0 && s.IntVars[0] == 99 }

	res, err := covreach.Run(sys, target)
	require.NoError(t, err)
	require.Equal(t, covreach.Exhausted, res.Status)
	require.Equal(t, 6, res.Stats.Explored) // x = 0..5
}

func TestRun_CoveringCoversNothingWhenStatesDiffer(t *testing.T) {
	sys := counterSystem(t)
	target := func(zg.State) bool { return false }

	res, err := covreach.Run(sys, target, options.WithCovering(options.Cover))
	require.NoError(t, err)
	require.Equal(t, covreach.Exhausted, res.Status)
	require.Equal(t, 6, res.Stats.Explored)
	require.Equal(t, 0, res.Stats.Covered) // no two reachable states coincide here
}

func TestRun_MaxNodesStopsEarly(t *testing.T) {
	sys := counterSystem(t)
	target := func(zg.State) bool { return false }

	res, err := covreach.Run(sys, target, options.WithMaxNodes(2))
	require.NoError(t, err)
	require.Equal(t, covreach.Incomplete, res.Status)
	require.LessOrEqual(t, res.Stats.Explored, 3)
}

func TestRun_ActualEdgesLinkExploredStates(t *testing.T) {
	sys := counterSystem(t)
	target := func(s zg.State) bool { return len(s.IntVars) > 0 && s.IntVars[0] == 1 }

	res, err := covreach.Run(sys, target)
	require.NoError(t, err)
	require.Equal(t, covreach.Reached, res.Status)
	in := res.Graph.Pool.Get(res.Found).In()
	require.Len(t, in, 1)
	require.Equal(t, graph.Actual, res.Graph.Edge(in[0]).Kind)
}
