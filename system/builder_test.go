package system_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ticktac-project/tchecker-go/system"
	"github.com/ticktac-project/tchecker-go/vm"
)

func twoProcessCSMA(t *testing.T) *system.System {
	t.Helper()
	b := system.NewBuilder()

	p0, err := b.AddProcess("P0")
	require.NoError(t, err)
	p1, err := b.AddProcess("P1")
	require.NoError(t, err)

	l0a, err := b.AddLocation(p0, "idle", true, false, false, nil)
	require.NoError(t, err)
	l0b, err := b.AddLocation(p0, "busy", false, false, false, nil)
	require.NoError(t, err)
	l1a, err := b.AddLocation(p1, "idle", true, false, false, nil)
	require.NoError(t, err)
	l1b, err := b.AddLocation(p1, "busy", false, false, false, nil)
	require.NoError(t, err)

	tau := b.EventID("tau")
	_, err = b.AddEdge(p0, l0a, "tau", l0b, nil, nil)
	require.NoError(t, err)
	_, err = b.AddEdge(p1, l1a, "tau", l1b, nil, nil)
	require.NoError(t, err)

	_, err = b.AddSync(
		system.SyncConstraint{ProcessID: p0, Event: tau, Strength: system.Strong},
		system.SyncConstraint{ProcessID: p1, Event: tau, Strength: system.Strong},
	)
	require.NoError(t, err)

	sys, err := b.Build()
	require.NoError(t, err)
	return sys
}

func TestBuild_ComputesInitialLocationsAndIndexMaps(t *testing.T) {
	sys := twoProcessCSMA(t)
	require.Len(t, sys.Processes, 2)
	require.Equal(t, sys.Locations[sys.Processes[0].InitialLocation].Name, "idle")
	require.Len(t, sys.OutgoingEdges(sys.Processes[0].InitialLocation), 1)
}

func TestBuild_NoInitialLocationErrors(t *testing.T) {
	b := system.NewBuilder()
	p0, err := b.AddProcess("P0")
	require.NoError(t, err)
	_, err = b.AddLocation(p0, "only", false, false, false, nil)
	require.NoError(t, err)

	_, err = b.Build()
	require.ErrorIs(t, err, system.ErrNoInitialLocation)
}

func TestBuild_MultipleInitialLocationsErrors(t *testing.T) {
	b := system.NewBuilder()
	p0, err := b.AddProcess("P0")
	require.NoError(t, err)
	_, err = b.AddLocation(p0, "a", true, false, false, nil)
	require.NoError(t, err)
	_, err = b.AddLocation(p0, "b", true, false, false, nil)
	require.NoError(t, err)

	_, err = b.Build()
	require.ErrorIs(t, err, system.ErrMultipleInitialLocations)
}

func TestEventIsAsynchronous_TrueUnlessSynchronised(t *testing.T) {
	sys := twoProcessCSMA(t)
	tau, ok := sys.EventID("tau")
	require.True(t, ok)
	require.False(t, sys.EventIsAsynchronous(tau))

	b := system.NewBuilder()
	p0, err := b.AddProcess("P0")
	require.NoError(t, err)
	l0, err := b.AddLocation(p0, "a", true, false, false, nil)
	require.NoError(t, err)
	l1, err := b.AddLocation(p0, "b", false, false, false, nil)
	require.NoError(t, err)
	_, err = b.AddEdge(p0, l0, "lonely", l1, nil, nil)
	require.NoError(t, err)
	soloSys, err := b.Build()
	require.NoError(t, err)
	lonely, ok := soloSys.EventID("lonely")
	require.True(t, ok)
	require.True(t, soloSys.EventIsAsynchronous(lonely))
}

func TestAddSync_RejectsDuplicateProcess(t *testing.T) {
	b := system.NewBuilder()
	p0, err := b.AddProcess("P0")
	require.NoError(t, err)
	ev := b.EventID("a")
	_, err = b.AddSync(
		system.SyncConstraint{ProcessID: p0, Event: ev, Strength: system.Strong},
		system.SyncConstraint{ProcessID: p0, Event: ev, Strength: system.Weak},
	)
	require.ErrorIs(t, err, system.ErrAmbiguousSyncProcess)
}

func TestAddIntVar_RejectsOutOfBoundsInitial(t *testing.T) {
	b := system.NewBuilder()
	_, err := b.AddIntVar("x", 0, 10, 20)
	require.ErrorIs(t, err, system.ErrBadBounds)
}

func TestBuild_WeakSyncWithNonTrivialGuardErrors(t *testing.T) {
	b := system.NewBuilder()
	p0, err := b.AddProcess("P0")
	require.NoError(t, err)
	p1, err := b.AddProcess("P1")
	require.NoError(t, err)
	l0, err := b.AddLocation(p0, "a", true, false, false, nil)
	require.NoError(t, err)
	l1, err := b.AddLocation(p1, "a", true, false, false, nil)
	require.NoError(t, err)

	tau := b.EventID("tau")
	guard := vm.Program{{Op: vm.OpPush, Operand: 1}, {Op: vm.OpRet}}
	_, err = b.AddEdge(p0, l0, "tau", l0, guard, nil)
	require.NoError(t, err)
	_, err = b.AddEdge(p1, l1, "tau", l1, nil, nil)
	require.NoError(t, err)

	_, err = b.AddSync(
		system.SyncConstraint{ProcessID: p0, Event: tau, Strength: system.Weak},
		system.SyncConstraint{ProcessID: p1, Event: tau, Strength: system.Strong},
	)
	require.NoError(t, err)

	_, err = b.Build()
	require.ErrorIs(t, err, system.ErrWeakSyncNonTrivialGuard)
}

func TestBuild_WeakSyncWithTrivialGuardSucceeds(t *testing.T) {
	b := system.NewBuilder()
	p0, err := b.AddProcess("P0")
	require.NoError(t, err)
	p1, err := b.AddProcess("P1")
	require.NoError(t, err)
	l0, err := b.AddLocation(p0, "a", true, false, false, nil)
	require.NoError(t, err)
	l1, err := b.AddLocation(p1, "a", true, false, false, nil)
	require.NoError(t, err)

	tau := b.EventID("tau")
	_, err = b.AddEdge(p0, l0, "tau", l0, nil, nil)
	require.NoError(t, err)
	_, err = b.AddEdge(p1, l1, "tau", l1, nil, nil)
	require.NoError(t, err)

	_, err = b.AddSync(
		system.SyncConstraint{ProcessID: p0, Event: tau, Strength: system.Weak},
		system.SyncConstraint{ProcessID: p1, Event: tau, Strength: system.Strong},
	)
	require.NoError(t, err)

	_, err = b.Build()
	require.NoError(t, err)
}
