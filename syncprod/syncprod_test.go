package syncprod_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ticktac-project/tchecker-go/syncprod"
	"github.com/ticktac-project/tchecker-go/system"
)

func twoProcessSyncedSystem(t *testing.T) *system.System {
	t.Helper()
	b := system.NewBuilder()
	p0, err := b.AddProcess("P0")
	require.NoError(t, err)
	p1, err := b.AddProcess("P1")
	require.NoError(t, err)

	l0a, _ := b.AddLocation(p0, "a", true, false, false, nil)
	l0b, _ := b.AddLocation(p0, "b", false, false, false, nil)
	l1a, _ := b.AddLocation(p1, "a", true, false, false, nil)
	l1b, _ := b.AddLocation(p1, "b", false, false, false, nil)

	sync := b.EventID("sync")
	_, err = b.AddEdge(p0, l0a, "sync", l0b, nil, nil)
	require.NoError(t, err)
	_, err = b.AddEdge(p1, l1a, "sync", l1b, nil, nil)
	require.NoError(t, err)
	_, err = b.AddEdge(p0, l0a, "solo", l0a, nil, nil)
	require.NoError(t, err)

	_, err = b.AddSync(
		system.SyncConstraint{ProcessID: p0, Event: sync, Strength: system.Strong},
		system.SyncConstraint{ProcessID: p1, Event: sync, Strength: system.Strong},
	)
	require.NoError(t, err)

	sys, err := b.Build()
	require.NoError(t, err)
	return sys
}

func TestOutgoing_YieldsSyncedAndAsynchronousEdges(t *testing.T) {
	sys := twoProcessSyncedSystem(t)
	vloc := syncprod.InitialVloc(sys)

	var edges []syncprod.Vedge
	for ve := range syncprod.Outgoing(sys, vloc) {
		edges = append(edges, ve)
	}
	// one synced Vedge (both processes fire "sync") + one asynchronous "solo" Vedge
	require.Len(t, edges, 2)
}

func TestNext_MovesOnlyParticipants(t *testing.T) {
	sys := twoProcessSyncedSystem(t)
	vloc := syncprod.InitialVloc(sys)

	var synced syncprod.Vedge
	for ve := range syncprod.Outgoing(sys, vloc) {
		if len(ve.Participants()) == 2 {
			synced = ve
			break
		}
	}
	require.NotNil(t, synced)

	nvloc, err := syncprod.Next(sys, vloc, synced)
	require.NoError(t, err)
	require.NotEqual(t, vloc[0], nvloc[0])
	require.NotEqual(t, vloc[1], nvloc[1])
}

func TestNext_IncompatibleEdgeErrors(t *testing.T) {
	sys := twoProcessSyncedSystem(t)
	vloc := syncprod.InitialVloc(sys)

	bogus := syncprod.NewVedge(len(sys.Processes))
	bogus[0] = sys.Processes[0].OutEdges[0]
	// corrupt vloc so process 0 is NOT at the edge's source location
	movedVloc := vloc.Clone()
	movedVloc[0] = sys.Edges[sys.Processes[0].OutEdges[0]].Tgt

	_, err := syncprod.Next(sys, movedVloc, bogus)
	require.ErrorIs(t, err, syncprod.ErrIncompatibleEdge)
}

func TestOutgoing_WeakMatchRequireAllDropsPartialSync(t *testing.T) {
	b := system.NewBuilder()
	p0, _ := b.AddProcess("P0")
	p1, _ := b.AddProcess("P1")
	l0a, _ := b.AddLocation(p0, "a", true, false, false, nil)
	l0b, _ := b.AddLocation(p0, "b", false, false, false, nil)
	_, _ = b.AddLocation(p1, "a", true, false, false, nil)

	ev := b.EventID("weakev")
	_, err := b.AddEdge(p0, l0a, "weakev", l0b, nil, nil)
	require.NoError(t, err)
	// process 1 has no edge on "weakev"

	_, err = b.AddSync(
		system.SyncConstraint{ProcessID: p0, Event: ev, Strength: system.Strong},
		system.SyncConstraint{ProcessID: p1, Event: ev, Strength: system.Weak},
	)
	require.NoError(t, err)
	sys, err := b.Build()
	require.NoError(t, err)

	vloc := syncprod.InitialVloc(sys)

	var partial []syncprod.Vedge
	for ve := range syncprod.Outgoing(sys, vloc) {
		partial = append(partial, ve)
	}
	require.Len(t, partial, 1) // strong matched, weak dropped: still enabled

	var strict []syncprod.Vedge
	for ve := range syncprod.Outgoing(sys, vloc, syncprod.WithWeakMatchMode(syncprod.WeakMatchRequireAll)) {
		strict = append(strict, ve)
	}
	require.Len(t, strict, 0) // weak now mandatory and unmatched: sync disabled
}
