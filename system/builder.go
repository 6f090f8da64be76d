// SPDX-License-Identifier: MIT
package system

import (
	"fmt"

	"github.com/ticktac-project/tchecker-go/vm"
)

// Builder accumulates declarations and freezes them into a System on
// Build, the way builder.BuildGraph accumulates Constructor calls over a
// core.Graph: validate early, return sentinel errors, never panic.
type Builder struct {
	processes []Process
	locations []Location
	edges     []Edge
	events    []string
	eventID   map[string]int
	labels    []string
	labelID   map[string]int
	intvars   []IntVar
	intvarID  map[string]int
	clocks    []string
	clockID   map[string]int
	syncs     []Sync
}

// NewBuilder returns a Builder seeded with the implicit reference clock
// "0" at index 0.
func NewBuilder() *Builder {
	return &Builder{
		eventID:  make(map[string]int),
		labelID:  make(map[string]int),
		intvarID: make(map[string]int),
		clocks:   []string{"0"},
		clockID:  map[string]int{"0": 0},
	}
}

// AddProcess declares a new process and returns its id.
func (b *Builder) AddProcess(name string) (int, error) {
	for _, p := range b.processes {
		if p.Name == name {
			return 0, fmt.Errorf("AddProcess %q: %w", name, ErrDuplicateName)
		}
	}
	id := len(b.processes)
	b.processes = append(b.processes, Process{ID: id, Name: name})
	return id, nil
}

// AddClock declares a new offset clock and returns its id (always >= 1).
func (b *Builder) AddClock(name string) (int, error) {
	if _, ok := b.clockID[name]; ok {
		return 0, fmt.Errorf("AddClock %q: %w", name, ErrDuplicateName)
	}
	id := len(b.clocks)
	b.clocks = append(b.clocks, name)
	b.clockID[name] = id
	return id, nil
}

// AddIntVar declares a bounded integer variable and returns its id.
func (b *Builder) AddIntVar(name string, min, max, initial int64) (int, error) {
	if _, ok := b.intvarID[name]; ok {
		return 0, fmt.Errorf("AddIntVar %q: %w", name, ErrDuplicateName)
	}
	if min > max || initial < min || initial > max {
		return 0, fmt.Errorf("AddIntVar %q: %w", name, ErrBadBounds)
	}
	id := len(b.intvars)
	b.intvars = append(b.intvars, IntVar{Name: name, Min: min, Max: max, InitialValue: initial})
	b.intvarID[name] = id
	return id, nil
}

func (b *Builder) internEvent(name string) int {
	if id, ok := b.eventID[name]; ok {
		return id
	}
	id := len(b.events)
	b.events = append(b.events, name)
	b.eventID[name] = id
	return id
}

// AddLabel interns a label name and returns its id.
func (b *Builder) AddLabel(name string) int {
	if id, ok := b.labelID[name]; ok {
		return id
	}
	id := len(b.labels)
	b.labels = append(b.labels, name)
	b.labelID[name] = id
	return id
}

// AddLocation declares a location owned by process pid.
func (b *Builder) AddLocation(pid int, name string, initial, committed, urgent bool, invariant vm.Program) (int, error) {
	if pid < 0 || pid >= len(b.processes) {
		return 0, fmt.Errorf("AddLocation %q: %w", name, ErrUnknownProcess)
	}
	id := len(b.locations)
	b.locations = append(b.locations, Location{
		ID: id, ProcessID: pid, Name: name,
		Initial: initial, Committed: committed, Urgent: urgent,
		Invariant: invariant,
	})
	b.processes[pid].Locations = append(b.processes[pid].Locations, id)
	return id, nil
}

// AddEdge declares a transition of process pid from src to tgt over event,
// guarded by guard and updated by statement.
func (b *Builder) AddEdge(pid, src int, event string, tgt int, guard, statement vm.Program) (int, error) {
	if pid < 0 || pid >= len(b.processes) {
		return 0, fmt.Errorf("AddEdge: %w", ErrUnknownProcess)
	}
	if !b.ownsLocation(pid, src) || !b.ownsLocation(pid, tgt) {
		return 0, fmt.Errorf("AddEdge: %w", ErrUnknownLocation)
	}
	id := len(b.edges)
	e := Edge{
		ID: id, ProcessID: pid, Src: src, Tgt: tgt,
		Event: b.internEvent(event), Guard: guard, Statement: statement,
	}
	b.edges = append(b.edges, e)
	b.processes[pid].OutEdges = append(b.processes[pid].OutEdges, id)
	return id, nil
}

func (b *Builder) ownsLocation(pid, loc int) bool {
	if loc < 0 || loc >= len(b.locations) {
		return false
	}
	return b.locations[loc].ProcessID == pid
}

// AddSync declares a synchronisation vector. Each constraint's Event must
// already be a valid id, obtained via EventID (typically before any edge
// using that event has been declared).
func (b *Builder) AddSync(constraints ...SyncConstraint) (int, error) {
	seen := make(map[int]struct{}, len(constraints))
	for _, c := range constraints {
		if c.ProcessID < 0 || c.ProcessID >= len(b.processes) {
			return 0, fmt.Errorf("AddSync: %w", ErrUnknownProcess)
		}
		if c.Event < 0 || c.Event >= len(b.events) {
			return 0, fmt.Errorf("AddSync: %w", ErrUnknownEvent)
		}
		if _, dup := seen[c.ProcessID]; dup {
			return 0, fmt.Errorf("AddSync: %w", ErrAmbiguousSyncProcess)
		}
		seen[c.ProcessID] = struct{}{}
	}
	cs := append([]SyncConstraint(nil), constraints...)
	id := len(b.syncs)
	b.syncs = append(b.syncs, Sync{ID: id, Constraints: cs})
	return id, nil
}

// EventID interns an event name (declaring it if unseen) and returns its
// id, for callers building SyncConstraint values before any edge using
// that event has been declared.
func (b *Builder) EventID(name string) int {
	return b.internEvent(name)
}

// Build validates that every process has exactly one initial location,
// computes the cached index maps, and returns the frozen System.
func (b *Builder) Build() (*System, error) {
	processes := make([]Process, len(b.processes))
	copy(processes, b.processes)
	for i := range processes {
		initial := -1
		for _, locID := range processes[i].Locations {
			if !b.locations[locID].Initial {
				continue
			}
			if initial != -1 {
				return nil, fmt.Errorf("Build process %q: %w", processes[i].Name, ErrMultipleInitialLocations)
			}
			initial = locID
		}
		if initial == -1 {
			return nil, fmt.Errorf("Build process %q: %w", processes[i].Name, ErrNoInitialLocation)
		}
		processes[i].InitialLocation = initial
	}

	outByLocation := make(map[int][]int, len(b.locations))
	inByLocation := make(map[int][]int, len(b.locations))
	for _, e := range b.edges {
		outByLocation[e.Src] = append(outByLocation[e.Src], e.ID)
		inByLocation[e.Tgt] = append(inByLocation[e.Tgt], e.ID)
	}

	eventIsAsync := make([]bool, len(b.events))
	for i := range eventIsAsync {
		eventIsAsync[i] = true
	}
	eventIsWeak := make([]bool, len(b.events))
	for _, s := range b.syncs {
		for _, c := range s.Constraints {
			eventIsAsync[c.Event] = false
			if c.Strength == Weak {
				eventIsWeak[c.Event] = true
			}
		}
	}
	for _, e := range b.edges {
		if eventIsWeak[e.Event] && len(e.Guard) != 0 {
			return nil, fmt.Errorf("Build edge %d (event %q): %w", e.ID, b.events[e.Event], ErrWeakSyncNonTrivialGuard)
		}
	}

	eventID := make(map[string]int, len(b.eventID))
	for k, v := range b.eventID {
		eventID[k] = v
	}
	labelID := make(map[string]int, len(b.labelID))
	for k, v := range b.labelID {
		labelID[k] = v
	}

	return &System{
		Processes:     processes,
		Locations:     append([]Location(nil), b.locations...),
		Edges:         append([]Edge(nil), b.edges...),
		Events:        append([]string(nil), b.events...),
		Labels:        append([]string(nil), b.labels...),
		IntVars:       append([]IntVar(nil), b.intvars...),
		Clocks:        append([]string(nil), b.clocks...),
		Syncs:         append([]Sync(nil), b.syncs...),
		outByLocation: outByLocation,
		inByLocation:  inByLocation,
		eventIsAsync:  eventIsAsync,
		eventID:       eventID,
		labelID:       labelID,
	}, nil
}
