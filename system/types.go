// SPDX-License-Identifier: MIT
package system

import "github.com/ticktac-project/tchecker-go/vm"

// Strength classifies a synchronisation constraint per spec.md §4.4.
type Strength int

const (
	Strong Strength = iota
	Weak
)

// Location is one control state of one process.
type Location struct {
	ID        int
	ProcessID int
	Name      string
	Initial   bool
	Committed bool
	Urgent    bool
	Invariant vm.Program
}

// Edge is a transition of one process: src_loc -event-> tgt_loc, guarded
// and updated by bytecode, per spec.md §6.
type Edge struct {
	ID        int
	ProcessID int
	Src       int // Location.ID
	Tgt       int // Location.ID
	Event     int // index into System.Events
	Guard     vm.Program
	Statement vm.Program
}

// Process is an ordered, named component of the network.
type Process struct {
	ID              int
	Name            string
	Locations       []int // Location.ID, in declaration order
	InitialLocation int   // Location.ID; set by Build
	OutEdges        []int // Edge.ID, in declaration order
}

// SyncConstraint is one (pid, event, strength) triple of a synchronisation.
type SyncConstraint struct {
	ProcessID int
	Event     int
	Strength  Strength
}

// Sync is a synchronisation vector: a list of per-process constraints
// that must (strong) or may (weak) fire together.
type Sync struct {
	ID          int
	Constraints []SyncConstraint
}

// IntVar is a bounded integer variable.
type IntVar struct {
	Name         string
	Min, Max     int64
	InitialValue int64
}

// System is the frozen, typed network of timed automata consumed by
// packages syncprod and ta: spec.md §6's "input system object".
type System struct {
	Processes []Process
	Locations []Location
	Edges     []Edge
	Events    []string
	Labels    []string
	IntVars   []IntVar
	Clocks    []string // Clocks[0] is the implicit reference clock "0"
	Syncs     []Sync

	// cached index maps, built by Build.
	outByLocation map[int][]int // Location.ID -> []Edge.ID
	inByLocation  map[int][]int // Location.ID -> []Edge.ID
	eventIsAsync  []bool        // indexed by event id
	eventID       map[string]int
	labelID       map[string]int
}

// NumClocks is the DBM/RefDBM dimension this system requires: the
// reference clock plus every declared offset clock.
func (s *System) NumClocks() int { return len(s.Clocks) }

// OutgoingEdges returns the edge ids leaving loc, in declaration order.
func (s *System) OutgoingEdges(loc int) []int { return s.outByLocation[loc] }

// IncomingEdges returns the edge ids entering loc, in declaration order.
func (s *System) IncomingEdges(loc int) []int { return s.inByLocation[loc] }

// EventIsAsynchronous reports whether no synchronisation vector mentions
// event: such events fire independently per spec.md §4.4.
func (s *System) EventIsAsynchronous(event int) bool {
	if event < 0 || event >= len(s.eventIsAsync) {
		return false
	}
	return s.eventIsAsync[event]
}

// EventID looks up an event's index by name.
func (s *System) EventID(name string) (int, bool) {
	id, ok := s.eventID[name]
	return id, ok
}

// LabelID looks up a label's index by name.
func (s *System) LabelID(name string) (int, bool) {
	id, ok := s.labelID[name]
	return id, ok
}
