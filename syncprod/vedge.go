// SPDX-License-Identifier: MIT
package syncprod

// NoEdge marks a process as not participating in a Vedge.
const NoEdge = -1

// Vedge is a fixed-size vector mapping each process id to the edge id it
// fires, or NoEdge if it does not participate (spec.md §3). No process
// appears in more than one Vedge slot by construction (the slot is the
// process id itself), so "no process appears more than once" holds
// trivially for this representation.
type Vedge []int

// NewVedge returns a Vedge with every process marked non-participating.
func NewVedge(numProcesses int) Vedge {
	v := make(Vedge, numProcesses)
	for i := range v {
		v[i] = NoEdge
	}
	return v
}

// Clone returns an independent copy.
func (e Vedge) Clone() Vedge {
	out := make(Vedge, len(e))
	copy(out, e)
	return out
}

// Participants returns the process ids that fire an edge in e.
func (e Vedge) Participants() []int {
	out := make([]int, 0, len(e))
	for pid, eid := range e {
		if eid != NoEdge {
			out = append(out, pid)
		}
	}
	return out
}
