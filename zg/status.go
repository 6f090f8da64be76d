// SPDX-License-Identifier: MIT
package zg

import "github.com/ticktac-project/tchecker-go/ta"

// Status is the full state-status enumeration of spec.md §7, extending
// ta.Status with the clock-related codes produced once a zone is in
// play.
type Status int

const (
	OK Status = iota
	IncompatibleEdge
	IntvarsSrcInvariantViolated
	IntvarsGuardViolated
	IntvarsStatementFailed
	IntvarsTgtInvariantViolated
	ClocksSrcInvariantViolated
	ClocksGuardViolated
	ClocksTgtInvariantViolated
	ClocksEmptyZone
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case IncompatibleEdge:
		return "INCOMPATIBLE_EDGE"
	case IntvarsSrcInvariantViolated:
		return "INTVARS_SRC_INVARIANT_VIOLATED"
	case IntvarsGuardViolated:
		return "INTVARS_GUARD_VIOLATED"
	case IntvarsStatementFailed:
		return "INTVARS_STATEMENT_FAILED"
	case IntvarsTgtInvariantViolated:
		return "INTVARS_TGT_INVARIANT_VIOLATED"
	case ClocksSrcInvariantViolated:
		return "CLOCKS_SRC_INVARIANT_VIOLATED"
	case ClocksGuardViolated:
		return "CLOCKS_GUARD_VIOLATED"
	case ClocksTgtInvariantViolated:
		return "CLOCKS_TGT_INVARIANT_VIOLATED"
	case ClocksEmptyZone:
		return "CLOCKS_EMPTY_ZONE"
	default:
		return "UNKNOWN"
	}
}

func fromTA(s ta.Status) Status {
	switch s {
	case ta.OK:
		return OK
	case ta.IncompatibleEdge:
		return IncompatibleEdge
	case ta.IntvarsSrcInvariantViolated:
		return IntvarsSrcInvariantViolated
	case ta.IntvarsGuardViolated:
		return IntvarsGuardViolated
	case ta.IntvarsStatementFailed:
		return IntvarsStatementFailed
	case ta.IntvarsTgtInvariantViolated:
		return IntvarsTgtInvariantViolated
	default:
		return OK
	}
}
