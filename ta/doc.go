// SPDX-License-Identifier: MIT
//
// Package ta implements the timed-automaton/FSM step of spec.md §4.5: the
// fixed five-step order (source invariant, syncprod application, guard,
// statement, target invariant) over a network's integer variables,
// collecting the clock constraints and resets each step contributes.
// Package zg composes Step's output with DBM operations to finish
// computing the successor zone.
//
// Grounded on original_source/include/tchecker/fsm/details/fsm.hh.
package ta
