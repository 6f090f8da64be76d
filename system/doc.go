// SPDX-License-Identifier: MIT
//
// Package system models the external input object of spec.md §6: a
// compiled network of timed automata built from processes, locations,
// edges, synchronisations and cached index maps. It is the out-of-scope
// parser/typechecker's deliverable, consumed by package syncprod and ta.
//
// Construction follows builder's BuildGraph(gopts, bopts, cons...) shape:
// a Builder accumulates declarations and sentinel-errors out on conflicts,
// then Build() freezes the result and computes the cached index maps.
package system
