// SPDX-License-Identifier: MIT
//
// Package zg composes syncprod, ta and refdbm into the zone-graph
// transition system of spec.md §4.6: syncprod enumerates candidate
// Vedges, ta.Step computes the integer-variable successor and collects
// clock constraints/resets, and this package applies them to a zone in
// the standard order (source invariant, time-elapse, guard, reset,
// target invariant, time-elapse, target invariant) before extrapolating.
//
// The extrapolation variant is selected the way tsp.SolveWithMatrix
// dispatches on opts.Algo: a plain Options value carrying an enum,
// switched over in Next.
package zg
