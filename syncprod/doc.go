// SPDX-License-Identifier: MIT
//
// Package syncprod enumerates the outgoing Vedges of a Vloc per spec.md
// §4.4: one Vedge per enabled synchronisation (a Cartesian product of
// matching edges, one per participating process, strong constraints
// mandatory and weak constraints best-effort), plus one Vedge per
// independent (asynchronous) edge of every process.
//
// Grounded on original_source's synchronizer.hh for the enabled/Cartesian
// semantics, and on builder's nested row/col emission loops
// (impl_grid.go) for the axis-increment iteration shape, generalised to
// Go 1.23 iter.Seq.
package syncprod
