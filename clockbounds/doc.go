// SPDX-License-Identifier: MIT
//
// Package clockbounds holds the per-location and global L, U and M
// extrapolation bound maps (spec.md §4.3): clock -> NO_BOUND union Z, stored
// as flat []int64 tables the way gridgraph.GridGraph stores its cell values,
// indexed by (location, clock) rather than by (row,col).
package clockbounds
