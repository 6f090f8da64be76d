// SPDX-License-Identifier: MIT
//
// Package graph implements the arena, sharing and exploration-graph cores
// of spec.md §4.7: a pool-allocated arena of Node[S] values, a
// content-addressed sharing table that dedups structurally equal states,
// a find-graph (hash set of nodes, for plain reachability) and a
// cover-graph (bucketed table of LE-incomparable representatives, for
// reachability with subsumption), plus the directed Graph[S,L] core that
// owns both node and edge storage and the two edge kinds (actual,
// subsumption) of spec.md §3.
//
// Grounded on core's map-based vertex/edge storage and adjacency lists,
// generalised from string-keyed maps to a generic, pool-indexed arena,
// and on prim_kruskal's flat index-array idiom (every element identified
// by its slice position, not a pointer).
package graph
