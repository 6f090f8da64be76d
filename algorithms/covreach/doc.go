// SPDX-License-Identifier: MIT
//
// Package covreach implements covering reachability (spec.md §4.8): a
// waiting-list search over the zone-graph transition system that dedups
// states exactly (graph.FindGraph) or up to subsumption
// (graph.CoverGraph), stopping as soon as a node matching a
// caller-supplied target predicate is found.
//
// Grounded on bfs/bfs.go's waiting-queue/hook loop, generalized to a
// policy-selectable deque (breadth pop-front, depth pop-back) and wired
// to graph.CoverGraph for the covering variant.
package covreach
