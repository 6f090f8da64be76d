// SPDX-License-Identifier: MIT
//
// Package ndfs implements nested depth-first search for Büchi
// emptiness with lasso-path reconstruction (spec.md §4.10): a blue DFS
// explores the zone graph looking for a final node, and on every
// post-order visit of a final node a red DFS looks for a path back to
// a node still on the blue stack (cyan), closing a lasso.
//
// Grounded on original_source's lasso_path_extraction.hh: the
// three-colour cyan/blue/red node sets, the single-stack
// fully_explored()/current_edge() iteration idiom, and the
// prefix/cycle split of the returned edge sequence (loop root = target
// of the last edge, walk the prefix from the first edge until its
// target is the loop root) are translated here node-for-node. Unlike
// that header, which walks an already fully-built graph, this package
// expands the transition system lazily and caches each node's
// successors the first time it is visited so that the blue and red
// passes over the same node never run the transition relation or add
// graph edges twice.
package ndfs
