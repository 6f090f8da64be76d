// SPDX-License-Identifier: MIT
//
// Package options holds the functional-options type shared by
// covreach, couvreur and ndfs: cancellation, traversal order, node/edge
// filtering predicates and progress hooks, so the three algorithms
// accept a uniform call shape over the same zone-graph transition
// system.
//
// Grounded on dfs/types.go and bfs/types.go's Option/DefaultOptions
// functional-options pattern.
package options
