// SPDX-License-Identifier: MIT
//
// Package path reconstructs and replays paths through the exploration
// graphs covreach, couvreur and ndfs build, the way a CLI or test would
// turn a witness NodeID or a lasso's edge-id slices back into a
// readable sequence of states.
//
// TreeEdgeTo generalizes bfs.BFSResult.PathTo's parent-pointer
// backtrack: instead of following a separately-recorded string-keyed
// parent map, it follows each node's own first incoming edge, which is
// exactly the edge that first discovered it during exploration. Of
// then replays any edge-id slice — a TreeEdgeTo result, or one of
// ndfs.Result's Prefix/Cycle slices — into the states and labels along
// it.
package path
