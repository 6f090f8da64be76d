// SPDX-License-Identifier: MIT
//
// Package simulation wraps a zone graph with a step/run driver for
// interactive exploration (spec.md §4.11): given a current state, list
// its enabled successors, advance along a chosen one (by index, or
// randomly), and record every transition taken into a reachability-
// style graph. Unlike covreach, simulation never covers; it keeps
// every state actually visited exactly as reached.
//
// Grounded on bfs/types.go's hook-driven single-step design (an
// OnExpand hook fires as the driver's current node changes, the way
// BFS's OnVisit fires per vertex) and tsp/rng.go's seeded-RNG idiom for
// RandomStep (seed 0 selects a fixed default, any other value is used
// verbatim, both wrapped in a single *rand.Rand owned by the driver).
package simulation
