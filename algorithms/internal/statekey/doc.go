// SPDX-License-Identifier: MIT
//
// Package statekey provides the hash/equality/inclusion triple covreach,
// couvreur and ndfs all need to dedup zg.State values in a
// graph.FindGraph or graph.CoverGraph: a state has no natural scalar key,
// so its discrete part (Vloc, IntVars) and its zone's cells are folded
// into one digest.
package statekey
