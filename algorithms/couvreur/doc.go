// SPDX-License-Identifier: MIT
//
// Package couvreur implements the iterative Couvreur SCC algorithm for
// generalised (and, as the single-acceptance-set special case, single)
// Büchi emptiness checking (spec.md §4.9): three explicit stacks
// (Roots, Active, Todo) replace the classic algorithm's recursion, so a
// state-space of unbounded depth never overflows the Go call stack.
//
// Grounded on dfs/cycle.go's explicit White/Gray/Black state machine and
// path stack, translated from recursive back-edge detection to the
// iterative Roots/Active/Todo stacks of spec.md §4.9; lazy successor
// expansion uses iter.Pull over syncprod.Outgoing the way Go 1.23
// range-over-func iterators are meant to be paused and resumed.
package couvreur
