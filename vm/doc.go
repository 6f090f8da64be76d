// SPDX-License-Identifier: MIT
//
// Package vm implements the bytecode stack machine contract of spec.md §6:
// a minimal interpreter for the guard/invariant/statement programs
// produced by the out-of-scope compiler. Only the contract is in scope —
// compiling source expressions to a Program is not; callers build a
// Program directly (as tests do) or receive one from an external
// compiler.
package vm
