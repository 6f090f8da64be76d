// SPDX-License-Identifier: MIT
// Package dbm: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dbm
// package. Operations return them wrapped with method context, so callers
// match them via errors.Is. ScaleUp and ScaleDown reject a non-positive
// factor with a plain error that wraps no sentinel. No algorithm should
// panic on a malformed zone.

package dbm

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dbm: ..." for consistency and to allow
// easy grepping across logs. Operations wrap them with %w through
// dbmErrorf ("dbm.<Method>: ...") or fmt.Errorf, so callers use errors.Is
// to match.
//
// ERROR PRIORITY (documented):
// shape/index -> dimension mismatch -> clock out of range -> arithmetic
// range (overflow/underflow) -> structural violations (non-tight input).

var (
	// ErrBadShape is returned when a requested dimension is invalid (dim<1).
	ErrBadShape = errors.New("dbm: invalid dimension")

	// ErrDimensionMismatch indicates two DBMs of incompatible dimension were
	// combined (e.g. Intersection of differently-sized zones).
	ErrDimensionMismatch = errors.New("dbm: dimension mismatch")

	// ErrClockOutOfRange indicates a clock index outside [0,dim).
	ErrClockOutOfRange = errors.New("dbm: clock index out of range")

	// ErrNegativeValue indicates a reset/value argument that must be
	// non-negative was negative.
	ErrNegativeValue = errors.New("dbm: negative value not allowed")

	// ErrOverflow indicates a scale/sum operation exceeded MaxValue.
	ErrOverflow = errors.New("dbm: arithmetic overflow")

	// ErrUnderflow indicates a scale/sum operation exceeded MinValue.
	ErrUnderflow = errors.New("dbm: arithmetic underflow")

	// ErrNotDivisible indicates ScaleDown was asked to divide by a factor
	// that does not evenly divide every finite cell.
	ErrNotDivisible = errors.New("dbm: not divisible by scale factor")

	// ErrEmptyZone indicates an operation that requires a non-empty zone
	// (e.g. ConstrainToSingleValuation) was given an empty one.
	ErrEmptyZone = errors.New("dbm: zone is empty")
)
