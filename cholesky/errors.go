// SPDX-License-Identifier: MIT
// Package cholesky: sentinel error set.
// All fallible operations return these sentinels and tests check them via
// errors.Is. Panics are reserved for programmer errors in private helpers.

package cholesky

import "errors"

var (
	// ErrBadRank is returned by New when the requested capacity is not positive.
	ErrBadRank = errors.New("cholesky: max rank must be > 0")

	// ErrRankExceeded is returned by Append when the factor is already at
	// full capacity. For the solver this is the natural "degrees of freedom
	// exhausted" signal, not a fatal condition.
	ErrRankExceeded = errors.New("cholesky: rank exceeds capacity")

	// ErrBadVector indicates a right-hand side or update column whose length
	// does not match the current rank (Solve: rank, Append: rank+1).
	ErrBadVector = errors.New("cholesky: vector length mismatch")

	// ErrNotPositiveDefinite is returned by Append when the updated pivot is
	// not strictly positive, i.e. the new basis vector is (numerically)
	// linearly dependent on the current basis. The factor is unchanged.
	ErrNotPositiveDefinite = errors.New("cholesky: matrix not positive definite")

	// ErrOutOfRange indicates a basis position outside [0, rank).
	ErrOutOfRange = errors.New("cholesky: position out of range")
)
