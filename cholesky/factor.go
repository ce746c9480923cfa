// SPDX-License-Identifier: MIT

// Package cholesky: the Factor type and its three mutating operations.
// Storage is a fixed-capacity row-major flat slice holding the lower
// triangle of L; rank grows and shrinks within that capacity. All loop
// orders are fixed, so identical update sequences produce identical
// factors bit for bit.

package cholesky

import "github.com/katalvlaran/larspath/scalar"

// ZeroPivot is the sentinel compared against the updated diagonal entry in
// Append: a pivot ≤ ZeroPivot means the Gram matrix lost positive
// definiteness and the update is rejected.
const ZeroPivot = 0

// Factor is an incrementally maintained Cholesky factorization L·Lᵀ = G of
// a symmetric positive-definite k×k Gram matrix, 0 ≤ k ≤ maxRank.
// The zero value is not usable; construct with New.
type Factor[F scalar.Float] struct {
	max  int // capacity: maximum rank the flat storage can hold
	rank int // current rank k
	l    []F // row-major max×max storage; entries above the diagonal are zero
}

// New creates an empty factor able to grow to maxRank basis vectors.
// Stage 1 (Validate): maxRank must be positive.
// Stage 2 (Prepare): allocate the flat triangle storage once; no further
// allocation happens over the factor's lifetime.
// Complexity: O(maxRank²) memory, O(maxRank²) time for the zero fill.
func New[F scalar.Float](maxRank int) (*Factor[F], error) {
	if maxRank <= 0 {
		return nil, ErrBadRank
	}

	return &Factor[F]{max: maxRank, l: make([]F, maxRank*maxRank)}, nil
}

// Rank returns the number of basis vectors currently factored.
// Complexity: O(1).
func (f *Factor[F]) Rank() int {
	return f.rank
}

// Append grows the factorization by one basis vector.
//
// col carries the new vector's inner products against the current basis in
// order, with its self inner product as the final entry; len(col) must be
// rank+1. The new row of L is obtained by one forward substitution
//
//	L·l = col[:rank],  l_kk = √(col[rank] − lᵀl)
//
// and the factor is left unchanged when the updated pivot is not strictly
// positive (ErrNotPositiveDefinite) — the caller treats that as a failed
// activation, not a fatal state.
//
// Errors: ErrRankExceeded, ErrBadVector, ErrNotPositiveDefinite.
// Complexity: O(rank²).
func (f *Factor[F]) Append(col []F) error {
	// Validate capacity and update-column length.
	if f.rank >= f.max {
		return ErrRankExceeded
	}
	if len(col) != f.rank+1 {
		return ErrBadVector
	}

	k := f.rank
	row := f.l[k*f.max : k*f.max+k+1]

	// Forward substitution: L·l = col[:k], written directly into row k.
	var i, j int
	var sum F
	for i = 0; i < k; i++ {
		sum = col[i]
		for j = 0; j < i; j++ {
			sum -= f.l[i*f.max+j] * row[j]
		}
		row[i] = sum / f.l[i*f.max+i]
	}

	// New pivot: d = col[k] − lᵀl must stay strictly positive.
	sum = col[k]
	for j = 0; j < k; j++ {
		sum -= row[j] * row[j]
	}
	if sum <= ZeroPivot {
		// Row k is scratch beyond the current rank; clear it and reject.
		for j = 0; j <= k; j++ {
			row[j] = 0
		}

		return ErrNotPositiveDefinite
	}

	row[k] = scalar.Sqrt(sum)
	f.rank++

	return nil
}

// Remove shrinks the factorization by deleting the basis vector at pos.
//
// Rows below pos shift up, leaving one spurious superdiagonal entry per
// shifted row; a sweep of Givens rotations over column pairs (r, r+1)
// restores lower triangularity. This is the standard O(rank²) downdate and
// mirrors how active-set least-squares codes drop a column mid-factorization.
//
// Errors: ErrOutOfRange.
// Complexity: O(rank²).
func (f *Factor[F]) Remove(pos int) error {
	if pos < 0 || pos >= f.rank {
		return ErrOutOfRange
	}

	// Shift rows pos+1..rank-1 up one slot; clear the vacated last row.
	var r, j int
	for r = pos; r < f.rank-1; r++ {
		copy(f.l[r*f.max:r*f.max+f.rank], f.l[(r+1)*f.max:(r+1)*f.max+f.rank])
	}
	for j = 0; j < f.rank; j++ {
		f.l[(f.rank-1)*f.max+j] = 0
	}
	f.rank--

	// Re-triangularize: zero the superdiagonal entry of each shifted row by
	// rotating columns (r, r+1) across all rows at and below it. The new
	// diagonal entry √(a²+b²) is non-negative by construction.
	var a, b, hyp, c, s, x, y F
	var rw int
	for r = pos; r < f.rank; r++ {
		a, b = f.l[r*f.max+r], f.l[r*f.max+r+1]
		hyp = scalar.Hypot(a, b)
		if hyp == 0 {
			continue
		}
		c, s = a/hyp, b/hyp
		for rw = r; rw < f.rank; rw++ {
			x, y = f.l[rw*f.max+r], f.l[rw*f.max+r+1]
			f.l[rw*f.max+r] = c*x + s*y
			f.l[rw*f.max+r+1] = c*y - s*x
		}
		// Enforce an exact zero; the rotation leaves roundoff dust here.
		f.l[r*f.max+r+1] = 0
	}

	return nil
}

// Solve solves L·Lᵀ·x = rhs for the current factor and writes x into dst.
// rhs and dst must both have length rank and may alias each other: the
// forward pass consumes rhs[i] before writing dst[i], and the backward
// pass overwrites each entry only after its last read.
//
// Errors: ErrBadVector.
// Complexity: O(rank²).
func (f *Factor[F]) Solve(rhs, dst []F) error {
	if len(rhs) != f.rank || len(dst) != f.rank {
		return ErrBadVector
	}

	var i, j int
	var sum F

	// Forward substitution: L·y = rhs, y stored in dst.
	for i = 0; i < f.rank; i++ {
		sum = rhs[i]
		for j = 0; j < i; j++ {
			sum -= f.l[i*f.max+j] * dst[j]
		}
		dst[i] = sum / f.l[i*f.max+i]
	}

	// Backward substitution: Lᵀ·x = y, in place.
	for i = f.rank - 1; i >= 0; i-- {
		sum = dst[i]
		for j = i + 1; j < f.rank; j++ {
			sum -= f.l[j*f.max+i] * dst[j]
		}
		dst[i] = sum / f.l[i*f.max+i]
	}

	return nil
}
