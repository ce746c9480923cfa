// SPDX-License-Identifier: MIT
// Package lars: sentinel error set.
// Construction is the only fallible surface that reports through errors;
// everything inside the iteration loop signals through boolean returns,
// per the algorithm's no-abort failure model.

package lars

import "errors"

var (
	// ErrNilSource indicates that a nil data source was passed to New or Run.
	ErrNilSource = errors.New("lars: data source is nil")

	// ErrBadMode indicates an unknown solver mode.
	ErrBadMode = errors.New("lars: unknown mode")

	// ErrBadEpsilon indicates a negative or non-finite tie tolerance.
	ErrBadEpsilon = errors.New("lars: epsilon must be finite and non-negative")

	// ErrBasisSize is returned by LeastSquares when the supplied basis does
	// not have exactly as many entries as the maintained factorization.
	ErrBasisSize = errors.New("lars: basis size does not match factorization rank")

	// ErrBadBasis is returned by LeastSquares when a basis entry references
	// a feature index outside the design matrix.
	ErrBadBasis = errors.New("lars: basis feature index out of range")
)
