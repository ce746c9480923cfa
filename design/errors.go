// SPDX-License-Identifier: MIT
// Package design: sentinel error set for backend constructors.
// Accessor methods carry documented length/index preconditions instead of
// error returns; the solver is their only caller and guarantees them.

package design

import "errors"

var (
	// ErrEmptyDesign is returned when a backend is constructed with zero
	// observations or zero features.
	ErrEmptyDesign = errors.New("design: matrix must have rows and columns")

	// ErrRaggedColumns indicates that input columns (or rows) differ in length.
	ErrRaggedColumns = errors.New("design: ragged input")

	// ErrResponseLength indicates that the response vector length does not
	// match the number of observations.
	ErrResponseLength = errors.New("design: response length mismatch")
)
