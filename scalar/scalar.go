// Package scalar defines the floating-point abstraction shared by every
// larspath component: the Float constraint, the per-precision machine
// epsilon, and the two numeric predicates the solver relies on.
//
// The solver threads a caller-chosen precision F through every component;
// all per-type numeric policy lives here so no other package needs to know
// which concrete precision it is running at.
package scalar

import "math"

// Float enumerates the floating-point precisions the solver can run at.
type Float interface {
	~float32 | ~float64
}

// Machine epsilons: the gap between 1.0 and the next representable value.
const (
	eps32 = 0x1p-23
	eps64 = 0x1p-52
)

// Eps returns the machine epsilon of F.
// Used as the default tolerance when testing residual correlations for ties.
// The branch is arithmetic rather than a type switch: 1+2⁻²⁴ rounds back to
// 1 exactly at single precision, so named types satisfying the constraint
// (type meters float32) resolve to their underlying precision too.
// Complexity: O(1).
func Eps[F Float]() F {
	if F(1)+F(eps32)/2 == F(1) {
		return F(eps32)
	}

	return F(eps64)
}

// Abs returns |x|.
// Complexity: O(1).
func Abs[F Float](x F) F {
	if x < 0 {
		return -x
	}

	return x
}

// IsFinite reports whether x is neither NaN nor ±Inf.
// Step-length candidates that fail this predicate are ineligible; the
// conversion to float64 is exact for both supported precisions.
// Complexity: O(1).
func IsFinite[F Float](x F) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Sqrt returns √x at the precision of F.
// The float64 round trip is correctly rounded for float32 inputs.
// Complexity: O(1).
func Sqrt[F Float](x F) F {
	return F(math.Sqrt(float64(x)))
}

// Hypot returns √(a²+b²) without intermediate overflow, at the precision of F.
// Complexity: O(1).
func Hypot[F Float](a, b F) F {
	return F(math.Hypot(float64(a), float64(b)))
}
