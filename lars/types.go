// Package lars: modes, coefficients and options.
package lars

import "github.com/katalvlaran/larspath/scalar"

// Mode selects the path variant. It is fixed at construction.
//
//   - LAR           — plain Least Angle Regression: features only ever
//     enter the active set.
//   - Lasso         — LARS with the zero-crossing rule: an active
//     coefficient whose sign would flip is removed at exactly zero, so the
//     path coincides with the LASSO regularization path.
//   - PositiveLasso — declared for the non-negative LASSO variant but
//     currently sharing the LAR step computation verbatim: the zero-crossing
//     rule does not fire and no non-negativity constraint is enforced, so
//     its paths are identical to LAR. Kept as a distinct mode because the
//     step controller is where a real positivity rule would slot in.
type Mode int

const (
	// LAR is plain Least Angle Regression (no removals).
	LAR Mode = iota

	// Lasso enables the zero-crossing removal rule.
	Lasso

	// PositiveLasso currently behaves identically to LAR; see the Mode docs.
	PositiveLasso
)

// Coefficient is one entry of the solution: a feature index and its
// current value. Parameters returns coefficients in activation order, not
// sorted by feature index.
type Coefficient[F scalar.Float] struct {
	Feature int
	Value   F
}

// Options configures an Engine.
//
// Fields:
//   - Epsilon — tolerance for the residual-correlation tie test that
//     decides simultaneous activation. Zero (the default) means the machine
//     epsilon of the engine's scalar type, which preserves exact-tie
//     semantics; widen it for data with noisy correlations.
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the recommended defaults: exact-tie detection at
// machine precision.
func DefaultOptions() Options {
	return Options{Epsilon: 0}
}
