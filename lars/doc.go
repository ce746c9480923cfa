// Package lars computes Least Angle Regression solution paths, with the
// LASSO modification, one breakpoint per Iterate call.
//
// 🚀 What is LARS?
//
//	LARS builds a sparse regression coefficient vector incrementally: it
//	moves the coefficients of the currently "active" features along the
//	equiangular direction — the direction equally correlated with every
//	active column — exactly until the next breakpoint, where a new feature
//	ties the active set's correlation (and joins), or, in LASSO mode, an
//	active coefficient crosses zero (and leaves). Used for:
//	  • Sparse linear regression / feature selection
//	  • Full LASSO regularization paths at the cost of one OLS fit
//	  • Forward stagewise-style model inspection, breakpoint by breakpoint
//
// Algorithm outline (one Iterate):
//  1. If every feature is already active, report convergence.
//  2. Grow the active set with every inactive feature whose |residual
//     correlation| ties the maximum (simultaneous entry is required for
//     correctness). A set that just shrank is not regrown this pass.
//  3. Solve (XₐᵀXₐ)·w = cₐ against the maintained Cholesky factor: the
//     equiangular direction. Recompute each feature's correlation with it.
//  4. Step length λ ∈ (0,1]: the smallest positive boundary candidate over
//     inactive features, and in LASSO mode the smallest positive zero
//     crossing −β/w of an active coefficient, which truncates the step and
//     removes that feature at exactly zero.
//  5. Apply: β += λ·w over the active set, c −= λ·a over all features.
//
// ✨ Key properties:
//   - One entry or exit event per successful Iterate; no partial steps are
//     observable.
//   - Deterministic: identical inputs yield identical paths.
//   - All anomalies (degrees of freedom exhausted, no qualifying ties) are
//     boolean convergence signals, never aborts.
//   - Generic over float32/float64; data access and factorization are
//     collaborator interfaces (design.Source, cholesky.Factor).
//
// ⚙️ Usage:
//
//	src, _ := design.FromRows(rows, response)
//	path, err := lars.Run(src, lars.Lasso, lars.DefaultOptions())
//	for _, bp := range path.Breakpoints { ... }
//
// or step manually:
//
//	eng, err := lars.New(src, lars.LAR, lars.DefaultOptions())
//	for eng.Iterate() {
//	    fmt.Println(eng.Parameters())
//	}
//
// Concurrency: an Engine is single-threaded and strictly sequential; use
// one engine per solve. Distinct engines over independent sources are
// fully parallelizable.
package lars
