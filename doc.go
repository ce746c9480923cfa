// Package larspath computes full regularization paths for sparse linear
// regression — Least Angle Regression (LARS) and its LASSO variant — one
// breakpoint at a time.
//
// 🚀 What is larspath?
//
//	A deterministic, generics-based solver that builds the entire LARS/LASSO
//	coefficient path instead of a single fit:
//		• Engine: one algorithmic step per Iterate(), active set grows & shrinks
//		• Equiangular directions via an incrementally maintained Cholesky factor
//		• LASSO zero-crossing rule: features leave the path at exactly zero
//		• Caller-chosen precision: every component is generic over float32/float64
//
// ✨ Why choose larspath?
//
//   - Full path, not one point – every breakpoint of the solution is observable
//   - Deterministic – identical inputs produce identical paths, always
//   - Composable data access – dense column storage or gonum-backed matrices
//   - No hidden aborts – every anomaly is a boolean or a sentinel error
//
// Under the hood, everything is organized under four subpackages:
//
//	cholesky/ — incremental Cholesky factor: append/remove basis vectors, solve
//	design/   — design-matrix access: dimensions, correlations, column products
//	lars/     — the solver core: Engine, Iterate, Parameters, Run
//	scalar/   — the Float constraint and per-precision machine epsilon
//
// Quick sketch of one step:
//
//	grow active set → solve equiangular direction → step to next breakpoint
//
// Dive into lars/doc.go for the algorithm walkthrough and the example_test.go
// files for runnable end-to-end paths.
//
//	go get github.com/katalvlaran/larspath/lars
package larspath
