// Package design provides the data-access layer of the solver: a small
// capability set over a regression problem (design matrix X plus
// response y) expressed as correlations and inner products, so the core
// never touches raw storage.
//
// Two backends implement the Source capability set and are selected by
// composition:
//
//   - Dense[F]   — generic column-major flat storage, any supported
//     floating-point precision, zero dependencies.
//   - MatSource  — float64 backend over a gonum *mat.Dense, for callers
//     whose data already lives in gonum matrices.
//
// Both answer the same four questions: the problem dimensions, the
// per-feature correlation with the response (Xᵀy), pairwise column inner
// products, and the correlation of every feature with a direction spanned
// by the active columns. A backend is free to exploit its storage layout;
// the contracts are documented on Source.
package design
