// Package cholesky maintains a Cholesky factorization of a symmetric
// positive-definite Gram matrix under single-column growth and shrinkage,
// without ever refactorizing from scratch.
//
// 🚀 What is an incremental Cholesky factor?
//
//	A lower-triangular L with L·Lᵀ = G, kept valid while the underlying
//	basis changes one vector at a time:
//	  • Append — rank-1 update: one forward substitution plus a square root
//	  • Remove — downdate: delete a basis position, restore triangularity
//	    with Givens rotations
//	  • Solve  — forward + backward substitution against the current factor
//
// ✨ Key properties:
//   - O(k²) per update/downdate/solve at rank k — never O(k³)
//   - Fixed-capacity flat storage, no allocation after construction
//   - Deterministic loop orders: identical inputs, identical factors
//   - Every fallible operation returns a sentinel error; nothing panics
//     on user-triggered conditions
//
// ⚙️ Usage:
//
//	f, err := cholesky.New[float64](maxRank)
//	// col: cross-products of the new basis vector against the current
//	// basis, with its self inner product as the final entry.
//	err = f.Append(col)
//	err = f.Solve(rhs, dst) // rhs and dst may alias
//	err = f.Remove(pos)
//
// The factor is exclusively owned by one solver instance and is not safe
// for concurrent use.
package cholesky
