package design

import "github.com/katalvlaran/larspath/scalar"

// Source is the capability set the solver needs from a regression problem.
// Implementations may back it with any storage layout; the solver composes
// against this interface and never inspects the matrix directly.
//
// Contracts (violations are programmer errors, not runtime conditions):
//   - dst slices must have length Features();
//   - column indices must lie in [0, Features());
//   - active and dir must have equal length, with active holding valid
//     column indices.
//
// Implementations are read-only after construction and therefore safe to
// share between independent solver instances.
type Source[F scalar.Float] interface {
	// Observations returns the number of rows of the design matrix.
	Observations() int

	// Features returns the number of columns of the design matrix.
	Features() int

	// ResponseCorrelations fills dst[j] with xⱼ·y for every feature j:
	// the full correlation of each column with the response.
	ResponseCorrelations(dst []F)

	// ColumnDot returns the inner product xᵢ·xⱼ of two feature columns.
	ColumnDot(i, j int) F

	// DirectionCorrelations fills dst[j] with xⱼ·(Σₖ dir[k]·x_active[k])
	// for every feature j: the correlation of each column with the
	// direction spanned by the active columns.
	DirectionCorrelations(active []int, dir []F, dst []F)
}
