package lars

import (
	"math"

	"github.com/katalvlaran/larspath/cholesky"
	"github.com/katalvlaran/larspath/design"
	"github.com/katalvlaran/larspath/scalar"
)

// inactive is the active-map sentinel for features outside the active set.
const inactive = -1

// fullStep is the unconstrained step length: with no boundary or zero
// crossing ahead, one step lands exactly on the least-squares solution of
// the active set.
const fullStep = 1

// Engine walks the LARS/LASSO solution path over a design.Source, one
// breakpoint per Iterate call. All state is created at construction and
// mutated only by Iterate; the engine is never reset. One engine per
// solve; not safe for concurrent use.
type Engine[F scalar.Float] struct {
	src  design.Source[F]
	mode Mode
	eps  F // tie tolerance for simultaneous activation

	features  int // total feature count
	maxActive int // min(observations, features): degrees of freedom

	// beta and active are kept exactly in sync: active[i] is the position
	// of feature i in beta, or the inactive sentinel. An array with a
	// sentinel, not a map — feature count is fixed and lookups are O(1).
	beta   []Coefficient[F]
	active []int

	c []F // residual correlations, one per feature
	a []F // direction correlations, recomputed every step
	w []F // equiangular direction over the active set, same order as beta

	chol *cholesky.Factor[F]
	xty  []F // initial response correlations, retained for LeastSquares

	// dropped is set by a deactivation and consumed by the next active-set
	// update: a set that just shrank must not be regrown in the same pass.
	dropped bool

	cross     []F   // scratch: cross-correlations for activation
	activeIdx []int // scratch: active feature indices for the data source
}

// New constructs an engine over src in the given mode.
//
// Stage 1 (Validate): non-nil source with at least one observation and
// feature, a known mode, a finite non-negative epsilon.
// Stage 2 (Prepare): size every vector, fill the residual correlations
// from the source (the only pass over the data at construction), and
// allocate the Cholesky factor at capacity min(observations, features).
//
// Errors: ErrNilSource, ErrBadMode, ErrBadEpsilon, design.ErrEmptyDesign.
// Complexity: O(observations·features) time, O(features + maxRank²) memory.
func New[F scalar.Float](src design.Source[F], mode Mode, opts Options) (*Engine[F], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if mode != LAR && mode != Lasso && mode != PositiveLasso {
		return nil, ErrBadMode
	}
	if math.IsNaN(opts.Epsilon) || math.IsInf(opts.Epsilon, 0) || opts.Epsilon < 0 {
		return nil, ErrBadEpsilon
	}

	n, p := src.Observations(), src.Features()
	if n <= 0 || p <= 0 {
		return nil, design.ErrEmptyDesign
	}

	eps := F(opts.Epsilon)
	if opts.Epsilon == 0 {
		eps = scalar.Eps[F]()
	}

	maxActive := n
	if p < n {
		maxActive = p
	}

	chol, err := cholesky.New[F](maxActive)
	if err != nil {
		return nil, err
	}

	e := &Engine[F]{
		src:       src,
		mode:      mode,
		eps:       eps,
		features:  p,
		maxActive: maxActive,
		beta:      make([]Coefficient[F], 0, maxActive),
		active:    make([]int, p),
		c:         make([]F, p),
		a:         make([]F, p),
		w:         make([]F, 0, maxActive),
		chol:      chol,
		xty:       make([]F, p),
		cross:     make([]F, 0, maxActive),
		activeIdx: make([]int, 0, maxActive),
	}
	for i := range e.active {
		e.active[i] = inactive
	}
	e.src.ResponseCorrelations(e.c)
	copy(e.xty, e.c)

	return e, nil
}

// Mode returns the path variant fixed at construction.
func (e *Engine[F]) Mode() Mode { return e.mode }

// ActiveCount returns the current number of active features.
func (e *Engine[F]) ActiveCount() int { return len(e.beta) }

// IsActive reports whether feature i currently holds a coefficient.
// Out-of-range indices are simply inactive.
// Complexity: O(1).
func (e *Engine[F]) IsActive(i int) bool {
	if i < 0 || i >= e.features {
		return false
	}

	return e.active[i] != inactive
}

// activate admits feature i into the active set.
//
// Fails with no mutation when i is already active or the active set has
// exhausted the available degrees of freedom (including a numerically
// dependent column, which the factor rejects). On success the coefficient
// enters at zero, the direction vector grows in lockstep, and the factor
// gains a basis row built from i's cross-correlations against every
// active feature, itself included last.
// Complexity: O(active·observations) for the cross-correlations.
func (e *Engine[F]) activate(i int) bool {
	if e.active[i] != inactive {
		return false
	}
	if len(e.beta) >= e.maxActive {
		return false
	}

	e.beta = append(e.beta, Coefficient[F]{Feature: i})
	e.w = append(e.w, 0)

	e.cross = e.cross[:len(e.beta)]
	for k, coef := range e.beta {
		e.cross[k] = e.src.ColumnDot(coef.Feature, i)
	}
	if e.chol.Append(e.cross) != nil {
		// The factor is unchanged on rejection; roll back our half too.
		e.beta = e.beta[:len(e.beta)-1]
		e.w = e.w[:len(e.w)-1]

		return false
	}

	e.active[i] = len(e.beta) - 1

	return true
}

// deactivate expels feature i from the active set.
//
// A no-op for inactive features. Otherwise removes the coefficient and
// direction entries at i's position, downdates the factor, and rebuilds
// the active map from the shortened sequence — a deliberate O(active)
// rebuild; the active set is bounded by min(observations, features) and
// this is not a bottleneck. Sets the recent-deactivation flag consumed by
// the next active-set update.
func (e *Engine[F]) deactivate(i int) bool {
	pos := e.active[i]
	if pos == inactive {
		return false
	}

	e.beta = append(e.beta[:pos], e.beta[pos+1:]...)
	e.w = append(e.w[:pos], e.w[pos+1:]...)
	// pos is valid by the invariant above, so Remove cannot fail.
	_ = e.chol.Remove(pos)

	// Clear and rebuild: the departed index first, then every survivor at
	// its new position.
	e.active[i] = inactive
	for k, coef := range e.beta {
		e.active[coef.Feature] = k
	}

	e.dropped = true

	return true
}

// updateActiveSet grows the active set with every inactive feature tied
// for the maximum absolute residual correlation. LARS requires all tied
// features to enter together, never one of several.
//
// Returns whether the set changed. A set that just shrank counts as
// changed without scanning — regrowing it in the same pass would undo the
// removal. An activation failure (degrees of freedom exhausted) aborts
// with false, which the caller reads as convergence.
// Complexity: O(features) scan plus the activations.
func (e *Engine[F]) updateActiveSet() bool {
	if e.dropped {
		e.dropped = false

		return true
	}

	// C = max over inactive features of |c[j]|.
	var peak F
	for j, pos := range e.active {
		if pos != inactive {
			continue
		}
		if v := scalar.Abs(e.c[j]); v > peak {
			peak = v
		}
	}

	changed := false
	for j, pos := range e.active {
		if pos != inactive {
			continue
		}
		if scalar.Abs(scalar.Abs(e.c[j])-peak) < e.eps {
			if !e.activate(j) {
				return false
			}
			changed = true
		}
	}

	return changed
}

// findSearchDirection computes the equiangular direction w by solving the
// active normal equations (XₐᵀXₐ)·w = cₐ in place against the maintained
// factor, then recomputes every feature's correlation with that direction
// via the data source.
// Complexity: O(active²) solve + O(observations·features) correlations.
func (e *Engine[F]) findSearchDirection() {
	e.activeIdx = e.activeIdx[:len(e.beta)]
	for k, coef := range e.beta {
		e.w[k] = e.c[coef.Feature]
		e.activeIdx[k] = coef.Feature
	}
	// Lengths match the rank by construction, so Solve cannot fail.
	_ = e.chol.Solve(e.w, e.w)

	e.src.DirectionCorrelations(e.activeIdx, e.w, e.a)
}

// takeStep determines the step length λ ∈ (0,1] and applies the update.
//
// The active set is non-empty on entry: updateActiveSet only reports a
// change after at least one activation, and a removal can never empty the
// set — an active coefficient moves with the sign of its correlation, so a
// singleton's −β/w is never positive and the zero-crossing rule cannot
// fire on it.
//
// Boundary search: the first active feature's direction and residual
// correlations serve as the reference pair (A, C) — valid because LARS
// keeps |correlation| equal across the active set. For every inactive
// feature both crossing candidates (C−c)/(A−a) and (C+c)/(A+a) compete;
// non-positive or non-finite candidates are ineligible rather than
// propagating into λ.
//
// Zero-crossing search (Lasso only): the smallest positive −β/w over the
// active set truncates λ and marks that feature for removal after the
// coefficient update, so it leaves at exactly zero. PositiveLasso shares
// the plain-LAR behavior here; see the Mode docs.
// Complexity: O(features).
func (e *Engine[F]) takeStep() {
	var lambda F = fullStep

	first := e.beta[0].Feature
	dirRef, resRef := e.a[first], e.c[first]

	for j, pos := range e.active {
		if pos != inactive {
			continue
		}
		if t := (resRef - e.c[j]) / (dirRef - e.a[j]); t > 0 && t < lambda && scalar.IsFinite(t) {
			lambda = t
		}
		if t := (resRef + e.c[j]) / (dirRef + e.a[j]); t > 0 && t < lambda && scalar.IsFinite(t) {
			lambda = t
		}
	}

	drop := inactive
	if e.mode == Lasso {
		crossing := F(math.Inf(1))
		for k := range e.beta {
			t := -e.beta[k].Value / e.w[k]
			if t > 0 && t < crossing && scalar.IsFinite(t) {
				crossing, drop = t, k
			}
		}
		if drop != inactive && crossing < lambda {
			lambda = crossing
		} else {
			drop = inactive
		}
	}

	for k := range e.beta {
		e.beta[k].Value += lambda * e.w[k]
	}
	for j := range e.c {
		e.c[j] -= lambda * e.a[j]
	}

	if drop != inactive {
		e.deactivate(e.beta[drop].Feature)
	}
}

// Iterate advances the path by exactly one breakpoint: an entry or exit
// event. It returns false once converged — when no unused features remain,
// or the active-set update finds neither ties to add nor headroom to add
// them. Further calls keep returning false; the engine never resets.
func (e *Engine[F]) Iterate() bool {
	if len(e.beta) >= e.features {
		return false
	}
	if !e.updateActiveSet() {
		return false
	}

	e.findSearchDirection()
	e.takeStep()

	return true
}

// Parameters returns a copy of the current coefficients in activation
// order — the regularized solution at the current breakpoint. Features
// absent from the result hold coefficient zero.
func (e *Engine[F]) Parameters() []Coefficient[F] {
	out := make([]Coefficient[F], len(e.beta))
	copy(out, e.beta)

	return out
}

// LeastSquares overwrites the Values of basis with the unconstrained
// least-squares solution restricted to exactly those features, by solving
// (XᵦᵀXᵦ)·β = Xᵦᵀy against the currently maintained factorization.
//
// Precondition (the caller's responsibility, not checked): the
// factorization must correspond to exactly that basis in that order —
// typically basis is the engine's own Parameters() — otherwise the result
// is meaningless. Only the cheap dimension checks are enforced.
//
// Errors: ErrBasisSize, ErrBadBasis.
// Complexity: O(len(basis)²).
func (e *Engine[F]) LeastSquares(basis []Coefficient[F]) error {
	if len(basis) != e.chol.Rank() {
		return ErrBasisSize
	}

	rhs := make([]F, len(basis))
	for k, coef := range basis {
		if coef.Feature < 0 || coef.Feature >= e.features {
			return ErrBadBasis
		}
		rhs[k] = e.xty[coef.Feature]
	}
	// Length equals the rank, so Solve cannot fail.
	_ = e.chol.Solve(rhs, rhs)

	for k := range basis {
		basis[k].Value = rhs[k]
	}

	return nil
}
