package lars

import (
	"github.com/katalvlaran/larspath/design"
	"github.com/katalvlaran/larspath/scalar"
)

// Path is a recorded solution path: one coefficient snapshot per
// breakpoint, in the order the engine produced them. The last snapshot is
// the converged solution.
type Path[F scalar.Float] struct {
	// Breakpoints holds the Parameters() snapshot taken after each
	// successful Iterate. Breakpoints[k] has the coefficients in
	// activation order at breakpoint k.
	Breakpoints [][]Coefficient[F]
}

// Len returns the number of recorded breakpoints.
func (p *Path[F]) Len() int { return len(p.Breakpoints) }

// Final returns the coefficients at the last breakpoint, or nil for an
// empty path. The slice is owned by the path; callers must not mutate it.
func (p *Path[F]) Final() []Coefficient[F] {
	if len(p.Breakpoints) == 0 {
		return nil
	}

	return p.Breakpoints[len(p.Breakpoints)-1]
}

// Run drives a fresh engine to convergence and records the full path.
// For breakpoint-by-breakpoint control (early stopping, inspecting the
// active set between steps), construct an Engine directly and call
// Iterate yourself.
//
// Errors: exactly those of New.
func Run[F scalar.Float](src design.Source[F], mode Mode, opts Options) (*Path[F], error) {
	engine, err := New[F](src, mode, opts)
	if err != nil {
		return nil, err
	}

	path := &Path[F]{}
	for engine.Iterate() {
		path.Breakpoints = append(path.Breakpoints, engine.Parameters())
	}

	return path, nil
}
