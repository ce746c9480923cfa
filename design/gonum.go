// Package design: MatSource adapts a gonum *mat.Dense to the Source
// capability set, for callers whose data pipeline already produces gonum
// matrices. float64 only — gonum has no float32 surface.

package design

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MatSource is a Source[float64] backed by a gonum dense matrix.
// The matrix and response are referenced, not copied; the caller must not
// mutate them while a solver is running against this source.
type MatSource struct {
	x       *mat.Dense
	col     []float64 // scratch column, reused across calls
	resp    []float64 // raw response, for floats-based dot products
	rows    int
	columns int
}

// NewMatSource wraps a gonum design matrix and response vector.
// Stage 1 (Validate): non-empty matrix, response length equal to the row
// count.
// Stage 2 (Prepare): retain references plus one scratch column buffer.
// Complexity: O(rows) memory for the scratch buffer.
func NewMatSource(x *mat.Dense, y []float64) (*MatSource, error) {
	if x == nil {
		return nil, ErrEmptyDesign
	}
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyDesign
	}
	if len(y) != rows {
		return nil, ErrResponseLength
	}

	return &MatSource{
		x:       x,
		col:     make([]float64, rows),
		resp:    y,
		rows:    rows,
		columns: cols,
	}, nil
}

// Observations returns the number of rows.
func (s *MatSource) Observations() int { return s.rows }

// Features returns the number of columns.
func (s *MatSource) Features() int { return s.columns }

// ResponseCorrelations fills dst[j] with xⱼ·y via floats.Dot over a
// scratch copy of each column.
func (s *MatSource) ResponseCorrelations(dst []float64) {
	for j := 0; j < s.columns; j++ {
		mat.Col(s.col, j, s.x)
		dst[j] = floats.Dot(s.col, s.resp)
	}
}

// ColumnDot returns xᵢ·xⱼ through gonum column views.
func (s *MatSource) ColumnDot(i, j int) float64 {
	return mat.Dot(s.x.ColView(i), s.x.ColView(j))
}

// DirectionCorrelations materializes the active-direction vector with
// AddScaledVec, then correlates every column against it.
func (s *MatSource) DirectionCorrelations(active []int, dir []float64, dst []float64) {
	step := mat.NewVecDense(s.rows, nil)
	for k, j := range active {
		step.AddScaledVec(step, dir[k], s.x.ColView(j))
	}
	for j := 0; j < s.columns; j++ {
		dst[j] = mat.Dot(s.x.ColView(j), step)
	}
}
