package design_test

import (
	"testing"

	"github.com/katalvlaran/larspath/design"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCols = [][]float64{
		{1, 0, 2},
		{0, 3, 1},
		{2, 1, 0},
	}
	testResp = []float64{1, 2, 3}
)

// TestFromColumns_Validation covers the constructor error taxonomy.
func TestFromColumns_Validation(t *testing.T) {
	_, err := design.FromColumns[float64](nil, nil)
	assert.ErrorIs(t, err, design.ErrEmptyDesign)

	_, err = design.FromColumns([][]float64{{}}, []float64{})
	assert.ErrorIs(t, err, design.ErrEmptyDesign)

	_, err = design.FromColumns([][]float64{{1, 2}, {1}}, []float64{1, 2})
	assert.ErrorIs(t, err, design.ErrRaggedColumns)

	_, err = design.FromColumns([][]float64{{1, 2}}, []float64{1})
	assert.ErrorIs(t, err, design.ErrResponseLength)
}

// TestFromRows_MatchesFromColumns builds the same matrix both ways and
// checks every capability agrees.
func TestFromRows_MatchesFromColumns(t *testing.T) {
	byCol, err := design.FromColumns(testCols, testResp)
	require.NoError(t, err)

	rows := [][]float64{
		{1, 0, 2},
		{0, 3, 1},
		{2, 1, 0},
	}
	byRow, err := design.FromRows(rows, testResp)
	require.NoError(t, err)

	assert.Equal(t, byCol.Observations(), byRow.Observations())
	assert.Equal(t, byCol.Features(), byRow.Features())

	a := make([]float64, 3)
	b := make([]float64, 3)
	byCol.ResponseCorrelations(a)
	byRow.ResponseCorrelations(b)
	assert.Equal(t, a, b, "response correlations must agree")

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, byCol.ColumnDot(i, j), byRow.ColumnDot(i, j))
		}
	}
}

// TestDense_ResponseCorrelations checks Xᵀy by hand.
func TestDense_ResponseCorrelations(t *testing.T) {
	d, err := design.FromColumns(testCols, testResp)
	require.NoError(t, err)

	got := make([]float64, 3)
	d.ResponseCorrelations(got)
	// x0·y = 1+0+6 = 7; x1·y = 0+6+3 = 9; x2·y = 2+2+0 = 4.
	assert.Equal(t, []float64{7, 9, 4}, got)
}

// TestDense_ColumnDot checks symmetry and a hand-computed value.
func TestDense_ColumnDot(t *testing.T) {
	d, err := design.FromColumns(testCols, testResp)
	require.NoError(t, err)

	// x0·x1 = 0+0+2 = 2.
	assert.Equal(t, 2.0, d.ColumnDot(0, 1))
	assert.Equal(t, d.ColumnDot(0, 1), d.ColumnDot(1, 0), "dot must be symmetric")
	// x0·x0 = 1+0+4 = 5.
	assert.Equal(t, 5.0, d.ColumnDot(0, 0))
}

// TestDense_DirectionCorrelations checks xⱼ·(Xₐ·w) against a manual expansion.
func TestDense_DirectionCorrelations(t *testing.T) {
	d, err := design.FromColumns(testCols, testResp)
	require.NoError(t, err)

	// Direction = 2·x0 − 1·x2 = (2−2, 0−1, 4−0) = (0, −1, 4).
	got := make([]float64, 3)
	d.DirectionCorrelations([]int{0, 2}, []float64{2, -1}, got)

	// x0·d = 0+0+8 = 8; x1·d = 0−3+4 = 1; x2·d = 0−1+0 = −1.
	assert.Equal(t, []float64{8, 1, -1}, got)
}

// TestDense_OwnedStorage verifies later mutation of the inputs does not
// leak into the source.
func TestDense_OwnedStorage(t *testing.T) {
	cols := [][]float64{{1, 0}, {0, 1}}
	resp := []float64{1, 1}
	d, err := design.FromColumns(cols, resp)
	require.NoError(t, err)

	cols[0][0] = 100
	resp[0] = 100

	assert.Equal(t, 1.0, d.ColumnDot(0, 0), "source must own its matrix data")
	got := make([]float64, 2)
	d.ResponseCorrelations(got)
	assert.Equal(t, []float64{1, 1}, got, "source must own its response data")
}

// TestDense_Float32 smoke-tests the generic instantiation.
func TestDense_Float32(t *testing.T) {
	d, err := design.FromColumns([][]float32{{1, 2}, {3, 4}}, []float32{1, 1})
	require.NoError(t, err)

	assert.Equal(t, float32(11), d.ColumnDot(0, 1)) // 1·3 + 2·4
	got := make([]float32, 2)
	d.ResponseCorrelations(got)
	assert.Equal(t, []float32{3, 7}, got)
}
