// Package design: Dense is the generic column-major backend of Source.
// Columns are contiguous in a flat slice so every capability reduces to
// sequential scans over adjacent memory.

package design

import "github.com/katalvlaran/larspath/scalar"

// Dense is a column-major design matrix with its response vector.
// rows is the number of observations, cols the number of features; data
// holds rows*cols elements with column j occupying data[j*rows:(j+1)*rows].
type Dense[F scalar.Float] struct {
	rows, cols int
	data       []F
	y          []F
}

// FromColumns builds a Dense source from feature columns and a response.
// Stage 1 (Validate): at least one column, all columns the same non-zero
// length, response matching that length.
// Stage 2 (Prepare): copy everything into owned storage; later mutation of
// the inputs cannot affect the source.
// Complexity: O(rows·cols) time and memory.
func FromColumns[F scalar.Float](columns [][]F, response []F) (*Dense[F], error) {
	if len(columns) == 0 || len(columns[0]) == 0 {
		return nil, ErrEmptyDesign
	}
	rows := len(columns[0])
	for _, col := range columns {
		if len(col) != rows {
			return nil, ErrRaggedColumns
		}
	}
	if len(response) != rows {
		return nil, ErrResponseLength
	}

	d := &Dense[F]{
		rows: rows,
		cols: len(columns),
		data: make([]F, rows*len(columns)),
		y:    make([]F, rows),
	}
	for j, col := range columns {
		copy(d.data[j*rows:(j+1)*rows], col)
	}
	copy(d.y, response)

	return d, nil
}

// FromRows builds a Dense source from observation rows and a response.
// Same validation as FromColumns; the data is transposed into column-major
// storage on ingestion.
// Complexity: O(rows·cols) time and memory.
func FromRows[F scalar.Float](rows [][]F, response []F) (*Dense[F], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyDesign
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrRaggedColumns
		}
	}
	if len(response) != len(rows) {
		return nil, ErrResponseLength
	}

	d := &Dense[F]{
		rows: len(rows),
		cols: cols,
		data: make([]F, len(rows)*cols),
		y:    make([]F, len(rows)),
	}
	for i, row := range rows {
		for j, v := range row {
			d.data[j*d.rows+i] = v
		}
	}
	copy(d.y, response)

	return d, nil
}

// Observations returns the number of rows.
func (d *Dense[F]) Observations() int { return d.rows }

// Features returns the number of columns.
func (d *Dense[F]) Features() int { return d.cols }

// column returns the contiguous storage of feature j.
func (d *Dense[F]) column(j int) []F {
	return d.data[j*d.rows : (j+1)*d.rows]
}

// ResponseCorrelations fills dst[j] with xⱼ·y.
// Complexity: O(rows·cols).
func (d *Dense[F]) ResponseCorrelations(dst []F) {
	for j := 0; j < d.cols; j++ {
		col := d.column(j)
		var sum F
		for i, v := range col {
			sum += v * d.y[i]
		}
		dst[j] = sum
	}
}

// ColumnDot returns xᵢ·xⱼ.
// Complexity: O(rows).
func (d *Dense[F]) ColumnDot(i, j int) F {
	a, b := d.column(i), d.column(j)
	var sum F
	for r, v := range a {
		sum += v * b[r]
	}

	return sum
}

// DirectionCorrelations fills dst[j] with xⱼ·(Σₖ dir[k]·x_active[k]).
// The direction vector is materialized once, so the cost is
// O(rows·(len(active)+cols)) rather than O(rows·len(active)·cols).
func (d *Dense[F]) DirectionCorrelations(active []int, dir []F, dst []F) {
	step := make([]F, d.rows)
	for k, j := range active {
		col := d.column(j)
		w := dir[k]
		for i, v := range col {
			step[i] += w * v
		}
	}
	for j := 0; j < d.cols; j++ {
		col := d.column(j)
		var sum F
		for i, v := range col {
			sum += v * step[i]
		}
		dst[j] = sum
	}
}
