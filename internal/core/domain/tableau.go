package domain

import "gonum.org/v1/gonum/mat"

// Tableau is the dense matrix representation of the current basic solution:
// one row per constraint plus the objective row last, one column per
// variable plus the right-hand-side column last. It is mutated in place by
// every pivot and discarded after solution extraction.
type Tableau struct {
	data *mat.Dense
	rows int
	cols int
}

// NewTableau allocates a zero-filled tableau with the given dimensions.
func NewTableau(rows, cols int) *Tableau {
	return &Tableau{
		data: mat.NewDense(rows, cols, nil),
		rows: rows,
		cols: cols,
	}
}

// Rows returns the total row count, including the objective row.
func (t *Tableau) Rows() int { return t.rows }

// Cols returns the total column count, including the RHS column.
func (t *Tableau) Cols() int { return t.cols }

// ObjectiveRow returns the index of the objective (reduced cost) row.
func (t *Tableau) ObjectiveRow() int { return t.rows - 1 }

// RHSColumn returns the index of the right-hand-side column.
func (t *Tableau) RHSColumn() int { return t.cols - 1 }

// ConstraintRows returns the number of constraint rows.
func (t *Tableau) ConstraintRows() int { return t.rows - 1 }

// At returns the entry at row i, column j.
func (t *Tableau) At(i, j int) float64 { return t.data.At(i, j) }

// Set writes the entry at row i, column j.
func (t *Tableau) Set(i, j int, v float64) { t.data.Set(i, j, v) }

// DivideRow divides every entry of row i by the given divisor.
func (t *Tableau) DivideRow(i int, divisor float64) {
	row := t.data.RawRowView(i)
	for j := range row {
		row[j] /= divisor
	}
}

// SubtractScaledRow subtracts factor times row src from row dst.
func (t *Tableau) SubtractScaledRow(dst, src int, factor float64) {
	d := t.data.RawRowView(dst)
	s := t.data.RawRowView(src)
	for j := range d {
		d[j] -= factor * s[j]
	}
}

// Clone returns a deep copy of the tableau.
func (t *Tableau) Clone() *Tableau {
	return &Tableau{
		data: mat.DenseCopyOf(t.data),
		rows: t.rows,
		cols: t.cols,
	}
}

// Dense exposes the backing matrix, for formatted rendering.
func (t *Tableau) Dense() *mat.Dense { return t.data }
