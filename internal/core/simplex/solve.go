package simplex

import "github.com/solvio-labs/simplexa/internal/core/domain"

const (
	// tolerance absorbs floating round-off in the optimality check.
	// Paired with bigM; see that constant's note before changing either.
	tolerance = 1e-8

	// maxIterations caps the pivot loop. Dantzig's rule with
	// first-occurrence tie-breaking can cycle on degenerate inputs; the
	// cap is the only backstop.
	maxIterations = 200
)

// Solve runs the pivot loop in place on the supplied tableau until
// optimality, unboundedness or the iteration cap, then extracts the
// solution. The caller must not alias the tableau afterwards. The original
// objective sense is needed to sign-correct the extracted objective value.
func Solve(t *domain.Tableau, sense domain.Sense) *domain.SolveResult {
	iterations := 0
	var reason domain.TerminationReason

	for {
		if isOptimal(t) {
			reason = domain.ReasonOptimal
			break
		}
		if iterations >= maxIterations {
			reason = domain.ReasonIterationLimit
			break
		}

		col := enteringColumn(t)
		row, ok := leavingRow(t, col)
		if !ok {
			reason = domain.ReasonUnbounded
			break
		}

		pivot(t, row, col)
		iterations++
	}

	values, objective := Extract(t, sense)
	return &domain.SolveResult{
		FinalTableau:   t,
		ObjectiveValue: objective,
		VariableValues: values,
		IterationCount: iterations,
		Reason:         reason,
	}
}

// isOptimal reports whether every objective-row entry (RHS excluded) is
// non-negative within tolerance.
func isOptimal(t *domain.Tableau) bool {
	objRow := t.ObjectiveRow()
	for j := 0; j < t.RHSColumn(); j++ {
		if t.At(objRow, j) < -tolerance {
			return false
		}
	}
	return true
}

// enteringColumn selects the most negative objective-row entry, ties broken
// by lowest index (Dantzig's rule, not Bland's).
func enteringColumn(t *domain.Tableau) int {
	objRow := t.ObjectiveRow()
	col := 0
	best := t.At(objRow, 0)
	for j := 1; j < t.RHSColumn(); j++ {
		if v := t.At(objRow, j); v < best {
			best = v
			col = j
		}
	}
	return col
}

// leavingRow performs the ratio test over rows with a strictly positive
// pivot-column entry, ties broken by lowest row index. ok is false when no
// row qualifies, meaning the problem is unbounded in the improving
// direction.
func leavingRow(t *domain.Tableau, col int) (row int, ok bool) {
	rhsCol := t.RHSColumn()
	best := 0.0
	row = -1
	for i := 0; i < t.ConstraintRows(); i++ {
		entry := t.At(i, col)
		if entry <= 0 {
			continue
		}
		ratio := t.At(i, rhsCol) / entry
		if row == -1 || ratio < best {
			best = ratio
			row = i
		}
	}
	return row, row != -1
}

// pivot performs one Gauss-Jordan elimination step: normalise the pivot row
// to a unit pivot element, then zero the pivot column in every other row
// (the objective row included), establishing the new basis column.
func pivot(t *domain.Tableau, row, col int) {
	t.DivideRow(row, t.At(row, col))
	for i := 0; i < t.Rows(); i++ {
		if i == row {
			continue
		}
		if factor := t.At(i, col); factor != 0 {
			t.SubtractScaledRow(i, row, factor)
		}
	}
}

// Extract reads the solution off the tableau without further pivoting. A
// column is basic when its constraint rows hold exactly one non-zero entry
// and that entry is exactly 1; its value is that row's RHS. All other
// columns are zero. The bottom-right entry is the objective value in the
// engine's internal sign convention: it is the user's value directly for
// maximise problems and must be negated for minimise problems.
func Extract(t *domain.Tableau, sense domain.Sense) (values []float64, objective float64) {
	rhsCol := t.RHSColumn()
	values = make([]float64, rhsCol)

	for j := 0; j < rhsCol; j++ {
		nonZero := 0
		unitRow := -1
		for i := 0; i < t.ConstraintRows(); i++ {
			v := t.At(i, j)
			if v == 0 {
				continue
			}
			nonZero++
			if v == 1 {
				unitRow = i
			}
		}
		if nonZero == 1 && unitRow != -1 {
			values[j] = t.At(unitRow, rhsCol)
		}
	}

	objective = t.At(t.ObjectiveRow(), rhsCol)
	if sense == domain.Minimize {
		objective = -objective
	}
	return values, objective
}
