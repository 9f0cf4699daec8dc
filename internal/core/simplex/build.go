package simplex

import (
	"fmt"

	"github.com/solvio-labs/simplexa/internal/core/domain"
)

// bigM is the penalty coefficient assigned to artificial variables.
// Changing it alters which of several valid optimal bases is reported on
// degenerate problems; keep it in sync with the optimality tolerance.
const bigM = 1e6

// Build converts a linear program into the initial simplex tableau and its
// variable catalog. Column order is fixed and deterministic: decision
// variables, then slack, excess and artificial columns, each group in
// constraint order. Fails with a domain.ErrDefinitionIncomplete or
// domain.ErrDimensionMismatch wrapped error when preconditions are violated.
func Build(lp *domain.LinearProgram) (*domain.Tableau, domain.VariableCatalog, error) {
	if err := lp.Validate(); err != nil {
		return nil, nil, err
	}

	n, _ := lp.VariableCount()
	sense, _ := lp.Sense()
	constraints := lp.Constraints()
	m := len(constraints)

	var slacks, excesses, artificials int
	for _, c := range constraints {
		switch c.Relation {
		case domain.LessEqual:
			slacks++
		case domain.GreaterEqual:
			excesses++
			artificials++
		case domain.Equal:
			artificials++
		}
	}

	total := n + slacks + excesses + artificials
	slackBase := n
	excessBase := n + slacks
	artificialBase := n + slacks + excesses

	t := domain.NewTableau(m+1, total+1)
	objRow := t.ObjectiveRow()
	rhsCol := t.RHSColumn()

	// Constraint rows: decision coefficients, ±1 injections, RHS.
	slackIdx, excessIdx, artificialIdx := 0, 0, 0
	artificialRows := make([]int, 0, artificials)
	for i, c := range constraints {
		for j, coeff := range c.Coefficients {
			t.Set(i, j, coeff)
		}
		switch c.Relation {
		case domain.LessEqual:
			t.Set(i, slackBase+slackIdx, 1)
			slackIdx++
		case domain.GreaterEqual:
			t.Set(i, excessBase+excessIdx, -1)
			excessIdx++
			t.Set(i, artificialBase+artificialIdx, 1)
			artificialIdx++
			artificialRows = append(artificialRows, i)
		case domain.Equal:
			t.Set(i, artificialBase+artificialIdx, 1)
			artificialIdx++
			artificialRows = append(artificialRows, i)
		}
		t.Set(i, rhsCol, c.RHS)
	}

	// Objective row: the engine minimises a sign-adjusted form, so maximise
	// problems are negated here and the sign re-applied at extraction.
	sign := 1.0
	if sense == domain.Maximize {
		sign = -1.0
	}
	for j, coeff := range lp.Objective() {
		t.Set(objRow, j, sign*coeff)
	}

	// Big-M penalty: every artificial column costs +M in the adjusted
	// objective row. Each artificial variable starts basic in its own
	// constraint row, which would leave a non-zero reduced cost in a basic
	// column; subtracting M times that row restores the zero-reduced-cost
	// invariant before the first pivot.
	if artificials > 0 {
		for j := artificialBase; j < artificialBase+artificials; j++ {
			t.Set(objRow, j, bigM)
		}
		for _, row := range artificialRows {
			t.SubtractScaledRow(objRow, row, bigM)
		}
	}

	catalog := make(domain.VariableCatalog, 0, total)
	for i := 0; i < n; i++ {
		catalog = append(catalog, domain.Variable{Label: fmt.Sprintf("x%d", i+1), Kind: domain.DecisionVariable})
	}
	for i := 0; i < slacks; i++ {
		catalog = append(catalog, domain.Variable{Label: fmt.Sprintf("s%d", i+1), Kind: domain.SlackVariable})
	}
	for i := 0; i < excesses; i++ {
		catalog = append(catalog, domain.Variable{Label: fmt.Sprintf("e%d", i+1), Kind: domain.ExcessVariable})
	}
	for i := 0; i < artificials; i++ {
		catalog = append(catalog, domain.Variable{Label: fmt.Sprintf("a%d", i+1), Kind: domain.ArtificialVariable})
	}

	return t, catalog, nil
}
