package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvio-labs/simplexa/internal/core/domain"
)

func sampleCatalog() domain.VariableCatalog {
	return domain.VariableCatalog{
		{Label: "x1", Kind: domain.DecisionVariable},
		{Label: "x2", Kind: domain.DecisionVariable},
		{Label: "s1", Kind: domain.SlackVariable},
	}
}

func sampleTableau() *domain.Tableau {
	t := domain.NewTableau(2, 4)
	t.Set(0, 0, 1)
	t.Set(0, 1, 0.5)
	t.Set(0, 2, 1)
	t.Set(0, 3, 4)
	t.Set(1, 0, -3)
	t.Set(1, 1, -2)
	t.Set(1, 3, 0)
	return t
}

func TestTableau(t *testing.T) {
	out := Tableau(sampleTableau(), sampleCatalog(), DefaultOptions())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, one constraint row, objective row.
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "x1")
	assert.Contains(t, lines[0], "RHS")
	assert.Contains(t, lines[1], "c1")
	assert.Contains(t, lines[1], "0.5")
	assert.Contains(t, lines[2], "z")
	assert.Contains(t, lines[2], "-3")
}

func TestTableau_ElidesColumnsWhenNarrow(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxWidth = 16

	out := Tableau(sampleTableau(), sampleCatalog(), opts)

	assert.Contains(t, out, "…")
	// The RHS column always renders.
	assert.Contains(t, out, "RHS")
}

func TestSolution_Optimal(t *testing.T) {
	res := &domain.SolveResult{
		FinalTableau:   sampleTableau(),
		ObjectiveValue: 12,
		VariableValues: []float64{4, 0, 2},
		IterationCount: 1,
		Reason:         domain.ReasonOptimal,
	}

	out := Solution(res, sampleCatalog(), DefaultOptions())

	assert.Contains(t, out, "Optimal solution found")
	assert.Contains(t, out, "1 iteration(s)")
	assert.Contains(t, out, "z  = 12")
	assert.Contains(t, out, "x1 = 4")
	// Decision variables are always listed, even at zero.
	assert.Contains(t, out, "x2 = 0")
	// Non-zero auxiliary values appear.
	assert.Contains(t, out, "s1 = 2")
}

func TestSolution_ZeroAuxiliaryOmitted(t *testing.T) {
	res := &domain.SolveResult{
		ObjectiveValue: 1,
		VariableValues: []float64{1, 0, 0},
		IterationCount: 1,
		Reason:         domain.ReasonOptimal,
	}

	out := Solution(res, sampleCatalog(), DefaultOptions())
	assert.NotContains(t, out, "s1")
}

func TestSolution_NonOptimalSkipsValues(t *testing.T) {
	res := &domain.SolveResult{
		VariableValues: []float64{1, 2, 3},
		IterationCount: 5,
		Reason:         domain.ReasonUnbounded,
	}

	out := Solution(res, sampleCatalog(), DefaultOptions())

	assert.Contains(t, out, "Problem is unbounded")
	assert.Contains(t, out, "5 iteration(s)")
	assert.NotContains(t, out, "x1 =")
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "4", formatNumber(4.0, 3))
	assert.Equal(t, "0.5", formatNumber(0.5, 3))
	assert.Equal(t, "1.333", formatNumber(4.0/3.0, 3))
	assert.Equal(t, "-2", formatNumber(-2.0, 3))
	// Tiny negative round-off must not read "-0".
	assert.Equal(t, "0", formatNumber(-1e-12, 3))
	// Non-positive precision falls back to the default.
	assert.Equal(t, "0.125", formatNumber(0.125, 0))
}
