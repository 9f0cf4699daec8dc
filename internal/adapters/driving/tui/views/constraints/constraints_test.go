package constraints

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/messages"
	"github.com/solvio-labs/simplexa/internal/core/domain"
)

func definedProgram(t *testing.T) *domain.LinearProgram {
	t.Helper()
	lp := &domain.LinearProgram{}
	require.NoError(t, lp.SetVariableCount(2))
	require.NoError(t, lp.SetObjective(domain.Maximize, []float64{3, 2}))
	return lp
}

func typeString(v *View, s string) *View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

func press(v *View, keyType tea.KeyType) (*View, tea.Cmd) {
	return v.Update(tea.KeyMsg{Type: keyType})
}

func TestNewView(t *testing.T) {
	v := NewView(nil, definedProgram(t), nil)
	require.NotNil(t, v)
	assert.Equal(t, ModeList, v.Mode())
}

func TestView_AddConstraintFlow(t *testing.T) {
	lp := definedProgram(t)
	v := NewView(nil, lp, nil)

	// "a" starts coefficient entry.
	v = typeString(v, "a")
	require.Equal(t, ModeCoefficients, v.Mode())

	v = typeString(v, "1 1")
	v, _ = press(v, tea.KeyEnter)
	require.Equal(t, ModeRelation, v.Mode())

	// Default relation is ≤; confirm.
	v, _ = press(v, tea.KeyEnter)
	require.Equal(t, ModeRHS, v.Mode())

	v = typeString(v, "4")
	v, cmd := press(v, tea.KeyEnter)

	require.Equal(t, ModeList, v.Mode())
	require.Equal(t, 1, lp.ConstraintCount())

	c := lp.Constraints()[0]
	assert.Equal(t, []float64{1, 1}, c.Coefficients)
	assert.Equal(t, domain.LessEqual, c.Relation)
	assert.Equal(t, 4.0, c.RHS)

	require.NotNil(t, cmd)
	_, ok := cmd().(messages.DefinitionUpdated)
	assert.True(t, ok)
}

func TestView_AddConstraintWithRelationSelection(t *testing.T) {
	lp := definedProgram(t)
	v := NewView(nil, lp, nil)

	v = typeString(v, "a")
	v = typeString(v, "1 0")
	v, _ = press(v, tea.KeyEnter)

	// Move to ≥.
	v = typeString(v, "j")
	v, _ = press(v, tea.KeyEnter)

	v = typeString(v, "5")
	v, _ = press(v, tea.KeyEnter)

	require.Equal(t, 1, lp.ConstraintCount())
	assert.Equal(t, domain.GreaterEqual, lp.Constraints()[0].Relation)
}

func TestView_AddRequiresDefinedProblem(t *testing.T) {
	v := NewView(nil, &domain.LinearProgram{}, nil)

	v = typeString(v, "a")

	assert.Equal(t, ModeList, v.Mode())
	assert.Error(t, v.err)
}

func TestView_InvalidCoefficientsKeepEntryMode(t *testing.T) {
	v := NewView(nil, definedProgram(t), nil)

	v = typeString(v, "a")
	v = typeString(v, "1")
	v, _ = press(v, tea.KeyEnter)

	assert.Equal(t, ModeCoefficients, v.Mode())
	assert.Error(t, v.err)
}

func TestView_EscCancelsEntry(t *testing.T) {
	lp := definedProgram(t)
	v := NewView(nil, lp, nil)

	v = typeString(v, "a")
	v = typeString(v, "1 1")
	v, _ = press(v, tea.KeyEsc)

	assert.Equal(t, ModeList, v.Mode())
	assert.Zero(t, lp.ConstraintCount())
}

func TestView_DeleteConstraint(t *testing.T) {
	lp := definedProgram(t)
	require.NoError(t, lp.AddConstraint(domain.Constraint{
		Coefficients: []float64{1, 1},
		Relation:     domain.LessEqual,
		RHS:          4,
	}))
	v := NewView(nil, lp, nil)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	assert.Zero(t, lp.ConstraintCount())
	require.NotNil(t, cmd)
	_, ok := cmd().(messages.DefinitionUpdated)
	assert.True(t, ok)

	// Deleting with nothing left is a no-op.
	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	assert.Nil(t, cmd)
}

func TestView_EscInListReturnsToMenu(t *testing.T) {
	v := NewView(nil, definedProgram(t), nil)

	_, cmd := press(v, tea.KeyEsc)
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_RenderListsConstraints(t *testing.T) {
	lp := definedProgram(t)
	require.NoError(t, lp.AddConstraint(domain.Constraint{
		Coefficients: []float64{1, 3},
		Relation:     domain.LessEqual,
		RHS:          6,
	}))
	v := NewView(nil, lp, nil)

	out := v.View()
	assert.Contains(t, out, "1x1 + 3x2 ≤ 6")
}
