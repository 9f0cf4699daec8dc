package define

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/messages"
	"github.com/solvio-labs/simplexa/internal/core/domain"
)

func typeString(v *View, s string) *View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

func pressEnter(v *View) (*View, tea.Cmd) {
	return v.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestNewView(t *testing.T) {
	v := NewView(nil, &domain.LinearProgram{}, nil)
	require.NotNil(t, v)
	assert.Equal(t, StepVariableCount, v.Step())
}

func TestView_FullWizardFlow(t *testing.T) {
	lp := &domain.LinearProgram{}
	v := NewView(nil, lp, nil)
	v.Init()

	// Step 1: variable count.
	v = typeString(v, "2")
	v, _ = pressEnter(v)
	require.NoError(t, v.Err())
	require.Equal(t, StepSense, v.Step())

	n, ok := lp.VariableCount()
	require.True(t, ok)
	assert.Equal(t, 2, n)

	// Step 2: sense selection (default maximize).
	v, _ = pressEnter(v)
	require.Equal(t, StepObjective, v.Step())

	// Step 3: objective coefficients.
	v = typeString(v, "3 2")
	v, cmd := pressEnter(v)
	require.NoError(t, v.Err())
	require.Equal(t, StepComplete, v.Step())

	require.NotNil(t, cmd)
	_, isUpdate := cmd().(messages.DefinitionUpdated)
	assert.True(t, isUpdate)

	sense, ok := lp.Sense()
	require.True(t, ok)
	assert.Equal(t, domain.Maximize, sense)
	assert.Equal(t, []float64{3, 2}, lp.Objective())

	// Step 4: Enter returns to the menu.
	_, cmd = pressEnter(v)
	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_SenseToggle(t *testing.T) {
	lp := &domain.LinearProgram{}
	v := NewView(nil, lp, nil)
	v.Init()

	v = typeString(v, "1")
	v, _ = pressEnter(v)
	require.Equal(t, StepSense, v.Step())

	// Toggle to minimize.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	v, _ = pressEnter(v)

	v = typeString(v, "5")
	v, _ = pressEnter(v)
	require.NoError(t, v.Err())

	sense, _ := lp.Sense()
	assert.Equal(t, domain.Minimize, sense)
}

func TestView_InvalidVariableCount(t *testing.T) {
	v := NewView(nil, &domain.LinearProgram{}, nil)
	v.Init()

	v = typeString(v, "zero")
	v, _ = pressEnter(v)

	assert.Error(t, v.Err())
	assert.Equal(t, StepVariableCount, v.Step())
}

func TestView_WrongCoefficientCount(t *testing.T) {
	v := NewView(nil, &domain.LinearProgram{}, nil)
	v.Init()

	v = typeString(v, "2")
	v, _ = pressEnter(v)
	v, _ = pressEnter(v)

	v = typeString(v, "1 2 3")
	v, _ = pressEnter(v)

	assert.Error(t, v.Err())
	assert.Equal(t, StepObjective, v.Step())
}

func TestView_EscReturnsToMenu(t *testing.T) {
	v := NewView(nil, &domain.LinearProgram{}, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_Reset(t *testing.T) {
	lp := &domain.LinearProgram{}
	v := NewView(nil, lp, nil)
	v.Init()

	v = typeString(v, "2")
	v, _ = pressEnter(v)
	require.Equal(t, StepSense, v.Step())

	v.Reset()
	assert.Equal(t, StepVariableCount, v.Step())
	assert.NoError(t, v.Err())
}

func TestView_DefaultSense(t *testing.T) {
	lp := &domain.LinearProgram{}
	v := NewView(nil, lp, nil)
	v.Init()
	v.SetDefaultSense(domain.Minimize)

	v = typeString(v, "2")
	v, _ = pressEnter(v)
	require.Equal(t, StepSense, v.Step())

	// The wizard starts on the configured sense and Reset keeps it.
	v, _ = pressEnter(v)
	v = typeString(v, "1 1")
	v, _ = pressEnter(v)
	require.NoError(t, v.Err())
	sense, _ := lp.Sense()
	assert.Equal(t, domain.Minimize, sense)

	v.Reset()
	v.Init()
	v = typeString(v, "2")
	v, _ = pressEnter(v)
	v, _ = pressEnter(v)
	v = typeString(v, "3 4")
	v, _ = pressEnter(v)
	require.NoError(t, v.Err())
	sense, _ = lp.Sense()
	assert.Equal(t, domain.Minimize, sense)
}
