package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/messages"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/styles"
	"github.com/solvio-labs/simplexa/internal/core/domain"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewView(t *testing.T) {
	v := NewView(styles.DefaultStyles(), &domain.LinearProgram{}, nil)
	require.NotNil(t, v)
	assert.Equal(t, 0, v.Selected())
}

func TestView_Navigation(t *testing.T) {
	v := NewView(nil, &domain.LinearProgram{}, nil)

	v, _ = v.Update(keyMsg("j"))
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(keyMsg("k"))
	assert.Equal(t, 0, v.Selected())

	// Does not move past the ends.
	v, _ = v.Update(keyMsg("k"))
	assert.Equal(t, 0, v.Selected())

	for i := 0; i < 10; i++ {
		v, _ = v.Update(keyMsg("j"))
	}
	assert.Equal(t, 4, v.Selected())
}

func TestView_SelectNavigatesToView(t *testing.T) {
	v := NewView(nil, &domain.LinearProgram{}, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewDefine, changed.View)
}

func TestView_SolveItemEmitsSolveRequested(t *testing.T) {
	v := NewView(nil, &domain.LinearProgram{}, nil)

	v, _ = v.Update(keyMsg("j"))
	v, _ = v.Update(keyMsg("j"))

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, ok := cmd().(messages.SolveRequested)
	assert.True(t, ok)
}

func TestView_QuitEmitsQuitMessage(t *testing.T) {
	v := NewView(nil, &domain.LinearProgram{}, nil)

	// "q" quits from anywhere in the menu.
	_, cmd := v.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(messages.Quit)
	assert.True(t, ok)

	// So does selecting the Quit item.
	for i := 0; i < 4; i++ {
		v, _ = v.Update(keyMsg("j"))
	}
	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok = cmd().(messages.Quit)
	assert.True(t, ok)
}

func TestView_SummaryTracksDefinition(t *testing.T) {
	lp := &domain.LinearProgram{}
	v := NewView(nil, lp, nil)
	v.SetDimensions(80, 24)

	assert.Contains(t, v.View(), "No problem defined yet.")

	require.NoError(t, lp.SetVariableCount(2))
	require.NoError(t, lp.SetObjective(domain.Maximize, []float64{3, 2}))

	out := v.View()
	assert.Contains(t, out, "2 variable(s)")
	assert.Contains(t, out, "maximize")
	assert.Contains(t, out, "0 constraint(s)")
}
