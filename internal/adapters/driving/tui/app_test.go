package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/messages"
	"github.com/solvio-labs/simplexa/internal/core/domain"
	"github.com/solvio-labs/simplexa/internal/core/services"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(&Ports{
		Solver:  &MockSolverService{},
		Problem: &MockProblemService{},
	})
	require.NoError(t, err)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(*App)
}

// defineProblem fills the shared definition directly, as the wizard would.
func defineProblem(t *testing.T, app *App) {
	t.Helper()
	require.NoError(t, app.problem.SetVariableCount(2))
	require.NoError(t, app.problem.SetObjective(domain.Maximize, []float64{3, 2}))
	require.NoError(t, app.problem.AddConstraint(domain.Constraint{
		Coefficients: []float64{1, 1},
		Relation:     domain.LessEqual,
		RHS:          4,
	}))
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(&Ports{
		Solver:  &MockSolverService{},
		Problem: &MockProblemService{},
	})
	require.NoError(t, err)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.Error(t, err)
}

func TestApp_ViewNavigation(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewDefine})
	app = model.(*App)
	assert.Equal(t, messages.ViewDefine, app.CurrentView())

	model, _ = app.Update(messages.ViewChanged{View: messages.ViewConstraints})
	app = model.(*App)
	assert.Equal(t, messages.ViewConstraints, app.CurrentView())

	model, _ = app.Update(messages.ViewChanged{View: messages.ViewMenu})
	app = model.(*App)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_SolveRequested(t *testing.T) {
	app := newTestApp(t)
	defineProblem(t, app)

	// The real solver exercises the full build-and-pivot path.
	app.ports.Solver = services.NewSolverService()

	model, cmd := app.Update(messages.SolveRequested{})
	app = model.(*App)
	require.NotNil(t, cmd)

	msg := cmd()
	completed, ok := msg.(messages.SolveCompleted)
	require.True(t, ok)
	require.NoError(t, completed.Err)
	assert.Equal(t, domain.ReasonOptimal, completed.Result.Reason)

	model, _ = app.Update(msg)
	app = model.(*App)
	assert.Equal(t, messages.ViewResult, app.CurrentView())
	assert.Contains(t, app.View(), "Optimal solution found")
}

func TestApp_SolveRequested_IncompleteDefinition(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(messages.SolveRequested{})
	app = model.(*App)
	require.NotNil(t, cmd)

	errMsg, ok := cmd().(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, domain.ErrDefinitionIncomplete)

	// The app stays on the menu and surfaces the error.
	model, _ = app.Update(cmd())
	app = model.(*App)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.Contains(t, app.View(), "Error:")
}

func TestApp_SaveRequested(t *testing.T) {
	app := newTestApp(t)
	defineProblem(t, app)

	var savedName string
	app.ports.Problem = &MockProblemService{
		SaveFunc: func(_ context.Context, name string, _ *domain.LinearProgram) (*domain.Problem, error) {
			savedName = name
			return &domain.Problem{Name: name}, nil
		},
	}

	model, cmd := app.Update(messages.SaveRequested{})
	app = model.(*App)
	require.NotNil(t, cmd)

	saved, ok := cmd().(messages.ProblemSaved)
	require.True(t, ok)
	require.NoError(t, saved.Err)
	assert.NotEmpty(t, savedName)
	assert.Contains(t, savedName, "tui-")
}

func TestApp_ProblemSavedError(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ProblemSaved{Err: errors.New("name taken")})
	app = model.(*App)
	// The outcome lands on the result view.
	app.currentView = messages.ViewResult
	assert.Contains(t, app.View(), "Save failed: name taken")
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewHelp})
	app = model.(*App)
	require.Equal(t, messages.ViewHelp, app.CurrentView())

	out := app.View()
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "add constraint")
	assert.Contains(t, out, "toggle final tableau")

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_QuitMessage(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
