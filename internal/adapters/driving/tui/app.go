// Package tui implements the interactive terminal interface using the
// Elm architecture. The App model owns the problem being defined and
// routes messages to the active view.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/keymap"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/messages"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/styles"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/views/constraints"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/views/define"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/views/menu"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/views/result"
	"github.com/solvio-labs/simplexa/internal/core/domain"
)

// App is the root Bubbletea model.
type App struct {
	ctx    context.Context
	ports  *Ports
	styles *styles.Styles
	keymap *keymap.KeyMap

	// problem is shared by pointer with the editing views.
	problem *domain.LinearProgram

	currentView messages.ViewType

	menuView        *menu.View
	defineView      *define.View
	constraintsView *constraints.View
	resultView      *result.View

	statusErr error
	width     int
	height    int
}

var _ tea.Model = (*App)(nil)

// NewApp creates the root TUI model with the given service ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ports: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	problem := &domain.LinearProgram{}

	return &App{
		ctx:             context.Background(),
		ports:           ports,
		styles:          s,
		keymap:          km,
		problem:         problem,
		currentView:     messages.ViewMenu,
		menuView:        menu.NewView(s, problem, km),
		defineView:      define.NewView(s, problem, km),
		constraintsView: constraints.NewView(s, problem, km),
		resultView:      result.NewView(s, km),
	}, nil
}

// WithContext sets the context used for library operations.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// WithDefaultSense sets the objective sense the define wizard starts with.
func (a *App) WithDefaultSense(sense domain.Sense) *App {
	a.defineView.SetDefaultSense(sense)
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return a.menuView.Init()
}

// Update routes messages to the active view and handles navigation.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.defineView.SetDimensions(msg.Width, msg.Height)
		a.constraintsView.SetDimensions(msg.Width, msg.Height)
		a.resultView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			switch msg.String() {
			case "esc", "q", "enter":
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}

	case messages.ViewChanged:
		a.statusErr = nil
		a.currentView = msg.View
		if msg.View == messages.ViewDefine {
			a.defineView.Reset()
			return a, a.defineView.Init()
		}
		if msg.View == messages.ViewConstraints {
			a.constraintsView.Reset()
		}
		return a, nil

	case messages.DefinitionUpdated:
		// Views share the problem pointer; nothing to sync.
		return a, nil

	case messages.SolveRequested:
		return a, a.solve()

	case messages.SolveCompleted:
		a.resultView.SetResult(msg.Result, msg.Catalog, msg.Err)
		a.currentView = messages.ViewResult
		return a, nil

	case messages.SaveRequested:
		return a, a.saveToLibrary()

	case messages.ProblemSaved:
		a.resultView.SetSaveOutcome(msg.Problem, msg.Err)
		return a, nil

	case messages.ErrorOccurred:
		a.statusErr = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a.routeToView(msg)
}

// routeToView forwards a message to the currently active view.
func (a *App) routeToView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewDefine:
		a.defineView, cmd = a.defineView.Update(msg)
	case messages.ViewConstraints:
		a.constraintsView, cmd = a.constraintsView.Update(msg)
	case messages.ViewResult:
		a.resultView, cmd = a.resultView.Update(msg)
	}

	return a, cmd
}

// solve runs the solver off the Update loop and reports back.
func (a *App) solve() tea.Cmd {
	if err := a.problem.Validate(); err != nil {
		return func() tea.Msg {
			return messages.ErrorOccurred{Err: err}
		}
	}

	solver := a.ports.Solver
	lp := a.problem
	return func() tea.Msg {
		res, catalog, err := solver.Solve(lp)
		return messages.SolveCompleted{Result: res, Catalog: catalog, Err: err}
	}
}

// saveToLibrary stores the current problem under a timestamped name.
func (a *App) saveToLibrary() tea.Cmd {
	ctx := a.ctx
	service := a.ports.Problem
	lp := a.problem
	name := fmt.Sprintf("tui-%s", time.Now().UTC().Format("20060102-150405"))
	return func() tea.Msg {
		p, err := service.Save(ctx, name, lp)
		return messages.ProblemSaved{Problem: p, Err: err}
	}
}

// View renders the active view.
func (a *App) View() string {
	var body string

	switch a.currentView {
	case messages.ViewMenu:
		body = a.menuView.View()
	case messages.ViewDefine:
		body = a.defineView.View()
	case messages.ViewConstraints:
		body = a.constraintsView.View()
	case messages.ViewResult:
		body = a.resultView.View()
	case messages.ViewHelp:
		body = a.helpView()
	default:
		body = a.styles.Error.Render("Unknown view: " + a.currentView.String())
	}

	if a.statusErr != nil {
		body += "\n\n" + a.styles.Error.Render("Error: "+a.statusErr.Error())
	}

	return body
}

// helpView renders the keybinding reference from the keymap.
func (a *App) helpView() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString("  ")
			b.WriteString(a.styles.Subtitle.Render(fmt.Sprintf("%-10s", h.Key)))
			b.WriteString(a.styles.Normal.Render(h.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Muted.Render("Solve runs the tableau Simplex method with Big-M artificial variables."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[Esc] Back to menu"))

	return b.String()
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}
