// Package result provides the solve-result view: the solution summary
// plus an optional final tableau, scrollable in a viewport.
package result

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/keymap"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/messages"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/styles"
	"github.com/solvio-labs/simplexa/internal/core/domain"
	"github.com/solvio-labs/simplexa/internal/render"
)

// View is the solve-result view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	result   *domain.SolveResult
	catalog  domain.VariableCatalog
	solveErr error
	saveNote string

	showTableau bool
	viewport    viewport.Model
	width       int
	height      int
	ready       bool
}

// NewView creates a new result view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		width:  80,
		height: 24,
	}
}

// Init initialises the result view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetResult installs a solve outcome and rebuilds the viewport content.
func (v *View) SetResult(res *domain.SolveResult, catalog domain.VariableCatalog, err error) {
	v.result = res
	v.catalog = catalog
	v.solveErr = err
	v.showTableau = false
	v.saveNote = ""
	v.refresh()
}

// SetSaveOutcome records the result of a library save for display.
func (v *View) SetSaveOutcome(p *domain.Problem, err error) {
	if err != nil {
		v.saveNote = v.styles.Error.Render("Save failed: " + err.Error())
	} else {
		v.saveNote = v.styles.Success.Render("Saved to library as " + p.Name)
	}
	v.refresh()
}

// Update handles messages for the result view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.viewport = viewport.New(msg.Width, max(msg.Height-4, 1))
		v.ready = true
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, v.keymap.Back):
			return v, backToMenu
		case keymap.Matches(key, v.keymap.ToggleTableau):
			v.showTableau = !v.showTableau
			v.refresh()
			return v, nil
		case keymap.Matches(key, v.keymap.Save):
			if v.result != nil {
				return v, func() tea.Msg {
					return messages.SaveRequested{}
				}
			}
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// refresh rebuilds the viewport content from the current result.
func (v *View) refresh() {
	var b strings.Builder

	switch {
	case v.solveErr != nil:
		b.WriteString(v.styles.Error.Render("Solve failed: " + v.solveErr.Error()))

	case v.result == nil:
		b.WriteString(v.styles.Muted.Render("Nothing solved yet."))

	default:
		opts := render.DefaultOptions()
		opts.MaxWidth = v.width
		b.WriteString(render.Solution(v.result, v.catalog, opts))
		if v.showTableau {
			b.WriteString("\n\n")
			b.WriteString(v.styles.Subtitle.Render("Final tableau"))
			b.WriteString("\n")
			b.WriteString(render.Tableau(v.result.FinalTableau, v.catalog, opts))
		}
	}

	if v.saveNote != "" {
		b.WriteString("\n\n")
		b.WriteString(v.saveNote)
	}

	v.viewport.SetContent(b.String())
}

// View renders the result view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Result"))
	b.WriteString("\n\n")

	if v.ready {
		b.WriteString(v.viewport.View())
	} else {
		b.WriteString(v.styles.Muted.Render("Initialising..."))
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[t] Toggle tableau  [s] Save to library  [j/k] Scroll  [Esc] Back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport = viewport.New(width, max(height-4, 1))
	v.ready = true
	v.refresh()
}

func backToMenu() tea.Msg {
	return messages.ViewChanged{View: messages.ViewMenu}
}
