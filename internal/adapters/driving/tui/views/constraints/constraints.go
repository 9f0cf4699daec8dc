// Package constraints provides the constraint-editor view: listing,
// adding and removing constraints of the current problem.
package constraints

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/components/numeric"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/keymap"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/messages"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/styles"
	"github.com/solvio-labs/simplexa/internal/core/domain"
)

// Mode tracks whether the editor is browsing the list or adding a row.
type Mode int

const (
	ModeList Mode = iota
	ModeCoefficients
	ModeRelation
	ModeRHS
)

// View is the constraint-editor view.
type View struct {
	styles  *styles.Styles
	problem *domain.LinearProgram
	keymap  *keymap.KeyMap

	mode     Mode
	selected int

	coefInput *numeric.Field
	rhsInput  *numeric.Field
	relations []domain.Relation
	relIndex  int

	pendingCoeffs   []float64
	pendingRelation domain.Relation

	err    error
	width  int
	height int
}

// NewView creates a new constraint-editor view operating on the shared
// problem definition.
func NewView(s *styles.Styles, problem *domain.LinearProgram, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		problem:   problem,
		keymap:    km,
		coefInput: numeric.NewField(s, "Constraint coefficients", "e.g. 1 1"),
		rhsInput:  numeric.NewField(s, "Right-hand side", "e.g. 4"),
		relations: []domain.Relation{domain.LessEqual, domain.GreaterEqual, domain.Equal},
		width:     80,
		height:    24,
	}
}

// Init initialises the editor.
func (v *View) Init() tea.Cmd {
	return nil
}

// Reset returns the editor to its list mode and clears inputs.
func (v *View) Reset() {
	v.mode = ModeList
	v.err = nil
	v.selected = 0
	v.relIndex = 0
	v.coefInput.Reset()
	v.rhsInput.Reset()
	v.coefInput.Blur()
	v.rhsInput.Blur()
}

// Update handles messages for the editor.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case ModeList:
			return v.updateList(msg)
		case ModeCoefficients:
			return v.updateCoefficients(msg)
		case ModeRelation:
			return v.updateRelation(msg)
		case ModeRHS:
			return v.updateRHS(msg)
		}
	}

	return v, nil
}

func (v *View) updateList(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, backToMenu

	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}

	case keymap.Matches(key, v.keymap.Down):
		if v.selected < v.problem.ConstraintCount()-1 {
			v.selected++
		}

	case keymap.Matches(key, v.keymap.Add):
		if _, ok := v.problem.VariableCount(); !ok {
			v.err = fmt.Errorf("define the problem first: %w", domain.ErrDefinitionIncomplete)
			return v, nil
		}
		v.err = nil
		v.mode = ModeCoefficients
		n, _ := v.problem.VariableCount()
		v.coefInput.SetLabel(fmt.Sprintf("Constraint coefficients (%d numbers)", n))
		v.coefInput.Reset()
		return v, v.coefInput.Focus()

	case keymap.Matches(key, v.keymap.Delete):
		if v.problem.ConstraintCount() == 0 {
			return v, nil
		}
		if err := v.problem.RemoveConstraint(v.selected); err != nil {
			v.err = err
			return v, nil
		}
		if v.selected >= v.problem.ConstraintCount() && v.selected > 0 {
			v.selected--
		}
		return v, definitionUpdated
	}

	return v, nil
}

func (v *View) updateCoefficients(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.cancelEntry()
		return v, nil

	case tea.KeyEnter:
		n, _ := v.problem.VariableCount()
		coeffs, err := numeric.ParseFloats(v.coefInput.Value(), n)
		if err != nil {
			v.err = err
			return v, nil
		}
		v.err = nil
		v.pendingCoeffs = coeffs
		v.coefInput.Blur()
		v.relIndex = 0
		v.mode = ModeRelation
		return v, nil
	}

	var cmd tea.Cmd
	v.coefInput, cmd = v.coefInput.Update(msg)
	return v, cmd
}

func (v *View) updateRelation(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case msg.Type == tea.KeyEsc:
		v.cancelEntry()
		return v, nil

	case keymap.Matches(key, v.keymap.Up):
		if v.relIndex > 0 {
			v.relIndex--
		}

	case keymap.Matches(key, v.keymap.Down), key == "tab":
		if v.relIndex < len(v.relations)-1 {
			v.relIndex++
		}

	case keymap.Matches(key, v.keymap.Select):
		v.pendingRelation = v.relations[v.relIndex]
		v.mode = ModeRHS
		v.rhsInput.Reset()
		return v, v.rhsInput.Focus()
	}

	return v, nil
}

func (v *View) updateRHS(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.cancelEntry()
		return v, nil

	case tea.KeyEnter:
		rhs, err := numeric.ParseFloat(v.rhsInput.Value())
		if err != nil {
			v.err = err
			return v, nil
		}

		constraint := domain.Constraint{
			Coefficients: v.pendingCoeffs,
			Relation:     v.pendingRelation,
			RHS:          rhs,
		}
		if err := v.problem.AddConstraint(constraint); err != nil {
			v.err = err
			return v, nil
		}

		v.cancelEntry()
		v.selected = v.problem.ConstraintCount() - 1
		return v, definitionUpdated
	}

	var cmd tea.Cmd
	v.rhsInput, cmd = v.rhsInput.Update(msg)
	return v, cmd
}

// cancelEntry abandons the in-progress constraint and returns to the list.
func (v *View) cancelEntry() {
	v.mode = ModeList
	v.err = nil
	v.pendingCoeffs = nil
	v.coefInput.Blur()
	v.rhsInput.Blur()
}

// View renders the editor.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Constraints"))
	b.WriteString("\n\n")

	constraints := v.problem.Constraints()
	if len(constraints) == 0 {
		b.WriteString(v.styles.Muted.Render("No constraints yet."))
		b.WriteString("\n")
	}
	for i, c := range constraints {
		cursor := "  "
		style := v.styles.Normal
		if v.mode == ModeList && i == v.selected {
			cursor = "> "
			style = v.styles.Subtitle
		}
		b.WriteString(cursor + style.Render(formatConstraint(c)))
		b.WriteString("\n")
	}

	switch v.mode {
	case ModeCoefficients:
		b.WriteString("\n")
		b.WriteString(v.coefInput.View())

	case ModeRelation:
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Relation"))
		b.WriteString("\n")
		for i, rel := range v.relations {
			cursor := "  "
			style := v.styles.Normal
			if i == v.relIndex {
				cursor = "> "
				style = v.styles.Subtitle
			}
			b.WriteString(cursor + style.Render(rel.Symbol()))
			b.WriteString("\n")
		}

	case ModeRHS:
		b.WriteString("\n")
		b.WriteString(v.rhsInput.View())
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.mode == ModeList {
		b.WriteString(v.styles.Help.Render("[a] Add  [d] Delete  [j/k] Navigate  [Esc] Back"))
	} else {
		b.WriteString(v.styles.Help.Render("[Enter] Next  [Esc] Cancel"))
	}

	return b.String()
}

// formatConstraint renders a constraint as a readable inequality.
func formatConstraint(c domain.Constraint) string {
	terms := make([]string, len(c.Coefficients))
	for i, coef := range c.Coefficients {
		terms[i] = fmt.Sprintf("%gx%d", coef, i+1)
	}
	return fmt.Sprintf("%s %s %g", strings.Join(terms, " + "), c.Relation.Symbol(), c.RHS)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Mode returns the current editor mode.
func (v *View) Mode() Mode {
	return v.mode
}

func backToMenu() tea.Msg {
	return messages.ViewChanged{View: messages.ViewMenu}
}

func definitionUpdated() tea.Msg {
	return messages.DefinitionUpdated{}
}
