// Package define provides the problem-definition wizard view: variable
// count, objective sense and objective coefficients, entered step by step.
package define

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

// WizardStep tracks the current step in the wizard.
type WizardStep int

const (
	StepVariableCount WizardStep = iota
	StepSense
	StepObjective
	StepComplete
)

// View is the problem-definition wizard view.
type View struct {
	styles  *styles.Styles
	problem *domain.LinearProgram
	keymap  *keymap.KeyMap

	step         WizardStep
	countInput   *numeric.Field
	coefInput    *numeric.Field
	senses       []domain.Sense
	senseIndex   int
	defaultIndex int

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new define wizard view operating on the shared
// problem definition.
func NewView(s *styles.Styles, problem *domain.LinearProgram, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		problem:    problem,
		keymap:     km,
		countInput: numeric.NewField(s, "Number of decision variables", "e.g. 2"),
		coefInput:  numeric.NewField(s, "Objective coefficients", "e.g. 3 2"),
		senses:     []domain.Sense{domain.Maximize, domain.Minimize},
		width:      80,
		height:     24,
	}
}

// Init initialises the wizard.
func (v *View) Init() tea.Cmd {
	return v.countInput.Focus()
}

// Reset restarts the wizard at the first step.
func (v *View) Reset() {
	v.step = StepVariableCount
	v.err = nil
	v.countInput.Reset()
	v.coefInput.Reset()
	v.senseIndex = v.defaultIndex
	v.countInput.Blur()
	v.coefInput.Blur()
}

// SetDefaultSense sets the objective sense the wizard starts with.
func (v *View) SetDefaultSense(sense domain.Sense) {
	for i, s := range v.senses {
		if s == sense {
			v.defaultIndex = i
			v.senseIndex = i
			return
		}
	}
}

// Update handles messages for the wizard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return v, backToMenu
		case tea.KeyEnter:
			return v.advance()
		}

		switch v.step {
		case StepVariableCount:
			var cmd tea.Cmd
			v.countInput, cmd = v.countInput.Update(msg)
			return v, cmd
		case StepSense:
			key := msg.String()
			if keymap.Matches(key, v.keymap.Up) || keymap.Matches(key, v.keymap.Down) || key == "tab" {
				v.senseIndex = 1 - v.senseIndex
			}
			return v, nil
		case StepObjective:
			var cmd tea.Cmd
			v.coefInput, cmd = v.coefInput.Update(msg)
			return v, cmd
		}
	}

	return v, nil
}

// advance validates the current step and moves to the next one.
func (v *View) advance() (*View, tea.Cmd) {
	v.err = nil

	switch v.step {
	case StepVariableCount:
		n, err := numeric.ParseInt(v.countInput.Value())
		if err != nil {
			v.err = err
			return v, nil
		}
		if err := v.problem.SetVariableCount(n); err != nil {
			v.err = err
			return v, nil
		}
		v.countInput.Blur()
		v.step = StepSense
		return v, nil

	case StepSense:
		v.step = StepObjective
		n, _ := v.problem.VariableCount()
		v.coefInput.SetLabel(fmt.Sprintf("Objective coefficients (%d numbers)", n))
		return v, v.coefInput.Focus()

	case StepObjective:
		n, _ := v.problem.VariableCount()
		coeffs, err := numeric.ParseFloats(v.coefInput.Value(), n)
		if err != nil {
			v.err = err
			return v, nil
		}
		if err := v.problem.SetObjective(v.senses[v.senseIndex], coeffs); err != nil {
			v.err = err
			return v, nil
		}
		v.coefInput.Blur()
		v.step = StepComplete
		return v, func() tea.Msg {
			return messages.DefinitionUpdated{}
		}

	case StepComplete:
		return v, backToMenu
	}

	return v, nil
}

// View renders the wizard.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Define Problem"))
	b.WriteString("\n\n")

	switch v.step {
	case StepVariableCount:
		b.WriteString(v.countInput.View())

	case StepSense:
		b.WriteString(v.styles.Subtitle.Render("Objective sense"))
		b.WriteString("\n")
		for i, sense := range v.senses {
			cursor := "  "
			style := v.styles.Normal
			if i == v.senseIndex {
				cursor = "> "
				style = v.styles.Subtitle
			}
			b.WriteString(cursor + style.Render(sense.Description()))
			b.WriteString("\n")
		}

	case StepObjective:
		b.WriteString(v.coefInput.View())

	case StepComplete:
		sense, _ := v.problem.Sense()
		b.WriteString(v.styles.Success.Render("Objective set: " + sense.String() + " " + formatLinear(v.problem.Objective())))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Muted.Render("Press Enter to return to the menu and add constraints."))
	}

	if v.err != nil {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[Enter] Next  [Esc] Back to menu"))

	return b.String()
}

// formatLinear renders coefficients as a readable linear expression.
func formatLinear(coeffs []float64) string {
	terms := make([]string, len(coeffs))
	for i, c := range coeffs {
		terms[i] = fmt.Sprintf("%gx%d", c, i+1)
	}
	return strings.Join(terms, " + ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Step returns the current wizard step.
func (v *View) Step() WizardStep {
	return v.step
}

// Err returns the last validation error.
func (v *View) Err() error {
	return v.err
}

func backToMenu() tea.Msg {
	return messages.ViewChanged{View: messages.ViewMenu}
}
