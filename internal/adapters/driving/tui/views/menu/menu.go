// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/keymap"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/messages"
	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/styles"
	"github.com/solvio-labs/simplexa/internal/core/domain"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Solve bool // If true, selecting this item solves the current problem
	Quit  bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	problem  *domain.LinearProgram
	keymap   *keymap.KeyMap
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view. The problem pointer is shared with the
// editing views so the menu can summarise definition progress.
func NewView(s *styles.Styles, problem *domain.LinearProgram, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:  s,
		problem: problem,
		keymap:  km,
		items: []Item{
			{Label: "Define problem", View: messages.ViewDefine},
			{Label: "Edit constraints", View: messages.ViewConstraints},
			{Label: "Solve", Solve: true},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case keymap.Matches(key, v.keymap.Down):
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case keymap.Matches(key, v.keymap.Select):
			item := v.items[v.selected]
			switch {
			case item.Quit:
				return v, quitApp
			case item.Solve:
				return v, func() tea.Msg {
					return messages.SolveRequested{}
				}
			default:
				return v, func() tea.Msg {
					return messages.ViewChanged{View: item.View}
				}
			}

		case keymap.Matches(key, v.keymap.Quit):
			return v, quitApp
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Simplexa"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Linear Programming with the Simplex Method"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Normal.Render(v.summary()))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal

		if i == v.selected {
			cursor = "> "
			style = v.styles.Subtitle
		}

		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// summary describes how much of the problem has been defined so far.
func (v *View) summary() string {
	n, hasN := v.problem.VariableCount()
	if !hasN {
		return "No problem defined yet."
	}

	parts := []string{fmt.Sprintf("%d variable(s)", n)}
	if sense, ok := v.problem.Sense(); ok {
		parts = append(parts, sense.String())
	} else {
		parts = append(parts, "objective unset")
	}
	parts = append(parts, fmt.Sprintf("%d constraint(s)", v.problem.ConstraintCount()))
	return strings.Join(parts, ", ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// quitApp asks the root model to exit.
func quitApp() tea.Msg {
	return messages.Quit{}
}
