// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm
// architecture.
package messages

import "github.com/solvio-labs/simplexa/internal/core/domain"

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewDefine is the problem-definition wizard.
	ViewDefine
	// ViewConstraints is the constraint editor.
	ViewConstraints
	// ViewResult shows the solve outcome and final tableau.
	ViewResult
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewDefine:
		return "define"
	case ViewConstraints:
		return "constraints"
	case ViewResult:
		return "result"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// DefinitionUpdated signals the problem definition changed (wizard
// finished a step or the constraint editor mutated the constraint list).
type DefinitionUpdated struct{}

// SolveRequested is a command to solve the current problem.
type SolveRequested struct{}

// SolveCompleted carries the solve outcome back to the model.
type SolveCompleted struct {
	Result  *domain.SolveResult
	Catalog domain.VariableCatalog
	Err     error
}

// SaveRequested is a command to store the current problem in the library.
type SaveRequested struct{}

// ProblemSaved carries the outcome of a library save.
type ProblemSaved struct {
	Problem *domain.Problem
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
