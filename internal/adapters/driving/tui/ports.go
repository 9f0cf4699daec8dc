package tui

import (
	"fmt"

	"github.com/solvio-labs/simplexa/internal/core/ports/driving"
)

// Ports bundles the driving-port services the TUI depends on.
type Ports struct {
	// Solver runs the Simplex method on problem definitions.
	Solver driving.SolverService

	// Problem manages the saved-problem library.
	Problem driving.ProblemService
}

// Validate checks that all required ports are wired.
func (p *Ports) Validate() error {
	if p == nil {
		return fmt.Errorf("ports cannot be nil")
	}
	if p.Solver == nil {
		return fmt.Errorf("solver service is required")
	}
	if p.Problem == nil {
		return fmt.Errorf("problem service is required")
	}
	return nil
}
