package services

import (
	"fmt"

	"github.com/solvio-labs/simplexa/internal/core/domain"
	"github.com/solvio-labs/simplexa/internal/core/ports/driving"
	"github.com/solvio-labs/simplexa/internal/core/simplex"
	"github.com/solvio-labs/simplexa/internal/logger"
)

// Ensure SolverService implements the interface.
var _ driving.SolverService = (*SolverService)(nil)

// SolverService runs the standard-form builder and pivot engine over a
// problem definition.
type SolverService struct{}

// NewSolverService creates a new solver service.
func NewSolverService() *SolverService {
	return &SolverService{}
}

// Solve validates the definition, builds the initial tableau and runs the
// pivot engine to termination.
func (s *SolverService) Solve(lp *domain.LinearProgram) (*domain.SolveResult, domain.VariableCatalog, error) {
	logger.Section("Standard Form")
	tableau, catalog, err := simplex.Build(lp)
	if err != nil {
		return nil, nil, fmt.Errorf("building standard form: %w", err)
	}
	logger.Debug("tableau: %d constraint rows, %d columns (%d decision, %d slack, %d excess, %d artificial)",
		tableau.ConstraintRows(), tableau.Cols()-1,
		catalog.Count(domain.DecisionVariable), catalog.Count(domain.SlackVariable),
		catalog.Count(domain.ExcessVariable), catalog.Count(domain.ArtificialVariable))

	sense, _ := lp.Sense()

	logger.Section("Pivot Loop")
	result := simplex.Solve(tableau, sense)
	logger.Info("terminated %s after %d iteration(s)", result.Reason, result.IterationCount)
	if result.Reason == domain.ReasonOptimal {
		logger.Debug("objective value: %g", result.ObjectiveValue)
	}

	return result, catalog, nil
}

// BuildTableau builds the initial standard-form tableau without solving.
func (s *SolverService) BuildTableau(lp *domain.LinearProgram) (*domain.Tableau, domain.VariableCatalog, error) {
	tableau, catalog, err := simplex.Build(lp)
	if err != nil {
		return nil, nil, fmt.Errorf("building standard form: %w", err)
	}
	return tableau, catalog, nil
}
