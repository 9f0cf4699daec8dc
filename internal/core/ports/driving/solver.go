package driving

import "github.com/solvio-labs/simplexa/internal/core/domain"

// SolverService converts a problem definition to standard form and solves
// it with the tableau Simplex method.
type SolverService interface {
	// Solve validates the definition, builds the initial tableau and runs
	// the pivot engine. Unbounded and iteration-limit outcomes are carried
	// in the result, not returned as errors; only precondition violations
	// (domain.ErrDefinitionIncomplete and friends) produce an error.
	Solve(lp *domain.LinearProgram) (*domain.SolveResult, domain.VariableCatalog, error)

	// BuildTableau builds the initial standard-form tableau without
	// solving, for inspection.
	BuildTableau(lp *domain.LinearProgram) (*domain.Tableau, domain.VariableCatalog, error)
}
