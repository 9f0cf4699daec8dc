package driving

import (
	"context"

	"github.com/solvio-labs/simplexa/internal/core/domain"
)

// ProblemService manages the saved-problem library.
type ProblemService interface {
	// Save stores a definition under a library-unique name and returns the
	// stored problem. Returns domain.ErrAlreadyExists when the name is
	// taken.
	Save(ctx context.Context, name string, def *domain.LinearProgram) (*domain.Problem, error)

	// Get retrieves a problem by ID or, failing that, by name.
	Get(ctx context.Context, ref string) (*domain.Problem, error)

	// List returns all stored problems, ordered by name.
	List(ctx context.Context) ([]domain.Problem, error)

	// Update replaces the definition of an existing problem.
	Update(ctx context.Context, ref string, def *domain.LinearProgram) (*domain.Problem, error)

	// Delete removes a problem by ID or name.
	Delete(ctx context.Context, ref string) error
}
