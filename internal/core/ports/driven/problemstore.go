package driven

import (
	"context"

	"github.com/solvio-labs/simplexa/internal/core/domain"
)

// ProblemStore persists the saved-problem library.
type ProblemStore interface {
	// Save stores or updates a problem.
	Save(ctx context.Context, p *domain.Problem) error

	// Get retrieves a problem by ID.
	// Returns domain.ErrNotFound when it does not exist.
	Get(ctx context.Context, id string) (*domain.Problem, error)

	// GetByName retrieves a problem by its unique name.
	// Returns domain.ErrNotFound when it does not exist.
	GetByName(ctx context.Context, name string) (*domain.Problem, error)

	// List returns all problems, ordered by name.
	List(ctx context.Context) ([]domain.Problem, error)

	// Delete removes a problem by ID.
	// Returns domain.ErrNotFound when it does not exist.
	Delete(ctx context.Context, id string) error
}
