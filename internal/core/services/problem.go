package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/solvio-labs/simplexa/internal/core/domain"
	"github.com/solvio-labs/simplexa/internal/core/ports/driven"
	"github.com/solvio-labs/simplexa/internal/core/ports/driving"
)

// Ensure ProblemService implements the interface.
var _ driving.ProblemService = (*ProblemService)(nil)

// ProblemService manages the saved-problem library over a ProblemStore.
type ProblemService struct {
	store driven.ProblemStore
}

// NewProblemService creates a new problem service.
func NewProblemService(store driven.ProblemStore) *ProblemService {
	return &ProblemService{store: store}
}

// Save stores a definition under a library-unique name.
func (s *ProblemService) Save(ctx context.Context, name string, def *domain.LinearProgram) (*domain.Problem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: problem name is empty", domain.ErrInvalidInput)
	}
	if def == nil {
		return nil, fmt.Errorf("%w: problem definition is nil", domain.ErrInvalidInput)
	}

	if _, err := s.store.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: problem %q", domain.ErrAlreadyExists, name)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking for existing problem: %w", err)
	}

	now := time.Now().UTC()
	p := &domain.Problem{
		ID:         uuid.NewString(),
		Name:       name,
		Definition: *def,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving problem: %w", err)
	}
	return p, nil
}

// Get retrieves a problem by ID or, failing that, by name.
func (s *ProblemService) Get(ctx context.Context, ref string) (*domain.Problem, error) {
	p, err := s.store.Get(ctx, ref)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("getting problem: %w", err)
	}
	p, err = s.store.GetByName(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: problem %q", domain.ErrNotFound, ref)
		}
		return nil, fmt.Errorf("getting problem by name: %w", err)
	}
	return p, nil
}

// List returns all stored problems, ordered by name.
func (s *ProblemService) List(ctx context.Context) ([]domain.Problem, error) {
	problems, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing problems: %w", err)
	}
	return problems, nil
}

// Update replaces the definition of an existing problem.
func (s *ProblemService) Update(ctx context.Context, ref string, def *domain.LinearProgram) (*domain.Problem, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: problem definition is nil", domain.ErrInvalidInput)
	}
	p, err := s.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	p.Definition = *def
	p.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("updating problem: %w", err)
	}
	return p, nil
}

// Delete removes a problem by ID or name.
func (s *ProblemService) Delete(ctx context.Context, ref string) error {
	p, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, p.ID); err != nil {
		return fmt.Errorf("deleting problem: %w", err)
	}
	return nil
}
