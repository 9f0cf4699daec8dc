// Package memory provides in-memory store implementations, used as test
// doubles and as the backing store for unsaved TUI sessions.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/solvio-labs/simplexa/internal/core/domain"
	"github.com/solvio-labs/simplexa/internal/core/ports/driven"
)

// Ensure ProblemStore implements the interface.
var _ driven.ProblemStore = (*ProblemStore)(nil)

// ProblemStore is an in-memory implementation of driven.ProblemStore.
type ProblemStore struct {
	mu       sync.RWMutex
	problems map[string]domain.Problem
}

// NewProblemStore creates a new in-memory problem store.
func NewProblemStore() *ProblemStore {
	return &ProblemStore{
		problems: make(map[string]domain.Problem),
	}
}

// Save stores or updates a problem.
func (s *ProblemStore) Save(_ context.Context, p *domain.Problem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.problems[p.ID] = *p
	return nil
}

// Get retrieves a problem by ID.
func (s *ProblemStore) Get(_ context.Context, id string) (*domain.Problem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.problems[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// GetByName retrieves a problem by its unique name.
func (s *ProblemStore) GetByName(_ context.Context, name string) (*domain.Problem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.problems {
		if p.Name == name {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all problems, ordered by name.
func (s *ProblemStore) List(_ context.Context) ([]domain.Problem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Problem, 0, len(s.problems))
	for _, p := range s.problems {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes a problem by ID.
func (s *ProblemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.problems[id]; !ok {
		return fmt.Errorf("%w: problem %q", domain.ErrNotFound, id)
	}
	delete(s.problems, id)
	return nil
}
