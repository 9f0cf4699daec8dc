package domain

import (
	"fmt"
	"time"
)

// Constraint is one row of the constraint system. It is immutable once
// appended except via ReplaceConstraint/RemoveConstraint on the owning
// LinearProgram.
type Constraint struct {
	// Coefficients are the decision-variable coefficients, in declared order.
	Coefficients []float64

	// Relation is the relational operator (≤, ≥ or =).
	Relation Relation

	// RHS is the right-hand side. Any sign is accepted; a negative RHS can
	// leave an infeasible initial basis, which the engine does not specially
	// detect.
	RHS float64
}

// LinearProgram is an incrementally built problem definition. The variable
// count and objective sense carry an explicit defined/undefined state so the
// builder's precondition check is an exhaustive match rather than a sentinel
// comparison. Owned by a single session; not safe for concurrent use.
type LinearProgram struct {
	numVariables    int
	hasVariables    bool
	sense           Sense
	hasSense        bool
	objectiveCoeffs []float64
	constraints     []Constraint
}

// SetVariableCount declares the number of decision variables. Changing the
// count invalidates any previously entered objective and constraints, so
// both are cleared.
func (lp *LinearProgram) SetVariableCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: variable count must be positive, got %d", ErrInvalidInput, n)
	}
	if lp.hasVariables && lp.numVariables != n {
		lp.objectiveCoeffs = nil
		lp.constraints = nil
	}
	lp.numVariables = n
	lp.hasVariables = true
	return nil
}

// VariableCount returns the declared variable count and whether it is set.
func (lp *LinearProgram) VariableCount() (int, bool) {
	return lp.numVariables, lp.hasVariables
}

// SetObjective declares the objective sense and coefficients.
func (lp *LinearProgram) SetObjective(sense Sense, coeffs []float64) error {
	if !sense.IsValid() {
		return fmt.Errorf("%w: unknown objective sense %q", ErrInvalidInput, sense)
	}
	if !lp.hasVariables {
		return fmt.Errorf("%w: variable count must be set before the objective", ErrDefinitionIncomplete)
	}
	if len(coeffs) != lp.numVariables {
		return fmt.Errorf("%w: objective has %d coefficients, want %d", ErrDimensionMismatch, len(coeffs), lp.numVariables)
	}
	lp.sense = sense
	lp.hasSense = true
	lp.objectiveCoeffs = append([]float64(nil), coeffs...)
	return nil
}

// Sense returns the objective sense and whether it is set.
func (lp *LinearProgram) Sense() (Sense, bool) {
	return lp.sense, lp.hasSense
}

// Objective returns a copy of the objective coefficients.
func (lp *LinearProgram) Objective() []float64 {
	return append([]float64(nil), lp.objectiveCoeffs...)
}

// AddConstraint appends a constraint. An all-zero coefficient row is
// accepted.
func (lp *LinearProgram) AddConstraint(c Constraint) error {
	if err := lp.checkConstraint(c); err != nil {
		return err
	}
	c.Coefficients = append([]float64(nil), c.Coefficients...)
	lp.constraints = append(lp.constraints, c)
	return nil
}

// ReplaceConstraint replaces the constraint at index i.
func (lp *LinearProgram) ReplaceConstraint(i int, c Constraint) error {
	if i < 0 || i >= len(lp.constraints) {
		return fmt.Errorf("%w: constraint %d", ErrNotFound, i)
	}
	if err := lp.checkConstraint(c); err != nil {
		return err
	}
	c.Coefficients = append([]float64(nil), c.Coefficients...)
	lp.constraints[i] = c
	return nil
}

// RemoveConstraint deletes the constraint at index i, preserving order.
func (lp *LinearProgram) RemoveConstraint(i int) error {
	if i < 0 || i >= len(lp.constraints) {
		return fmt.Errorf("%w: constraint %d", ErrNotFound, i)
	}
	lp.constraints = append(lp.constraints[:i], lp.constraints[i+1:]...)
	return nil
}

// Constraints returns a copy of the constraint list.
func (lp *LinearProgram) Constraints() []Constraint {
	out := make([]Constraint, len(lp.constraints))
	for i, c := range lp.constraints {
		c.Coefficients = append([]float64(nil), c.Coefficients...)
		out[i] = c
	}
	return out
}

// ConstraintCount returns the number of constraints.
func (lp *LinearProgram) ConstraintCount() int {
	return len(lp.constraints)
}

// Validate checks the builder preconditions: variable count set and
// positive, objective sense set, at least one constraint, and every
// coefficient sequence matching the variable count.
func (lp *LinearProgram) Validate() error {
	if !lp.hasVariables {
		return fmt.Errorf("%w: variable count not set", ErrDefinitionIncomplete)
	}
	if !lp.hasSense {
		return fmt.Errorf("%w: objective not set", ErrDefinitionIncomplete)
	}
	if len(lp.objectiveCoeffs) != lp.numVariables {
		return fmt.Errorf("%w: objective has %d coefficients, want %d", ErrDimensionMismatch, len(lp.objectiveCoeffs), lp.numVariables)
	}
	if len(lp.constraints) == 0 {
		return fmt.Errorf("%w: no constraints", ErrDefinitionIncomplete)
	}
	for i, c := range lp.constraints {
		if len(c.Coefficients) != lp.numVariables {
			return fmt.Errorf("%w: constraint %d has %d coefficients, want %d", ErrDimensionMismatch, i+1, len(c.Coefficients), lp.numVariables)
		}
	}
	return nil
}

func (lp *LinearProgram) checkConstraint(c Constraint) error {
	if !c.Relation.IsValid() {
		return fmt.Errorf("%w: unknown relation %q", ErrInvalidInput, c.Relation)
	}
	if !lp.hasVariables {
		return fmt.Errorf("%w: variable count must be set before constraints", ErrDefinitionIncomplete)
	}
	if len(c.Coefficients) != lp.numVariables {
		return fmt.Errorf("%w: constraint has %d coefficients, want %d", ErrDimensionMismatch, len(c.Coefficients), lp.numVariables)
	}
	return nil
}

// Problem is a named, stored linear program in the problem library.
type Problem struct {
	// ID is the unique identifier for the stored problem.
	ID string

	// Name is the human-readable name, unique within the library.
	Name string

	// Definition is the problem definition.
	Definition LinearProgram

	// CreatedAt is when the problem was first saved.
	CreatedAt time.Time

	// UpdatedAt is when the problem was last updated.
	UpdatedAt time.Time
}
