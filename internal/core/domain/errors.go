package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrDefinitionIncomplete indicates the linear program is missing
	// required fields (variable count, objective, or constraints).
	// Raised before any numeric work begins; the caller can re-prompt.
	ErrDefinitionIncomplete = errors.New("problem definition incomplete")

	// ErrDimensionMismatch indicates a coefficient sequence whose length
	// does not match the declared variable count.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")
)
