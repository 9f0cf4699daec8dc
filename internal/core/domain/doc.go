// Package domain defines the core entities for Simplexa.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - LinearProgram: An incrementally built problem definition
//   - Constraint: One row of the constraint system
//   - Tableau: The dense simplex tableau mutated in place by pivots
//   - VariableCatalog: Column labels for presentation
//   - SolveResult: The outcome of one solve run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import the Go
// standard library and gonum's mat package (the tableau's numeric
// backing). All other packages depend on domain, never the reverse.
package domain
