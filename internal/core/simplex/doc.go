// Package simplex implements the tableau-based Simplex method with the
// Big-M technique for ≥ and = constraints.
//
// Build converts a validated problem definition into an initial tableau
// and variable catalog. Solve drives the tableau to optimality,
// unboundedness or the iteration cap with Dantzig-rule pivoting, then
// extracts variable values and the objective.
//
// The engine intentionally carries no anti-cycling rule beyond the fixed
// iteration cap, and handles no variable bounds other than non-negativity.
package simplex
