package domain

// TerminationReason states why the pivot engine stopped.
type TerminationReason string

// Available termination reasons.
const (
	// ReasonOptimal means every reduced cost is non-negative within
	// tolerance.
	ReasonOptimal TerminationReason = "optimal"

	// ReasonUnbounded means the ratio test found no leaving row, so the
	// objective improves without limit.
	ReasonUnbounded TerminationReason = "unbounded"

	// ReasonIterationLimit means the pivot cap was reached before either
	// of the other conditions.
	ReasonIterationLimit TerminationReason = "iteration-limit"
)

// IsValid returns true if the reason is recognised.
func (r TerminationReason) IsValid() bool {
	switch r {
	case ReasonOptimal, ReasonUnbounded, ReasonIterationLimit:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r TerminationReason) String() string {
	return string(r)
}

// Description returns a human-readable description of the reason.
func (r TerminationReason) Description() string {
	switch r {
	case ReasonOptimal:
		return "Optimal solution found"
	case ReasonUnbounded:
		return "Problem is unbounded"
	case ReasonIterationLimit:
		return "Iteration limit reached"
	default:
		return unknownDescription
	}
}

// SolveResult is the outcome of one solve run. Unbounded and
// iteration-limit are ordinary result states, not errors; the partial
// tableau is still carried for diagnostic display.
type SolveResult struct {
	// FinalTableau is the tableau as of termination.
	FinalTableau *Tableau

	// ObjectiveValue is the objective value, sign-corrected for the
	// original sense. Only meaningful when Reason is ReasonOptimal.
	ObjectiveValue float64

	// VariableValues holds one value per catalog column; non-basic
	// columns are zero.
	VariableValues []float64

	// IterationCount is the number of completed pivots.
	IterationCount int

	// Reason states why the engine stopped.
	Reason TerminationReason
}
