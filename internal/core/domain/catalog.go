package domain

// VariableKind identifies how a tableau column came to exist.
type VariableKind int

const (
	// DecisionVariable is an original user-declared variable.
	DecisionVariable VariableKind = iota

	// SlackVariable converts a ≤ constraint to an equality.
	SlackVariable

	// ExcessVariable converts a ≥ constraint to an equality.
	ExcessVariable

	// ArtificialVariable provides the initial basis for ≥/= constraints
	// and is penalised out via the Big-M coefficient.
	ArtificialVariable
)

// Variable is one labelled tableau column.
type Variable struct {
	// Label is the presentation name (x1, s1, e1, a1, ...).
	Label string

	// Kind records the column's origin. Used for presentation only,
	// never for algorithmic decisions.
	Kind VariableKind
}

// VariableCatalog is the ordered list of tableau columns: decision
// variables first in declared order, then slack, excess and artificial
// variables in the order their owning constraints appear. Built once by
// the standard-form builder and read-only thereafter.
type VariableCatalog []Variable

// Labels returns the column labels in order.
func (c VariableCatalog) Labels() []string {
	labels := make([]string, len(c))
	for i, v := range c {
		labels[i] = v.Label
	}
	return labels
}

// Count returns the number of variables of the given kind.
func (c VariableCatalog) Count(kind VariableKind) int {
	n := 0
	for _, v := range c {
		if v.Kind == kind {
			n++
		}
	}
	return n
}
