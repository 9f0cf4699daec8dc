package domain

const unknownDescription = "Unknown"

// Sense defines the direction of the objective function.
type Sense string

// Available objective senses.
const (
	// Maximize seeks the largest objective value.
	Maximize Sense = "maximize"

	// Minimize seeks the smallest objective value.
	Minimize Sense = "minimize"
)

// IsValid returns true if the sense is recognised.
func (s Sense) IsValid() bool {
	switch s {
	case Maximize, Minimize:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Sense) String() string {
	return string(s)
}

// Description returns a human-readable description of the sense.
func (s Sense) Description() string {
	switch s {
	case Maximize:
		return "Maximize (largest objective value)"
	case Minimize:
		return "Minimize (smallest objective value)"
	default:
		return unknownDescription
	}
}

// Relation defines the relational operator of a constraint.
type Relation string

// Available constraint relations.
const (
	// LessEqual is a ≤ constraint; converted with one slack variable.
	LessEqual Relation = "<="

	// GreaterEqual is a ≥ constraint; converted with one excess and one
	// artificial variable.
	GreaterEqual Relation = ">="

	// Equal is an = constraint; converted with one artificial variable.
	Equal Relation = "="
)

// IsValid returns true if the relation is recognised.
func (r Relation) IsValid() bool {
	switch r {
	case LessEqual, GreaterEqual, Equal:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Relation) String() string {
	return string(r)
}

// Symbol returns the mathematical symbol for display.
func (r Relation) Symbol() string {
	switch r {
	case LessEqual:
		return "≤"
	case GreaterEqual:
		return "≥"
	case Equal:
		return "="
	default:
		return "?"
	}
}
