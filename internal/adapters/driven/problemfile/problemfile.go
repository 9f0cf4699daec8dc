// Package problemfile reads and writes linear-program definitions as TOML
// documents. The same codec backs problem files on disk and the definition
// column of the SQLite problem library.
package problemfile

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/solvio-labs/simplexa/internal/core/domain"
)

// document is the TOML shape of a problem definition.
type document struct {
	Name        string       `toml:"name,omitempty"`
	Sense       string       `toml:"sense"`
	Variables   int          `toml:"variables"`
	Objective   []float64    `toml:"objective"`
	Constraints []constraint `toml:"constraint"`
}

type constraint struct {
	Coefficients []float64 `toml:"coefficients"`
	Relation     string    `toml:"relation"`
	RHS          float64   `toml:"rhs"`
}

// Parse decodes a TOML problem definition. The returned name may be empty;
// it is advisory only. Schema violations wrap domain.ErrInvalidInput,
// dimension errors wrap domain.ErrDimensionMismatch.
func Parse(data []byte) (string, *domain.LinearProgram, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	lp := &domain.LinearProgram{}
	if err := lp.SetVariableCount(doc.Variables); err != nil {
		return "", nil, err
	}

	sense, err := parseSense(doc.Sense)
	if err != nil {
		return "", nil, err
	}
	if err := lp.SetObjective(sense, doc.Objective); err != nil {
		return "", nil, err
	}

	for i, c := range doc.Constraints {
		rel, err := parseRelation(c.Relation)
		if err != nil {
			return "", nil, fmt.Errorf("constraint %d: %w", i+1, err)
		}
		err = lp.AddConstraint(domain.Constraint{
			Coefficients: c.Coefficients,
			Relation:     rel,
			RHS:          c.RHS,
		})
		if err != nil {
			return "", nil, fmt.Errorf("constraint %d: %w", i+1, err)
		}
	}

	return doc.Name, lp, nil
}

// Load reads and parses a problem file from disk.
func Load(path string) (string, *domain.LinearProgram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading problem file: %w", err)
	}
	return Parse(data)
}

// Encode serialises a definition to TOML. The definition must pass
// Validate; partially entered problems are not encodable.
func Encode(name string, lp *domain.LinearProgram) ([]byte, error) {
	if err := lp.Validate(); err != nil {
		return nil, err
	}

	n, _ := lp.VariableCount()
	sense, _ := lp.Sense()
	doc := document{
		Name:      name,
		Sense:     sense.String(),
		Variables: n,
		Objective: lp.Objective(),
	}
	for _, c := range lp.Constraints() {
		doc.Constraints = append(doc.Constraints, constraint{
			Coefficients: c.Coefficients,
			Relation:     c.Relation.String(),
			RHS:          c.RHS,
		})
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding problem: %w", err)
	}
	return data, nil
}

// Save encodes a definition and writes it to disk.
func Save(path, name string, lp *domain.LinearProgram) error {
	data, err := Encode(name, lp)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing problem file: %w", err)
	}
	return nil
}

func parseSense(s string) (domain.Sense, error) {
	switch s {
	case "maximize", "max":
		return domain.Maximize, nil
	case "minimize", "min":
		return domain.Minimize, nil
	default:
		return "", fmt.Errorf("%w: unknown sense %q (want maximize or minimize)", domain.ErrInvalidInput, s)
	}
}

func parseRelation(s string) (domain.Relation, error) {
	switch s {
	case "<=", "≤":
		return domain.LessEqual, nil
	case ">=", "≥":
		return domain.GreaterEqual, nil
	case "=", "==":
		return domain.Equal, nil
	default:
		return "", fmt.Errorf("%w: unknown relation %q (want <=, >= or =)", domain.ErrInvalidInput, s)
	}
}
