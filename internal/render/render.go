// Package render formats tableaus and solve results for terminal display.
// It is shared by the CLI output path and the TUI result view.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/solvio-labs/simplexa/internal/core/domain"
)

// Options controls formatting.
type Options struct {
	// Precision is the number of decimal places for numeric cells.
	Precision int

	// MaxWidth caps the rendered line width; 0 means unlimited. Columns
	// that do not fit are elided with a marker.
	MaxWidth int
}

// DefaultOptions returns the default formatting options.
func DefaultOptions() Options {
	return Options{Precision: 3}
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	objectiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	warnStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Tableau renders the tableau as an aligned grid with catalog labels, the
// RHS column last and the objective row last.
func Tableau(t *domain.Tableau, catalog domain.VariableCatalog, opts Options) string {
	labels := append(catalog.Labels(), "RHS")

	// Format all cells first so every column can be sized to its content.
	cells := make([][]string, t.Rows())
	widths := make([]int, len(labels))
	for j, label := range labels {
		widths[j] = len(label)
	}
	for i := 0; i < t.Rows(); i++ {
		cells[i] = make([]string, t.Cols())
		for j := 0; j < t.Cols(); j++ {
			cell := formatNumber(t.At(i, j), opts.Precision)
			cells[i][j] = cell
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	rowLabelWidth := len("z")
	for i := 0; i < t.ConstraintRows(); i++ {
		if w := len(fmt.Sprintf("c%d", i+1)); w > rowLabelWidth {
			rowLabelWidth = w
		}
	}

	visible := len(labels)
	elided := false
	if opts.MaxWidth > 0 {
		width := rowLabelWidth
		for j := range labels {
			needed := width + 2 + widths[j]
			// The RHS column always renders; room is reserved for it.
			if j < len(labels)-1 && needed+2+widths[len(labels)-1]+2 > opts.MaxWidth {
				visible = j
				elided = true
				break
			}
			width = needed
		}
	}

	var b strings.Builder
	writeRow := func(rowLabel string, row []string, style lipgloss.Style) {
		b.WriteString(style.Render(pad(rowLabel, rowLabelWidth)))
		for j := 0; j < visible; j++ {
			b.WriteString("  ")
			b.WriteString(style.Render(padLeft(row[j], widths[j])))
		}
		if elided {
			b.WriteString("  ")
			b.WriteString(mutedStyle.Render("…"))
			b.WriteString("  ")
			b.WriteString(style.Render(padLeft(row[len(row)-1], widths[len(row)-1])))
		}
		b.WriteString("\n")
	}

	header := make([]string, len(labels))
	copy(header, labels)
	writeRow("", header, headerStyle)
	for i := 0; i < t.ConstraintRows(); i++ {
		writeRow(fmt.Sprintf("c%d", i+1), cells[i], lipgloss.NewStyle())
	}
	writeRow("z", cells[t.ObjectiveRow()], objectiveStyle)

	return b.String()
}

// Solution renders a solve result summary: termination reason, objective
// value, decision-variable values and any non-zero auxiliary variables.
func Solution(res *domain.SolveResult, catalog domain.VariableCatalog, opts Options) string {
	var b strings.Builder

	switch res.Reason {
	case domain.ReasonOptimal:
		b.WriteString(successStyle.Render(res.Reason.Description()))
	case domain.ReasonUnbounded:
		b.WriteString(errorStyle.Render(res.Reason.Description()))
	case domain.ReasonIterationLimit:
		b.WriteString(warnStyle.Render(res.Reason.Description()))
	default:
		b.WriteString(res.Reason.String())
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d iteration(s)", res.IterationCount)))
	b.WriteString("\n")

	if res.Reason != domain.ReasonOptimal {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("z  = %s\n", formatNumber(res.ObjectiveValue, opts.Precision)))
	for i, v := range catalog {
		if i >= len(res.VariableValues) {
			break
		}
		value := res.VariableValues[i]
		if v.Kind != domain.DecisionVariable && value == 0 {
			continue
		}
		line := fmt.Sprintf("%s = %s", v.Label, formatNumber(value, opts.Precision))
		if v.Kind != domain.DecisionVariable {
			line = mutedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// formatNumber renders a float with fixed precision, trimming trailing
// zeros so whole numbers read cleanly.
func formatNumber(v float64, precision int) string {
	if precision <= 0 {
		precision = 3
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	// Avoid the "-0" artefact from tiny negative round-off.
	if s == "-0" {
		s = "0"
	}
	return s
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}
