// Package numeric provides numeric text-entry helpers for the TUI: a
// styled input field plus parsing for single values and coefficient lists.
package numeric

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/solvio-labs/simplexa/internal/adapters/driving/tui/styles"
	"github.com/solvio-labs/simplexa/internal/core/domain"
)

// Field wraps a bubbles textinput for numeric entry.
type Field struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
}

// NewField creates a numeric input field with a label and placeholder.
func NewField(s *styles.Styles, label, placeholder string) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.Width = 40

	return &Field{
		textinput: ti,
		styles:    s,
		label:     label,
	}
}

// Init initialises the field.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the labelled field.
func (f *Field) View() string {
	label := f.styles.Subtitle.Render(f.label)
	return label + "\n" + f.styles.InputField.Render(f.textinput.View())
}

// Value returns the raw input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the raw input value.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Reset clears the field.
func (f *Field) Reset() {
	f.textinput.SetValue("")
}

// Focus sets focus on the field.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the field.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// SetLabel replaces the field label.
func (f *Field) SetLabel(label string) {
	f.label = label
}

// ParseInt parses a single integer.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, s)
	}
	return n, nil
}

// ParseFloat parses a single real number.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, s)
	}
	return v, nil
}

// ParseFloats parses a list of real numbers separated by spaces or commas.
// When want is positive, the count must match exactly.
func ParseFloats(s string, want int) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no numbers entered", domain.ErrInvalidInput)
	}
	if want > 0 && len(fields) != want {
		return nil, fmt.Errorf("%w: got %d numbers, want %d", domain.ErrInvalidInput, len(fields), want)
	}

	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, f)
		}
		out[i] = v
	}
	return out, nil
}
