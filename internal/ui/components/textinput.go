package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput with a numeric key filter.
type TextInput struct {
	Model   textinput.Model
	Decimal bool // Accept one decimal separator
}

// NewTextInput creates a numeric text input. It starts blurred.
func NewTextInput(placeholder string, decimal bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return TextInput{Model: ti, Decimal: decimal}
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Update handles messages. Printable keys other than digits (and a single
// '.' or ',' for decimal inputs) are dropped.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if key := kmsg.String(); len(key) == 1 && !t.accepts(key[0]) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) accepts(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	if t.Decimal && (c == '.' || c == ',') {
		return !strings.ContainsAny(t.Model.Value(), ".,")
	}
	return false
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// IntValue returns the input value as an integer.
func (t TextInput) IntValue() (int, error) {
	return strconv.Atoi(strings.TrimSpace(t.Model.Value()))
}

// FloatValue returns the input value as a float. A comma is read as the
// decimal separator.
func (t TextInput) FloatValue() (float64, error) {
	v := strings.ReplaceAll(strings.TrimSpace(t.Model.Value()), ",", ".")
	return strconv.ParseFloat(v, 64)
}
