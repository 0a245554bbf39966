// Package form is the interactive terminal form for one-off risk and stress
// evaluations.
package form

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/estudia/internal/evaluation"
	"github.com/abhisek/estudia/internal/expert"
	"github.com/abhisek/estudia/internal/ui/components"
	"github.com/abhisek/estudia/internal/ui/layout"
	"github.com/abhisek/estudia/internal/ui/theme"
)

// Mode selects which classifier the form feeds.
type Mode string

const (
	ModeRisk   Mode = "risk"
	ModeStress Mode = "stress"
)

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("unknown form mode")

// ParseMode validates a mode name. An empty name selects ModeRisk.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case "", ModeRisk:
		return ModeRisk, nil
	case ModeStress:
		return ModeStress, nil
	}
	return "", fmt.Errorf("%w %q (want risk or stress)", ErrUnknownMode, s)
}

// Evaluator classifies the submitted values.
type Evaluator interface {
	ClassifyRisk(promedio float64, inasistencias, participacion int, horasEstudio float64) string
	ClassifyStress(sueno, carga, ansiedad int) evaluation.StressResult
}

type field struct {
	label string
	max   float64 // 0 means unbounded
	input components.TextInput
}

func (f field) floatValue() (float64, error) {
	v, err := f.input.FloatValue()
	if err != nil {
		return 0, fmt.Errorf("%s: ingresa un número", f.label)
	}
	return v, f.check(v)
}

func (f field) intValue() (int, error) {
	v, err := f.input.IntValue()
	if err != nil {
		return 0, fmt.Errorf("%s: ingresa un número entero", f.label)
	}
	return v, f.check(float64(v))
}

func (f field) check(v float64) error {
	if v < 0 || (f.max > 0 && v > f.max) {
		if f.max > 0 {
			return fmt.Errorf("%s: debe estar entre 0 y %g", f.label, f.max)
		}
		return fmt.Errorf("%s: no puede ser negativo", f.label)
	}
	return nil
}

// Outcome is the last successful evaluation.
type Outcome struct {
	Label    string
	Score    float64
	HasScore bool
}

// Model is the Bubble Tea model of the form.
type Model struct {
	mode    Mode
	eval    Evaluator
	fields  []field
	focus   int
	outcome *Outcome
	err     error
	width   int
}

// New creates a form for mode.
func New(mode Mode, eval Evaluator) Model {
	m := Model{mode: mode, eval: eval}
	switch mode {
	case ModeStress:
		m.fields = []field{
			{label: "Horas de sueño", input: components.NewTextInput("7", false, 3)},
			{label: "Carga académica (1-10)", input: components.NewTextInput("5", false, 3)},
			{label: "Ansiedad (0-10)", input: components.NewTextInput("5", false, 3)},
		}
	default:
		m.fields = []field{
			{label: "Promedio (0-5)", max: expert.MaxPromedio, input: components.NewTextInput("3.5", true, 4)},
			{label: "Inasistencias", input: components.NewTextInput("0", false, 3)},
			{label: "Participación", input: components.NewTextInput("5", false, 3)},
			{label: "Horas de estudio", input: components.NewTextInput("6", true, 5)},
		}
	}
	m.fields[0].input.Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.fields[m.focus].input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % len(m.fields))
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + len(m.fields) - 1) % len(m.fields))
		case "enter":
			m.submit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.fields[m.focus].input.Blur()
	m.focus = i
	return m.fields[i].input.Focus()
}

func (m *Model) submit() {
	out, err := m.evaluate()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.outcome = &out
}

func (m Model) evaluate() (Outcome, error) {
	if m.mode == ModeStress {
		var vals [3]int
		for i := range vals {
			v, err := m.fields[i].intValue()
			if err != nil {
				return Outcome{}, err
			}
			vals[i] = v
		}
		res := m.eval.ClassifyStress(vals[0], vals[1], vals[2])
		return Outcome{Label: res.Label, Score: res.Score, HasScore: true}, nil
	}

	promedio, err := m.fields[0].floatValue()
	if err != nil {
		return Outcome{}, err
	}
	inasistencias, err := m.fields[1].intValue()
	if err != nil {
		return Outcome{}, err
	}
	participacion, err := m.fields[2].intValue()
	if err != nil {
		return Outcome{}, err
	}
	horas, err := m.fields[3].floatValue()
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Label: m.eval.ClassifyRisk(promedio, inasistencias, participacion, horas)}, nil
}

// Outcome returns the last successful evaluation, if any.
func (m Model) Outcome() (Outcome, bool) {
	if m.outcome == nil {
		return Outcome{}, false
	}
	return *m.outcome, true
}

// Err returns the last input error.
func (m Model) Err() error { return m.err }

func (m Model) title() string {
	if m.mode == ModeStress {
		return "Estrés académico"
	}
	return "Riesgo académico"
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.SetContent(m.render())
	return v
}

func (m Model) render() string {
	var b strings.Builder
	for i, f := range m.fields {
		label := theme.Unselected.Render("  " + f.label)
		if i == m.focus {
			label = theme.Selected.Render("▸ " + f.label)
		}
		fmt.Fprintf(&b, "%s\n  %s\n\n", label, f.input.View())
	}

	switch {
	case m.err != nil:
		b.WriteString(theme.ErrorText.Render(m.err.Error()))
	case m.outcome != nil:
		res := theme.LevelStyle(m.outcome.Label).Render(m.outcome.Label)
		if m.outcome.HasScore {
			res = fmt.Sprintf("%s  %s", theme.Body.Render(fmt.Sprintf("%.2f", m.outcome.Score)), res)
		}
		b.WriteString(res)
	default:
		b.WriteString(theme.Hint.Render("Completa los campos y pulsa Enter."))
	}

	footer := layout.RenderFooter([]layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Campo"},
		{Key: "Enter", Description: "Evaluar"},
		{Key: "Esc", Description: "Salir"},
	}, m.width)

	return layout.RenderFrame(layout.RenderHeader(m.title(), m.width), b.String(), footer, m.width)
}

// Run starts the form.
func Run(mode Mode, eval Evaluator) error {
	p := tea.NewProgram(New(mode, eval))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running form:", err)
		return err
	}
	return nil
}
