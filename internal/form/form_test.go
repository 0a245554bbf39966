package form

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/estudia/internal/config"
	"github.com/abhisek/estudia/internal/evaluation"
)

func newEvaluator(t *testing.T) *evaluation.Service {
	t.Helper()
	svc, err := evaluation.NewService(config.DefaultConfig().Fuzzy, nil)
	require.NoError(t, err)
	return svc
}

func fill(m Model, values ...string) Model {
	for i, v := range values {
		m.fields[i].input.Model.SetValue(v)
	}
	return m
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeRisk, "risk": ModeRisk, "STRESS": ModeStress} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("sleep")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestSubmit_Risk(t *testing.T) {
	m := fill(New(ModeRisk, newEvaluator(t)), "3,5", "4", "10", "6")
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	require.NoError(t, m.Err())
	out, ok := m.Outcome()
	require.True(t, ok)
	assert.Equal(t, "Bajo riesgo", out.Label)
	assert.False(t, out.HasScore)
	assert.Contains(t, m.render(), "Bajo riesgo")
}

func TestSubmit_Stress(t *testing.T) {
	m := fill(New(ModeStress, newEvaluator(t)), "12", "1", "0")
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	require.NoError(t, m.Err())
	out, ok := m.Outcome()
	require.True(t, ok)
	assert.Equal(t, "Leve", out.Label)
	assert.InDelta(t, 15.0, out.Score, 1e-9)
	assert.True(t, out.HasScore)
}

func TestSubmit_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		values []string
		want   string
	}{
		{"empty", ModeStress, []string{"", "1", "0"}, "Horas de sueño"},
		{"promedio too high", ModeRisk, []string{"7", "4", "10", "6"}, "entre 0 y 5"},
		{"bad decimal", ModeRisk, []string{"3.5", "4", "10", "6..0"}, "Horas de estudio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fill(New(tt.mode, newEvaluator(t)), tt.values...)
			m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

			require.Error(t, m.Err())
			assert.Contains(t, m.Err().Error(), tt.want)
			_, ok := m.Outcome()
			assert.False(t, ok)
		})
	}
}

func TestSubmit_ErrorClearsOnSuccess(t *testing.T) {
	m := fill(New(ModeStress, newEvaluator(t)), "x", "1", "0")
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Error(t, m.Err())

	m = fill(m, "12")
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.NoError(t, m.Err())
	_, ok := m.Outcome()
	assert.True(t, ok)
}

func TestNavigation(t *testing.T) {
	m := New(ModeRisk, newEvaluator(t))
	assert.Equal(t, 0, m.focus)

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.focus)
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyUp})
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, m.focus)

	// Wraps around.
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 3, m.focus)
}

func TestTypingGoesToFocusedField(t *testing.T) {
	m := New(ModeStress, newEvaluator(t))
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	m, _ = press(t, m, tea.KeyPressMsg{Code: '7', Text: "7"})

	assert.Empty(t, m.fields[0].input.Value())
	assert.Equal(t, "7", m.fields[1].input.Value())
}

func TestQuit(t *testing.T) {
	m := New(ModeRisk, newEvaluator(t))
	_, cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestView_Title(t *testing.T) {
	m := New(ModeStress, newEvaluator(t))
	content := m.render()
	assert.True(t, strings.Contains(content, "Estrés académico"))
	assert.Contains(t, content, "Ansiedad")
}
