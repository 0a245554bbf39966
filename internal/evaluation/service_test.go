package evaluation

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/estudia/internal/config"
	"github.com/abhisek/estudia/internal/fuzzy"
)

func newService(t *testing.T, logger *log.Logger) *Service {
	t.Helper()
	s, err := NewService(config.DefaultConfig().Fuzzy, logger)
	require.NoError(t, err)
	return s
}

func TestClassifyRisk(t *testing.T) {
	s := newService(t, nil)

	tests := []struct {
		name                    string
		promedio                float64
		inasistencias, particip int
		horas                   float64
		want                    string
	}{
		{"low risk boundary", 3.5, 4, 10, 6.0, "Bajo riesgo"},
		{"low average many absences", 2.5, 12, 9, 10, "Alto riesgo"},
		{"little study low participation", 4.0, 0, 2, 1, "Alto riesgo"},
		{"short study", 4.0, 0, 8, 5, "Riesgo medio"},
		{"nothing matched", 3.2, 2, 8, 8, "Riesgo medio"},
		{"clamped negatives", 4.0, -5, -5, -2, "Alto riesgo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ClassifyRisk(tt.promedio, tt.inasistencias, tt.particip, tt.horas)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyStress(t *testing.T) {
	s := newService(t, nil)

	low := s.ClassifyStress(12, 1, 0)
	assert.InDelta(t, 15.0, low.Score, 1e-6)
	assert.Equal(t, "Leve", low.Label)
	assert.False(t, low.Degenerate)

	high := s.ClassifyStress(0, 10, 10)
	assert.Greater(t, high.Score, 65.0)
	assert.Equal(t, "Alto", high.Label)

	mid := s.ClassifyStress(12, 5, 5)
	assert.InDelta(t, 50.0, mid.Score, 1e-6)
	assert.Equal(t, "Moderado", mid.Label)
}

func TestClassifyStress_Idempotent(t *testing.T) {
	s := newService(t, nil)
	assert.Equal(t, s.ClassifyStress(6, 7, 4), s.ClassifyStress(6, 7, 4))
	assert.Equal(t, s.ClassifyRisk(3.1, 5, 3, 4), s.ClassifyRisk(3.1, 5, 3, 4))
}

func TestClassifyStress_CentroidConfig(t *testing.T) {
	cfg := config.DefaultConfig().Fuzzy
	cfg.Method = "centroid"
	s, err := NewService(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, fuzzy.Centroid, s.StressSystem().Method())
	assert.InDelta(t, 15.295, s.ClassifyStress(12, 1, 0).Score, 0.01)
}

func TestNewService_BadMethod(t *testing.T) {
	cfg := config.DefaultConfig().Fuzzy
	cfg.Method = "lom"
	_, err := NewService(cfg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, fuzzy.ErrUnknownMethod)
}

func TestClassifyStress_LogsDegenerateProfile(t *testing.T) {
	var buf bytes.Buffer
	s := newService(t, log.New(&buf, "", 0))

	// The stress rule base covers its whole input space, so swap in a
	// system with a gap to exercise the fallback path.
	x := fuzzy.NewAntecedent(fuzzy.VarSueno, 0, 12, fuzzy.Term{Name: "poco", MF: fuzzy.Trapezoidal{A: 0, B: 0, C: 2, D: 5}})
	c := fuzzy.NewAntecedent(fuzzy.VarCarga, 1, 10, fuzzy.Term{Name: "alta", MF: fuzzy.Trapezoidal{A: 7, B: 9, C: 10, D: 10}})
	a := fuzzy.NewAntecedent(fuzzy.VarAnsiedad, 0, 10, fuzzy.Term{Name: "alto", MF: fuzzy.Trapezoidal{A: 7, B: 9, C: 10, D: 10}})
	_, _, _, estres := fuzzy.StressVariables()
	sys, err := fuzzy.NewSystem([]*fuzzy.Variable{x, c, a}, estres, []fuzzy.Rule{
		{If: fuzzy.And(fuzzy.Is{Var: fuzzy.VarSueno, Term: "poco"}, fuzzy.Is{Var: fuzzy.VarCarga, Term: "alta"}, fuzzy.Is{Var: fuzzy.VarAnsiedad, Term: "alto"}),
			Then: fuzzy.Is{Var: fuzzy.VarEstres, Term: "alto"}},
	})
	require.NoError(t, err)
	s.stress = sys

	got := s.ClassifyStress(12, 1, 0)
	assert.True(t, got.Degenerate)
	assert.Equal(t, fuzzy.DefaultNeutralScore, got.Score)
	assert.Equal(t, "Moderado", got.Label)
	assert.Contains(t, buf.String(), "using neutral score")
}
