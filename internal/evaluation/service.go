// Package evaluation exposes the two classifiers behind one service: the
// symbolic academic-risk engine and the fuzzy stress engine.
package evaluation

import (
	"fmt"
	"io"
	"log"

	"github.com/abhisek/estudia/internal/bands"
	"github.com/abhisek/estudia/internal/config"
	"github.com/abhisek/estudia/internal/expert"
	"github.com/abhisek/estudia/internal/fuzzy"
)

// StressResult is the output of the stress classifier.
type StressResult struct {
	Score      float64 // 0–100
	Label      string  // Leve, Moderado, Alto
	Degenerate bool    // No rule fired; Score is the neutral fallback
}

// Service holds the engines, built once and shared by every evaluation.
type Service struct {
	risk   *expert.Engine
	stress *fuzzy.System
	labels bands.Scheme
	logger *log.Logger
}

// NewService builds both engines. A nil logger discards diagnostics.
func NewService(cfg config.FuzzyConfig, logger *log.Logger) (*Service, error) {
	stress, err := fuzzy.NewStressSystem(cfg.Options()...)
	if err != nil {
		return nil, fmt.Errorf("build stress system: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		risk:   expert.NewEngine(expert.DefaultRules()...),
		stress: stress,
		labels: bands.Stress,
		logger: logger,
	}, nil
}

// ClassifyRisk returns "Alto riesgo", "Riesgo medio" or "Bajo riesgo".
// Out-of-domain values are clamped; it never fails.
func (s *Service) ClassifyRisk(promedio float64, inasistencias, participacion int, horasEstudio float64) string {
	fact := expert.NewStudentFact(promedio, inasistencias, participacion, horasEstudio)
	return s.risk.Classify(fact).String()
}

// ClassifyStress returns the defuzzified stress score and its label.
// Out-of-domain values are clamped; it never fails.
func (s *Service) ClassifyStress(sueno, carga, ansiedad int) StressResult {
	run, err := s.stress.Infer(fuzzy.StressInputs(sueno, carga, ansiedad))
	if err != nil {
		// Unreachable: every stress input is bound above.
		s.logger.Printf("stress inference failed, using neutral score: %v", err)
		return s.result(s.stress.NeutralScore(), true)
	}
	if run.Degenerate {
		s.logger.Printf("stress profile empty for sueno=%d carga=%d ansiedad=%d; using neutral score %.2f",
			sueno, carga, ansiedad, run.Score)
	}
	return s.result(run.Score, run.Degenerate)
}

func (s *Service) result(score float64, degenerate bool) StressResult {
	return StressResult{
		Score:      score,
		Label:      s.labels.Label(score),
		Degenerate: degenerate,
	}
}

// RiskEngine returns the symbolic engine.
func (s *Service) RiskEngine() *expert.Engine { return s.risk }

// StressSystem returns the fuzzy engine.
func (s *Service) StressSystem() *fuzzy.System { return s.stress }

// StressBands returns the stress label scheme.
func (s *Service) StressBands() bands.Scheme { return s.labels }
