// Package fuzzy implements a Mamdani-style fuzzy inference engine: linguistic
// variables with triangular and trapezoidal terms, rules built from AND/OR
// expression trees, min-clipping implication, max aggregation and centroid or
// bisector defuzzification.
package fuzzy

import (
	"errors"
	"fmt"

	"github.com/abhisek/estudia/internal/numeric"
)

var (
	ErrUnknownVariable = errors.New("unknown variable")
	ErrUnknownTerm     = errors.New("unknown term")
	ErrMissingInput    = errors.New("missing input")
	ErrUnknownMethod   = errors.New("unknown defuzzification method")
)

// DefaultNeutralScore is returned when no rule fires.
const DefaultNeutralScore = 50.0

// Option configures a System.
type Option func(*System)

// WithMethod sets the defuzzification method.
func WithMethod(m Method) Option {
	return func(s *System) { s.method = m }
}

// WithNeutralScore sets the score returned for an all-zero profile.
func WithNeutralScore(v float64) Option {
	return func(s *System) { s.neutral = v }
}

// System is an immutable rule base over a set of inputs and one output. It is
// safe for concurrent use; every Infer call works on its own Run.
type System struct {
	inputs   []*Variable
	output   *Variable
	rules    []Rule
	method   Method
	neutral  float64
	universe []float64
	curves   map[string][]float64 // Output term → degrees over universe
}

// NewSystem validates that every rule references known variables and terms
// and precomputes the output term curves.
func NewSystem(inputs []*Variable, output *Variable, rules []Rule, opts ...Option) (*System, error) {
	if output == nil {
		return nil, fmt.Errorf("output: %w", ErrUnknownVariable)
	}
	s := &System{
		inputs:  inputs,
		output:  output,
		rules:   rules,
		method:  DefaultMethod,
		neutral: DefaultNeutralScore,
	}
	for _, o := range opts {
		o(s)
	}
	if _, err := ParseMethod(string(s.method)); err != nil {
		return nil, err
	}

	byName := make(map[string]*Variable, len(inputs))
	for _, v := range inputs {
		byName[v.Name] = v
	}
	for i, r := range rules {
		if r.If == nil {
			return nil, fmt.Errorf("rule %d: empty antecedent", i+1)
		}
		for _, ref := range r.If.Refs() {
			v, ok := byName[ref.Var]
			if !ok {
				return nil, fmt.Errorf("rule %d: %w %q", i+1, ErrUnknownVariable, ref.Var)
			}
			if _, ok := v.Term(ref.Term); !ok {
				return nil, fmt.Errorf("rule %d: %w %q of %s", i+1, ErrUnknownTerm, ref.Term, ref.Var)
			}
		}
		if r.Then.Var != output.Name {
			return nil, fmt.Errorf("rule %d: consequent %w %q", i+1, ErrUnknownVariable, r.Then.Var)
		}
		if _, ok := output.Term(r.Then.Term); !ok {
			return nil, fmt.Errorf("rule %d: %w %q of %s", i+1, ErrUnknownTerm, r.Then.Term, output.Name)
		}
	}

	s.universe = output.Universe()
	s.curves = make(map[string][]float64, len(output.Terms))
	for _, t := range output.Terms {
		curve := make([]float64, len(s.universe))
		for i, x := range s.universe {
			curve[i] = t.MF.Degree(x)
		}
		s.curves[t.Name] = curve
	}
	return s, nil
}

// Method returns the configured defuzzification method.
func (s *System) Method() Method { return s.method }

// NeutralScore returns the fallback score for an all-zero profile.
func (s *System) NeutralScore() float64 { return s.neutral }

// Inputs returns the input variables.
func (s *System) Inputs() []*Variable { return s.inputs }

// Output returns the output variable.
func (s *System) Output() *Variable { return s.output }

// Rules returns the rule base.
func (s *System) Rules() []Rule { return s.rules }

// Run records one inference.
type Run struct {
	Inputs       map[string]float64
	Degrees      Degrees
	Strengths    []float64            // Firing strength per rule, in rule order
	TermProfiles map[string][]float64 // Clipped and max-combined per output term
	Universe     []float64
	Profile      []float64 // Aggregated over all output terms
	Score        float64
	Degenerate   bool // No rule fired; Score is the neutral fallback
}

// Infer evaluates the rule base for the given crisp inputs. It only fails
// when an input variable has no value; an all-zero aggregate is reported
// through Run.Degenerate instead.
func (s *System) Infer(inputs map[string]float64) (*Run, error) {
	run := &Run{
		Inputs:       inputs,
		Degrees:      make(Degrees, len(s.inputs)),
		Strengths:    make([]float64, len(s.rules)),
		TermProfiles: make(map[string][]float64),
		Universe:     s.universe,
		Profile:      make([]float64, len(s.universe)),
	}

	for _, v := range s.inputs {
		x, ok := inputs[v.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, v.Name)
		}
		run.Degrees[v.Name] = v.Fuzzify(x)
	}

	for i, r := range s.rules {
		w := r.If.Eval(run.Degrees)
		run.Strengths[i] = w

		clipped := make([]float64, len(s.universe))
		for j, mu := range s.curves[r.Then.Term] {
			clipped[j] = min(w, mu)
		}
		prof, ok := run.TermProfiles[r.Then.Term]
		if !ok {
			run.TermProfiles[r.Then.Term] = clipped
			continue
		}
		numeric.MaxInto(prof, clipped)
	}

	for _, prof := range run.TermProfiles {
		numeric.MaxInto(run.Profile, prof)
	}

	score, ok := Defuzzify(s.method, s.universe, run.Profile)
	if !ok {
		run.Score = s.neutral
		run.Degenerate = true
		return run, nil
	}
	run.Score = score
	return run, nil
}
