// Package expert implements the academic-risk classifier: a forward-chaining
// rule table over a single StudentFact with conflict resolution by category
// priority.
package expert

import (
	"cmp"
	"slices"
)

// Engine evaluates a fixed rule table. It is immutable after construction
// and safe for concurrent use.
type Engine struct {
	tiers [][]Rule // Grouped by priority, highest first
}

// NewEngine groups rules into priority tiers. Rule order inside a tier does
// not affect the outcome.
func NewEngine(rules ...Rule) *Engine {
	sorted := slices.Clone(rules)
	slices.SortStableFunc(sorted, func(a, b Rule) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	var tiers [][]Rule
	for i, r := range sorted {
		if i == 0 || r.Priority != sorted[i-1].Priority {
			tiers = append(tiers, nil)
		}
		tiers[len(tiers)-1] = append(tiers[len(tiers)-1], r)
	}
	return &Engine{tiers: tiers}
}

// Fire runs the rule tiers from highest to lowest priority and returns the
// consequences of every matching rule in the first tier that matched anything.
func (e *Engine) Fire(fact StudentFact) InferenceResult {
	for _, tier := range e.tiers {
		var result InferenceResult
		for _, r := range tier {
			if r.Match != nil && r.Match(fact) {
				result = append(result, r.Then)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return nil
}

// Classify fires the rules and resolves the result to one RiskLevel.
func (e *Engine) Classify(fact StudentFact) RiskLevel {
	return e.Fire(fact).Resolve()
}

// Rules returns the rule table in evaluation order.
func (e *Engine) Rules() []Rule {
	var out []Rule
	for _, tier := range e.tiers {
		out = append(out, tier...)
	}
	return out
}

var defaultEngine = NewEngine(DefaultRules()...)

// Classify classifies fact with the default rule table.
func Classify(fact StudentFact) RiskLevel {
	return defaultEngine.Classify(fact)
}
