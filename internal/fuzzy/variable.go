package fuzzy

import "github.com/abhisek/estudia/internal/numeric"

// Role says whether a variable is an input or the output of a System.
type Role string

const (
	Antecedent Role = "antecedent"
	Consequent Role = "consequent"
)

// Term is a named membership function of a linguistic variable.
type Term struct {
	Name string
	MF   MembershipFunc
}

// Variable is a linguistic variable over the closed interval [Min, Max],
// evaluated on a unit-step grid.
type Variable struct {
	Name  string
	Role  Role
	Min   float64
	Max   float64
	Terms []Term
}

// NewAntecedent creates an input variable.
func NewAntecedent(name string, min, max float64, terms ...Term) *Variable {
	return &Variable{Name: name, Role: Antecedent, Min: min, Max: max, Terms: terms}
}

// NewConsequent creates an output variable.
func NewConsequent(name string, min, max float64, terms ...Term) *Variable {
	return &Variable{Name: name, Role: Consequent, Min: min, Max: max, Terms: terms}
}

// Term looks up a term by name.
func (v *Variable) Term(name string) (Term, bool) {
	for _, t := range v.Terms {
		if t.Name == name {
			return t, true
		}
	}
	return Term{}, false
}

// Membership returns the degree of x in the named term. x is clamped to the
// variable's domain first, so out-of-range values saturate at the boundary
// degree. Unknown terms yield 0.
func (v *Variable) Membership(term string, x float64) float64 {
	t, ok := v.Term(term)
	if !ok {
		return 0
	}
	return t.MF.Degree(numeric.Clamp(x, v.Min, v.Max))
}

// Fuzzify returns the degree of x in every term.
func (v *Variable) Fuzzify(x float64) map[string]float64 {
	out := make(map[string]float64, len(v.Terms))
	for _, t := range v.Terms {
		out[t.Name] = v.Membership(t.Name, x)
	}
	return out
}

// Universe returns the discretized domain.
func (v *Variable) Universe() []float64 {
	return numeric.Grid(v.Min, v.Max, 1)
}
