package fuzzy

import "strings"

// Degrees is a fuzzification table: variable name → term name → degree.
type Degrees map[string]map[string]float64

// Expr is a node of a rule antecedent.
type Expr interface {
	// Eval returns the truth degree of the expression.
	Eval(d Degrees) float64
	// Refs lists the (variable, term) leaves the expression reads.
	Refs() []Is
	String() string
}

// Is is the leaf "Var is Term".
type Is struct {
	Var  string
	Term string
}

func (e Is) Eval(d Degrees) float64 { return d[e.Var][e.Term] }
func (e Is) Refs() []Is             { return []Is{e} }
func (e Is) String() string         { return e.Var + " is " + e.Term }

type connective struct {
	op       string
	operands []Expr
	combine  func(a, b float64) float64
}

// And is fuzzy conjunction (minimum of its operands).
func And(operands ...Expr) Expr {
	return connective{op: "AND", operands: operands, combine: minOf}
}

// Or is fuzzy disjunction (maximum of its operands).
func Or(operands ...Expr) Expr {
	return connective{op: "OR", operands: operands, combine: maxOf}
}

func minOf(a, b float64) float64 { return min(a, b) }
func maxOf(a, b float64) float64 { return max(a, b) }

func (c connective) Eval(d Degrees) float64 {
	if len(c.operands) == 0 {
		return 0
	}
	v := c.operands[0].Eval(d)
	for _, o := range c.operands[1:] {
		v = c.combine(v, o.Eval(d))
	}
	return v
}

func (c connective) Refs() []Is {
	var refs []Is
	for _, o := range c.operands {
		refs = append(refs, o.Refs()...)
	}
	return refs
}

func (c connective) String() string {
	parts := make([]string, len(c.operands))
	for i, o := range c.operands {
		s := o.String()
		if _, nested := o.(connective); nested {
			s = "(" + s + ")"
		}
		parts[i] = s
	}
	return strings.Join(parts, " "+c.op+" ")
}

// Rule maps an antecedent to one term of the output variable.
type Rule struct {
	If   Expr
	Then Is
}

func (r Rule) String() string {
	return "IF " + r.If.String() + " THEN " + r.Then.String()
}
