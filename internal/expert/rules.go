package expert

// Rule is a threshold rule over a StudentFact.
type Rule struct {
	ID       string
	When     string // Human-readable condition
	Match    func(f StudentFact) bool
	Then     RiskLevel
	Priority int // Lower tiers only run when higher tiers matched nothing
}

// DefaultPriority is the tier of every regular rule.
const DefaultPriority = 0

// FallbackPriority is the tier of the default rule.
const FallbackPriority = -10

// DefaultRules returns the academic-risk rule table, fallback last.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:   "high-avg-absence",
			When: "promedio < 3.0 AND inasistencias > 8",
			Match: func(f StudentFact) bool {
				return f.Promedio < 3.0 && f.Inasistencias > 8
			},
			Then: Alto,
		},
		{
			ID:   "high-study-participation",
			When: "horas_estudio < 3 AND participacion <= 4",
			Match: func(f StudentFact) bool {
				return f.HorasEstudio < 3 && f.Participacion <= 4
			},
			Then: Alto,
		},
		{
			ID:   "medium-avg-absence",
			When: "promedio < 3.5 AND inasistencias > 4",
			Match: func(f StudentFact) bool {
				return f.Promedio < 3.5 && f.Inasistencias > 4
			},
			Then: Medio,
		},
		{
			ID:   "medium-study",
			When: "horas_estudio < 6",
			Match: func(f StudentFact) bool {
				return f.HorasEstudio < 6
			},
			Then: Medio,
		},
		{
			ID:   "low-risk",
			When: "promedio >= 3.5 AND inasistencias <= 4 AND horas_estudio >= 6",
			Match: func(f StudentFact) bool {
				return f.Promedio >= 3.5 && f.Inasistencias <= 4 && f.HorasEstudio >= 6
			},
			Then: Bajo,
		},
		FallbackRule(),
	}
}

// FallbackRule asserts Medio unconditionally. It sits in the lowest tier so it
// only fires when nothing else matched.
func FallbackRule() Rule {
	return Rule{
		ID:       "default",
		When:     "no other rule matched",
		Match:    func(StudentFact) bool { return true },
		Then:     Medio,
		Priority: FallbackPriority,
	}
}
