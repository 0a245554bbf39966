package fuzzy

// Variable and term names of the stress system.
const (
	VarSueno    = "sueno"
	VarCarga    = "carga"
	VarAnsiedad = "ansiedad"
	VarEstres   = "estres"
)

// StressVariables returns fresh copies of the sleep, course-load and anxiety
// inputs and the stress output.
func StressVariables() (sueno, carga, ansiedad, estres *Variable) {
	sueno = NewAntecedent(VarSueno, 0, 12,
		Term{"poco", Trapezoidal{0, 0, 2, 5}},
		Term{"adecuado", Triangular{4, 7, 9}},
		Term{"bueno", Trapezoidal{8, 10, 12, 12}},
	)
	carga = NewAntecedent(VarCarga, 1, 10,
		Term{"baja", Trapezoidal{1, 1, 3, 5}},
		Term{"media", Triangular{4, 6, 8}},
		Term{"alta", Trapezoidal{7, 9, 10, 10}},
	)
	ansiedad = NewAntecedent(VarAnsiedad, 0, 10,
		Term{"bajo", Trapezoidal{0, 0, 2, 5}},
		Term{"medio", Triangular{4, 6, 8}},
		Term{"alto", Trapezoidal{7, 9, 10, 10}},
	)
	estres = NewConsequent(VarEstres, 0, 100,
		Term{"bajo", Trapezoidal{0, 0, 20, 40}},
		Term{"moderado", Triangular{30, 50, 70}},
		Term{"alto", Trapezoidal{60, 85, 100, 100}},
	)
	return sueno, carga, ansiedad, estres
}

// StressRules returns the stress rule base. The last two rules cover the
// adequate-sleep/low-anxiety and good-sleep/medium-load corners the broad
// rules leave thin.
func StressRules() []Rule {
	return []Rule{
		{
			If:   Or(Is{VarSueno, "poco"}, Is{VarAnsiedad, "alto"}, Is{VarCarga, "alta"}),
			Then: Is{VarEstres, "alto"},
		},
		{
			If:   Or(Is{VarSueno, "adecuado"}, Is{VarAnsiedad, "medio"}, Is{VarCarga, "media"}),
			Then: Is{VarEstres, "moderado"},
		},
		{
			If:   And(Is{VarSueno, "bueno"}, Is{VarAnsiedad, "bajo"}, Is{VarCarga, "baja"}),
			Then: Is{VarEstres, "bajo"},
		},
		{
			If:   And(Is{VarSueno, "adecuado"}, Is{VarAnsiedad, "bajo"}),
			Then: Is{VarEstres, "bajo"},
		},
		{
			If:   And(Is{VarSueno, "bueno"}, Is{VarCarga, "media"}),
			Then: Is{VarEstres, "moderado"},
		},
	}
}

// NewStressSystem builds the academic-stress system.
func NewStressSystem(opts ...Option) (*System, error) {
	sueno, carga, ansiedad, estres := StressVariables()
	return NewSystem([]*Variable{sueno, carga, ansiedad}, estres, StressRules(), opts...)
}

// StressInputs binds the three indicators to their variable names.
func StressInputs(sueno, carga, ansiedad int) map[string]float64 {
	return map[string]float64{
		VarSueno:    float64(sueno),
		VarCarga:    float64(carga),
		VarAnsiedad: float64(ansiedad),
	}
}
