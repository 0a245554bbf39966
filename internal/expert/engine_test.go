package expert

import (
	"testing"
)

func TestClassify_HighAvgAbsenceAlwaysAlto(t *testing.T) {
	// Low average and many absences must win regardless of other fields.
	for _, promedio := range []float64{0, 1.5, 2.99} {
		for _, inas := range []int{9, 15, 40} {
			for _, part := range []int{0, 5, 10} {
				for _, horas := range []float64{0, 4, 6, 20} {
					got := Classify(NewStudentFact(promedio, inas, part, horas))
					if got != Alto {
						t.Errorf("Classify(%.2f, %d, %d, %.1f) = %v, want %v",
							promedio, inas, part, horas, got, Alto)
					}
				}
			}
		}
	}
}

func TestClassify_LowRiskBoundary(t *testing.T) {
	got := Classify(NewStudentFact(3.5, 4, 10, 6.0))
	if got != Bajo {
		t.Errorf("got %v, want %v", got, Bajo)
	}
	if got.String() != "Bajo riesgo" {
		t.Errorf("got label %q, want %q", got.String(), "Bajo riesgo")
	}
}

func TestClassify_JustBelowLowRiskBoundary(t *testing.T) {
	// horas_estudio 5.9 trips medium-study.
	got := Classify(NewStudentFact(3.5, 4, 10, 5.9))
	if got != Medio {
		t.Errorf("got %v, want %v", got, Medio)
	}
}

func TestClassify_StudyParticipationAlto(t *testing.T) {
	got := Classify(NewStudentFact(4.8, 0, 4, 2.5))
	if got != Alto {
		t.Errorf("got %v, want %v", got, Alto)
	}
	// Participation above the threshold falls through to medium-study.
	got = Classify(NewStudentFact(4.8, 0, 5, 2.5))
	if got != Medio {
		t.Errorf("got %v, want %v", got, Medio)
	}
}

func TestClassify_MediumAvgAbsence(t *testing.T) {
	got := Classify(NewStudentFact(3.2, 6, 8, 10))
	if got != Medio {
		t.Errorf("got %v, want %v", got, Medio)
	}
}

func TestFire_NoRuleMatchedFallsBackToDefault(t *testing.T) {
	facts := []StudentFact{
		NewStudentFact(3.2, 2, 8, 8),  // average too low for low-risk, too few absences for medium
		NewStudentFact(4.0, 6, 8, 7),  // too many absences for low-risk, average too high for medium
		NewStudentFact(3.4, 4, 10, 9), // just under the low-risk average
	}
	e := NewEngine(DefaultRules()...)
	for _, f := range facts {
		result := e.Fire(f)
		if len(result) != 1 || result[0] != Medio {
			t.Errorf("Fire(%+v) = %v, want [Medio] from the default rule", f, result)
		}
		if got := e.Classify(f); got.String() != "Riesgo medio" {
			t.Errorf("Classify(%+v) = %q, want %q", f, got.String(), "Riesgo medio")
		}
	}
}

func TestFire_DefaultRuleSilentWhenOthersMatch(t *testing.T) {
	result := NewEngine(DefaultRules()...).Fire(NewStudentFact(4.5, 0, 9, 10))
	if len(result) != 1 || result[0] != Bajo {
		t.Errorf("got %v, want only [Bajo]", result)
	}
}

func TestFire_CollectsEveryMatch(t *testing.T) {
	// Both Alto rules plus both Medio rules.
	result := NewEngine(DefaultRules()...).Fire(NewStudentFact(2.0, 10, 1, 1))
	if len(result) != 4 {
		t.Fatalf("got %d results (%v), want 4", len(result), result)
	}
	if result.Resolve() != Alto {
		t.Errorf("got %v, want %v", result.Resolve(), Alto)
	}
}

func TestClassify_AltoBeatsBajo(t *testing.T) {
	// A contradictory table where one fact triggers both extremes.
	e := NewEngine(
		Rule{ID: "bajo", Match: func(f StudentFact) bool { return f.Promedio >= 3.5 }, Then: Bajo},
		Rule{ID: "alto", Match: func(f StudentFact) bool { return f.Inasistencias > 8 }, Then: Alto},
		FallbackRule(),
	)
	got := e.Classify(NewStudentFact(4.5, 12, 10, 10))
	if got.String() != "Alto riesgo" {
		t.Errorf("got %q, want %q", got.String(), "Alto riesgo")
	}
}

func TestResolve_PriorityOrder(t *testing.T) {
	tests := []struct {
		name   string
		result InferenceResult
		want   RiskLevel
	}{
		{"empty", nil, Medio},
		{"only bajo", InferenceResult{Bajo, Bajo}, Bajo},
		{"medio over bajo", InferenceResult{Bajo, Medio}, Medio},
		{"alto over all", InferenceResult{Bajo, Alto, Medio}, Alto},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Resolve(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewEngine_RuleOrderDoesNotMatter(t *testing.T) {
	rules := DefaultRules()
	reversed := make([]Rule, len(rules))
	for i, r := range rules {
		reversed[len(rules)-1-i] = r
	}
	a, b := NewEngine(rules...), NewEngine(reversed...)

	facts := []StudentFact{
		NewStudentFact(2.0, 10, 1, 1),
		NewStudentFact(3.5, 4, 10, 6),
		NewStudentFact(3.2, 2, 8, 8),
		NewStudentFact(4.0, 0, 0, 2),
	}
	for _, f := range facts {
		if a.Classify(f) != b.Classify(f) {
			t.Errorf("order-dependent result for %+v", f)
		}
	}
}

func TestNewEngine_FallbackIsLast(t *testing.T) {
	rules := NewEngine(DefaultRules()...).Rules()
	if len(rules) != 6 {
		t.Fatalf("got %d rules, want 6", len(rules))
	}
	if rules[len(rules)-1].ID != "default" {
		t.Errorf("last rule is %q, want default", rules[len(rules)-1].ID)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	f := NewStudentFact(3.1, 5, 3, 4)
	first := Classify(f)
	for i := 0; i < 5; i++ {
		if got := Classify(f); got != first {
			t.Fatalf("run %d: got %v, want %v", i, got, first)
		}
	}
}

func TestNewStudentFact_Clamps(t *testing.T) {
	f := NewStudentFact(7.2, -3, -1, -5)
	if f.Promedio != MaxPromedio {
		t.Errorf("promedio = %v, want %v", f.Promedio, MaxPromedio)
	}
	if f.Inasistencias != 0 || f.Participacion != 0 || f.HorasEstudio != 0 {
		t.Errorf("negative fields not clamped: %+v", f)
	}
}

func TestRiskLevel_String(t *testing.T) {
	want := map[RiskLevel]string{
		Alto:  "Alto riesgo",
		Medio: "Riesgo medio",
		Bajo:  "Bajo riesgo",
	}
	for l, s := range want {
		if l.String() != s {
			t.Errorf("%d.String() = %q, want %q", l, l.String(), s)
		}
	}
}
