package expert

import "github.com/abhisek/estudia/internal/numeric"

// RiskLevel is an academic-risk category. The numeric order Bajo < Medio < Alto
// is used only to resolve conflicts between matched rules.
type RiskLevel int

const (
	Bajo RiskLevel = iota
	Medio
	Alto
)

// String returns the user-facing label.
func (l RiskLevel) String() string {
	switch l {
	case Alto:
		return "Alto riesgo"
	case Medio:
		return "Riesgo medio"
	default:
		return "Bajo riesgo"
	}
}

// MaxPromedio is the top of the grade-average scale.
const MaxPromedio = 5.0

// StudentFact holds the four indicators the rule table reasons about.
type StudentFact struct {
	Promedio      float64 // Grade average, 0.0–5.0
	Inasistencias int     // Absences
	Participacion int     // Participation score
	HorasEstudio  float64 // Weekly study hours
}

// NewStudentFact builds a fact, clamping out-of-domain values to the nearest
// valid one.
func NewStudentFact(promedio float64, inasistencias, participacion int, horasEstudio float64) StudentFact {
	return StudentFact{
		Promedio:      numeric.Clamp(promedio, 0, MaxPromedio),
		Inasistencias: numeric.ClampInt(inasistencias, 0),
		Participacion: numeric.ClampInt(participacion, 0),
		HorasEstudio:  max(horasEstudio, 0),
	}
}

// InferenceResult collects the consequences of every rule that matched in one
// run. Duplicates are kept.
type InferenceResult []RiskLevel

// Resolve reduces the result to one level: Alto if present, then Medio, then
// Bajo. An empty result resolves to Medio.
func (r InferenceResult) Resolve() RiskLevel {
	if len(r) == 0 {
		return Medio
	}
	best := Bajo
	for _, l := range r {
		if l > best {
			best = l
		}
	}
	return best
}
