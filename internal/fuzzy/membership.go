package fuzzy

import "fmt"

// MembershipFunc maps a crisp value to a degree of truth in [0, 1].
type MembershipFunc interface {
	Degree(x float64) float64
	String() string
}

// Trapezoidal is 0 below A and above D, ramps linearly from A to B, holds 1
// from B to C and ramps back to 0 from C to D. Coincident breakpoints are
// allowed.
type Trapezoidal struct {
	A, B, C, D float64
}

// Degree implements MembershipFunc.
func (t Trapezoidal) Degree(x float64) float64 {
	switch {
	case x < t.A || x > t.D:
		return 0
	case x >= t.B && x <= t.C:
		return 1
	case x < t.B:
		return (x - t.A) / (t.B - t.A)
	default:
		return (t.D - x) / (t.D - t.C)
	}
}

func (t Trapezoidal) String() string {
	return fmt.Sprintf("trap(%g, %g, %g, %g)", t.A, t.B, t.C, t.D)
}

// Triangular peaks at B and is 0 outside [A, C]. It behaves as a Trapezoidal
// whose plateau collapses to a single point.
type Triangular struct {
	A, B, C float64
}

// Degree implements MembershipFunc.
func (t Triangular) Degree(x float64) float64 {
	return Trapezoidal{A: t.A, B: t.B, C: t.B, D: t.C}.Degree(x)
}

func (t Triangular) String() string {
	return fmt.Sprintf("tri(%g, %g, %g)", t.A, t.B, t.C)
}
