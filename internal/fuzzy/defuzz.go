package fuzzy

import (
	"fmt"
	"math"

	"github.com/abhisek/estudia/internal/numeric"
)

// Method selects how an aggregated profile is reduced to a crisp value.
type Method string

const (
	// Centroid is the mean of the domain weighted by membership degree.
	Centroid Method = "centroid"
	// Bisector is the domain value that splits the area under the profile
	// into two equal halves.
	Bisector Method = "bisector"
)

// DefaultMethod is the defuzzification method systems use unless configured
// otherwise.
const DefaultMethod = Bisector

// ParseMethod validates a method name.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case Centroid, Bisector:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Defuzzify reduces the profile ys sampled at xs to a crisp value. It reports
// false when the profile has no area, in which case the result is undefined.
func Defuzzify(m Method, xs, ys []float64) (float64, bool) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return 0, false
	}
	switch m {
	case Centroid:
		return centroid(xs, ys)
	default:
		return bisector(xs, ys)
	}
}

func centroid(xs, ys []float64) (float64, bool) {
	total := numeric.Sum(ys)
	if total <= 0 {
		return 0, false
	}
	var weighted float64
	for i, x := range xs {
		weighted += x * ys[i]
	}
	return weighted / total, true
}

func bisector(xs, ys []float64) (float64, bool) {
	if len(xs) == 1 {
		return xs[0], ys[0] > 0
	}
	cum := numeric.CumulativeArea(xs, ys)
	total := cum[len(cum)-1]
	if total <= 0 {
		return 0, false
	}
	half := total / 2
	for i := 1; i < len(xs); i++ {
		if cum[i] < half {
			continue
		}
		// The profile is linear between xs[i-1] and xs[i]; solve for the
		// offset t whose partial area reaches the half.
		need := half - cum[i-1]
		h := xs[i] - xs[i-1]
		y0 := ys[i-1]
		slope := (ys[i] - y0) / h
		var t float64
		if math.Abs(slope) < 1e-12 {
			t = need / y0
		} else {
			t = (-y0 + math.Sqrt(max(0, y0*y0+2*slope*need))) / slope
		}
		return xs[i-1] + numeric.Clamp(t, 0, h), true
	}
	return xs[len(xs)-1], true
}
