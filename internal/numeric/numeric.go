// Package numeric holds the small numeric helpers shared by the inference
// engines: clamping, grid construction, rounding and trapezoid integration.
package numeric

import "math"

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampInt limits n to be at least lo.
func ClampInt(n, lo int) int {
	if n < lo {
		return lo
	}
	return n
}

// Grid returns the points lo, lo+step, ... up to and including hi.
// A non-positive step or an empty interval yields a single point at lo.
func Grid(lo, hi, step float64) []float64 {
	if step <= 0 || hi <= lo {
		return []float64{lo}
	}
	n := int(math.Floor((hi-lo)/step+1e-9)) + 1
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	return xs
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// CumulativeArea returns the running trapezoid-rule area under ys sampled at
// xs. The result has len(xs) entries and starts at 0.
func CumulativeArea(xs, ys []float64) []float64 {
	cum := make([]float64, len(xs))
	for i := 1; i < len(xs); i++ {
		cum[i] = cum[i-1] + (xs[i]-xs[i-1])*(ys[i]+ys[i-1])/2
	}
	return cum
}

// Sum adds up the values in xs.
func Sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

// MaxInto stores the pointwise maximum of dst and src in dst.
func MaxInto(dst, src []float64) {
	for i := range dst {
		if i < len(src) && src[i] > dst[i] {
			dst[i] = src[i]
		}
	}
}
