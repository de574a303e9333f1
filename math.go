package whitedwarf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// Ru is the universal gas constant in J/(mol K).
	Ru = 8.31446261815324
	// G0 is standard gravity in m/s^2, used for Isp conversions.
	G0 = 9.80665
	// AtmPressure is standard sea level atmospheric pressure in Pa.
	AtmPressure = 1.01325e5
	// ZeroCelsius converts between Kelvin and Celsius.
	ZeroCelsius = 273.15
)

// bisection finds a root of f in [lo, hi] to within tol. The bracket must
// straddle the root and f must be defined over it: a NaN is an error, not a
// comparison that silently fails.
func bisection(f func(float64) float64, lo, hi, tol float64) (float64, error) {
	flo := f(lo)
	fhi := f(hi)
	if math.IsNaN(flo) || math.IsNaN(fhi) {
		return 0, fmt.Errorf("bisection: f is undefined on the bracket [%g, %g] (f=%g, %g)", lo, hi, flo, fhi)
	}
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if flo*fhi > 0 {
		return 0, fmt.Errorf("bisection: no sign change in [%g, %g] (f=%g, %g)", lo, hi, flo, fhi)
	}
	for i := 0; i < 200; i++ {
		mid := 0.5 * (lo + hi)
		fmid := f(mid)
		if math.IsNaN(fmid) {
			return 0, fmt.Errorf("bisection: f(%g) is undefined", mid)
		}
		if math.Abs(fmid) < tol || hi-lo < tol {
			return mid, nil
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo = mid
			flo = fmid
		}
	}
	return 0.5 * (lo + hi), nil
}

// Linspace returns n evenly spaced values over [start, end], inclusive.
func Linspace(start, end float64, n int) []float64 {
	if n == 1 {
		return []float64{start}
	}
	dst := make([]float64, n)
	return floats.Span(dst, start, end)
}

// maxOf returns the largest element of vals.
func maxOf(vals []float64) float64 {
	return floats.Max(vals)
}

// Deg2rad converts degrees to radians.
func Deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
