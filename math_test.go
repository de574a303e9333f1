package whitedwarf

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestBisection(t *testing.T) {
	root, err := bisection(func(x float64) float64 { return x*x - 2 }, 0, 2, 1e-12)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(root, math.Sqrt2, 1e-6) {
		t.Fatalf("sqrt(2) bisection returned %f", root)
	}
	if _, err = bisection(func(x float64) float64 { return x*x + 1 }, -1, 1, 1e-12); err == nil {
		t.Fatal("expected an error for a bracket without a sign change")
	}
}

func TestBisectionRejectsNaN(t *testing.T) {
	// Undefined at the lower bracket end.
	if _, err := bisection(func(x float64) float64 { return math.Sqrt(x-1) - 0.5 }, 0, 4, 1e-9); err == nil {
		t.Fatal("expected an error when f is NaN at a bracket end")
	}
	// Undefined in the interior.
	if _, err := bisection(func(x float64) float64 {
		if x > 0.5 && x < 1.5 {
			return math.NaN()
		}
		return x - 1
	}, 0, 2, 1e-9); err == nil {
		t.Fatal("expected an error when f goes NaN inside the bracket")
	}
}

func TestLinspace(t *testing.T) {
	vals := Linspace(0.5e-3, 5e-3, 20)
	if len(vals) != 20 {
		t.Fatalf("expected 20 values, got %d", len(vals))
	}
	if !scalar.EqualWithinAbs(vals[0], 0.5e-3, 1e-12) || !scalar.EqualWithinAbs(vals[19], 5e-3, 1e-12) {
		t.Fatal("linspace endpoints off")
	}
	single := Linspace(1, 2, 1)
	if len(single) != 1 || single[0] != 1 {
		t.Fatal("single point linspace should return the start")
	}
}
