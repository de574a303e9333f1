package whitedwarf

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func testNozzleComponents() (PerfectGas, ChamberConditions) {
	return NewPerfectGas(1.25, 1800), ChamberConditions{P0: 15e5, T0: 2800, MassFlow: 5.4489}
}

func TestRaoBellNozzle(t *testing.T) {
	gas, chamber := testNozzleComponents()
	noz, err := NewNozzleFromEngineComponents(gas, chamber, AtmPressure, RaoBell, 0.8)
	if err != nil {
		t.Fatal(err)
	}
	if noz.At <= 0 || noz.Ae <= noz.At {
		t.Fatalf("bad areas: At=%g Ae=%g", noz.At, noz.Ae)
	}
	if !scalar.EqualWithinAbs(noz.Rt, math.Sqrt(noz.At/math.Pi), 1e-12) {
		t.Fatal("throat radius inconsistent with throat area")
	}
	// The bell is the stated fraction of the 15 degree cone.
	coneLength := (noz.Re - noz.Rt) / math.Tan(Deg2rad(15))
	if !scalar.EqualWithinAbs(noz.Length, 0.8*coneLength, 1e-9) {
		t.Fatalf("bell length %f for cone length %f", noz.Length, coneLength)
	}
	// Contour endpoints and monotonicity.
	if !scalar.EqualWithinAbs(noz.Radius(0), noz.Rt, 1e-12) {
		t.Fatal("contour does not start at the throat radius")
	}
	if !scalar.EqualWithinAbs(noz.Radius(noz.Length), noz.Re, 1e-9) {
		t.Fatal("contour does not end at the exit radius")
	}
	prev := noz.Radius(0)
	for _, x := range Linspace(0, noz.Length, 100)[1:] {
		r := noz.Radius(x)
		if r < prev-1e-12 {
			t.Fatalf("contour not monotonic at x=%f", x)
		}
		prev = r
	}
	if noz.Radius(-1) != noz.Rt || noz.Radius(noz.Length+1) != noz.Re {
		t.Fatal("contour should clamp outside [0, Length]")
	}
}

func TestConicalNozzle(t *testing.T) {
	gas, chamber := testNozzleComponents()
	noz, err := NewNozzleFromEngineComponents(gas, chamber, AtmPressure, Conical, 0)
	if err != nil {
		t.Fatal(err)
	}
	wantLength := (noz.Re - noz.Rt) / math.Tan(Deg2rad(15))
	if !scalar.EqualWithinAbs(noz.Length, wantLength, 1e-12) {
		t.Fatalf("cone length %f, expected %f", noz.Length, wantLength)
	}
	mid := noz.Length / 2
	if !scalar.EqualWithinAbs(noz.Radius(mid), noz.Rt+mid*math.Tan(Deg2rad(15)), 1e-12) {
		t.Fatal("cone contour is not a straight taper")
	}
}

func TestNozzleRejectsBadAmbient(t *testing.T) {
	gas, chamber := testNozzleComponents()
	if _, err := NewNozzleFromEngineComponents(gas, chamber, 0, RaoBell, 0.8); err == nil {
		t.Fatal("expected an error for zero ambient pressure")
	}
	if _, err := NewNozzleFromEngineComponents(gas, chamber, 20e5, RaoBell, 0.8); err == nil {
		t.Fatal("expected an error for ambient above chamber pressure")
	}
}

func TestNozzleTypeParsing(t *testing.T) {
	for _, s := range []string{"rao", "bell"} {
		if typ, err := NozzleTypeFromString(s); err != nil || typ != RaoBell {
			t.Fatalf("`%s` should parse as the Rao bell", s)
		}
	}
	if typ, err := NozzleTypeFromString("conical"); err != nil || typ != Conical {
		t.Fatal("`conical` should parse")
	}
	if _, err := NozzleTypeFromString("aerospike"); err == nil {
		t.Fatal("expected an error for an unsupported contour")
	}
}
