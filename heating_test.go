package whitedwarf

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSteadyHeatingAnalysis(t *testing.T) {
	eng := testEngine(t, 2e-3)
	res, err := eng.SteadyHeatingAnalysis(250)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.X) != 250 {
		t.Fatalf("expected 250 stations, got %d", len(res.X))
	}
	last := len(res.X) - 1

	// Counter-flow: the coolant enters at the nozzle exit and leaves at the
	// injector face.
	if res.X[0] != eng.XExit() {
		t.Fatalf("first station at x=%f, expected the exit %f", res.X[0], eng.XExit())
	}
	if !scalar.EqualWithinAbs(res.X[last], eng.XInjector(), 1e-9) {
		t.Fatalf("last station at x=%f, expected the injector %f", res.X[last], eng.XInjector())
	}

	// The coolant only picks up heat and only loses pressure.
	for i := 1; i < len(res.X); i++ {
		if res.TCoolant[i] < res.TCoolant[i-1] {
			t.Fatalf("coolant cooled down between stations %d and %d", i-1, i)
		}
		if res.PCoolant[i] > res.PCoolant[i-1] {
			t.Fatalf("coolant gained pressure between stations %d and %d", i-1, i)
		}
	}
	if res.PressureDrop() <= 0 {
		t.Fatalf("pressure drop %f Pa", res.PressureDrop())
	}

	// Temperature ordering through the wall stack at every station.
	for i := range res.X {
		if !(res.TCoolant[i] < res.TWallOuter[i] && res.TWallOuter[i] <= res.TWallInner[i] &&
			res.TWallInner[i] <= res.THotFace[i] && res.THotFace[i] < eng.Chamber.T0) {
			t.Fatalf("thermal circuit ordering broken at station %d: coolant %f, outer %f, inner %f, hot %f",
				i, res.TCoolant[i], res.TWallOuter[i], res.TWallInner[i], res.THotFace[i])
		}
		if res.QDot[i] <= 0 {
			t.Fatalf("no heat pickup at station %d", i)
		}
	}

	if res.MaxTWallInner() <= res.TCoolant[0] {
		t.Fatal("peak liner temperature below the coolant inlet")
	}
}

func TestTallerChannelsDropLessPressure(t *testing.T) {
	narrow, err := testEngine(t, 0.5e-3).SteadyHeatingAnalysis(100)
	if err != nil {
		t.Fatal(err)
	}
	wide, err := testEngine(t, 5e-3).SteadyHeatingAnalysis(100)
	if err != nil {
		t.Fatal(err)
	}
	if wide.PressureDrop() >= narrow.PressureDrop() {
		t.Fatalf("5 mm channels dropped %f Pa, 0.5 mm channels %f Pa", wide.PressureDrop(), narrow.PressureDrop())
	}
	// Slower coolant means a weaker film and a hotter liner.
	if wide.MaxTWallInner() <= narrow.MaxTWallInner() {
		t.Fatalf("5 mm liner peak %f K not above 0.5 mm peak %f K", wide.MaxTWallInner(), narrow.MaxTWallInner())
	}
}

func TestHeatingRequiresAssembly(t *testing.T) {
	eng := testEngine(t, 2e-3)
	eng.Jacket = nil
	if _, err := eng.SteadyHeatingAnalysis(100); err == nil {
		t.Fatal("expected an error without a cooling jacket")
	}
	eng = testEngine(t, 2e-3)
	eng.ExhaustTransport = nil
	if _, err := eng.SteadyHeatingAnalysis(100); err == nil {
		t.Fatal("expected an error without exhaust transport properties")
	}
	eng = testEngine(t, 2e-3)
	if _, err := eng.SteadyHeatingAnalysis(1); err == nil {
		t.Fatal("expected an error for a single station")
	}
}
