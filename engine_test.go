package whitedwarf

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// testEngine assembles the White Dwarf reference engine with the given
// cooling channel height. Shared by the engine and heating tests.
func testEngine(t *testing.T, channelHeight float64) *Engine {
	t.Helper()
	const (
		pc      = 15e5
		mdot    = 5.4489
		ofRatio = 3.5
		waterWf = 0.10
	)
	chamberArea := math.Pi * 0.1 * 0.1

	eq := NewEquilibrium()
	eq.AddPropellantsByMass([]PropellantMass{
		{Propellants["ISOPROPYL ALCOHOL"], 1 - waterWf},
		{Propellants["WATER"], waterWf},
		{Propellants["NITROUS OXIDE"], ofRatio},
	})
	if err := eq.SetStateHP(pc); err != nil {
		t.Fatal(err)
	}
	gas, err := eq.Gas()
	if err != nil {
		t.Fatal(err)
	}
	gasTransport, err := NewGasMixtureFromEquilibrium(eq)
	if err != nil {
		t.Fatal(err)
	}
	coolant, err := NewCoolantMixture([]string{"isopropanol", "water"}, []float64{1 - waterWf, waterWf})
	if err != nil {
		t.Fatal(err)
	}
	chamber := ChamberConditions{P0: pc, T0: eq.Properties.T, MassFlow: mdot}
	noz, err := NewNozzleFromEngineComponents(gas, chamber, AtmPressure, RaoBell, 0.8)
	if err != nil {
		t.Fatal(err)
	}
	eng := NewEngine("test", gas, chamber, noz)
	if err := eng.AddGeometry(1.5*noz.At/chamberArea, chamberArea, 2e-3); err != nil {
		t.Fatal(err)
	}
	eng.AddExhaustTransport(gasTransport)
	eng.AddAblative(Ablative{Material: Graphite, RegressionRate: 3.3e-6, Thickness: 5e-3, XMin: -100, XMax: 100})
	if err := eng.AddCoolingJacket(CoolingJacket{
		Material: CopperC700, InletT: 298.15, InletP0: 50e5,
		Transport: coolant, MassFlow: mdot / (ofRatio + 1),
		Configuration: Vertical, ChannelHeight: channelHeight,
	}); err != nil {
		t.Fatal(err)
	}
	return eng
}

func TestEngineContour(t *testing.T) {
	eng := testEngine(t, 2e-3)
	if !scalar.EqualWithinAbs(eng.Radius(eng.XInjector()), eng.ChamberRadius, 1e-12) {
		t.Fatal("contour at the injector should match the chamber radius")
	}
	if !scalar.EqualWithinAbs(eng.Radius(0), eng.Nozzle.Rt, 1e-12) {
		t.Fatal("contour at x=0 should match the throat radius")
	}
	if !scalar.EqualWithinAbs(eng.Radius(eng.XExit()), eng.Nozzle.Re, 1e-9) {
		t.Fatal("contour at the exit should match the exit radius")
	}
	// Minimum area at the throat.
	for _, x := range Linspace(eng.XInjector(), eng.XExit(), 200) {
		if eng.Area(x) < eng.Nozzle.At-1e-12 {
			t.Fatalf("area below throat area at x=%f", x)
		}
	}
}

func TestEngineMachProfile(t *testing.T) {
	eng := testEngine(t, 2e-3)
	mChamber, err := eng.Mach(eng.XInjector())
	if err != nil {
		t.Fatal(err)
	}
	if mChamber <= 0 || mChamber >= 0.5 {
		t.Fatalf("chamber Mach %f", mChamber)
	}
	mThroat, err := eng.Mach(0)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(mThroat, 1, 1e-9) {
		t.Fatalf("throat Mach %f", mThroat)
	}
	mExit, err := eng.Mach(eng.XExit())
	if err != nil {
		t.Fatal(err)
	}
	if mExit <= 1.5 {
		t.Fatalf("exit Mach %f", mExit)
	}
	// Static temperature falls with expansion.
	tThroat, err := eng.StaticT(0)
	if err != nil {
		t.Fatal(err)
	}
	tExit, err := eng.StaticT(eng.XExit())
	if err != nil {
		t.Fatal(err)
	}
	if !(tExit < tThroat && tThroat < eng.Chamber.T0) {
		t.Fatalf("temperature ordering broken: exit %f, throat %f, chamber %f", tExit, tThroat, eng.Chamber.T0)
	}
}

func TestEngineStaticPressureProfile(t *testing.T) {
	eng := testEngine(t, 2e-3)
	// With the throat exactly sonic, the static pressure there is the sonic
	// ratio of the stagnation pressure.
	pThroat, err := eng.StaticP(0)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(pThroat, eng.Gas.PAtMach(eng.Chamber.P0, 1), 1) {
		t.Fatalf("throat static pressure %f Pa is not the sonic fraction of p0=%f Pa", pThroat, eng.Chamber.P0)
	}
	pChamber, err := eng.StaticP(eng.XInjector())
	if err != nil {
		t.Fatal(err)
	}
	pExit, err := eng.StaticP(eng.XExit())
	if err != nil {
		t.Fatal(err)
	}
	if !(pExit < pThroat && pThroat < pChamber && pChamber < eng.Chamber.P0) {
		t.Fatalf("pressure ordering broken: exit %f, throat %f, chamber %f, p0 %f",
			pExit, pThroat, pChamber, eng.Chamber.P0)
	}
}

func TestEngineThrustAndIsp(t *testing.T) {
	eng := testEngine(t, 2e-3)
	thrust, err := eng.Thrust(AtmPressure)
	if err != nil {
		t.Fatal(err)
	}
	// ~5.4 kg/s at roughly 2 km/s exhaust velocity.
	if thrust < 5e3 || thrust > 20e3 {
		t.Fatalf("sea level thrust %f N", thrust)
	}
	isp, err := eng.Isp(AtmPressure)
	if err != nil {
		t.Fatal(err)
	}
	if isp < 150 || isp > 300 {
		t.Fatalf("sea level Isp %f s", isp)
	}
	// Vacuum beats sea level.
	vacIsp, err := eng.Isp(1)
	if err != nil {
		t.Fatal(err)
	}
	if vacIsp <= isp {
		t.Fatalf("vacuum Isp %f not above sea level %f", vacIsp, isp)
	}
}

func TestEngineGeometryValidation(t *testing.T) {
	eng := testEngine(t, 2e-3)
	if err := eng.AddGeometry(0, eng.ChamberArea, 2e-3); err == nil {
		t.Fatal("expected an error for zero chamber length")
	}
	if err := eng.AddGeometry(0.25, eng.Nozzle.At/2, 2e-3); err == nil {
		t.Fatal("expected an error for a chamber smaller than the throat")
	}
}
