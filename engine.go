package whitedwarf

import (
	"fmt"
	"math"
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// Engine assembles the gas model, chamber conditions and nozzle, and carries
// the cooling system definition. The axial coordinate runs with the exhaust:
// x = 0 at the throat, the injector face at negative x, the nozzle exit at
// x = Nozzle.Length.
type Engine struct {
	Name    string
	Gas     PerfectGas
	Chamber ChamberConditions
	Nozzle  *Nozzle

	// Geometry, set by AddGeometry.
	ChamberLength float64
	ChamberArea   float64
	ChamberRadius float64
	WallThickness float64

	ExhaustTransport TransportProperties
	Ablative         *Ablative
	Jacket           *CoolingJacket

	logger      kitlog.Logger
	hasGeometry bool
}

// NewEngine assembles an engine from its components.
func NewEngine(name string, gas PerfectGas, chamber ChamberConditions, nozzle *Nozzle) *Engine {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "engine", name)
	return &Engine{Name: name, Gas: gas, Chamber: chamber, Nozzle: nozzle, logger: klog}
}

// AddGeometry sets the chamber barrel length, cross-sectional area and the
// liner wall thickness.
func (e *Engine) AddGeometry(chamberLength, chamberArea, wallThickness float64) error {
	if chamberLength <= 0 || chamberArea <= e.Nozzle.At || wallThickness <= 0 {
		return fmt.Errorf("engine: invalid geometry (Lc=%g m, Ac=%g m^2, wall=%g m)", chamberLength, chamberArea, wallThickness)
	}
	e.ChamberLength = chamberLength
	e.ChamberArea = chamberArea
	e.ChamberRadius = math.Sqrt(chamberArea / math.Pi)
	e.WallThickness = wallThickness
	e.hasGeometry = true
	return nil
}

// AddExhaustTransport attaches the exhaust-gas transport properties used by
// the gas-side film correlation.
func (e *Engine) AddExhaustTransport(t TransportProperties) {
	e.ExhaustTransport = t
}

// AddAblative attaches a sacrificial insert between the gas and the liner.
func (e *Engine) AddAblative(a Ablative) {
	e.Ablative = &a
}

// AddCoolingJacket attaches (or replaces) the cooling circuit. Sweeps call
// this once per swept point.
func (e *Engine) AddCoolingJacket(j CoolingJacket) error {
	if err := j.Validate(); err != nil {
		return err
	}
	e.Jacket = &j
	return nil
}

// convergingLength is the axial length of the 45 degree converging cone.
func (e *Engine) convergingLength() float64 {
	return e.ChamberRadius - e.Nozzle.Rt
}

// XInjector returns the injector face coordinate.
func (e *Engine) XInjector() float64 {
	return -(e.ChamberLength + e.convergingLength())
}

// XExit returns the nozzle exit plane coordinate.
func (e *Engine) XExit() float64 {
	return e.Nozzle.Length
}

// Radius returns the gas-side contour radius at x.
func (e *Engine) Radius(x float64) float64 {
	if x >= 0 {
		return e.Nozzle.Radius(x)
	}
	lConv := e.convergingLength()
	if x <= -lConv {
		return e.ChamberRadius
	}
	// Straight 45 degree converge from chamber radius to the throat.
	return e.Nozzle.Rt - x*(e.ChamberRadius-e.Nozzle.Rt)/lConv
}

// Area returns the gas flow area at x.
func (e *Engine) Area(x float64) float64 {
	r := e.Radius(x)
	return math.Pi * r * r
}

// Mach returns the local Mach number at x, subsonic upstream of the throat
// and supersonic downstream.
func (e *Engine) Mach(x float64) (float64, error) {
	// The ratio comes from the radii, not Area(x)/At, so the throat lands on
	// A/A* = 1 exactly; the area-Mach curve is flat there and the inversion
	// cannot recover from a ratio one ulp off unity.
	rr := e.Radius(x) / e.Nozzle.Rt
	ratio := rr * rr
	if ratio < 1 {
		ratio = 1
	}
	return e.Gas.MachAtAreaRatio(ratio, x > 0)
}

// StaticT returns the local static gas temperature at x.
func (e *Engine) StaticT(x float64) (float64, error) {
	M, err := e.Mach(x)
	if err != nil {
		return 0, err
	}
	return e.Gas.TAtMach(e.Chamber.T0, M), nil
}

// StaticP returns the local static gas pressure at x.
func (e *Engine) StaticP(x float64) (float64, error) {
	M, err := e.Mach(x)
	if err != nil {
		return 0, err
	}
	return e.Gas.PAtMach(e.Chamber.P0, M), nil
}

// ExitConditions returns the exit Mach number, static temperature, pressure
// and velocity.
func (e *Engine) ExitConditions() (Me, Te, pe, ve float64, err error) {
	Me, err = e.Gas.MachAtAreaRatio(e.Nozzle.AreaRatio(), true)
	if err != nil {
		return
	}
	Te = e.Gas.TAtMach(e.Chamber.T0, Me)
	pe = e.Gas.PAtMach(e.Chamber.P0, Me)
	ve = Me * math.Sqrt(e.Gas.Gamma*e.Gas.R*Te)
	return
}

// Thrust returns the thrust in N at ambient pressure pAmb.
func (e *Engine) Thrust(pAmb float64) (float64, error) {
	_, _, pe, ve, err := e.ExitConditions()
	if err != nil {
		return 0, err
	}
	return e.Chamber.MassFlow*ve + (pe-pAmb)*e.Nozzle.Ae, nil
}

// Isp returns the specific impulse in seconds at ambient pressure pAmb.
func (e *Engine) Isp(pAmb float64) (float64, error) {
	thrust, err := e.Thrust(pAmb)
	if err != nil {
		return 0, err
	}
	return thrust / (e.Chamber.MassFlow * G0), nil
}
