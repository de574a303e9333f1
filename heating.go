package whitedwarf

import (
	"fmt"
	"math"

	"github.com/ChristopherRabotin/ode"
)

/* Steady-state conjugate heating of the cooled wall. */

// HeatingResults holds the per-station outputs of a steady heating analysis.
// Stations are ordered along the coolant path: index 0 is the coolant inlet
// at the nozzle exit, the last index the outlet at the injector face.
type HeatingResults struct {
	X          []float64 // engine axial coordinate, m
	TCoolant   []float64 // bulk coolant temperature, K
	PCoolant   []float64 // coolant pressure, Pa
	THotFace   []float64 // gas-side face of the innermost solid layer, K
	TWallInner []float64 // gas-side face of the liner (behind any ablative), K
	TWallOuter []float64 // coolant-side face of the liner, K
	QDot       []float64 // heat pickup per unit axial length, W/m
}

// PressureDrop returns the inlet-to-outlet coolant pressure drop in Pa.
func (r *HeatingResults) PressureDrop() float64 {
	return r.PCoolant[0] - r.PCoolant[len(r.PCoolant)-1]
}

// MaxTWallInner returns the peak liner gas-side temperature in K.
func (r *HeatingResults) MaxTWallInner() float64 {
	return maxOf(r.TWallInner)
}

// stationState holds the solved thermal circuit at one station.
type stationState struct {
	x          float64
	qDot       float64 // W per m of axial length
	tHotFace   float64
	tWallInner float64
	tWallOuter float64
	dpds       float64 // friction gradient along the coolant path, Pa/m
	cp         float64 // coolant specific heat, J/(kg K)
}

// steadyHeating marches the coolant state [T, p] from the nozzle exit to the
// injector. It implements ode.Integrable so the march rides the same RK4
// driver the rest of the toolchain uses.
type steadyHeating struct {
	eng    *Engine
	points int
	step   float64 // coolant path step, m

	// Bartz terms that do not change along the contour.
	bartzCoeff float64
	recovery   float64

	state []float64
	idx   int
	res   *HeatingResults
	err   error
}

// SteadyHeatingAnalysis runs the steady-state heating analysis over the
// given number of axial stations.
func (e *Engine) SteadyHeatingAnalysis(points int) (*HeatingResults, error) {
	if !e.hasGeometry {
		return nil, fmt.Errorf("heating: engine has no geometry (call AddGeometry)")
	}
	if e.ExhaustTransport == nil {
		return nil, fmt.Errorf("heating: engine has no exhaust transport properties")
	}
	if e.Jacket == nil {
		return nil, fmt.Errorf("heating: engine has no cooling jacket")
	}
	if points < 2 {
		return nil, fmt.Errorf("heating: need at least 2 stations, got %d", points)
	}

	pathLength := e.XExit() - e.XInjector()
	sh := &steadyHeating{
		eng:    e,
		points: points,
		step:   pathLength / float64(points-1),
		state:  []float64{e.Jacket.InletT, e.Jacket.InletP0},
		res: &HeatingResults{
			X:          make([]float64, 0, points),
			TCoolant:   make([]float64, 0, points),
			PCoolant:   make([]float64, 0, points),
			THotFace:   make([]float64, 0, points),
			TWallInner: make([]float64, 0, points),
			TWallOuter: make([]float64, 0, points),
			QDot:       make([]float64, 0, points),
		},
	}

	// Gas-side film coefficient, Bartz: everything except the local area
	// ratio and the wall-temperature correction is constant.
	T0 := e.Chamber.T0
	p0 := e.Chamber.P0
	Dt := 2 * e.Nozzle.Rt
	mu0 := e.ExhaustTransport.Viscosity(T0, p0)
	pr0 := e.ExhaustTransport.Prandtl(T0, p0)
	cstar := e.Gas.CStar(T0)
	throatCurvature := 1.5 * e.Nozzle.Rt
	sh.bartzCoeff = 0.026 / math.Pow(Dt, 0.2) *
		math.Pow(mu0, 0.2) * e.Gas.Cp / math.Pow(pr0, 0.6) *
		math.Pow(p0/cstar, 0.8) * math.Pow(Dt/throatCurvature, 0.1)
	sh.recovery = math.Cbrt(pr0)

	sh.record(0)
	if sh.err != nil {
		return nil, sh.err
	}
	ode.NewRK4(0, sh.step, sh).Solve()
	if sh.err != nil {
		return nil, sh.err
	}

	if sat, ok := e.Jacket.Transport.(interface {
		SaturationTemperature(p float64) float64
	}); ok {
		outletT := sh.res.TCoolant[len(sh.res.TCoolant)-1]
		outletP := sh.res.PCoolant[len(sh.res.PCoolant)-1]
		if tSat := sat.SaturationTemperature(outletP); outletT > tSat {
			e.logger.Log("level", "warning", "subsys", "cooling", "message", "coolant above saturation at outlet",
				"T(K)", outletT, "Tsat(K)", tSat)
		}
	}
	return sh.res, nil
}

// GetState implements ode.Integrable.
func (sh *steadyHeating) GetState() []float64 {
	return sh.state
}

// SetState implements ode.Integrable: called after each RK4 step with the
// updated coolant state.
func (sh *steadyHeating) SetState(s float64, state []float64) {
	sh.state = state
	sh.record(s)
}

// Stop implements ode.Integrable.
func (sh *steadyHeating) Stop(s float64) bool {
	return sh.err != nil || sh.idx >= sh.points
}

// Func implements ode.Integrable: derivatives of [T, p] along the coolant
// path.
func (sh *steadyHeating) Func(s float64, f []float64) []float64 {
	st, err := sh.station(s, f[0], f[1])
	if err != nil {
		sh.err = err
		return []float64{0, 0}
	}
	return []float64{
		st.qDot / (sh.eng.Jacket.MassFlow * st.cp),
		-st.dpds,
	}
}

// record stores the station at path position s with the current state.
func (sh *steadyHeating) record(s float64) {
	st, err := sh.station(s, sh.state[0], sh.state[1])
	if err != nil {
		sh.err = err
		return
	}
	r := sh.res
	r.X = append(r.X, st.x)
	r.TCoolant = append(r.TCoolant, sh.state[0])
	r.PCoolant = append(r.PCoolant, sh.state[1])
	r.THotFace = append(r.THotFace, st.tHotFace)
	r.TWallInner = append(r.TWallInner, st.tWallInner)
	r.TWallOuter = append(r.TWallOuter, st.tWallOuter)
	r.QDot = append(r.QDot, st.qDot)
	sh.idx++
}

// station solves the radial thermal circuit at coolant path position s for
// bulk coolant temperature Tc and pressure p.
func (sh *steadyHeating) station(s, Tc, p float64) (stationState, error) {
	e := sh.eng
	x := e.XExit() - s
	if x < e.XInjector() {
		x = e.XInjector()
	}
	if Tc <= 0 || p <= 0 {
		return stationState{}, fmt.Errorf("heating: unphysical coolant state at x=%.3f m (T=%.1f K, p=%.0f Pa)", x, Tc, p)
	}

	// Wall stack radii: gas-side contour, optional ablative, liner.
	r1 := e.Radius(x)
	var tAbl float64
	if e.Ablative != nil {
		tAbl = e.Ablative.ThicknessAt(x, 0)
	}
	r2 := r1 + tAbl
	r3 := r2 + e.WallThickness

	// Gas side.
	M, err := e.Mach(x)
	if err != nil {
		return stationState{}, err
	}
	gm := e.Gas.Gamma - 1
	flowTerm := 1 + gm/2*M*M
	T0 := e.Chamber.T0
	taw := T0 * (1 + sh.recovery*gm/2*M*M) / flowTerm
	areaTerm := math.Pow(e.Nozzle.At/e.Area(x), 0.9)

	// Coolant side, bulk properties.
	j := e.Jacket
	rho := j.Transport.Density(Tc, p)
	mu := j.Transport.Viscosity(Tc, p)
	k := j.Transport.Conductivity(Tc, p)
	cp := j.Transport.SpecificHeat(Tc, p)
	pr := j.Transport.Prandtl(Tc, p)
	v := j.Velocity(rho, r3)
	dh := j.HydraulicDiameter(r3)
	re := rho * v * dh / mu
	var nu float64
	if re < 2300 {
		nu = 3.66
	} else {
		nu = 0.023 * math.Pow(re, 0.8) * math.Pow(pr, 0.4)
	}
	hc := nu * k / dh

	rCool := 1 / (hc * 2 * math.Pi * r3)
	var rAbl float64
	if tAbl > 0 {
		rAbl = math.Log(r2/r1) / (2 * math.Pi * e.Ablative.Material.Conductivity)
	}
	rWall := math.Log(r3/r2) / (2 * math.Pi * j.Material.Conductivity)

	// The Bartz film coefficient depends on the hot-face temperature through
	// its property correction, so fixed-point iterate the circuit.
	tw := 0.8 * T0
	var q, rGas float64
	for i := 0; i < 6; i++ {
		sigma := 1 / (math.Pow(0.5*tw/T0*flowTerm+0.5, 0.68) * math.Pow(flowTerm, 0.12))
		hg := sh.bartzCoeff * areaTerm * sigma
		rGas = 1 / (hg * 2 * math.Pi * r1)
		q = (taw - Tc) / (rGas + rAbl + rWall + rCool)
		twNew := taw - q*rGas
		if twNew < Tc {
			twNew = Tc
		}
		if math.Abs(twNew-tw) < 0.05 {
			tw = twNew
			break
		}
		tw = twNew
	}

	// Darcy friction along the channel.
	var fric float64
	if re < 2300 {
		fric = 64 / re
	} else {
		fric = 1 / math.Pow(-1.8*math.Log10(6.9/re), 2)
	}

	return stationState{
		x:          x,
		qDot:       q,
		tHotFace:   tw,
		tWallInner: taw - q*(rGas+rAbl),
		tWallOuter: Tc + q*rCool,
		dpds:       fric / dh * 0.5 * rho * v * v,
		cp:         cp,
	}, nil
}
