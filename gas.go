package whitedwarf

import (
	"fmt"
	"math"
)

// PerfectGas models the exhaust as a calorically perfect gas, which is the
// frozen-flow assumption the nozzle relations below rely on.
type PerfectGas struct {
	Gamma float64 // ratio of specific heats
	Cp    float64 // J/(kg K)
	R     float64 // specific gas constant, J/(kg K)
}

// NewPerfectGas returns the perfect gas with the given gamma and cp.
func NewPerfectGas(gamma, cp float64) PerfectGas {
	return PerfectGas{Gamma: gamma, Cp: cp, R: cp * (gamma - 1) / gamma}
}

// ChamberConditions holds the combustion chamber stagnation state.
type ChamberConditions struct {
	P0       float64 // stagnation pressure, Pa
	T0       float64 // stagnation temperature, K
	MassFlow float64 // kg/s
}

// TAtMach returns the static temperature at Mach M for stagnation T0.
func (g PerfectGas) TAtMach(T0, M float64) float64 {
	return T0 / (1 + (g.Gamma-1)/2*M*M)
}

// PAtMach returns the static pressure at Mach M for stagnation P0.
func (g PerfectGas) PAtMach(P0, M float64) float64 {
	return P0 * math.Pow(1+(g.Gamma-1)/2*M*M, -g.Gamma/(g.Gamma-1))
}

// AreaRatioAtMach returns A/A* at Mach M.
func (g PerfectGas) AreaRatioAtMach(M float64) float64 {
	gp := g.Gamma + 1
	gm := g.Gamma - 1
	return 1 / M * math.Pow(2/gp*(1+gm/2*M*M), gp/(2*gm))
}

// MachAtAreaRatio inverts the area-Mach relation on the requested branch.
// The subsonic branch serves the chamber and converging section, the
// supersonic branch the diverging section.
func (g PerfectGas) MachAtAreaRatio(areaRatio float64, supersonic bool) (float64, error) {
	if areaRatio < 1 {
		return 0, fmt.Errorf("gas: area ratio %g below unity", areaRatio)
	}
	if areaRatio == 1 {
		return 1, nil
	}
	lo, hi := 1e-6, 1.0
	if supersonic {
		lo, hi = 1.0, 50.0
	}
	return bisection(func(M float64) float64 {
		return g.AreaRatioAtMach(M) - areaRatio
	}, lo, hi, 1e-10)
}

// MachAtPressureRatio returns the Mach number where p/p0 reaches the given
// ratio (supersonic expansion).
func (g PerfectGas) MachAtPressureRatio(pOverP0 float64) float64 {
	return math.Sqrt(2 / (g.Gamma - 1) * (math.Pow(pOverP0, -(g.Gamma-1)/g.Gamma) - 1))
}

// ChokedThroatArea returns the throat area that passes mdot at chamber
// stagnation conditions.
func (g PerfectGas) ChokedThroatArea(chamber ChamberConditions) float64 {
	return chamber.MassFlow * math.Sqrt(chamber.T0) / (chamber.P0 * g.fluxFunction())
}

// ChokedMassFlow returns the mass flow through throat area At at chamber
// stagnation conditions.
func (g PerfectGas) ChokedMassFlow(At float64, chamber ChamberConditions) float64 {
	return chamber.P0 * At * g.fluxFunction() / math.Sqrt(chamber.T0)
}

// fluxFunction is sqrt(gamma/R) (2/(gamma+1))^((gamma+1)/(2(gamma-1))).
func (g PerfectGas) fluxFunction() float64 {
	gp := g.Gamma + 1
	gm := g.Gamma - 1
	return math.Sqrt(g.Gamma/g.R) * math.Pow(2/gp, gp/(2*gm))
}

// CStar returns the characteristic velocity for stagnation temperature T0.
func (g PerfectGas) CStar(T0 float64) float64 {
	return math.Sqrt(T0) / g.fluxFunction()
}

// ExhaustVelocity returns the exhaust velocity when expanding from T0 down to
// the static-to-stagnation pressure ratio pOverP0.
func (g PerfectGas) ExhaustVelocity(T0, pOverP0 float64) float64 {
	return math.Sqrt(2 * g.Cp * T0 * (1 - math.Pow(pOverP0, (g.Gamma-1)/g.Gamma)))
}
