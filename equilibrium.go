package whitedwarf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// PropellantMass pairs a propellant with its mass weight in the mixture.
// Weights are relative and need not sum to one (an oxidizer/fuel ratio of 3.5
// is expressed as fuel weights summing to 1 and an oxidizer weight of 3.5).
type PropellantMass struct {
	Propellant Propellant
	Mass       float64
}

// EquilibriumProperties holds the solved combustion state.
type EquilibriumProperties struct {
	T         float64 // adiabatic flame temperature, K
	Cp        float64 // frozen specific heat of the products, J/(kg K)
	Gamma     float64 // frozen ratio of specific heats
	MolarMass float64 // mean molar mass of the products, kg/mol
}

// Equilibrium runs an adiabatic constant-pressure combustion solve over the
// major-product set {CO2, CO, H2O, H2, N2, O2}. Fuel-rich mixtures split the
// oxygen deficit between CO and H2 with a water-gas shift approximation;
// dissociation into minor species is not modeled, so flame temperatures run a
// little hot compared to a full equilibrium code.
type Equilibrium struct {
	ingredients []PropellantMass
	totalMass   float64

	// P is the chamber pressure of the last solve, Pa.
	P float64
	// Properties of the solved state.
	Properties EquilibriumProperties
	// Composition maps product species to mole fractions.
	Composition map[string]float64

	moles  map[string]float64 // mol per kg of mixture
	solved bool
}

// NewEquilibrium returns an empty equilibrium ready for propellants.
func NewEquilibrium() *Equilibrium {
	return &Equilibrium{Composition: make(map[string]float64), moles: make(map[string]float64)}
}

// AddPropellantsByMass adds propellants with relative mass weights.
func (e *Equilibrium) AddPropellantsByMass(props []PropellantMass) {
	for _, pm := range props {
		if pm.Mass <= 0 {
			continue
		}
		e.ingredients = append(e.ingredients, pm)
		e.totalMass += pm.Mass
	}
	e.solved = false
}

// elementInventory returns the C, H, O, N mole inventory per kg of mixture
// and the reactant enthalpy in J per kg.
func (e *Equilibrium) elementInventory() (c, h, o, n, hReact float64) {
	for _, pm := range e.ingredients {
		molPerKg := pm.Mass / e.totalMass * pm.Propellant.MolesPerKg()
		c += molPerKg * float64(pm.Propellant.C)
		h += molPerKg * float64(pm.Propellant.H)
		o += molPerKg * float64(pm.Propellant.O)
		n += molPerKg * float64(pm.Propellant.N)
		hReact += molPerKg * pm.Propellant.Hf
	}
	return
}

// SetStateHP solves the constant-enthalpy, constant-pressure combustion state
// at chamber pressure p (Pa).
func (e *Equilibrium) SetStateHP(p float64) error {
	if len(e.ingredients) == 0 {
		return fmt.Errorf("equilibrium: no propellants added")
	}
	if p <= 0 {
		return fmt.Errorf("equilibrium: non-positive chamber pressure %g Pa", p)
	}
	c, h, o, n, hReact := e.elementInventory()
	if o < c {
		return fmt.Errorf("equilibrium: mixture too fuel rich (O=%.1f mol/kg < C=%.1f mol/kg)", o, c)
	}

	// The flame temperature and the rich product split depend on each other
	// through the shift constant, so solve them together.
	T, err := bisection(func(T float64) float64 {
		moles, err := productSplit(c, h, o, n, T)
		if err != nil {
			return math.NaN()
		}
		return productEnthalpy(moles, T) - hReact
	}, 350, 6000, 1e-3)
	if err != nil {
		return fmt.Errorf("equilibrium: flame temperature solve failed: %s", err)
	}
	moles, err := productSplit(c, h, o, n, T)
	if err != nil {
		return err
	}

	var totalMol, cpMolar float64
	for _, nm := range moles {
		totalMol += nm
	}
	e.Composition = make(map[string]float64, len(moles))
	e.moles = moles
	for name, nm := range moles {
		e.Composition[name] = nm / totalMol
		cpMolar += nm / totalMol * ProductSpecies[name].CpMolar(T)
	}
	mMix := 1 / totalMol // kg of mixture per mol of products
	cpMass := cpMolar / mMix
	rSpecific := Ru / mMix

	e.P = p
	e.Properties = EquilibriumProperties{
		T:         T,
		Cp:        cpMass,
		Gamma:     cpMass / (cpMass - rSpecific),
		MolarMass: mMix,
	}
	e.solved = true
	return nil
}

// Gas returns the perfect-gas model of the solved combustion products.
func (e *Equilibrium) Gas() (PerfectGas, error) {
	if !e.solved {
		return PerfectGas{}, fmt.Errorf("equilibrium: SetStateHP has not been run")
	}
	return NewPerfectGas(e.Properties.Gamma, e.Properties.Cp), nil
}

// productSplit distributes the element inventory (mol per kg) over the
// product set at temperature T and returns moles per kg of mixture.
func productSplit(c, h, o, n, T float64) (map[string]float64, error) {
	oNeeded := 2*c + h/2
	moles := map[string]float64{"N2": n / 2}
	if o >= oNeeded {
		// Lean or stoichiometric: full oxidation plus excess O2. The element
		// balance is a small linear system; unknowns are CO2, H2O, O2.
		A := mat.NewDense(3, 3, []float64{
			1, 0, 0, // C
			0, 2, 0, // H
			2, 1, 2, // O
		})
		b := mat.NewVecDense(3, []float64{c, h, o})
		var x mat.VecDense
		if err := x.SolveVec(A, b); err != nil {
			return nil, fmt.Errorf("equilibrium: element balance is singular: %s", err)
		}
		moles["CO2"] = x.AtVec(0)
		moles["H2O"] = x.AtVec(1)
		moles["O2"] = x.AtVec(2)
		return moles, nil
	}

	// Rich: split the deficit between CO and H2 with the water-gas shift
	// constant K = [CO2][H2]/([CO][H2O]), ln K fitted to 4577.8/T - 4.33.
	K := math.Exp(4577.8/T - 4.33)
	q := h/2 - o + 2*c
	pp := o - 2*c
	// (1-K) b^2 - (c + q + K pp) b + c q = 0 with b = moles of CO.
	aQ := 1 - K
	bQ := -(c + q + K*pp)
	cQ := c * q
	var b float64
	if math.Abs(aQ) < 1e-12 {
		b = -cQ / bQ
	} else {
		disc := bQ*bQ - 4*aQ*cQ
		if disc < 0 {
			return nil, fmt.Errorf("equilibrium: no physical rich product split at T=%.0f K", T)
		}
		r1 := (-bQ + math.Sqrt(disc)) / (2 * aQ)
		r2 := (-bQ - math.Sqrt(disc)) / (2 * aQ)
		b = r1
		if !richSplitValid(c, h, o, r1) || (richSplitValid(c, h, o, r2) && r2 < r1) {
			b = r2
		}
	}
	if !richSplitValid(c, h, o, b) {
		return nil, fmt.Errorf("equilibrium: no physical rich product split at T=%.0f K", T)
	}
	moles["CO"] = b
	moles["CO2"] = c - b
	moles["H2O"] = o - 2*(c-b) - b
	moles["H2"] = h/2 - moles["H2O"]
	return moles, nil
}

// richSplitValid reports whether CO moles b give non-negative products.
func richSplitValid(c, h, o, b float64) bool {
	const tol = -1e-9
	co2 := c - b
	h2o := o - 2*co2 - b
	h2 := h/2 - h2o
	return b >= tol && co2 >= tol && h2o >= tol && h2 >= tol
}

// productEnthalpy sums product enthalpies (J per kg of mixture) at T.
func productEnthalpy(moles map[string]float64, T float64) float64 {
	var sum float64
	for name, nm := range moles {
		sum += nm * ProductSpecies[name].EnthalpyMolar(T)
	}
	return sum
}
