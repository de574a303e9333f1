package whitedwarf

import (
	"fmt"
	"math"
)

// TransportProperties supplies the fluid properties the heat transfer
// correlations need. Implementations are phase-specific: GasMixture for the
// exhaust, CoolantMixture for the jacket liquid.
type TransportProperties interface {
	Density(T, p float64) float64      // kg/m^3
	Viscosity(T, p float64) float64    // Pa s
	Conductivity(T, p float64) float64 // W/(m K)
	SpecificHeat(T, p float64) float64 // J/(kg K)
	Prandtl(T, p float64) float64
}

// GasMixture models the exhaust transport properties from the equilibrium
// composition: Sutherland viscosity per species, modified Eucken
// conductivity, Herning-Zipperer mixing, ideal-gas density.
type GasMixture struct {
	species   []Species
	moleFracs []float64
	molarMass float64 // kg/mol
}

// NewGasMixture builds a gas mixture from species names and mole fractions.
// Fractions are normalized, so unscaled equilibrium composition reads are
// fine to pass straight through.
func NewGasMixture(names []string, moleFracs []float64) (*GasMixture, error) {
	if len(names) != len(moleFracs) || len(names) == 0 {
		return nil, fmt.Errorf("gas mixture: %d names for %d fractions", len(names), len(moleFracs))
	}
	g := &GasMixture{}
	var total float64
	for i, name := range names {
		sp, err := SpeciesFromName(name)
		if err != nil {
			return nil, err
		}
		if moleFracs[i] < 0 {
			return nil, fmt.Errorf("gas mixture: negative mole fraction for %s", name)
		}
		g.species = append(g.species, sp)
		g.moleFracs = append(g.moleFracs, moleFracs[i])
		total += moleFracs[i]
	}
	if total <= 0 {
		return nil, fmt.Errorf("gas mixture: all mole fractions are zero")
	}
	for i := range g.moleFracs {
		g.moleFracs[i] /= total
		g.molarMass += g.moleFracs[i] * g.species[i].MolarMass
	}
	return g, nil
}

// NewGasMixtureFromEquilibrium builds the mixture from a solved equilibrium,
// keeping the major radiating/transport species the way the historic scripts
// did (N2, H2O, CO2) plus whatever else the solve produced.
func NewGasMixtureFromEquilibrium(e *Equilibrium) (*GasMixture, error) {
	var names []string
	var fracs []float64
	for name, x := range e.Composition {
		if x <= 0 {
			continue
		}
		names = append(names, name)
		fracs = append(fracs, x)
	}
	return NewGasMixture(names, fracs)
}

// Density implements TransportProperties via the ideal gas law.
func (g *GasMixture) Density(T, p float64) float64 {
	return p * g.molarMass / (Ru * T)
}

// Viscosity implements TransportProperties.
func (g *GasMixture) Viscosity(T, p float64) float64 {
	var num, den float64
	for i, sp := range g.species {
		w := g.moleFracs[i] * math.Sqrt(sp.MolarMass)
		num += w * sp.Viscosity(T)
		den += w
	}
	return num / den
}

// Conductivity implements TransportProperties.
func (g *GasMixture) Conductivity(T, p float64) float64 {
	var num, den float64
	for i, sp := range g.species {
		w := g.moleFracs[i] * math.Sqrt(sp.MolarMass)
		num += w * sp.Conductivity(T)
		den += w
	}
	return num / den
}

// SpecificHeat implements TransportProperties.
func (g *GasMixture) SpecificHeat(T, p float64) float64 {
	var cpMolar float64
	for i, sp := range g.species {
		cpMolar += g.moleFracs[i] * sp.CpMolar(T)
	}
	return cpMolar / g.molarMass
}

// Prandtl implements TransportProperties.
func (g *GasMixture) Prandtl(T, p float64) float64 {
	return g.SpecificHeat(T, p) * g.Viscosity(T, p) / g.Conductivity(T, p)
}

// liquid holds correlation fits for one coolant component. Temperatures in
// K, outputs in SI. The fits cover roughly 273-450 K.
type liquid struct {
	name    string
	density func(T float64) float64
	visc    func(T float64) float64
	conduct func(T float64) float64
	cp      func(T float64) float64
	// Antoine constants for log10(psat[bar]) = A - B/(T + C).
	antoineA, antoineB, antoineC float64
}

var liquids = map[string]liquid{
	"water": {
		name:    "water",
		density: func(T float64) float64 { return 765.33 + 1.8142*T - 0.0035*T*T },
		visc:    func(T float64) float64 { return 2.414e-5 * math.Pow(10, 247.8/(T-140)) },
		conduct: func(T float64) float64 { return -0.5752 + 6.397e-3*T - 8.151e-6*T*T },
		cp:      func(T float64) float64 { return 4181 },
		antoineA: 4.6543, antoineB: 1435.264, antoineC: -64.848,
	},
	"isopropanol": {
		name:    "isopropanol",
		density: func(T float64) float64 { return 1022 - 0.805*T },
		visc:    func(T float64) float64 { return math.Exp(-14.61 + 2507/T) },
		conduct: func(T float64) float64 { return 0.17 - 1.17e-4*T },
		cp:      func(T float64) float64 { return 970 + 5.72*T },
		antoineA: 4.8610, antoineB: 1357.427, antoineC: -75.814,
	},
}

// CoolantMixture models a liquid blend by mass fractions with simple mixing
// rules (volume-additive density, mass-weighted cp and conductivity,
// log-blended viscosity).
type CoolantMixture struct {
	components []liquid
	massFracs  []float64
}

// NewCoolantMixture builds a liquid blend from component names and mass
// fractions. Fractions are normalized.
func NewCoolantMixture(names []string, massFracs []float64) (*CoolantMixture, error) {
	if len(names) != len(massFracs) || len(names) == 0 {
		return nil, fmt.Errorf("coolant mixture: %d names for %d fractions", len(names), len(massFracs))
	}
	c := &CoolantMixture{}
	var total float64
	for i, name := range names {
		lq, found := liquids[name]
		if !found {
			return nil, fmt.Errorf("coolant mixture: unknown liquid `%s`", name)
		}
		if massFracs[i] < 0 {
			return nil, fmt.Errorf("coolant mixture: negative mass fraction for %s", name)
		}
		c.components = append(c.components, lq)
		c.massFracs = append(c.massFracs, massFracs[i])
		total += massFracs[i]
	}
	if total <= 0 {
		return nil, fmt.Errorf("coolant mixture: all mass fractions are zero")
	}
	for i := range c.massFracs {
		c.massFracs[i] /= total
	}
	return c, nil
}

// Density implements TransportProperties.
func (c *CoolantMixture) Density(T, p float64) float64 {
	var vol float64
	for i, lq := range c.components {
		vol += c.massFracs[i] / lq.density(T)
	}
	return 1 / vol
}

// Viscosity implements TransportProperties.
func (c *CoolantMixture) Viscosity(T, p float64) float64 {
	var lnMu float64
	for i, lq := range c.components {
		lnMu += c.massFracs[i] * math.Log(lq.visc(T))
	}
	return math.Exp(lnMu)
}

// Conductivity implements TransportProperties.
func (c *CoolantMixture) Conductivity(T, p float64) float64 {
	var k float64
	for i, lq := range c.components {
		k += c.massFracs[i] * lq.conduct(T)
	}
	return k
}

// SpecificHeat implements TransportProperties.
func (c *CoolantMixture) SpecificHeat(T, p float64) float64 {
	var cp float64
	for i, lq := range c.components {
		cp += c.massFracs[i] * lq.cp(T)
	}
	return cp
}

// Prandtl implements TransportProperties.
func (c *CoolantMixture) Prandtl(T, p float64) float64 {
	return c.SpecificHeat(T, p) * c.Viscosity(T, p) / c.Conductivity(T, p)
}

// SaturationTemperature returns the boiling point of the most volatile
// component at pressure p, the conservative bound for boiling warnings.
func (c *CoolantMixture) SaturationTemperature(p float64) float64 {
	tSat := math.Inf(1)
	pBar := p / 1e5
	for _, lq := range c.components {
		t := lq.antoineB/(lq.antoineA-math.Log10(pBar)) - lq.antoineC
		if t < tSat {
			tSat = t
		}
	}
	return tSat
}
