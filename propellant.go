package whitedwarf

import "fmt"

// Propellant defines a liquid or gaseous propellant by its elemental makeup
// and standard enthalpy of formation at 298.15 K in its stored phase.
type Propellant struct {
	Name      string
	C, H, O, N int     // atoms per molecule
	MolarMass float64 // kg/mol
	Hf        float64 // J/mol, stored phase at 298.15 K
	Density   float64 // kg/m^3, stored phase (0 when not applicable)
}

/* Available propellants, keyed by the display names the historic propellant
files use. */

// Propellants is the built-in propellant catalog.
var Propellants = map[string]Propellant{
	"ISOPROPYL ALCOHOL": {Name: "ISOPROPYL ALCOHOL", C: 3, H: 8, O: 1, MolarMass: 60.096e-3, Hf: -318.1e3, Density: 786},
	"WATER":             {Name: "WATER", H: 2, O: 1, MolarMass: 18.01528e-3, Hf: -285.83e3, Density: 997},
	"NITROUS OXIDE":     {Name: "NITROUS OXIDE", O: 1, N: 2, MolarMass: 44.0128e-3, Hf: 82.05e3, Density: 1220},
	"ETHANOL":           {Name: "ETHANOL", C: 2, H: 6, O: 1, MolarMass: 46.069e-3, Hf: -277.69e3, Density: 789},
	"METHANE":           {Name: "METHANE", C: 1, H: 4, MolarMass: 16.0425e-3, Hf: -74.87e3, Density: 422.6},
	"OXYGEN (LIQUID)":   {Name: "OXYGEN (LIQUID)", O: 2, MolarMass: 31.9988e-3, Hf: -12.979e3, Density: 1141},
}

// PropellantFromName returns the catalog propellant of that name.
func PropellantFromName(name string) (Propellant, error) {
	if p, found := Propellants[name]; found {
		return p, nil
	}
	return Propellant{}, fmt.Errorf("unknown propellant `%s`", name)
}

// MolesPerKg returns how many moles one kilogram of this propellant holds.
func (p Propellant) MolesPerKg() float64 {
	return 1 / p.MolarMass
}
