package whitedwarf

import "fmt"

// Material holds the wall material properties the thermal circuit needs.
type Material struct {
	Name         string
	Conductivity float64 // W/(m K)
	Density      float64 // kg/m^3
	MaxService   float64 // K, advisory service ceiling
}

/* Available wall and insert materials */

// CopperC700 is the CuCr1Zr chamber liner alloy.
var CopperC700 = Material{Name: "Copper C700", Conductivity: 211, Density: 8940, MaxService: 1000}

// Graphite is an extruded ablative insert grade.
var Graphite = Material{Name: "Graphite", Conductivity: 63, Density: 1730, MaxService: 3500}

// StainlessSteel304 is a common jacket structural steel.
var StainlessSteel304 = Material{Name: "Stainless steel 304", Conductivity: 16.2, Density: 7900, MaxService: 1150}

// Inconel718 is a nickel superalloy for hotter liners.
var Inconel718 = Material{Name: "Inconel 718", Conductivity: 11.4, Density: 8190, MaxService: 1300}

// MaterialFromString returns the catalog material for a scenario key.
func MaterialFromString(name string) (Material, error) {
	switch name {
	case "CopperC700":
		return CopperC700, nil
	case "Graphite":
		return Graphite, nil
	case "StainlessSteel304":
		return StainlessSteel304, nil
	case "Inconel718":
		return Inconel718, nil
	default:
		return Material{}, fmt.Errorf("unknown material `%s`", name)
	}
}
