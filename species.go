package whitedwarf

import (
	"fmt"
	"math"
)

// Species holds gas-phase thermochemical data for one combustion product.
// Heat capacity and enthalpy come from NASA 7-coefficient polynomials (two
// temperature ranges, break at 1000 K); enthalpy includes the enthalpy of
// formation per the NASA convention. Viscosity uses a Sutherland law fit.
type Species struct {
	Name      string
	MolarMass float64    // kg/mol
	low       [7]float64 // 300-1000 K
	high      [7]float64 // 1000-3500 K (extrapolated above)
	// Sutherland viscosity: muRef at TRef with constant S.
	muRef, tRef, sutherland float64
}

// CpMolar returns the molar heat capacity in J/(mol K) at temperature T.
func (s Species) CpMolar(T float64) float64 {
	a := s.coeffs(T)
	return Ru * (a[0] + T*(a[1]+T*(a[2]+T*(a[3]+T*a[4]))))
}

// EnthalpyMolar returns the molar enthalpy in J/mol at temperature T,
// including the enthalpy of formation.
func (s Species) EnthalpyMolar(T float64) float64 {
	a := s.coeffs(T)
	return Ru * T * (a[0] + T*(a[1]/2+T*(a[2]/3+T*(a[3]/4+T*a[4]/5))) + a[5]/T)
}

// Viscosity returns the dynamic viscosity in Pa s at temperature T.
func (s Species) Viscosity(T float64) float64 {
	return s.muRef * (s.tRef + s.sutherland) / (T + s.sutherland) * pow32(T/s.tRef)
}

// Conductivity estimates the thermal conductivity in W/(m K) at temperature T
// via the modified Eucken correlation.
func (s Species) Conductivity(T float64) float64 {
	cpMass := s.CpMolar(T) / s.MolarMass
	return s.Viscosity(T) * (cpMass + 1.25*Ru/s.MolarMass)
}

func (s Species) coeffs(T float64) [7]float64 {
	if T < 1000 {
		return s.low
	}
	return s.high
}

// pow32 computes x^1.5 without the generality of math.Pow.
func pow32(x float64) float64 {
	return x * math.Sqrt(x)
}

// ProductSpecies is the gas-phase product set the equilibrium solve
// distributes the element inventory over. Polynomials are the GRI-Mech 3.0
// fits; Sutherland constants from standard gas tables.
var ProductSpecies = map[string]Species{
	"CO2": {
		Name: "CO2", MolarMass: 44.0095e-3,
		low:  [7]float64{2.35677352, 8.98459677e-3, -7.12356269e-6, 2.45919022e-9, -1.43699548e-13, -48371.9697, 9.90105222},
		high: [7]float64{3.85746029, 4.41437026e-3, -2.21481404e-6, 5.23490188e-10, -4.72084164e-14, -48759.166, 2.27163806},
		muRef: 1.370e-5, tRef: 273.15, sutherland: 222,
	},
	"H2O": {
		Name: "H2O", MolarMass: 18.01528e-3,
		low:  [7]float64{4.19864056, -2.0364341e-3, 6.52040211e-6, -5.48797062e-9, 1.77197817e-12, -30293.7267, -0.849032208},
		high: [7]float64{3.03399249, 2.17691804e-3, -1.64072518e-7, -9.7041987e-11, 1.68200992e-14, -30004.2971, 4.9667701},
		muRef: 1.12e-5, tRef: 350, sutherland: 1064,
	},
	"N2": {
		Name: "N2", MolarMass: 28.0134e-3,
		low:  [7]float64{3.298677, 1.4082404e-3, -3.963222e-6, 5.641515e-9, -2.444854e-12, -1020.8999, 3.950372},
		high: [7]float64{2.92664, 1.4879768e-3, -5.68476e-7, 1.0097038e-10, -6.753351e-15, -922.7977, 5.980528},
		muRef: 1.663e-5, tRef: 273.15, sutherland: 107,
	},
	"O2": {
		Name: "O2", MolarMass: 31.9988e-3,
		low:  [7]float64{3.78245636, -2.99673416e-3, 9.84730201e-6, -9.68129509e-9, 3.24372837e-12, -1063.94356, 3.65767573},
		high: [7]float64{3.28253784, 1.48308754e-3, -7.57966669e-7, 2.09470555e-10, -2.16717794e-14, -1088.45772, 5.45323129},
		muRef: 1.919e-5, tRef: 273.15, sutherland: 139,
	},
	"CO": {
		Name: "CO", MolarMass: 28.0101e-3,
		low:  [7]float64{3.57953347, -6.1035368e-4, 1.01681433e-6, 9.07005884e-10, -9.04424499e-13, -14344.086, 3.50840928},
		high: [7]float64{2.71518561, 2.06252743e-3, -9.98825771e-7, 2.30053008e-10, -2.03647716e-14, -14151.8724, 7.81868772},
		muRef: 1.657e-5, tRef: 273.15, sutherland: 101,
	},
	"H2": {
		Name: "H2", MolarMass: 2.01588e-3,
		low:  [7]float64{2.34433112, 7.98052075e-3, -1.9478151e-5, 2.01572094e-8, -7.37611761e-12, -917.935173, 0.683010238},
		high: [7]float64{3.3372792, -4.94024731e-5, 4.99456778e-7, -1.79566394e-10, 2.00255376e-14, -950.158922, -3.20502331},
		muRef: 8.411e-6, tRef: 273.15, sutherland: 97,
	},
}

// SpeciesFromName returns the product species of that name.
func SpeciesFromName(name string) (Species, error) {
	if sp, found := ProductSpecies[name]; found {
		return sp, nil
	}
	return Species{}, fmt.Errorf("unknown product species `%s`", name)
}
