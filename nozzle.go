package whitedwarf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// NozzleType selects the diverging contour construction.
type NozzleType uint8

const (
	// RaoBell is the thrust-optimized parabolic bell approximation.
	RaoBell NozzleType = iota
	// Conical is a 15 degree half-angle cone.
	Conical
)

func (t NozzleType) String() string {
	switch t {
	case RaoBell:
		return "rao"
	case Conical:
		return "conical"
	default:
		panic("unknown nozzle type")
	}
}

// NozzleTypeFromString parses a scenario nozzle type.
func NozzleTypeFromString(s string) (NozzleType, error) {
	switch s {
	case "rao", "bell":
		return RaoBell, nil
	case "conical", "cone":
		return Conical, nil
	default:
		return RaoBell, fmt.Errorf("unknown nozzle type `%s`", s)
	}
}

const conicalHalfAngle = 15 * math.Pi / 180

// Rao inflection and exit angles for an 80%-length bell, tabulated against
// area ratio. Scenario area ratios outside the table are clamped to its ends.
var (
	raoAreaRatios = []float64{4, 5, 10, 20, 30, 40, 50}
	raoThetaN     = []float64{21.5, 23.0, 26.3, 28.8, 30.0, 31.0, 31.5}
	raoThetaE     = []float64{14.0, 13.0, 11.0, 9.0, 8.5, 8.0, 7.5}
)

// Nozzle is the diverging section geometry, with x = 0 at the throat plane
// and x = Length at the exit plane.
type Nozzle struct {
	Type           NozzleType
	Rt, Re         float64 // throat and exit radii, m
	At, Ae         float64 // throat and exit areas, m^2
	Length         float64 // throat to exit, m
	LengthFraction float64 // bell length as a fraction of the 15 degree cone

	thetaN, thetaE float64 // bell angles, rad
	xN, rN         float64 // end of the throat arc / start of the parabola
	xQ, rQ         float64 // parabola control point
}

// NewNozzleFromEngineComponents sizes a nozzle for the given gas and chamber,
// expanded to ambient pressure pAmb at the exit plane.
func NewNozzleFromEngineComponents(gas PerfectGas, chamber ChamberConditions, pAmb float64, typ NozzleType, lengthFraction float64) (*Nozzle, error) {
	if pAmb <= 0 || pAmb >= chamber.P0 {
		return nil, fmt.Errorf("nozzle: ambient pressure %g Pa not below chamber pressure %g Pa", pAmb, chamber.P0)
	}
	if lengthFraction <= 0 {
		lengthFraction = 0.8
	}
	At := gas.ChokedThroatArea(chamber)
	Me := gas.MachAtPressureRatio(pAmb / chamber.P0)
	Ae := At * gas.AreaRatioAtMach(Me)
	n := &Nozzle{
		Type:           typ,
		Rt:             math.Sqrt(At / math.Pi),
		Re:             math.Sqrt(Ae / math.Pi),
		At:             At,
		Ae:             Ae,
		LengthFraction: lengthFraction,
	}
	coneLength := (n.Re - n.Rt) / math.Tan(conicalHalfAngle)
	if typ == Conical {
		n.Length = coneLength
		return n, nil
	}
	n.Length = lengthFraction * coneLength

	ar := clampToRange(n.Ae/n.At, raoAreaRatios[0], raoAreaRatios[len(raoAreaRatios)-1])
	var pl interp.PiecewiseLinear
	if err := pl.Fit(raoAreaRatios, raoThetaN); err != nil {
		return nil, fmt.Errorf("nozzle: bad theta_n table: %s", err)
	}
	n.thetaN = Deg2rad(pl.Predict(ar))
	if err := pl.Fit(raoAreaRatios, raoThetaE); err != nil {
		return nil, fmt.Errorf("nozzle: bad theta_e table: %s", err)
	}
	n.thetaE = Deg2rad(pl.Predict(ar))

	// Downstream throat arc of radius 0.382 Rt up to the inflection angle,
	// then a quadratic Bezier whose control point is the intersection of the
	// inflection and exit tangents.
	arcR := 0.382 * n.Rt
	n.xN = arcR * math.Sin(n.thetaN)
	n.rN = n.Rt + arcR*(1-math.Cos(n.thetaN))
	mN := math.Tan(n.thetaN)
	mE := math.Tan(n.thetaE)
	// rN + mN (x - xN) = Re + mE (x - Length)
	n.xQ = (n.Re - n.rN + mN*n.xN - mE*n.Length) / (mN - mE)
	n.rQ = n.rN + mN*(n.xQ-n.xN)
	return n, nil
}

// AreaRatio returns Ae/At.
func (n *Nozzle) AreaRatio() float64 {
	return n.Ae / n.At
}

// Radius returns the contour radius at axial position x in [0, Length].
func (n *Nozzle) Radius(x float64) float64 {
	if x <= 0 {
		return n.Rt
	}
	if x >= n.Length {
		return n.Re
	}
	if n.Type == Conical {
		return n.Rt + x*math.Tan(conicalHalfAngle)
	}
	arcR := 0.382 * n.Rt
	if x <= n.xN {
		return n.Rt + arcR*(1-math.Sqrt(1-(x/arcR)*(x/arcR)))
	}
	// Invert the Bezier x(t) for t, then evaluate r(t). x(t) is monotonic in
	// t so the bisection cannot miss.
	t, err := bisection(func(t float64) float64 {
		return n.bezier(t, n.xN, n.xQ, n.Length) - x
	}, 0, 1, 1e-12)
	if err != nil {
		panic(fmt.Errorf("nozzle: contour inversion failed at x=%g: %s", x, err))
	}
	return n.bezier(t, n.rN, n.rQ, n.Re)
}

// Area returns the flow area at axial position x.
func (n *Nozzle) Area(x float64) float64 {
	r := n.Radius(x)
	return math.Pi * r * r
}

func (n *Nozzle) bezier(t, p0, p1, p2 float64) float64 {
	u := 1 - t
	return u*u*p0 + 2*u*t*p1 + t*t*p2
}

func clampToRange(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
