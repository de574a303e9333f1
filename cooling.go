package whitedwarf

import (
	"fmt"
	"math"
)

// CoolingConfiguration selects the channel layout around the liner.
type CoolingConfiguration uint8

const (
	// Vertical channels run axially as an annular gap around the liner.
	Vertical CoolingConfiguration = iota
	// Spiral is a single rectangular channel wound around the liner.
	Spiral
)

func (c CoolingConfiguration) String() string {
	switch c {
	case Vertical:
		return "vertical"
	case Spiral:
		return "spiral"
	default:
		panic("unknown cooling configuration")
	}
}

// CoolingConfigurationFromString parses a scenario configuration name.
func CoolingConfigurationFromString(s string) (CoolingConfiguration, error) {
	switch s {
	case "vertical":
		return Vertical, nil
	case "spiral":
		return Spiral, nil
	default:
		return Vertical, fmt.Errorf("unknown cooling configuration `%s`", s)
	}
}

// CoolingJacket describes the coolant circuit around the engine wall.
// Coolant enters at the nozzle exit and flows counter to the exhaust.
type CoolingJacket struct {
	Material      Material
	InletT        float64 // K
	InletP0       float64 // tank stagnation pressure, Pa
	Transport     TransportProperties
	MassFlow      float64 // kg/s
	Configuration CoolingConfiguration
	ChannelHeight float64 // radial gap, m
	ChannelWidth  float64 // spiral channels only, m
	// BlockageRatio is the fraction of the vertical annulus taken up by
	// ribs. Zero means an open annulus.
	BlockageRatio float64
}

// Validate checks the jacket is fully specified.
func (j CoolingJacket) Validate() error {
	if j.Transport == nil {
		return fmt.Errorf("cooling jacket: no coolant transport properties")
	}
	if j.ChannelHeight <= 0 {
		return fmt.Errorf("cooling jacket: channel height %g m", j.ChannelHeight)
	}
	if j.Configuration == Spiral && j.ChannelWidth <= 0 {
		return fmt.Errorf("cooling jacket: spiral configuration needs a channel width")
	}
	if j.MassFlow <= 0 {
		return fmt.Errorf("cooling jacket: coolant mass flow %g kg/s", j.MassFlow)
	}
	if j.BlockageRatio < 0 || j.BlockageRatio >= 1 {
		return fmt.Errorf("cooling jacket: blockage ratio %g outside [0, 1)", j.BlockageRatio)
	}
	return nil
}

// FlowArea returns the coolant flow area at liner outer radius r.
func (j CoolingJacket) FlowArea(r float64) float64 {
	switch j.Configuration {
	case Vertical:
		h := j.ChannelHeight
		return math.Pi * ((r+h)*(r+h) - r*r) * (1 - j.BlockageRatio)
	case Spiral:
		return j.ChannelWidth * j.ChannelHeight
	default:
		panic("unknown cooling configuration")
	}
}

// HydraulicDiameter returns the channel hydraulic diameter at liner outer
// radius r.
func (j CoolingJacket) HydraulicDiameter(r float64) float64 {
	switch j.Configuration {
	case Vertical:
		// Annular gap: Dh = D_out - D_in = 2h.
		return 2 * j.ChannelHeight
	case Spiral:
		return 2 * j.ChannelWidth * j.ChannelHeight / (j.ChannelWidth + j.ChannelHeight)
	default:
		panic("unknown cooling configuration")
	}
}

// Velocity returns the bulk coolant velocity at liner outer radius r for
// coolant density rho.
func (j CoolingJacket) Velocity(rho, r float64) float64 {
	return j.MassFlow / (rho * j.FlowArea(r))
}

// Ablative is a sacrificial insert between the combustion gas and the liner.
type Ablative struct {
	Material       Material
	RegressionRate float64 // m/s, surface recession while firing
	Thickness      float64 // m, as built
	// XMin and XMax bound the covered axial extent in engine coordinates.
	// The historic studies use a huge range to cover the full engine.
	XMin, XMax float64
}

// ThicknessAt returns the insert thickness at x after burnTime seconds of
// regression, never below zero.
func (a Ablative) ThicknessAt(x, burnTime float64) float64 {
	if x < a.XMin || x > a.XMax {
		return 0
	}
	t := a.Thickness - a.RegressionRate*burnTime
	if t < 0 {
		return 0
	}
	return t
}
