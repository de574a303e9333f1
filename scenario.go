package whitedwarf

import (
	"fmt"

	"github.com/spf13/viper"
)

// Scenario is a TOML-defined engine and sweep description, the input format
// of the sweep tools.
type Scenario struct {
	FilePrefix string
	Verbose    bool

	// Chamber and flow.
	ChamberPressure float64 // Pa
	ChamberArea     float64 // m^2
	LStar           float64 // m, chamber volume over throat area
	WallThickness   float64 // m
	MassFlow        float64 // kg/s, total propellant
	OFRatio         float64 // oxidizer to fuel, by mass
	AmbientPressure float64 // Pa

	// Propellants.
	FuelName          string
	OxidizerName      string
	WaterMassFraction float64 // of the fuel, by mass

	// Nozzle.
	NozzleType     NozzleType
	LengthFraction float64

	// Cooling circuit.
	InletT        float64 // K
	TankPressure  float64 // Pa
	WallMaterial  Material
	CoolingConfig CoolingConfiguration
	ChannelHeight float64 // m, fixed height (the channel sweep overrides it)
	ChannelWidth  float64 // m, spiral only

	// Optional ablative insert.
	Ablative *Ablative

	// Sweep definition.
	SweepFrom, SweepUntil float64
	SweepPoints           int
	Stations              int
}

// LoadScenario reads <name>.toml from the working directory.
func LoadScenario(name string) (*Scenario, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(name)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("./%s.toml not found: %s", name, err)
	}

	s := &Scenario{
		FilePrefix:        v.GetString("general.fileprefix"),
		Verbose:           v.GetBool("general.verbose"),
		ChamberPressure:   v.GetFloat64("chamber.pressure"),
		ChamberArea:       v.GetFloat64("chamber.area"),
		LStar:             v.GetFloat64("chamber.l_star"),
		WallThickness:     v.GetFloat64("chamber.wall_thickness"),
		MassFlow:          v.GetFloat64("chamber.mass_flow"),
		OFRatio:           v.GetFloat64("chamber.of_ratio"),
		AmbientPressure:   v.GetFloat64("chamber.ambient_pressure"),
		FuelName:          v.GetString("propellants.fuel"),
		OxidizerName:      v.GetString("propellants.oxidizer"),
		WaterMassFraction: v.GetFloat64("propellants.water_mass_fraction"),
		LengthFraction:    v.GetFloat64("nozzle.length_fraction"),
		InletT:            v.GetFloat64("cooling.inlet_temperature"),
		TankPressure:      v.GetFloat64("cooling.tank_pressure"),
		ChannelHeight:     v.GetFloat64("cooling.channel_height"),
		ChannelWidth:      v.GetFloat64("cooling.channel_width"),
		SweepFrom:         v.GetFloat64("sweep.from"),
		SweepUntil:        v.GetFloat64("sweep.until"),
		SweepPoints:       v.GetInt("sweep.points"),
		Stations:          v.GetInt("sweep.stations"),
	}
	if s.FilePrefix == "" {
		s.FilePrefix = name
	}
	if s.AmbientPressure == 0 {
		s.AmbientPressure = AtmPressure
	}
	if s.SweepPoints == 0 {
		s.SweepPoints = 20
	}
	if s.Stations == 0 {
		s.Stations = 250
	}

	var err error
	if s.NozzleType, err = NozzleTypeFromString(v.GetString("nozzle.type")); err != nil {
		return nil, err
	}
	if s.WallMaterial, err = MaterialFromString(v.GetString("cooling.wall_material")); err != nil {
		return nil, err
	}
	cfg := v.GetString("cooling.configuration")
	if cfg == "" {
		cfg = "vertical"
	}
	if s.CoolingConfig, err = CoolingConfigurationFromString(cfg); err != nil {
		return nil, err
	}
	if v.GetBool("ablative.enabled") {
		mat, err := MaterialFromString(v.GetString("ablative.material"))
		if err != nil {
			return nil, err
		}
		thickness := v.GetFloat64("ablative.thickness")
		if thickness == 0 {
			thickness = 5e-3
		}
		s.Ablative = &Ablative{
			Material:       mat,
			RegressionRate: v.GetFloat64("ablative.regression_rate"),
			Thickness:      thickness,
			XMin:           -100,
			XMax:           100,
		}
	}
	return s, nil
}

// BuildEngine assembles the engine for the given fuel and water mass weights
// (relative to an oxidizer weight of OFRatio), and returns the coolant
// transport model for the matching fuel blend.
func (s *Scenario) BuildEngine(fuelWeight, waterWeight float64) (*Engine, *CoolantMixture, error) {
	fuel, err := PropellantFromName(s.FuelName)
	if err != nil {
		return nil, nil, err
	}
	oxidizer, err := PropellantFromName(s.OxidizerName)
	if err != nil {
		return nil, nil, err
	}
	water := Propellants["WATER"]

	eq := NewEquilibrium()
	eq.AddPropellantsByMass([]PropellantMass{
		{fuel, fuelWeight},
		{water, waterWeight},
		{oxidizer, s.OFRatio},
	})
	if err := eq.SetStateHP(s.ChamberPressure); err != nil {
		return nil, nil, err
	}
	gas, err := eq.Gas()
	if err != nil {
		return nil, nil, err
	}
	gasTransport, err := NewGasMixtureFromEquilibrium(eq)
	if err != nil {
		return nil, nil, err
	}
	waterFrac := waterWeight / (fuelWeight + waterWeight)
	coolant, err := NewCoolantMixture([]string{"isopropanol", "water"}, []float64{1 - waterFrac, waterFrac})
	if err != nil {
		return nil, nil, err
	}

	chamber := ChamberConditions{P0: s.ChamberPressure, T0: eq.Properties.T, MassFlow: s.MassFlow}
	nozzle, err := NewNozzleFromEngineComponents(gas, chamber, s.AmbientPressure, s.NozzleType, s.LengthFraction)
	if err != nil {
		return nil, nil, err
	}
	eng := NewEngine(s.FilePrefix, gas, chamber, nozzle)
	chamberLength := s.LStar * nozzle.At / s.ChamberArea
	if err := eng.AddGeometry(chamberLength, s.ChamberArea, s.WallThickness); err != nil {
		return nil, nil, err
	}
	eng.AddExhaustTransport(gasTransport)
	if s.Ablative != nil {
		eng.AddAblative(*s.Ablative)
	}
	return eng, coolant, nil
}

// Jacket returns the cooling jacket for the given channel height and coolant
// model. Coolant mass flow is the fuel share of the total flow.
func (s *Scenario) Jacket(channelHeight float64, coolant TransportProperties) CoolingJacket {
	return CoolingJacket{
		Material:      s.WallMaterial,
		InletT:        s.InletT,
		InletP0:       s.TankPressure,
		Transport:     coolant,
		MassFlow:      s.MassFlow / (s.OFRatio + 1),
		Configuration: s.CoolingConfig,
		ChannelHeight: channelHeight,
		ChannelWidth:  s.ChannelWidth,
	}
}
