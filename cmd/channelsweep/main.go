package main

import (
	"flag"
	"log"
	"os"

	kitlog "github.com/go-kit/kit/log"

	"github.com/dug20/whitedwarf"
)

const defaultScenario = "~~unset~~"

var scenario string

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML defining the engine and the channel height sweep")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	sc, err := whitedwarf.LoadScenario(scenario)
	if err != nil {
		log.Fatal(err)
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "sweep", "channel-height", "scenario", scenario)

	// One engine for the whole sweep: only the jacket changes per point.
	wf := sc.WaterMassFraction
	eng, coolant, err := sc.BuildEngine(1-wf, wf)
	if err != nil {
		log.Fatal(err)
	}
	thrust, err := eng.Thrust(whitedwarf.AtmPressure)
	if err != nil {
		log.Fatal(err)
	}
	isp, err := eng.Isp(whitedwarf.AtmPressure)
	if err != nil {
		log.Fatal(err)
	}
	klog.Log("level", "info", "chamber T(K)", eng.Chamber.T0, "sea level thrust(kN)", thrust/1000, "sea level Isp(s)", isp)

	heights := whitedwarf.Linspace(sc.SweepFrom, sc.SweepUntil, sc.SweepPoints)
	maxInnerWallT := make([]float64, len(heights))
	pressureDrop := make([]float64, len(heights))
	heightsMM := make([]float64, len(heights))
	maxInnerWallC := make([]float64, len(heights))
	dropBar := make([]float64, len(heights))

	for i, h := range heights {
		if err := eng.AddCoolingJacket(sc.Jacket(h, coolant)); err != nil {
			log.Fatal(err)
		}
		data, err := eng.SteadyHeatingAnalysis(sc.Stations)
		if err != nil {
			log.Fatalf("analysis failed at channel height %g m: %s", h, err)
		}
		maxInnerWallT[i] = data.MaxTWallInner()
		pressureDrop[i] = data.PressureDrop()
		heightsMM[i] = h / 1e-3
		maxInnerWallC[i] = maxInnerWallT[i] - whitedwarf.ZeroCelsius
		dropBar[i] = pressureDrop[i] / 1e5
		if sc.Verbose {
			klog.Log("level", "info", "i", i, "height(mm)", heightsMM[i],
				"max T(K)", maxInnerWallT[i], "pressure drop(bar)", dropBar[i])
		}
	}

	csvPath, err := whitedwarf.WriteSweepCSV(sc.FilePrefix, []string{"channel_height", "max_T_wall_inner", "pressure_drop"},
		heights, maxInnerWallT, pressureDrop)
	if err != nil {
		log.Fatal(err)
	}
	pngPath, err := whitedwarf.SaveDualTrendPlot(
		"Vertical channels: liner temperature and coolant pressure drop",
		"Cooling channel height (mm)",
		sc.FilePrefix,
		whitedwarf.TrendSeries{Label: "Temperature (°C)", YLabel: "Maximum inner liner temperature (°C)", X: heightsMM, Y: maxInnerWallC},
		whitedwarf.TrendSeries{Label: "Pressure drop (bar)", YLabel: "Pressure drop (bar)", X: heightsMM, Y: dropBar},
	)
	if err != nil {
		log.Fatal(err)
	}
	klog.Log("level", "notice", "status", "finished", "csv", csvPath, "plot", pngPath)
}
