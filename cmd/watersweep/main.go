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
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML defining the engine and the water fraction sweep")
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
	klog = kitlog.With(klog, "sweep", "water-fraction", "scenario", scenario)

	fractions := whitedwarf.Linspace(sc.SweepFrom, sc.SweepUntil, sc.SweepPoints)
	maxInnerWallT := make([]float64, len(fractions))
	isps := make([]float64, len(fractions))
	maxInnerWallC := make([]float64, len(fractions))

	// Diluting the fuel changes the combustion state, so each point rebuilds
	// the equilibrium, the transport models and the engine.
	for i, wf := range fractions {
		eng, coolant, err := sc.BuildEngine(1, wf)
		if err != nil {
			log.Fatalf("engine build failed at water fraction %.3f: %s", wf, err)
		}
		if err := eng.AddCoolingJacket(sc.Jacket(sc.ChannelHeight, coolant)); err != nil {
			log.Fatal(err)
		}
		data, err := eng.SteadyHeatingAnalysis(sc.Stations)
		if err != nil {
			log.Fatalf("analysis failed at water fraction %.3f: %s", wf, err)
		}
		isp, err := eng.Isp(sc.AmbientPressure)
		if err != nil {
			log.Fatal(err)
		}
		maxInnerWallT[i] = data.MaxTWallInner()
		isps[i] = isp
		maxInnerWallC[i] = maxInnerWallT[i] - whitedwarf.ZeroCelsius
		if sc.Verbose {
			klog.Log("level", "info", "i", i, "water fraction", wf, "chamber T(K)", eng.Chamber.T0,
				"max T(K)", maxInnerWallT[i], "Isp(s)", isp)
		}
	}

	csvPath, err := whitedwarf.WriteSweepCSV(sc.FilePrefix, []string{"water_mass_fraction", "max_T_wall_inner", "Isp"},
		fractions, maxInnerWallT, isps)
	if err != nil {
		log.Fatal(err)
	}
	pngPath, err := whitedwarf.SaveDualTrendPlot(
		"Water-diluted fuel: liner temperature and specific impulse",
		"Water mass fraction of fuel",
		sc.FilePrefix,
		whitedwarf.TrendSeries{Label: "Temperature (°C)", YLabel: "Maximum inner liner temperature (°C)", X: fractions, Y: maxInnerWallC},
		whitedwarf.TrendSeries{Label: "Isp (s)", YLabel: "Sea level Isp (s)", X: fractions, Y: isps},
	)
	if err != nil {
		log.Fatal(err)
	}
	klog.Log("level", "notice", "status", "finished", "csv", csvPath, "plot", pngPath)
}
