package whitedwarf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// TestMain points the library config at a throwaway output directory so the
// export and plotting tests do not litter the repo.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "whitedwarf-test")
	if err != nil {
		panic(err)
	}
	conf := fmt.Sprintf("[general]\noutput_path = %q\n", filepath.Join(dir, "out"))
	if err := os.WriteFile(filepath.Join(dir, "conf.toml"), []byte(conf), 0644); err != nil {
		panic(err)
	}
	os.Setenv("WHITEDWARF_CONFIG", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestExportHeatingResults(t *testing.T) {
	res := &HeatingResults{
		X:          []float64{0.1, 0, -0.1},
		TCoolant:   []float64{298.15, 320, 340},
		PCoolant:   []float64{50e5, 49e5, 48e5},
		THotFace:   []float64{1400, 1500, 1300},
		TWallInner: []float64{900, 1000, 850},
		TWallOuter: []float64{400, 450, 420},
		QDot:       []float64{2e5, 8e5, 3e5},
	}
	if err := res.Export(ExportConfig{Filename: "unit", AsCSV: true, AsJSON: true}); err != nil {
		t.Fatal(err)
	}
	outDir := wdConfig().outputDir
	if _, err := os.Stat(filepath.Join(outDir, "heating-unit.csv")); err != nil {
		t.Fatalf("CSV not written: %s", err)
	}
	raw, err := os.ReadFile(filepath.Join(outDir, "heating-unit.json"))
	if err != nil {
		t.Fatalf("JSON not written: %s", err)
	}
	// The JSON keys follow the historic analysis files.
	var decoded map[string][]float64
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"x", "T_wall_inner", "T_wall_outer", "T_coolant", "p_coolant", "q_dot"} {
		if _, found := decoded[key]; !found {
			t.Fatalf("JSON missing key %s", key)
		}
	}
	if decoded["T_wall_inner"][1] != 1000 {
		t.Fatalf("T_wall_inner round trip broken: %v", decoded["T_wall_inner"])
	}
}

func TestWriteSweepCSV(t *testing.T) {
	path, err := WriteSweepCSV("unit-sweep", []string{"h", "T", "dp"},
		[]float64{1e-3, 2e-3}, []float64{1000, 900}, []float64{3e5, 1e5})
	if err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) == 0 {
		t.Fatal("empty sweep CSV")
	}
	if _, err := WriteSweepCSV("bad", []string{"a"}, []float64{1}, []float64{2}); err == nil {
		t.Fatal("expected an error for mismatched headers")
	}
	if _, err := WriteSweepCSV("bad", []string{"a", "b"}, []float64{1}, []float64{2, 3}); err == nil {
		t.Fatal("expected an error for ragged columns")
	}
}

func TestSaveDualTrendPlot(t *testing.T) {
	xs := Linspace(0.5, 5, 10)
	top := TrendSeries{Label: "T", YLabel: "Temperature (°C)", X: xs, Y: Linspace(900, 400, 10)}
	bottom := TrendSeries{Label: "dp", YLabel: "Pressure drop (bar)", X: xs, Y: Linspace(6, 0.1, 10)}
	path, err := SaveDualTrendPlot("unit", "Channel height (mm)", "unit-plot", top, bottom)
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot not written: %s", err)
	}
	if info.Size() == 0 {
		t.Fatal("empty plot file")
	}
}
