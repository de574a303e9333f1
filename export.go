package whitedwarf

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ExportConfig configures heating-profile exports.
type ExportConfig struct {
	Filename  string // base name, without extension
	Timestamp bool   // append a timestamp to the file name
	AsCSV     bool
	AsJSON    bool
}

// heatingJSON mirrors the keys the historic analysis files used.
type heatingJSON struct {
	X          []float64 `json:"x"`
	TCoolant   []float64 `json:"T_coolant"`
	PCoolant   []float64 `json:"p_coolant"`
	THotFace   []float64 `json:"T_hot_face"`
	TWallInner []float64 `json:"T_wall_inner"`
	TWallOuter []float64 `json:"T_wall_outer"`
	QDot       []float64 `json:"q_dot"`
}

// Export writes the heating profile into the configured output directory.
func (r *HeatingResults) Export(conf ExportConfig) error {
	if conf.AsCSV {
		f, err := createOutputFile(conf, "csv")
		if err != nil {
			return err
		}
		defer f.Close()
		f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Stations ordered along the coolant path (inlet at the nozzle exit).
`, time.Now().UTC()))
		w := csv.NewWriter(f)
		w.Write([]string{"x", "T_coolant", "p_coolant", "T_hot_face", "T_wall_inner", "T_wall_outer", "q_dot"})
		for i := range r.X {
			w.Write([]string{
				fmtFloat(r.X[i]), fmtFloat(r.TCoolant[i]), fmtFloat(r.PCoolant[i]),
				fmtFloat(r.THotFace[i]), fmtFloat(r.TWallInner[i]), fmtFloat(r.TWallOuter[i]),
				fmtFloat(r.QDot[i]),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
	}
	if conf.AsJSON {
		f, err := createOutputFile(conf, "json")
		if err != nil {
			return err
		}
		defer f.Close()
		marsh, err := json.Marshal(heatingJSON(*r))
		if err != nil {
			return err
		}
		if _, err := f.Write(marsh); err != nil {
			return err
		}
	}
	return nil
}

// WriteSweepCSV writes aligned sweep columns as a CSV into the configured
// output directory and returns the full file path.
func WriteSweepCSV(filename string, headers []string, columns ...[]float64) (string, error) {
	if len(headers) != len(columns) {
		return "", fmt.Errorf("export: %d headers for %d columns", len(headers), len(columns))
	}
	for i := 1; i < len(columns); i++ {
		if len(columns[i]) != len(columns[0]) {
			return "", fmt.Errorf("export: column %d has %d rows, expected %d", i, len(columns[i]), len(columns[0]))
		}
	}
	path := fmt.Sprintf("%s/%s.csv", wdConfig().outputDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write(headers)
	for row := 0; row < len(columns[0]); row++ {
		record := make([]string, len(columns))
		for col := range columns {
			record[col] = fmtFloat(columns[col][row])
		}
		w.Write(record)
	}
	w.Flush()
	return path, w.Error()
}

// createOutputFile returns a file in the output directory which requires a
// defer close statement!
func createOutputFile(conf ExportConfig, ext string) (*os.File, error) {
	var filename string
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s/heating-%s-%d-%02d-%02dT%02d.%02d.%02d.%s", wdConfig().outputDir, conf.Filename,
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), ext)
	} else {
		filename = fmt.Sprintf("%s/heating-%s.%s", wdConfig().outputDir, conf.Filename, ext)
	}
	return os.Create(filename)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 9, 64)
}
