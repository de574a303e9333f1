package whitedwarf

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// TrendSeries is one line of a sweep trend chart.
type TrendSeries struct {
	Label  string
	YLabel string
	X, Y   []float64
}

// SaveDualTrendPlot renders two vertically aligned panels sharing the swept
// parameter on the horizontal axis, and writes a PNG with the given base
// name into the configured output directory. It returns the full file path.
func SaveDualTrendPlot(title, xLabel, filename string, top, bottom TrendSeries) (string, error) {
	plots := make([][]*plot.Plot, 2)
	for i, series := range []TrendSeries{top, bottom} {
		p := plot.New()
		if i == 0 {
			p.Title.Text = title
		}
		p.X.Label.Text = xLabel
		p.Y.Label.Text = series.YLabel
		p.Add(plotter.NewGrid())
		line, err := plotter.NewLine(trendXYs(series))
		if err != nil {
			return "", err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(series.Label, line)
		p.Legend.Top = true
		plots[i] = []*plot.Plot{p}
	}

	img := vgimg.New(6*vg.Inch, 8*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2, Cols: 1,
		PadX: 2 * vg.Millimeter, PadY: 5 * vg.Millimeter,
		PadTop: 2 * vg.Millimeter, PadBottom: 2 * vg.Millimeter,
		PadLeft: 2 * vg.Millimeter, PadRight: 2 * vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	path := fmt.Sprintf("%s/%s.png", wdConfig().outputDir, filename)
	w, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return "", err
	}
	return path, nil
}

func trendXYs(s TrendSeries) plotter.XYs {
	pts := make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}
	return pts
}
