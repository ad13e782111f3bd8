package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportEffectChart exports a bar chart of the factored effects to an image
// file. The format follows the file extension (png, svg, pdf).
func ExportEffectChart(bars []EffectBar, title, unit, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Factored effect (" + unit + ")"

	values := make(plotter.Values, len(bars))
	names := make([]string, len(bars))
	governingIdx := -1
	for i, b := range bars {
		values[i] = b.Effect
		names[i] = b.Name
		if b.Governing {
			governingIdx = i
		}
	}

	chart, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return err
	}
	chart.LineStyle.Width = vg.Points(0.5)
	chart.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	p.Add(chart)
	p.NominalX(names...)

	// Overlay the governing bar in a highlight color
	if governingIdx >= 0 {
		highlight := make(plotter.Values, len(bars))
		highlight[governingIdx] = bars[governingIdx].Effect
		governingBar, err := plotter.NewBarChart(highlight, vg.Points(18))
		if err != nil {
			return err
		}
		governingBar.LineStyle.Width = vg.Points(0.5)
		governingBar.Color = color.RGBA{R: 220, G: 60, B: 60, A: 255}
		p.Add(governingBar)
	}

	width := 10 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
