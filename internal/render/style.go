package render

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
)

// Process-wide presentation defaults live here and nowhere else; the
// aggregation core has no dependency on any of this.

const (
	// panelWidth and panelHeight size a single panel; figures multiply
	// by their tile counts.
	panelWidth  = 5 * vg.Inch
	panelHeight = 3.5 * vg.Inch

	// rasterDPI matches the 300-dpi print-quality output of the
	// benchmark reports this tool replaces.
	rasterDPI = 300
)

var (
	// barSlot is the horizontal span a category's bar group occupies.
	barSlot = vg.Points(40)

	fontSize      = vg.Points(9)
	titleFontSize = vg.Points(10)
)

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = titleFontSize
	p.X.Label.Text = xlabel
	p.X.Label.TextStyle.Font.Size = fontSize
	p.Y.Label.Text = ylabel
	p.Y.Label.TextStyle.Font.Size = fontSize
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = fontSize - 1
	p.BackgroundColor = color.White
	return p
}

func heatPalette() palette.Palette {
	return palette.Heat(12, 255)
}

func intLabel(v int) string {
	return strconv.Itoa(v)
}
