// Package render is the chart emitter. It owns every visual decision
// (palettes, glyphs, panel sizes, tiling) and writes each figure as a
// raster (.png) and a vector (.pdf) artifact. The report layer hands it
// pre-aggregated, correctly ordered series and label text only.
package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Tick is a positional axis tick with a category label.
type Tick struct {
	Value float64
	Label string
}

// Panel is one chart within a figure.
type Panel interface {
	plot() (*plot.Plot, error)
}

// Figure is a tiled arrangement of panels written under a single base
// name. Panels are laid out row-major and len(Panels) must equal
// Rows*Cols.
type Figure struct {
	Base   string
	Rows   int
	Cols   int
	Panels []Panel
}

// BarGroup is one bar series across the panel's categories. Values must
// align with the panel's Categories.
type BarGroup struct {
	Label  string
	Values []float64
}

// BarPanel renders grouped bars over nominal categories.
type BarPanel struct {
	Title  string
	XLabel string
	YLabel string

	Categories []string
	Groups     []BarGroup
}

func (bp *BarPanel) plot() (*plot.Plot, error) {
	p := newPlot(bp.Title, bp.XLabel, bp.YLabel)

	n := len(bp.Groups)
	bw := barSlot / vg.Length(n+1)
	for i, g := range bp.Groups {
		bars, err := plotter.NewBarChart(plotter.Values(g.Values), bw)
		if err != nil {
			return nil, err
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle = draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
		bars.Offset = bw * (vg.Length(i) - vg.Length(n-1)/2)
		p.Add(bars)
		p.Legend.Add(g.Label, bars)
	}

	p.NominalX(bp.Categories...)
	return p, nil
}

// LineSeries is one line-with-markers series. Points are given as
// parallel X/Y slices; a Dashed series is drawn as a reference overlay
// without markers.
type LineSeries struct {
	Label  string
	XS     []float64
	YS     []float64
	Dashed bool
}

// LinePanel renders line series over a numeric or positional x-axis.
// XTicks, when set, replaces the default tick marker with fixed
// positions and labels (used for rank-position axes).
type LinePanel struct {
	Title  string
	XLabel string
	YLabel string

	Series []LineSeries
	XTicks []Tick
}

func (lp *LinePanel) plot() (*plot.Plot, error) {
	p := newPlot(lp.Title, lp.XLabel, lp.YLabel)
	p.Add(plotter.NewGrid())

	styleIdx := 0
	for _, s := range lp.Series {
		xys := make(plotter.XYs, len(s.XS))
		for i := range s.XS {
			xys[i].X = s.XS[i]
			xys[i].Y = s.YS[i]
		}

		if s.Dashed {
			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, err
			}
			line.LineStyle.Color = color.Gray{Y: 96}
			line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
			p.Add(line)
			p.Legend.Add(s.Label, line)
			continue
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(styleIdx)
		points.Shape = plotutil.Shape(styleIdx)
		points.Color = line.Color
		points.Radius = vg.Points(2)
		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
		styleIdx++
	}

	if len(lp.XTicks) > 0 {
		ticks := make([]plot.Tick, len(lp.XTicks))
		for i, t := range lp.XTicks {
			ticks[i] = plot.Tick{Value: t.Value, Label: t.Label}
		}
		p.X.Tick.Marker = plot.ConstantTicks(ticks)
	}

	return p, nil
}

// HeatPanel renders a two-dimensional mean grid. Z is indexed
// [row][col] with rows aligned to YValues and columns to XValues; axis
// ticks show the underlying category values at cell centers.
type HeatPanel struct {
	Title  string
	XLabel string
	YLabel string

	XValues []int
	YValues []int
	Z       [][]float64
}

func (hp *HeatPanel) plot() (*plot.Plot, error) {
	p := newPlot(hp.Title, hp.XLabel, hp.YLabel)

	grid := &meanGrid{nx: len(hp.XValues), ny: len(hp.YValues), z: hp.Z}
	p.Add(plotter.NewHeatMap(grid, heatPalette()))

	p.X.Tick.Marker = plot.ConstantTicks(categoryTicks(hp.XValues))
	p.Y.Tick.Marker = plot.ConstantTicks(categoryTicks(hp.YValues))
	return p, nil
}

func categoryTicks(values []int) []plot.Tick {
	ticks := make([]plot.Tick, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: float64(i), Label: intLabel(v)}
	}
	return ticks
}
