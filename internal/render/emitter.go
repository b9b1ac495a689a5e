package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/gdpruler/benchplot/internal/errors"
)

// Emitter renders figures to their output artifacts. It is stateless
// across figures; each Render call is independent.
type Emitter struct {
	panelW vg.Length
	panelH vg.Length
	dpi    int
}

// NewEmitter creates an emitter with the default panel geometry.
func NewEmitter() *Emitter {
	return &Emitter{
		panelW: panelWidth,
		panelH: panelHeight,
		dpi:    rasterDPI,
	}
}

// Render draws the figure and writes <dir>/<base>.png and
// <dir>/<base>.pdf, overwriting existing files. On any failure no
// partially written file is left behind: the open-write-close scope of
// each artifact removes the file if writing or closing fails.
func (e *Emitter) Render(fig *Figure, dir string) ([]string, error) {
	if fig.Rows*fig.Cols != len(fig.Panels) {
		return nil, errors.NewRenderError(errors.CodeEncodeFailed,
			fmt.Sprintf("figure %s declares %dx%d tiles for %d panels",
				fig.Base, fig.Rows, fig.Cols, len(fig.Panels)), nil)
	}

	plots := make([][]*plot.Plot, fig.Rows)
	for r := 0; r < fig.Rows; r++ {
		plots[r] = make([]*plot.Plot, fig.Cols)
		for c := 0; c < fig.Cols; c++ {
			p, err := fig.Panels[r*fig.Cols+c].plot()
			if err != nil {
				return nil, errors.NewRenderError(errors.CodeEncodeFailed,
					fmt.Sprintf("building panel %d of %s", r*fig.Cols+c, fig.Base), err)
			}
			plots[r][c] = p
		}
	}

	w := e.panelW * vg.Length(fig.Cols)
	h := e.panelH * vg.Length(fig.Rows)

	var written []string

	pngPath := filepath.Join(dir, fig.Base+".png")
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(e.dpi))
	drawTiled(plots, fig, draw.New(img))
	if err := writeArtifact(pngPath, vgimg.PngCanvas{Canvas: img}); err != nil {
		return written, err
	}
	written = append(written, pngPath)

	pdfPath := filepath.Join(dir, fig.Base+".pdf")
	pdf := vgpdf.New(w, h)
	drawTiled(plots, fig, draw.New(pdf))
	if err := writeArtifact(pdfPath, pdf); err != nil {
		return written, err
	}
	written = append(written, pdfPath)

	return written, nil
}

func drawTiled(plots [][]*plot.Plot, fig *Figure, dc draw.Canvas) {
	tiles := draw.Tiles{
		Rows:      fig.Rows,
		Cols:      fig.Cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}
}

// writeArtifact writes one artifact under a strict open-write-close
// scope. A file only survives if it was encoded and flushed completely.
func writeArtifact(path string, src io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewRenderError(errors.CodeWriteFailed,
			fmt.Sprintf("creating %s", path), err)
	}

	if _, err := src.WriteTo(f); err != nil {
		f.Close()
		os.Remove(path)
		return errors.NewRenderError(errors.CodeWriteFailed,
			fmt.Sprintf("writing %s", path), err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.NewRenderError(errors.CodeWriteFailed,
			fmt.Sprintf("flushing %s", path), err)
	}

	return nil
}
