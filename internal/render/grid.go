package render

// meanGrid adapts a [row][col] mean matrix to the plotter.GridXYZ
// interface. Cells sit at unit positions so category ticks land on cell
// centers.
type meanGrid struct {
	nx, ny int
	z      [][]float64
}

func (g *meanGrid) Dims() (int, int) { return g.nx, g.ny }

func (g *meanGrid) X(c int) float64 { return float64(c) }

func (g *meanGrid) Y(r int) float64 { return float64(r) }

func (g *meanGrid) Z(c, r int) float64 { return g.z[r][c] }
