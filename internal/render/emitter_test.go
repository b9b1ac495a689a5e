package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFigure() *Figure {
	return &Figure{
		Base: "sample",
		Rows: 1,
		Cols: 3,
		Panels: []Panel{
			&BarPanel{
				Title:      "bars",
				XLabel:     "Batch Size",
				YLabel:     "Throughput (K entries/sec)",
				Categories: []string{"512", "2048", "8192"},
				Groups: []BarGroup{
					{Label: "No Encryption", Values: []float64{50, 60, 70}},
					{Label: "With Encryption", Values: []float64{40, 48, 55}},
				},
			},
			&LinePanel{
				Title:  "lines",
				XLabel: "Writer Threads",
				YLabel: "Throughput (K entries/sec)",
				Series: []LineSeries{
					{Label: "1KB", XS: []float64{1, 2, 4, 8}, YS: []float64{10, 19, 35, 60}},
					{Label: "Ideal Scaling", XS: []float64{1, 2, 4, 8}, YS: []float64{1, 2, 4, 8}, Dashed: true},
				},
				XTicks: []Tick{{Value: 1, Label: "1"}, {Value: 2, Label: "2"}, {Value: 4, Label: "4"}, {Value: 8, Label: "8"}},
			},
			&HeatPanel{
				Title:   "heat",
				XLabel:  "Compression Level",
				YLabel:  "Batch Size",
				XValues: []int{0, 5, 9},
				YValues: []int{512, 2048},
				Z: [][]float64{
					{55, 48, 40},
					{70, 61, 52},
				},
			},
		},
	}
}

func TestRender_WritesRasterAndVector(t *testing.T) {
	dir := t.TempDir()

	written, err := NewEmitter().Render(sampleFigure(), dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "sample.png"),
		filepath.Join(dir, "sample.pdf"),
	}, written)

	for _, path := range written {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), "%s must be non-empty", path)
	}
}

func TestRender_OverwritesExistingArtifacts(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "sample.png")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0644))

	_, err := NewEmitter().Render(sampleFigure(), dir)
	require.NoError(t, err)

	info, err := os.Stat(stale)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(len("stale")))
}

func TestRender_RejectsMismatchedTileCount(t *testing.T) {
	fig := sampleFigure()
	fig.Rows = 2

	_, err := NewEmitter().Render(fig, t.TempDir())
	assert.Error(t, err)
}

func TestRender_FailedWriteLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	// Occupy the artifact path with a directory so os.Create fails.
	blocked := filepath.Join(dir, "sample.png")
	require.NoError(t, os.Mkdir(blocked, 0755))

	_, err := NewEmitter().Render(sampleFigure(), dir)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "sample.pdf"))
	assert.True(t, os.IsNotExist(statErr), "pdf must not be written after png failure")
}
