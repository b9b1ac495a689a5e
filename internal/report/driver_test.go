package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdpruler/benchplot/internal/config"
	"github.com/gdpruler/benchplot/internal/errors"
	"github.com/gdpruler/benchplot/internal/manifest"
)

var csvHeader = []string{
	"batch_size", "entry_size_bytes", "consumers", "use_encryption",
	"compression_level", "entries_per_sec", "write_amplification",
	"avg_latency_ms", "logical_throughput_gib_sec",
}

func writeResultsCSV(t *testing.T, encryptionValues []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "results.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.Write(csvHeader))
	for _, bs := range []int{512, 2048} {
		for _, es := range []int{1024, 4096} {
			for _, c := range []int{4, 8} {
				for _, enc := range encryptionValues {
					for _, comp := range []int{0, 9} {
						require.NoError(t, w.Write([]string{
							strconv.Itoa(bs), strconv.Itoa(es), strconv.Itoa(c),
							strconv.Itoa(enc), strconv.Itoa(comp),
							fmt.Sprintf("%d", bs*c), "1.2", "2.5", "0.8",
						}))
					}
				}
			}
		}
	}
	w.Flush()
	require.NoError(t, w.Error())
	return path
}

func testConfig(t *testing.T, input string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.InputFile = input
	cfg.OutputDir = filepath.Join(t.TempDir(), "plots")
	cfg.Resolve()
	return cfg
}

func TestDriver_FullRun(t *testing.T) {
	cfg := testConfig(t, writeResultsCSV(t, []int{0, 1}))

	var out bytes.Buffer
	err := NewDriver(cfg, &out).Run(context.Background())
	require.NoError(t, err)

	for _, view := range Views() {
		for _, ext := range []string{".png", ".pdf"} {
			path := filepath.Join(cfg.OutputDir, view.Name+ext)
			info, err := os.Stat(path)
			require.NoError(t, err, "expected artifact %s", path)
			assert.Greater(t, info.Size(), int64(0))
		}
	}

	text := out.String()
	assert.Contains(t, text, "Loaded 32 benchmark results")
	assert.Contains(t, text, "Batch sizes: [512 2048]")
	assert.Contains(t, text, "Writer threads: [4 8]")
	assert.Contains(t, text, "All plots saved to "+cfg.OutputDir+"/")
}

func TestDriver_SummaryIsReproducible(t *testing.T) {
	cfg := testConfig(t, writeResultsCSV(t, []int{0, 1}))
	ctx := context.Background()

	var first, second bytes.Buffer
	require.NoError(t, NewDriver(cfg, &first).Run(ctx))
	require.NoError(t, NewDriver(cfg, &second).Run(ctx))

	assert.Equal(t, first.String(), second.String())
}

func TestDriver_RecordsManifest(t *testing.T) {
	cfg := testConfig(t, writeResultsCSV(t, []int{0, 1}))

	var out bytes.Buffer
	require.NoError(t, NewDriver(cfg, &out).Run(context.Background()))

	journal, err := manifest.Open(cfg.Manifest.Path)
	require.NoError(t, err)
	defer journal.Close()

	ctx := context.Background()
	runs, err := journal.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, cfg.InputFile, runs[0].InputFile)
	assert.Equal(t, 32, runs[0].RecordCount)

	artifacts, err := journal.Artifacts(ctx, runs[0].ID)
	require.NoError(t, err)
	// Seven views, two artifacts each.
	assert.Len(t, artifacts, 14)
}

func TestDriver_SkipsEmptyBatchAnalysis(t *testing.T) {
	// No encrypted runs: batch_analysis has no data and must be skipped
	// without creating its artifacts, while the run still succeeds.
	cfg := testConfig(t, writeResultsCSV(t, []int{0}))

	var out bytes.Buffer
	err := NewDriver(cfg, &out).Run(context.Background())
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(cfg.OutputDir, "batch_analysis.png"))
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(cfg.OutputDir, "batch_analysis.pdf"))
	assert.True(t, os.IsNotExist(statErr))

	_, statErr = os.Stat(filepath.Join(cfg.OutputDir, "encryption_effect.png"))
	assert.NoError(t, statErr)
}

func TestDriver_SkipDoesNotTouchExistingArtifacts(t *testing.T) {
	cfg := testConfig(t, writeResultsCSV(t, []int{0}))
	require.NoError(t, os.MkdirAll(cfg.OutputDir, 0755))

	stale := filepath.Join(cfg.OutputDir, "batch_analysis.png")
	require.NoError(t, os.WriteFile(stale, []byte("previous run"), 0644))

	var out bytes.Buffer
	require.NoError(t, NewDriver(cfg, &out).Run(context.Background()))

	data, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, []byte("previous run"), data)
}

func TestDriver_HeaderOnlyInputSkipsAllViews(t *testing.T) {
	// Zero records is valid input: the run must complete without error,
	// skipping every view and writing no artifacts.
	path := filepath.Join(t.TempDir(), "results.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := csv.NewWriter(f)
	require.NoError(t, w.Write(csvHeader))
	w.Flush()
	require.NoError(t, w.Error())
	require.NoError(t, f.Close())

	cfg := testConfig(t, path)

	var out bytes.Buffer
	require.NoError(t, NewDriver(cfg, &out).Run(context.Background()))

	assert.Contains(t, out.String(), "Loaded 0 benchmark results")
	for _, view := range Views() {
		for _, ext := range []string{".png", ".pdf"} {
			_, statErr := os.Stat(filepath.Join(cfg.OutputDir, view.Name+ext))
			assert.True(t, os.IsNotExist(statErr),
				"no artifact expected for %s%s", view.Name, ext)
		}
	}
}

func TestDriver_MissingInputIsFatal(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "absent.csv"))

	var out bytes.Buffer
	err := NewDriver(cfg, &out).Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
}

func TestDriver_PublishesToLocalStorage(t *testing.T) {
	cfg := testConfig(t, writeResultsCSV(t, []int{0, 1}))
	publishDir := t.TempDir()
	cfg.Storage = config.StorageConfig{Type: config.StorageLocal, Path: publishDir}

	var out bytes.Buffer
	require.NoError(t, NewDriver(cfg, &out).Run(context.Background()))

	for _, view := range Views() {
		_, err := os.Stat(filepath.Join(publishDir, view.Name+".png"))
		assert.NoError(t, err, "expected %s to be published", view.Name)
	}
}
