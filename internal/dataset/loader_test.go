package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reperr "github.com/gdpruler/benchplot/internal/errors"
)

const sampleHeader = "batch_size,entry_size_bytes,consumers,use_encryption,compression_level," +
	"entries_per_sec,write_amplification,avg_latency_ms,logical_throughput_gib_sec\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ParsesAllFields(t *testing.T) {
	path := writeCSV(t, sampleHeader+
		"512,1024,4,1,0,50000,1.2,3.5,0.05\n"+
		"2048,4096,8,0,9,70000,1.35,1.25,0.27\n")

	ds, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	r := ds.Records()[0]
	assert.Equal(t, 512, r.BatchSize)
	assert.Equal(t, 1024, r.EntrySizeBytes)
	assert.Equal(t, 4, r.Consumers)
	assert.Equal(t, 1, r.UseEncryption)
	assert.Equal(t, 0, r.CompressionLevel)
	assert.Equal(t, 50000.0, r.EntriesPerSec)
	assert.Equal(t, 1.2, r.WriteAmplification)
	assert.Equal(t, 3.5, r.AvgLatencyMS)
	assert.Equal(t, 0.05, r.LogicalThroughputGiBSec)
}

func TestLoad_ToleratesExtraColumns(t *testing.T) {
	path := writeCSV(t, "run_id,"+sampleHeader[:len(sampleHeader)-1]+",notes\n"+
		"r1,512,1024,4,1,0,50000,1.2,3.5,0.05,warmup\n")

	ds, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, 512, ds.Records()[0].BatchSize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Equal(t, reperr.CodeFileNotFound, reperr.GetCode(err))
	assert.True(t, reperr.IsFatal(err))
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	path := writeCSV(t, "batch_size,entry_size_bytes\n512,1024\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, reperr.CodeMissingColumn, reperr.GetCode(err))
}

func TestLoad_BadNumericCell(t *testing.T) {
	path := writeCSV(t, sampleHeader+"512,1024,four,1,0,50000,1.2,3.5,0.05\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, reperr.CodeBadNumeric, reperr.GetCode(err))

	var re *reperr.ReportError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, reperr.ErrCategoryLoad, re.Category)
}

func TestLoad_RaggedRow(t *testing.T) {
	path := writeCSV(t, sampleHeader+"512,1024,4\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, reperr.CodeMalformedCSV, reperr.GetCode(err))
}

func TestLoad_EmptyFileHasNoHeader(t *testing.T) {
	path := writeCSV(t, "")

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, reperr.CodeMalformedCSV, reperr.GetCode(err))
}

func TestLoad_HeaderOnlyYieldsEmptyDataset(t *testing.T) {
	path := writeCSV(t, sampleHeader)

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}

func TestLoad_SnappyFramedInput(t *testing.T) {
	raw := sampleHeader + "512,1024,4,1,0,50000,1.2,3.5,0.05\n"

	path := filepath.Join(t.TempDir(), "results.csv.sz")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := snappy.NewBufferedWriter(f)
	_, err = w.Write([]byte(raw))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	ds, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, 50000.0, ds.Records()[0].EntriesPerSec)
}

func TestDistinct_SortedObservedValues(t *testing.T) {
	ds := New([]Record{
		{BatchSize: 8192}, {BatchSize: 512}, {BatchSize: 2048}, {BatchSize: 512},
	}, "test")

	assert.Equal(t, []int{512, 2048, 8192}, ds.Distinct(BatchSize))
}

func TestNew_CopiesRecords(t *testing.T) {
	src := []Record{{BatchSize: 512}}
	ds := New(src, "test")
	src[0].BatchSize = 9999

	assert.Equal(t, 512, ds.Records()[0].BatchSize)
}
