package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel_FixedMappings(t *testing.T) {
	tests := []struct {
		dim   Dimension
		value int
		label string
	}{
		{Encryption, 0, "No Encryption"},
		{Encryption, 1, "With Encryption"},
		{Compression, 0, "No Compression"},
		{Compression, 5, "Medium (5)"},
		{Compression, 9, "High (9)"},
		{EntrySize, 1024, "1KB"},
		{EntrySize, 2048, "2KB"},
		{EntrySize, 4096, "4KB"},
	}

	for _, tt := range tests {
		label, ok := Label(tt.dim, tt.value)
		assert.True(t, ok, "%s=%d should be mapped", tt.dim, tt.value)
		assert.Equal(t, tt.label, label)
	}
}

func TestLabel_UnmappedValueKeepsNumericData(t *testing.T) {
	// 8192 is outside the fixed entry-size table: no label, but the
	// record still aggregates under its raw value.
	label, ok := Label(EntrySize, 8192)
	assert.False(t, ok)
	assert.Equal(t, "", label)

	ds := New([]Record{{EntrySizeBytes: 8192}}, "test")
	assert.Equal(t, []int{8192}, ds.Distinct(EntrySize))
}

func TestLabel_DimensionsWithoutTables(t *testing.T) {
	_, ok := Label(BatchSize, 512)
	assert.False(t, ok)
	_, ok = Label(Consumers, 4)
	assert.False(t, ok)
}

func TestRecord_DimAndValueAccessors(t *testing.T) {
	r := Record{
		BatchSize:               512,
		EntrySizeBytes:          1024,
		Consumers:               4,
		UseEncryption:           1,
		CompressionLevel:        5,
		EntriesPerSec:           50000,
		WriteAmplification:      1.2,
		AvgLatencyMS:            3.5,
		LogicalThroughputGiBSec: 0.05,
	}

	assert.Equal(t, 512, r.Dim(BatchSize))
	assert.Equal(t, 1024, r.Dim(EntrySize))
	assert.Equal(t, 4, r.Dim(Consumers))
	assert.Equal(t, 1, r.Dim(Encryption))
	assert.Equal(t, 5, r.Dim(Compression))

	assert.Equal(t, 50000.0, r.Value(EntriesPerSec))
	assert.Equal(t, 1.2, r.Value(WriteAmplification))
	assert.Equal(t, 3.5, r.Value(AvgLatencyMS))
	assert.Equal(t, 0.05, r.Value(LogicalThroughput))
}
