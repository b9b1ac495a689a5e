// Package dataset provides the benchmark results data model and loader.
// A dataset is loaded once from a results CSV and is immutable afterwards;
// every chart is derived fresh from it.
package dataset

import "sort"

// Dimension identifies an experiment parameter column. Dimension values
// are integers (encryption is 0/1).
type Dimension string

const (
	BatchSize   Dimension = "batch_size"
	EntrySize   Dimension = "entry_size_bytes"
	Consumers   Dimension = "consumers"
	Encryption  Dimension = "use_encryption"
	Compression Dimension = "compression_level"
)

// Metric identifies a measured result column.
type Metric string

const (
	EntriesPerSec      Metric = "entries_per_sec"
	WriteAmplification Metric = "write_amplification"
	AvgLatencyMS       Metric = "avg_latency_ms"
	LogicalThroughput  Metric = "logical_throughput_gib_sec"
)

// Dimensions lists all experiment dimensions in canonical order.
func Dimensions() []Dimension {
	return []Dimension{BatchSize, EntrySize, Consumers, Encryption, Compression}
}

// Record is one benchmark measurement row. All nine fields are required;
// a row that cannot supply them never enters a Dataset.
type Record struct {
	BatchSize        int
	EntrySizeBytes   int
	Consumers        int
	UseEncryption    int
	CompressionLevel int

	EntriesPerSec           float64
	WriteAmplification      float64
	AvgLatencyMS            float64
	LogicalThroughputGiBSec float64
}

// Dim returns the record's value for the given dimension.
func (r Record) Dim(d Dimension) int {
	switch d {
	case BatchSize:
		return r.BatchSize
	case EntrySize:
		return r.EntrySizeBytes
	case Consumers:
		return r.Consumers
	case Encryption:
		return r.UseEncryption
	case Compression:
		return r.CompressionLevel
	}
	return 0
}

// Value returns the record's value for the given metric.
func (r Record) Value(m Metric) float64 {
	switch m {
	case EntriesPerSec:
		return r.EntriesPerSec
	case WriteAmplification:
		return r.WriteAmplification
	case AvgLatencyMS:
		return r.AvgLatencyMS
	case LogicalThroughput:
		return r.LogicalThroughputGiBSec
	}
	return 0
}

// Dataset is an immutable ordered collection of benchmark records.
type Dataset struct {
	records []Record
	source  string
}

// New creates a dataset from records. The slice is copied so later
// mutation of the argument cannot reach the dataset.
func New(records []Record, source string) *Dataset {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Dataset{records: cp, source: source}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Source returns the path the dataset was loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// Records returns the underlying records. Callers must not modify the
// returned slice.
func (d *Dataset) Records() []Record {
	return d.records
}

// Distinct returns the sorted distinct values observed for a dimension
// across the whole dataset. Axis orderings are always derived from the
// data, never from a fixed external domain.
func (d *Dataset) Distinct(dim Dimension) []int {
	seen := make(map[int]struct{})
	for _, r := range d.records {
		seen[r.Dim(dim)] = struct{}{}
	}
	vals := make([]int, 0, len(seen))
	for v := range seen {
		vals = append(vals, v)
	}
	sort.Ints(vals)
	return vals
}
