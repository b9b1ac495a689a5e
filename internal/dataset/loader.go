package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/snappy"

	"github.com/gdpruler/benchplot/internal/errors"
)

// Column names required in the input header. Extra columns are tolerated
// and ignored.
var requiredColumns = []string{
	"batch_size",
	"entry_size_bytes",
	"consumers",
	"use_encryption",
	"compression_level",
	"entries_per_sec",
	"write_amplification",
	"avg_latency_ms",
	"logical_throughput_gib_sec",
}

// Load reads a benchmark results CSV into an immutable Dataset. Input
// ending in .sz is treated as a snappy-framed stream and decompressed
// transparently. Any parse failure is a fatal LOAD error: a partial
// dataset is never returned.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewLoadError(errors.CodeFileNotFound,
			fmt.Sprintf("cannot open input file %s", path), err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".sz") {
		r = snappy.NewReader(f)
	}

	return parse(r, path)
}

func parse(r io.Reader, source string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.NewLoadError(errors.CodeMalformedCSV,
			"cannot read header row", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, errors.NewLoadError(errors.CodeMissingColumn,
				fmt.Sprintf("required column %q not in header", name), nil)
		}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewLoadError(errors.CodeMalformedCSV,
				fmt.Sprintf("cannot parse row at line %d", line), err)
		}

		rec, err := parseRecord(row, cols, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return New(records, source), nil
}

func parseRecord(row []string, cols map[string]int, line int) (Record, error) {
	intField := func(name string) (int, error) {
		v, err := strconv.Atoi(strings.TrimSpace(row[cols[name]]))
		if err != nil {
			return 0, errors.NewLoadError(errors.CodeBadNumeric,
				fmt.Sprintf("column %q at line %d is not an integer", name, line), err)
		}
		return v, nil
	}
	floatField := func(name string) (float64, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[cols[name]]), 64)
		if err != nil {
			return 0, errors.NewLoadError(errors.CodeBadNumeric,
				fmt.Sprintf("column %q at line %d is not a number", name, line), err)
		}
		return v, nil
	}

	var rec Record
	var err error

	if rec.BatchSize, err = intField("batch_size"); err != nil {
		return Record{}, err
	}
	if rec.EntrySizeBytes, err = intField("entry_size_bytes"); err != nil {
		return Record{}, err
	}
	if rec.Consumers, err = intField("consumers"); err != nil {
		return Record{}, err
	}
	if rec.UseEncryption, err = intField("use_encryption"); err != nil {
		return Record{}, err
	}
	if rec.CompressionLevel, err = intField("compression_level"); err != nil {
		return Record{}, err
	}
	if rec.EntriesPerSec, err = floatField("entries_per_sec"); err != nil {
		return Record{}, err
	}
	if rec.WriteAmplification, err = floatField("write_amplification"); err != nil {
		return Record{}, err
	}
	if rec.AvgLatencyMS, err = floatField("avg_latency_ms"); err != nil {
		return Record{}, err
	}
	if rec.LogicalThroughputGiBSec, err = floatField("logical_throughput_gib_sec"); err != nil {
		return Record{}, err
	}

	return rec, nil
}
