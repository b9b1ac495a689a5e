// Package report defines the seven analysis views and the driver that
// renders them. Each view is a pure function from the loaded dataset to
// a figure; the driver runs them in a fixed order.
package report

import (
	"fmt"
	"sort"

	"github.com/gdpruler/benchplot/internal/aggregate"
	"github.com/gdpruler/benchplot/internal/dataset"
	"github.com/gdpruler/benchplot/internal/errors"
	"github.com/gdpruler/benchplot/internal/render"
)

// View couples a base artifact name with its figure builder. Build
// returns optional note lines for the run summary; a view with no data
// returns an EMPTY_RESULT error and is skipped.
type View struct {
	Name  string
	Build func(ds *dataset.Dataset) (*render.Figure, []string, error)
}

// Views returns the seven analysis views in their fixed emission order.
func Views() []View {
	return []View{
		{Name: "encryption_effect", Build: buildEncryptionEffect},
		{Name: "compression_effect", Build: buildCompressionEffect},
		{Name: "entry_size_effect", Build: buildEntrySizeEffect},
		{Name: "writer_threads_effect", Build: buildWriterThreadsEffect},
		{Name: "batch_size_effect", Build: buildBatchSizeEffect},
		{Name: "heatmaps", Build: buildHeatmaps},
		{Name: "batch_analysis", Build: buildBatchAnalysis},
	}
}

const kilo = 1.0 / 1000 // entries/sec to K entries/sec

// requireData rejects an empty dataset before any panel is built. A
// header-only results file loads successfully with zero records; every
// view over it is skipped, never rendered with empty axes.
func requireData(ds *dataset.Dataset) error {
	if ds.Len() == 0 {
		return errors.NewAggregateError(errors.CodeEmptyResult,
			"dataset contains no records")
	}
	return nil
}

// barSpec describes one grouped-bar panel: one bar series per distinct
// value of seriesDim, categories from the distinct values of catDim.
type barSpec struct {
	title, xlabel, ylabel string
	catDim                dataset.Dimension
	seriesDim             dataset.Dimension
	metric                dataset.Metric
	scale                 float64
	fallback              float64
	seriesLabel           func(int) string
	catLabel              func(int) string
}

func buildBarPanel(ds *dataset.Dataset, spec barSpec) (*render.BarPanel, error) {
	cats := ds.Distinct(spec.catDim)

	var groups []render.BarGroup
	for _, sv := range ds.Distinct(spec.seriesDim) {
		series, err := aggregate.Aggregate(ds, aggregate.Request{
			Filter:  aggregate.Filter{spec.seriesDim: sv},
			GroupBy: []dataset.Dimension{spec.catDim},
			Metric:  spec.metric,
		})
		if err != nil {
			return nil, err
		}

		values := make([]float64, len(cats))
		for i, c := range cats {
			values[i] = series.ValueOr(spec.fallback, c) * spec.scale
		}
		groups = append(groups, render.BarGroup{Label: spec.seriesLabel(sv), Values: values})
	}

	return &render.BarPanel{
		Title:      spec.title,
		XLabel:     spec.xlabel,
		YLabel:     spec.ylabel,
		Categories: labelAll(cats, spec.catLabel),
		Groups:     groups,
	}, nil
}

func buildEncryptionEffect(ds *dataset.Dataset) (*render.Figure, []string, error) {
	if err := requireData(ds); err != nil {
		return nil, nil, err
	}

	encLabel := func(v int) string {
		label, _ := dataset.Label(dataset.Encryption, v)
		return label
	}

	specs := []barSpec{
		{
			title: "(a) Encryption Impact vs Batch Size", xlabel: "Batch Size",
			ylabel: "Throughput (K entries/sec)",
			catDim: dataset.BatchSize, seriesDim: dataset.Encryption,
			metric: dataset.EntriesPerSec, scale: kilo, fallback: 0,
			seriesLabel: encLabel, catLabel: intLabel,
		},
		{
			title: "(b) Encryption Impact vs Entry Size", xlabel: "Entry Size",
			ylabel: "Throughput (K entries/sec)",
			catDim: dataset.EntrySize, seriesDim: dataset.Encryption,
			metric: dataset.EntriesPerSec, scale: kilo, fallback: 0,
			seriesLabel: encLabel, catLabel: entrySizeLabel,
		},
		{
			title: "(c) Encryption Impact on Write Amplification", xlabel: "Compression Level",
			ylabel: "Write Amplification",
			catDim: dataset.Compression, seriesDim: dataset.Encryption,
			metric: dataset.WriteAmplification, scale: 1, fallback: 1.0,
			seriesLabel: encLabel, catLabel: intLabel,
		},
		{
			title: "(d) Encryption Impact vs Writer Threads", xlabel: "Writer Threads",
			ylabel: "Throughput (K entries/sec)",
			catDim: dataset.Consumers, seriesDim: dataset.Encryption,
			metric: dataset.EntriesPerSec, scale: kilo, fallback: 0,
			seriesLabel: encLabel, catLabel: intLabel,
		},
	}

	fig, err := barFigure(ds, "encryption_effect", specs)
	return fig, nil, err
}

func buildCompressionEffect(ds *dataset.Dataset) (*render.Figure, []string, error) {
	if err := requireData(ds); err != nil {
		return nil, nil, err
	}

	compLabel := func(v int) string { return fmt.Sprintf("Compression %d", v) }

	specs := []barSpec{
		{
			title: "(a) Compression vs Batch Size", xlabel: "Batch Size",
			ylabel: "Throughput (K entries/sec)",
			catDim: dataset.BatchSize, seriesDim: dataset.Compression,
			metric: dataset.EntriesPerSec, scale: kilo, fallback: 0,
			seriesLabel: compLabel, catLabel: intLabel,
		},
		{
			title: "(b) Compression vs Entry Size", xlabel: "Entry Size",
			ylabel: "Throughput (K entries/sec)",
			catDim: dataset.EntrySize, seriesDim: dataset.Compression,
			metric: dataset.EntriesPerSec, scale: kilo, fallback: 0,
			seriesLabel: compLabel, catLabel: entrySizeLabel,
		},
		{
			title: "(c) Compression vs Encryption", xlabel: "Encryption Setting",
			ylabel: "Write Amplification",
			catDim: dataset.Encryption, seriesDim: dataset.Compression,
			metric: dataset.WriteAmplification, scale: 1, fallback: 1.0,
			seriesLabel: compLabel, catLabel: offOnLabel,
		},
		{
			title: "(d) Compression vs Writer Threads", xlabel: "Writer Threads",
			ylabel: "Write Amplification",
			catDim: dataset.Consumers, seriesDim: dataset.Compression,
			metric: dataset.WriteAmplification, scale: 1, fallback: 1.0,
			seriesLabel: compLabel, catLabel: intLabel,
		},
	}

	fig, err := barFigure(ds, "compression_effect", specs)
	return fig, nil, err
}

func buildEntrySizeEffect(ds *dataset.Dataset) (*render.Figure, []string, error) {
	if err := requireData(ds); err != nil {
		return nil, nil, err
	}

	specs := []barSpec{
		{
			title: "(a) Entry Size vs Batch Size", xlabel: "Batch Size",
			ylabel: "Throughput (K entries/sec)",
			catDim: dataset.BatchSize, seriesDim: dataset.EntrySize,
			metric: dataset.EntriesPerSec, scale: kilo, fallback: 0,
			seriesLabel: entrySizeLabel, catLabel: intLabel,
		},
		{
			title: "(b) Entry Size vs Compression", xlabel: "Compression Level",
			ylabel: "Data Throughput (GiB/sec)",
			catDim: dataset.Compression, seriesDim: dataset.EntrySize,
			metric: dataset.LogicalThroughput, scale: 1, fallback: 0,
			seriesLabel: entrySizeLabel, catLabel: intLabel,
		},
		{
			title: "(c) Entry Size vs Encryption", xlabel: "Encryption",
			ylabel: "Throughput (K entries/sec)",
			catDim: dataset.Encryption, seriesDim: dataset.EntrySize,
			metric: dataset.EntriesPerSec, scale: kilo, fallback: 0,
			seriesLabel: entrySizeLabel, catLabel: offOnLabel,
		},
		{
			title: "(d) Entry Size vs Writer Threads", xlabel: "Writer Threads",
			ylabel: "Throughput (K entries/sec)",
			catDim: dataset.Consumers, seriesDim: dataset.EntrySize,
			metric: dataset.EntriesPerSec, scale: kilo, fallback: 0,
			seriesLabel: entrySizeLabel, catLabel: intLabel,
		},
	}

	fig, err := barFigure(ds, "entry_size_effect", specs)
	return fig, nil, err
}

// encCompCombo is an (encryption, compression) slice of the dataset
// shown as one line series.
type encCompCombo struct {
	enc, comp int
	label     string
}

var quadCombos = []encCompCombo{
	{0, 0, "No Enc, No Comp"},
	{0, 9, "No Enc, High Comp"},
	{1, 0, "Enc, No Comp"},
	{1, 9, "Enc, High Comp"},
}

func buildWriterThreadsEffect(ds *dataset.Dataset) (*render.Figure, []string, error) {
	if err := requireData(ds); err != nil {
		return nil, nil, err
	}

	consumers := ds.Distinct(dataset.Consumers)
	xs := floatsOf(consumers)

	// (a) throughput per batch size
	var batchSeries []render.LineSeries
	for _, bs := range ds.Distinct(dataset.BatchSize) {
		series, err := aggregate.Aggregate(ds, aggregate.Request{
			Filter:  aggregate.Filter{dataset.BatchSize: bs},
			GroupBy: []dataset.Dimension{dataset.Consumers},
			Metric:  dataset.EntriesPerSec,
		})
		if err != nil {
			return nil, nil, err
		}
		batchSeries = append(batchSeries, render.LineSeries{
			Label: fmt.Sprintf("Batch %d", bs),
			XS:    xs,
			YS:    scaledValues(series, consumers, 0, kilo),
		})
	}

	// (b) throughput per (encryption, compression) combination
	comboThroughput, err := comboSeries(ds, quadCombos, dataset.Consumers, consumers, dataset.EntriesPerSec, 0, kilo)
	if err != nil {
		return nil, nil, err
	}

	// (c) throughput normalized to the lowest thread count, per entry size
	var scalingSeries []render.LineSeries
	for _, es := range ds.Distinct(dataset.EntrySize) {
		series, err := aggregate.Aggregate(ds, aggregate.Request{
			Filter:  aggregate.Filter{dataset.EntrySize: es},
			GroupBy: []dataset.Dimension{dataset.Consumers},
			Metric:  dataset.EntriesPerSec,
		})
		if err != nil {
			return nil, nil, err
		}
		baseline, ok := series.Value(consumers[0])
		if !ok || baseline <= 0 {
			continue
		}
		scalingSeries = append(scalingSeries, render.LineSeries{
			Label: entrySizeLabel(es),
			XS:    xs,
			YS:    scaledValues(series, consumers, 0, 1/baseline),
		})
	}
	ideal := make([]float64, len(consumers))
	for i, c := range consumers {
		ideal[i] = float64(c) / float64(consumers[0])
	}
	scalingSeries = append(scalingSeries, render.LineSeries{
		Label: "Ideal Scaling", XS: xs, YS: ideal, Dashed: true,
	})

	// (d) latency per (encryption, compression) combination
	comboLatency, err := comboSeries(ds, quadCombos, dataset.Consumers, consumers, dataset.AvgLatencyMS, 0, 1)
	if err != nil {
		return nil, nil, err
	}

	return &render.Figure{
		Base: "writer_threads_effect",
		Rows: 2, Cols: 2,
		Panels: []render.Panel{
			&render.LinePanel{
				Title: "(a) Writer Threads vs Batch Size", XLabel: "Writer Threads",
				YLabel: "Throughput (K entries/sec)", Series: batchSeries,
			},
			&render.LinePanel{
				Title: "(b) Writer Threads vs Enc/Comp", XLabel: "Writer Threads",
				YLabel: "Throughput (K entries/sec)", Series: comboThroughput,
			},
			&render.LinePanel{
				Title: "(c) Scaling Efficiency by Entry Size", XLabel: "Writer Threads",
				YLabel: "Normalized Throughput", Series: scalingSeries,
			},
			&render.LinePanel{
				Title: "(d) Latency vs Writer Threads", XLabel: "Writer Threads",
				YLabel: "Average Latency (ms)", Series: comboLatency,
			},
		},
	}, nil, nil
}

var hexCombos = []encCompCombo{
	{0, 0, "No Enc, No Comp"},
	{0, 5, "No Enc, Med Comp"},
	{0, 9, "No Enc, High Comp"},
	{1, 0, "Enc, No Comp"},
	{1, 5, "Enc, Med Comp"},
	{1, 9, "Enc, High Comp"},
}

var waCombos = []encCompCombo{
	{0, 0, "No Enc, No Comp"},
	{1, 0, "Enc, No Comp"},
	{0, 9, "No Enc, High Comp"},
	{1, 9, "Enc, High Comp"},
}

func buildBatchSizeEffect(ds *dataset.Dataset) (*render.Figure, []string, error) {
	if err := requireData(ds); err != nil {
		return nil, nil, err
	}

	batches := ds.Distinct(dataset.BatchSize)
	xs := floatsOf(batches)

	// (a) throughput per (encryption, compression) combination
	comboThroughput, err := comboSeries(ds, hexCombos, dataset.BatchSize, batches, dataset.EntriesPerSec, 0, kilo)
	if err != nil {
		return nil, nil, err
	}

	// (b) throughput per entry size
	var entrySeries []render.LineSeries
	for _, es := range ds.Distinct(dataset.EntrySize) {
		series, err := aggregate.Aggregate(ds, aggregate.Request{
			Filter:  aggregate.Filter{dataset.EntrySize: es},
			GroupBy: []dataset.Dimension{dataset.BatchSize},
			Metric:  dataset.EntriesPerSec,
		})
		if err != nil {
			return nil, nil, err
		}
		entrySeries = append(entrySeries, render.LineSeries{
			Label: entrySizeLabel(es),
			XS:    xs,
			YS:    scaledValues(series, batches, 0, kilo),
		})
	}

	// (c) latency per writer-thread count
	var latencySeries []render.LineSeries
	for _, c := range ds.Distinct(dataset.Consumers) {
		series, err := aggregate.Aggregate(ds, aggregate.Request{
			Filter:  aggregate.Filter{dataset.Consumers: c},
			GroupBy: []dataset.Dimension{dataset.BatchSize},
			Metric:  dataset.AvgLatencyMS,
		})
		if err != nil {
			return nil, nil, err
		}
		latencySeries = append(latencySeries, render.LineSeries{
			Label: fmt.Sprintf("%d Writers", c),
			XS:    xs,
			YS:    scaledValues(series, batches, 0, 1),
		})
	}

	// (d) write amplification per (encryption, compression) combination
	comboWA, err := comboSeries(ds, waCombos, dataset.BatchSize, batches, dataset.WriteAmplification, 1.0, 1)
	if err != nil {
		return nil, nil, err
	}

	return &render.Figure{
		Base: "batch_size_effect",
		Rows: 2, Cols: 2,
		Panels: []render.Panel{
			&render.LinePanel{
				Title: "(a) Batch Size vs Enc/Comp Settings", XLabel: "Batch Size",
				YLabel: "Throughput (K entries/sec)", Series: comboThroughput,
			},
			&render.LinePanel{
				Title: "(b) Batch Size vs Entry Size", XLabel: "Batch Size",
				YLabel: "Throughput (K entries/sec)", Series: entrySeries,
			},
			&render.LinePanel{
				Title: "(c) Batch Size vs Latency", XLabel: "Batch Size",
				YLabel: "Average Latency (ms)", Series: latencySeries,
			},
			&render.LinePanel{
				Title: "(d) Batch Size vs Write Amplification", XLabel: "Batch Size",
				YLabel: "Write Amplification", Series: comboWA,
			},
		},
	}, nil, nil
}

// heatSpec describes one two-dimensional mean grid: rows from rowDim,
// columns from colDim.
type heatSpec struct {
	title, xlabel, ylabel string
	rowDim, colDim        dataset.Dimension
	metric                dataset.Metric
	scale                 float64
	fallback              float64
}

func buildHeatPanel(ds *dataset.Dataset, spec heatSpec) (*render.HeatPanel, error) {
	series, err := aggregate.Aggregate(ds, aggregate.Request{
		GroupBy: []dataset.Dimension{spec.rowDim, spec.colDim},
		Metric:  spec.metric,
	})
	if err != nil {
		return nil, err
	}

	rows, cols := series.Keys2()
	z := make([][]float64, len(rows))
	for i, r := range rows {
		z[i] = make([]float64, len(cols))
		for j, c := range cols {
			z[i][j] = series.ValueOr(spec.fallback, r, c) * spec.scale
		}
	}

	return &render.HeatPanel{
		Title:   spec.title,
		XLabel:  spec.xlabel,
		YLabel:  spec.ylabel,
		XValues: cols,
		YValues: rows,
		Z:       z,
	}, nil
}

func buildHeatmaps(ds *dataset.Dataset) (*render.Figure, []string, error) {
	if err := requireData(ds); err != nil {
		return nil, nil, err
	}

	specs := []heatSpec{
		{
			title: "(a) Throughput: Batch Size vs Compression",
			xlabel: "Compression Level", ylabel: "Batch Size",
			rowDim: dataset.BatchSize, colDim: dataset.Compression,
			metric: dataset.EntriesPerSec, scale: kilo, fallback: 0,
		},
		{
			title: "(b) Write Amplification: Size vs Encryption",
			xlabel: "Encryption (0=Off, 1=On)", ylabel: "Entry Size (bytes)",
			rowDim: dataset.EntrySize, colDim: dataset.Encryption,
			metric: dataset.WriteAmplification, scale: 1, fallback: 1.0,
		},
		{
			title: "(c) Throughput: Writers vs Entry Size",
			xlabel: "Entry Size (bytes)", ylabel: "Writer Threads",
			rowDim: dataset.Consumers, colDim: dataset.EntrySize,
			metric: dataset.EntriesPerSec, scale: kilo, fallback: 0,
		},
		{
			title: "(d) Latency: Batch Size vs Writers",
			xlabel: "Writer Threads", ylabel: "Batch Size",
			rowDim: dataset.BatchSize, colDim: dataset.Consumers,
			metric: dataset.AvgLatencyMS, scale: 1, fallback: 0,
		},
	}

	panels := make([]render.Panel, 0, len(specs))
	for _, spec := range specs {
		panel, err := buildHeatPanel(ds, spec)
		if err != nil {
			return nil, nil, err
		}
		panels = append(panels, panel)
	}

	return &render.Figure{Base: "heatmaps", Rows: 2, Cols: 2, Panels: panels}, nil, nil
}

// batchVariant is one (writer count, entry size) slice of the
// encrypted/uncompressed subset.
type batchVariant struct {
	consumers int
	entrySize int
}

func (v batchVariant) label() string {
	return fmt.Sprintf("%d Writers, %s Entry", v.consumers, entrySizeLabel(v.entrySize))
}

var batchVariants = []batchVariant{
	{4, 256}, {8, 256},
	{4, 1024}, {8, 1024},
	{4, 4096}, {8, 4096},
}

func buildBatchAnalysis(ds *dataset.Dataset) (*render.Figure, []string, error) {
	base := aggregate.Filter{dataset.Compression: 0, dataset.Encryption: 1}
	if base.Count(ds) == 0 {
		return nil, nil, errors.NewAggregateError(errors.CodeEmptyResult,
			"no data found for compression=0 and encryption=1")
	}

	// Rank-position x-axis over the batch sizes observed in the
	// filtered subset: positions 1..n labeled with the actual sizes.
	batches := distinctWhere(ds, base, dataset.BatchSize)
	ticks := make([]render.Tick, len(batches))
	position := make(map[int]float64, len(batches))
	for i, bs := range batches {
		position[bs] = float64(i + 1)
		ticks[i] = render.Tick{Value: float64(i + 1), Label: intLabel(bs)}
	}

	var throughputSeries, waSeries []render.LineSeries
	notes := []string{fmt.Sprintf("Generated batch analysis with %d variants:", len(batchVariants))}

	for _, v := range batchVariants {
		filter := aggregate.Filter{
			dataset.Compression: 0,
			dataset.Encryption:  1,
			dataset.Consumers:   v.consumers,
			dataset.EntrySize:   v.entrySize,
		}
		notes = append(notes, fmt.Sprintf("  - %s: %d data points", v.label(), filter.Count(ds)))

		throughput, err := aggregate.Aggregate(ds, aggregate.Request{
			Filter:  filter,
			GroupBy: []dataset.Dimension{dataset.BatchSize},
			Metric:  dataset.EntriesPerSec,
		})
		if err != nil {
			return nil, nil, err
		}
		wa, err := aggregate.Aggregate(ds, aggregate.Request{
			Filter:  filter,
			GroupBy: []dataset.Dimension{dataset.BatchSize},
			Metric:  dataset.WriteAmplification,
		})
		if err != nil {
			return nil, nil, err
		}

		// Absent batch sizes are omitted, not defaulted.
		var txs, tys, wxs, wys []float64
		for _, bs := range batches {
			if val, ok := throughput.Value(bs); ok {
				txs = append(txs, position[bs])
				tys = append(tys, val*kilo)
			}
			if val, ok := wa.Value(bs); ok {
				wxs = append(wxs, position[bs])
				wys = append(wys, (val-1)*100)
			}
		}
		if len(txs) > 0 {
			throughputSeries = append(throughputSeries, render.LineSeries{Label: v.label(), XS: txs, YS: tys})
		}
		if len(wxs) > 0 {
			waSeries = append(waSeries, render.LineSeries{Label: v.label(), XS: wxs, YS: wys})
		}
	}

	return &render.Figure{
		Base: "batch_analysis",
		Rows: 1, Cols: 2,
		Panels: []render.Panel{
			&render.LinePanel{
				Title: "(a) Throughput", XLabel: "Batch Size",
				YLabel: "Throughput (K entries/sec)",
				Series: throughputSeries, XTicks: ticks,
			},
			&render.LinePanel{
				Title: "(b) Write Amplification", XLabel: "Batch Size",
				YLabel: "Write Amplification (%)",
				Series: waSeries, XTicks: ticks,
			},
		},
	}, notes, nil
}

func barFigure(ds *dataset.Dataset, base string, specs []barSpec) (*render.Figure, error) {
	panels := make([]render.Panel, 0, len(specs))
	for _, spec := range specs {
		panel, err := buildBarPanel(ds, spec)
		if err != nil {
			return nil, err
		}
		panels = append(panels, panel)
	}
	return &render.Figure{Base: base, Rows: 2, Cols: 2, Panels: panels}, nil
}

// comboSeries builds one line series per (encryption, compression)
// combination over the given x-axis dimension. Combinations with no
// matching records are skipped.
func comboSeries(ds *dataset.Dataset, combos []encCompCombo, xDim dataset.Dimension,
	xVals []int, metric dataset.Metric, fallback, scale float64) ([]render.LineSeries, error) {

	var out []render.LineSeries
	for _, combo := range combos {
		filter := aggregate.Filter{
			dataset.Encryption:  combo.enc,
			dataset.Compression: combo.comp,
		}
		if filter.Count(ds) == 0 {
			continue
		}

		series, err := aggregate.Aggregate(ds, aggregate.Request{
			Filter:  filter,
			GroupBy: []dataset.Dimension{xDim},
			Metric:  metric,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, render.LineSeries{
			Label: combo.label,
			XS:    floatsOf(xVals),
			YS:    scaledValues(series, xVals, fallback, scale),
		})
	}
	return out, nil
}

func scaledValues(s *aggregate.MetricSeries, keys []int, fallback, scale float64) []float64 {
	out := make([]float64, len(keys))
	for i, k := range keys {
		out[i] = s.ValueOr(fallback, k) * scale
	}
	return out
}

func distinctWhere(ds *dataset.Dataset, f aggregate.Filter, dim dataset.Dimension) []int {
	seen := make(map[int]struct{})
	for _, r := range ds.Records() {
		if f.Match(r) {
			seen[r.Dim(dim)] = struct{}{}
		}
	}
	vals := make([]int, 0, len(seen))
	for v := range seen {
		vals = append(vals, v)
	}
	sort.Ints(vals)
	return vals
}

func labelAll(vals []int, label func(int) string) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = label(v)
	}
	return out
}

func entrySizeLabel(es int) string {
	if label, ok := dataset.Label(dataset.EntrySize, es); ok {
		return label
	}
	if es < 1024 {
		return fmt.Sprintf("%dB", es)
	}
	return fmt.Sprintf("%dKB", es/1024)
}

func offOnLabel(v int) string {
	if v == 0 {
		return "Off"
	}
	return "On"
}

func intLabel(v int) string {
	return fmt.Sprintf("%d", v)
}

func floatsOf(vals []int) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out
}
