// Package aggregate computes mean-by-group series over a benchmark
// dataset. Aggregates are computed fresh for every chart; nothing is
// cached between views.
package aggregate

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/gdpruler/benchplot/internal/dataset"
	"github.com/gdpruler/benchplot/internal/errors"
)

// Filter is a conjunction of equality constraints over dimensions. A nil
// or empty filter matches every record.
type Filter map[dataset.Dimension]int

// Match reports whether a record satisfies every constraint.
func (f Filter) Match(r dataset.Record) bool {
	for dim, want := range f {
		if r.Dim(dim) != want {
			return false
		}
	}
	return true
}

// Count returns the number of records in the dataset matching the
// filter. Callers use this to detect empty views before building charts.
func (f Filter) Count(ds *dataset.Dataset) int {
	n := 0
	for _, r := range ds.Records() {
		if f.Match(r) {
			n++
		}
	}
	return n
}

// Request describes one aggregation: restrict the dataset to records
// matching Filter, bucket them by one or two GroupBy dimensions, and
// average Metric within each bucket.
type Request struct {
	Filter  Filter
	GroupBy []dataset.Dimension
	Metric  dataset.Metric
}

// Key identifies a bucket. B is zero and unused for single-dimension
// grouping.
type Key struct {
	A, B int
}

// MetricSeries maps each observed group-key combination to the
// arithmetic mean of the requested metric. Buckets with no matching
// records are absent: an absent key means "no data", not zero.
type MetricSeries struct {
	groupBy []dataset.Dimension
	means   map[Key]float64
}

// Aggregate computes a MetricSeries for the request. Grouping by zero or
// more than two dimensions is an error.
func Aggregate(ds *dataset.Dataset, req Request) (*MetricSeries, error) {
	if len(req.GroupBy) == 0 || len(req.GroupBy) > 2 {
		return nil, errors.NewAggregateError(errors.CodeBadRequest,
			fmt.Sprintf("group-by must name one or two dimensions, got %d", len(req.GroupBy)))
	}

	buckets := make(map[Key][]float64)
	for _, r := range ds.Records() {
		if !req.Filter.Match(r) {
			continue
		}
		k := Key{A: r.Dim(req.GroupBy[0])}
		if len(req.GroupBy) == 2 {
			k.B = r.Dim(req.GroupBy[1])
		}
		buckets[k] = append(buckets[k], r.Value(req.Metric))
	}

	means := make(map[Key]float64, len(buckets))
	for k, vals := range buckets {
		means[k] = stat.Mean(vals, nil)
	}

	return &MetricSeries{groupBy: req.GroupBy, means: means}, nil
}

// Len returns the number of buckets in the series.
func (s *MetricSeries) Len() int {
	return len(s.means)
}

// GroupBy returns the grouping dimensions of the series.
func (s *MetricSeries) GroupBy() []dataset.Dimension {
	return s.groupBy
}

// Value returns the mean for a group key, and whether the bucket exists.
// Pass one value for single-dimension series, two for two-dimension
// series.
func (s *MetricSeries) Value(ks ...int) (float64, bool) {
	if len(ks) != len(s.groupBy) {
		return 0, false
	}
	k := Key{A: ks[0]}
	if len(ks) == 2 {
		k.B = ks[1]
	}
	v, ok := s.means[k]
	return v, ok
}

// ValueOr returns the mean for a group key, or def when the bucket is
// absent. This is the explicit per-chart fallback policy: callers state
// the default (0 for throughput and latency, 1.0 for write
// amplification) at the point of use.
func (s *MetricSeries) ValueOr(def float64, ks ...int) float64 {
	if v, ok := s.Value(ks...); ok {
		return v
	}
	return def
}

// Keys returns the sorted observed keys of a single-dimension series.
func (s *MetricSeries) Keys() []int {
	keys := make([]int, 0, len(s.means))
	for k := range s.means {
		keys = append(keys, k.A)
	}
	sort.Ints(keys)
	return keys
}

// Keys2 returns the sorted observed keys of a two-dimension series as
// (first-dimension values, second-dimension values). The cross product
// of the two slices covers every bucket, though individual combinations
// may still be absent.
func (s *MetricSeries) Keys2() ([]int, []int) {
	as := make(map[int]struct{})
	bs := make(map[int]struct{})
	for k := range s.means {
		as[k.A] = struct{}{}
		bs[k.B] = struct{}{}
	}
	return sortedSet(as), sortedSet(bs)
}

func sortedSet(set map[int]struct{}) []int {
	vals := make([]int, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	sort.Ints(vals)
	return vals
}
