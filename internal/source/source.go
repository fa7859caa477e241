// Package source loads named series from files and Prometheus.
package source

import (
	"errors"
	"fmt"
	"math"

	"github.com/akasprzok/multiline/internal/charts"
)

var (
	// ErrNoData is returned when a source yields no series.
	ErrNoData = errors.New("no data")
	// ErrUnsupportedFormat is returned for file extensions with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Series is one named line of integer samples.
type Series struct {
	Name    string `json:"name" yaml:"name"`
	Samples []int  `json:"samples" yaml:"samples"`
}

// Document is the on-disk layout of a data file.
type Document struct {
	Series []Series `json:"series" yaml:"series"`
}

// LoadError reports a failure reading a data file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// toSample rounds v to the nearest integer. It reports false for NaN,
// infinities and values outside the int range.
func toSample(v float64) (int, bool) {
	r := math.Round(v)
	// float64(math.MaxInt) rounds up to 2^63, which no int holds.
	if math.IsNaN(r) || r < math.MinInt || r >= math.MaxInt {
		return 0, false
	}
	return int(r), true
}

// Fill appends every series to c in order.
func Fill(c *charts.Chart, series []Series) {
	for _, s := range series {
		c.AppendSeries(s.Samples...)
	}
}

// Names returns the series names in order.
func Names(series []Series) []string {
	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Name
	}
	return names
}

// FromDataSet pairs the samples of data with names. Missing names are left
// empty.
func FromDataSet(data charts.DataSet, names []string) []Series {
	series := make([]Series, len(data))
	for i, samples := range data {
		series[i].Samples = append([]int{}, samples...)
		if i < len(names) {
			series[i].Name = names[i]
		}
	}
	return series
}
