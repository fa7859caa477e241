package source

import (
	"context"
	"time"

	"github.com/akasprzok/multiline/internal/charts"
	"github.com/akasprzok/multiline/internal/prometheus"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

// FromMatrix converts a range query result into series named by their
// metric. Values are rounded to the nearest integer; NaN, infinite and
// out-of-range samples are dropped.
func FromMatrix(matrix model.Matrix) []Series {
	series := make([]Series, 0, len(matrix))
	for _, stream := range matrix {
		s := Series{Name: stream.Metric.String()}
		for _, pair := range stream.Values {
			v, ok := toSample(float64(pair.Value))
			if !ok {
				continue
			}
			s.Samples = append(s.Samples, v)
		}
		series = append(series, s)
	}
	return series
}

// Query runs query over r and converts the result with FromMatrix.
func Query(ctx context.Context, client prometheus.Client, query string, r v1.Range, timeout time.Duration) ([]Series, v1.Warnings, error) {
	if err := prometheus.ValidateQuery(query); err != nil {
		return nil, nil, err
	}
	matrix, warnings, err := client.QueryRange(ctx, query, r, timeout)
	if err != nil {
		return nil, warnings, err
	}
	series := FromMatrix(matrix)
	if len(series) == 0 {
		return nil, warnings, ErrNoData
	}
	charts.Logger().Info("query loaded", "query", query, "series", len(series), "warnings", len(warnings))
	return series, warnings, nil
}
