// Package prometheus fetches range vectors for charting.
package prometheus

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
	"github.com/prometheus/prometheus/promql/parser"
)

type prometheusClient struct {
	v1api v1.API
}

// Client runs range queries against a Prometheus server.
type Client interface {
	QueryRange(ctx context.Context, query string, r v1.Range, timeout time.Duration) (model.Matrix, v1.Warnings, error)
}

func NewClient(url string) (Client, error) {
	client, err := api.NewClient(api.Config{
		Address: url,
	})
	if err != nil {
		return nil, fmt.Errorf("creating prometheus client: %w", err)
	}
	return &prometheusClient{v1api: v1.NewAPI(client)}, nil
}

func (c *prometheusClient) QueryRange(ctx context.Context, query string, r v1.Range, timeout time.Duration) (model.Matrix, v1.Warnings, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	result, warnings, err := c.v1api.QueryRange(ctx, query, r, v1.WithTimeout(timeout))
	if err != nil {
		return nil, warnings, err
	}

	switch result.Type() {
	case model.ValMatrix:
		return result.(model.Matrix), warnings, nil
	case model.ValNone, model.ValScalar, model.ValVector, model.ValString:
		return nil, warnings, fmt.Errorf("unexpected result type: %s", result.Type())
	default:
		return nil, warnings, fmt.Errorf("unknown result type: %s", result.Type())
	}
}

// RangeEnding returns the range of the given length ending at end.
func RangeEnding(end time.Time, length, step time.Duration) v1.Range {
	return v1.Range{Start: end.Add(-length), End: end, Step: step}
}

// ValidateQuery parses query as PromQL.
func ValidateQuery(query string) error {
	if _, err := parser.ParseExpr(query); err != nil {
		return fmt.Errorf("parsing query: %w", err)
	}
	return nil
}

// FormatQuery pretty-prints query, returning it unchanged when it does not parse.
func FormatQuery(query string) string {
	ast, err := parser.ParseExpr(query)
	if err != nil {
		return query
	}
	return ast.Pretty(0)
}
