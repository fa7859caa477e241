package prometheus

import (
	"context"
	"time"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	QueryRangeFunc func(ctx context.Context, query string, r v1.Range, timeout time.Duration) (model.Matrix, v1.Warnings, error)
}

func (m *MockClient) QueryRange(ctx context.Context, query string, r v1.Range, timeout time.Duration) (model.Matrix, v1.Warnings, error) {
	if m.QueryRangeFunc != nil {
		return m.QueryRangeFunc(ctx, query, r, timeout)
	}
	return nil, nil, nil
}
