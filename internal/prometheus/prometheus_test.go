package prometheus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name:    "valid URL",
			url:     "http://localhost:9090",
			wantErr: false,
		},
		{
			name:    "valid URL with path",
			url:     "http://prometheus.example.com/api/v1",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClient() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && client == nil {
				t.Error("NewClient() returned nil client for valid URL")
			}
		})
	}
}

func TestFormatQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "simple metric",
			query: "up",
			want:  "up",
		},
		{
			name:  "metric with labels",
			query: "up{job=\"prometheus\"}",
			want:  "up{job=\"prometheus\"}",
		},
		{
			name:  "sum aggregation",
			query: "sum(rate(http_requests_total[5m]))",
			want:  "sum(rate(http_requests_total[5m]))",
		},
		{
			name:  "invalid query returns original",
			query: "invalid{{{",
			want:  "invalid{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatQuery(tt.query)
			if got != tt.want {
				t.Errorf("FormatQuery() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{name: "metric", query: "up"},
		{name: "rate", query: "rate(http_requests_total[5m])"},
		{name: "unbalanced braces", query: "up{job=", wantErr: true},
		{name: "empty", query: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateQuery() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRangeEnding(t *testing.T) {
	end := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := RangeEnding(end, time.Hour, time.Minute)
	if want := end.Add(-time.Hour); !r.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", r.Start, want)
	}
	if !r.End.Equal(end) {
		t.Errorf("End = %v, want %v", r.End, end)
	}
	if r.Step != time.Minute {
		t.Errorf("Step = %v, want %v", r.Step, time.Minute)
	}
}

func TestQueryRange(t *testing.T) {
	tests := []struct {
		name       string
		resultType string
		result     any
		wantSeries int
		wantErr    bool
	}{
		{
			name:       "matrix",
			resultType: "matrix",
			result: []map[string]any{
				{"metric": map[string]string{"job": "a"}, "values": [][]any{{1714564800, "1"}, {1714564860, "2"}}},
				{"metric": map[string]string{"job": "b"}, "values": [][]any{{1714564800, "3"}}},
			},
			wantSeries: 2,
		},
		{
			name:       "vector is rejected",
			resultType: "vector",
			result:     []map[string]any{{"metric": map[string]string{}, "value": []any{1714564800, "1"}}},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/v1/query_range" {
					http.NotFound(w, r)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]any{
					"status": "success",
					"data":   map[string]any{"resultType": tt.resultType, "result": tt.result},
				})
			}))
			defer srv.Close()

			client, err := NewClient(srv.URL)
			if err != nil {
				t.Fatalf("NewClient() error = %v", err)
			}
			end := time.Unix(1714564860, 0)
			matrix, _, err := client.QueryRange(context.Background(), "up", RangeEnding(end, time.Minute, time.Minute), 5*time.Second)
			if (err != nil) != tt.wantErr {
				t.Fatalf("QueryRange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(matrix) != tt.wantSeries {
				t.Errorf("QueryRange() returned %d series, want %d", len(matrix), tt.wantSeries)
			}
		})
	}
}
