package charts

import (
	"strings"
	"testing"
)

func TestBarchart(t *testing.T) {
	tests := []struct {
		name  string
		data  DataSet
		names []string
		width int
		want  []string
	}{
		{
			name:  "empty data set",
			data:  DataSet{},
			width: 80,
		},
		{
			name:  "single series",
			data:  DataSet{{1, 2, 3}},
			names: []string{"requests"},
			width: 80,
			want:  []string{"requests (3)"},
		},
		{
			name:  "multiple series without names",
			data:  DataSet{{1}, {5, 4}, {3}},
			width: 100,
			want:  []string{"series 0 (1)", "series 1 (4)", "series 2 (3)"},
		},
		{
			name:  "empty series is skipped",
			data:  DataSet{{}, {10}},
			names: []string{"idle", "busy"},
			width: 40,
			want:  []string{"busy (10)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Barchart(tt.data, tt.names, TolPalette(), tt.width)

			for _, label := range tt.want {
				if !strings.Contains(result, label) {
					t.Errorf("Barchart() output does not contain label %q", label)
				}
			}
			if strings.Contains(result, "idle") {
				t.Error("Barchart() drew a bar for an empty series")
			}
		})
	}
}

func TestSeriesName(t *testing.T) {
	names := []string{"a", ""}
	tests := []struct {
		index int
		want  string
	}{
		{0, "a"},
		{1, "series 1"},
		{2, "series 2"},
	}
	for _, tt := range tests {
		if got := SeriesName(names, tt.index); got != tt.want {
			t.Errorf("SeriesName(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}
