package source

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/akasprzok/multiline/internal/charts"
)

func TestFill(t *testing.T) {
	series := []Series{
		{Name: "a", Samples: []int{1, 2, 3}},
		{Name: "b", Samples: []int{4}},
		{Name: "empty"},
	}
	c := charts.New()
	Fill(c, series)

	want := charts.DataSet{{1, 2, 3}, {4}, {}}
	if got := c.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}
	if got := Names(series); !reflect.DeepEqual(got, []string{"a", "b", "empty"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestFromDataSet(t *testing.T) {
	data := charts.DataSet{{1, 2}, {3}}
	got := FromDataSet(data, []string{"first"})
	want := []Series{
		{Name: "first", Samples: []int{1, 2}},
		{Samples: []int{3}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromDataSet() = %v, want %v", got, want)
	}

	data[0][0] = 99
	if got[0].Samples[0] != 1 {
		t.Error("FromDataSet() shares samples with the data set")
	}
}

func TestToSample(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		want   int
		wantOK bool
	}{
		{name: "rounds up", value: 2.5, want: 3, wantOK: true},
		{name: "rounds negative", value: -2.4, want: -2, wantOK: true},
		{name: "smallest int", value: math.MinInt, want: math.MinInt, wantOK: true},
		{name: "2^63 overflows", value: math.MaxInt, wantOK: false},
		{name: "far above", value: 1e20, wantOK: false},
		{name: "far below", value: -1e20, wantOK: false},
		{name: "nan", value: math.NaN(), wantOK: false},
		{name: "infinity", value: math.Inf(-1), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toSample(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("toSample(%v) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("toSample(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestLoadErrorUnwrap(t *testing.T) {
	err := error(&LoadError{Path: "x.yaml", Err: ErrNoData})
	if !errors.Is(err, ErrNoData) {
		t.Errorf("errors.Is(%v, ErrNoData) = false", err)
	}
	var le *LoadError
	if !errors.As(err, &le) || le.Path != "x.yaml" {
		t.Errorf("errors.As() did not recover the path")
	}
}
