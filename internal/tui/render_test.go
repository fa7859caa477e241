package tui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/akasprzok/multiline/internal/charts"
)

func TestParseSamples(t *testing.T) {
	tests := []struct {
		input   string
		want    []int
		wantErr bool
	}{
		{input: "1 2 3", want: []int{1, 2, 3}},
		{input: "4,5 , 6", want: []int{4, 5, 6}},
		{input: "-7", want: []int{-7}},
		{input: "", wantErr: true},
		{input: " , ", wantErr: true},
		{input: "1.5", wantErr: true},
		{input: "1 two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSamples(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSamples() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSamples() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSurfaceMode(t *testing.T) {
	for _, mode := range []SurfaceMode{ModeBlocks, ModeBraille} {
		got, err := ParseSurfaceMode(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseSurfaceMode(%q) = %v, %v", mode.String(), got, err)
		}
	}
	if _, err := ParseSurfaceMode("ascii"); err == nil {
		t.Error("ParseSurfaceMode(\"ascii\") should fail")
	}
}

func TestRenderTerminal(t *testing.T) {
	c := charts.New()
	c.AppendSeries(1, 5, 2, 9, 3)
	c.AppendSeries(4, 4, 6, 1, 8)

	tests := []struct {
		mode SurfaceMode
		want func(rune) bool
	}{
		{mode: ModeBraille, want: func(r rune) bool { return r >= 0x2801 && r <= 0x28ff }},
		{mode: ModeBlocks, want: func(r rune) bool { return r == '▀' }},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			out, err := RenderTerminal(c, charts.DefaultConfig(), tt.mode, 40, 10)
			if err != nil {
				t.Fatalf("RenderTerminal() error = %v", err)
			}
			if !strings.ContainsFunc(out, tt.want) {
				t.Errorf("RenderTerminal() output has no %s cells", tt.mode)
			}
		})
	}
}

func TestPixelSize(t *testing.T) {
	if w, h := PixelSize(ModeBraille, 10, 5); w != 20 || h != 20 {
		t.Errorf("PixelSize(braille) = %d, %d, want 20, 20", w, h)
	}
	if w, h := PixelSize(ModeBlocks, 10, 5); w != 40 || h != 40 {
		t.Errorf("PixelSize(blocks) = %d, %d, want 40, 40", w, h)
	}
}
