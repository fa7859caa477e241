package charts

import (
	"strings"
	"testing"
)

func TestBrailleSurface(t *testing.T) {
	t.Run("renders series as braille", func(t *testing.T) {
		c := New()
		c.AppendSeries(1, 4, 2, 8, 5, 7)
		c.AppendSeries(3, 3, 6, 1, 2, 9)

		s := NewBrailleSurface(40, 10, 400, 200)
		cfg := DefaultConfig()
		cfg.SampleBound = BoundSampleCount
		c.Render(s, cfg)

		view := s.View()
		if len(view) == 0 {
			t.Fatal("View() is empty, want chart output")
		}
		if !strings.ContainsFunc(view, isBraille) {
			t.Error("View() contains no braille runes")
		}
	})

	t.Run("size reports the pixel space", func(t *testing.T) {
		s := NewBrailleSurface(20, 5, 640, 480)
		w, h := s.Size()
		if w != 640 || h != 480 {
			t.Errorf("Size() = (%d, %d), want (640, 480)", w, h)
		}
	})

	t.Run("degenerate data does not panic", func(t *testing.T) {
		s := NewBrailleSurface(20, 5, 100, 50)
		New().Render(s, DefaultConfig())
		if len(s.View()) == 0 {
			t.Error("View() is empty, want the center axis")
		}
	})
}

func TestTerminalSize(t *testing.T) {
	tests := []struct {
		cols     int
		wantRows int
	}{
		{cols: 80, wantRows: 10},
		{cols: 40, wantRows: MinChartHeight},
		{cols: 200, wantRows: 25},
	}
	for _, tt := range tests {
		cols, rows := TerminalSize(tt.cols)
		if cols != tt.cols || rows != tt.wantRows {
			t.Errorf("TerminalSize(%d) = (%d, %d), want (%d, %d)", tt.cols, cols, rows, tt.cols, tt.wantRows)
		}
	}
}

func isBraille(r rune) bool {
	return r > 0x2800 && r <= 0x28ff
}
