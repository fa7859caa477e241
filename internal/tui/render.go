package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akasprzok/multiline/internal/charts"
	"github.com/akasprzok/multiline/internal/raster"
)

// SurfaceMode selects how a chart is drawn into the terminal.
type SurfaceMode int

const (
	// ModeBlocks rasterizes the chart and prints it as colored half blocks.
	ModeBlocks SurfaceMode = iota
	// ModeBraille draws lines with braille dots.
	ModeBraille
)

func (m SurfaceMode) String() string {
	switch m {
	case ModeBlocks:
		return "blocks"
	case ModeBraille:
		return "braille"
	default:
		return "unknown"
	}
}

// ParseSurfaceMode is the inverse of SurfaceMode.String.
func ParseSurfaceMode(s string) (SurfaceMode, error) {
	switch s {
	case "blocks":
		return ModeBlocks, nil
	case "braille":
		return ModeBraille, nil
	default:
		return 0, fmt.Errorf("unknown surface mode %q", s)
	}
}

// PixelSize is the surface size used to draw into cols by rows cells.
// Blocks render at four times the output resolution and are scaled down.
func PixelSize(mode SurfaceMode, cols, rows int) (int, int) {
	if mode == ModeBraille {
		return cols * 2, rows * 4
	}
	return cols * 4, rows * 8
}

// RenderTerminal draws c into a string of cols by rows terminal cells.
func RenderTerminal(c *charts.Chart, cfg charts.Config, mode SurfaceMode, cols, rows int) (string, error) {
	cols, rows = max(cols, 1), max(rows, 1)
	width, height := PixelSize(mode, cols, rows)

	if mode == ModeBraille {
		s := charts.NewBrailleSurface(cols, rows, width, height)
		c.Render(s, cfg)
		return s.View(), nil
	}

	canvas := raster.New(width, height)
	defer canvas.Close()
	c.Render(canvas, cfg)
	if err := canvas.Err(); err != nil {
		return "", err
	}
	return canvas.Blocks(cols, rows), nil
}

// ParseSamples reads integers separated by spaces or commas.
func ParseSamples(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no samples in %q", s)
	}
	samples := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid sample %q", f)
		}
		samples = append(samples, v)
	}
	return samples, nil
}
