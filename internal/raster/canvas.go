// Package raster draws charts into images with gogpu/gg.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/akasprzok/multiline/internal/charts"
	"github.com/gogpu/gg"
)

// Canvas is a charts.Surface backed by a gg drawing context.
// The first drawing error is kept and reported by Err.
type Canvas struct {
	dc    *gg.Context
	hints charts.Hints
	err   error
}

var _ charts.Surface = (*Canvas)(nil)

// New creates a transparent canvas of width by height pixels.
func New(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

func (c *Canvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

// SetHints stores h. Without antialiasing, line coordinates are snapped to
// pixel centers so one-pixel strokes stay crisp.
func (c *Canvas) SetHints(h charts.Hints) { c.hints = h }

// Hints returns the hints of the last render pass.
func (c *Canvas) Hints() charts.Hints { return c.hints }

func (c *Canvas) SetColor(col color.Color) { c.dc.SetColor(col) }

func (c *Canvas) SetLineWidth(w float64) { c.dc.SetLineWidth(w) }

func (c *Canvas) FillRect(x, y, w, h float64) {
	c.dc.DrawRectangle(x, y, w, h)
	c.keep("fill", c.dc.Fill())
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	c.dc.DrawLine(c.snap(x1), c.snap(y1), c.snap(x2), c.snap(y2))
	c.keep("stroke line", c.dc.Stroke())
}

func (c *Canvas) DrawPath(p charts.Path) {
	if p.Empty() {
		return
	}
	start := p.Start()
	c.dc.MoveTo(c.snap(start.X), c.snap(start.Y))
	for _, s := range p.Segments() {
		switch s.Kind {
		case charts.LineSegment:
			c.dc.LineTo(c.snap(s.To.X), c.snap(s.To.Y))
		case charts.QuadSegment:
			c.dc.QuadraticTo(c.snap(s.Ctrl.X), c.snap(s.Ctrl.Y), c.snap(s.To.X), c.snap(s.To.Y))
		}
	}
	c.keep("stroke path", c.dc.Stroke())
}

// Err returns the first drawing error, if any.
func (c *Canvas) Err() error { return c.err }

// Image returns the canvas contents.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// Scaled returns the canvas contents resized to width by height, using
// bicubic interpolation when the Bicubic hint is set.
func (c *Canvas) Scaled(width, height int) image.Image {
	w, h := c.Size()
	if width == w && height == h {
		return c.Image()
	}
	return Scale(c.Image(), width, height, c.hints.Bicubic)
}

// WritePNG encodes the canvas as PNG, scaled by factor.
func (c *Canvas) WritePNG(w io.Writer, factor float64) error {
	if factor == 1 {
		return c.dc.EncodePNG(w)
	}
	if factor <= 0 {
		return fmt.Errorf("scale factor must be positive, got %v", factor)
	}
	width, height := c.Size()
	img := c.Scaled(max(int(math.Round(float64(width)*factor)), 1), max(int(math.Round(float64(height)*factor)), 1))
	return png.Encode(w, img)
}

// SavePNG writes the canvas to path as PNG, scaled by factor.
func (c *Canvas) SavePNG(path string, factor float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := c.WritePNG(f, factor); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// Close releases the drawing context.
func (c *Canvas) Close() error { return c.dc.Close() }

func (c *Canvas) snap(v float64) float64 {
	if c.hints.Antialias {
		return v
	}
	return math.Floor(v) + 0.5
}

func (c *Canvas) keep(op string, err error) {
	if err == nil {
		return
	}
	charts.Logger().Warn("raster draw failed", "op", op, "err", err)
	if c.err == nil {
		c.err = fmt.Errorf("%s: %w", op, err)
	}
}
