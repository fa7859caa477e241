package charts

import "image/color"

// Config is the host-supplied rendering configuration for one render pass.
type Config struct {
	Antialias bool
	// Bicubic only affects how a surface rescales its image.
	Bicubic bool
	// Smooth draws series as quadratic curves instead of polylines.
	Smooth     bool
	Background color.RGBA
	// Foreground colors series when the chart has no usable ColorFunction.
	Foreground color.RGBA
	// TickInterval draws a major tick on every Nth horizontal position.
	TickInterval int
	LineWidth    float64
	SampleBound  SampleBound
}

// DefaultConfig returns an antialiased, straight-line configuration drawing
// on black.
func DefaultConfig() Config {
	return Config{
		Antialias:    true,
		Background:   color.RGBA{A: 0xff},
		Foreground:   color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		TickInterval: DefaultTickInterval,
		LineWidth:    DefaultLineWidth,
		SampleBound:  BoundSeriesCount,
	}
}

// Hints returns the surface hints carried by c.
func (c Config) Hints() Hints {
	return Hints{Antialias: c.Antialias, Bicubic: c.Bicubic}
}
