package charts

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorFunction maps a color step to a display color.
// ColorAtStep may be undefined for steps at or past MaxSteps; callers wrap
// with StepColor.
type ColorFunction interface {
	ColorAtStep(step int) color.RGBA
	MaxSteps() int
}

// SeriesPalette is Paul Tol's qualitative color palette, designed for colorblind accessibility.
// See: https://personal.sron.nl/~pault/
var SeriesPalette = []string{
	"#4477AA", // Blue
	"#EE6677", // Rose
	"#228833", // Green
	"#CCBB44", // Olive/Yellow
	"#66CCEE", // Cyan
	"#AA3377", // Purple
	"#BBBBBB", // Grey
	"#EE8866", // Orange
	"#44BB99", // Teal
	"#FFAABB", // Pink
}

// AxisColor is the color used for terminal chart axes.
var AxisColor = lipgloss.Color("#CCBB44") // Olive/Yellow - high visibility

var errEmptyPalette = errors.New("palette has no colors")

// Palette cycles through a fixed list of colors.
type Palette []color.RGBA

// NewPalette parses hex colors into a Palette.
func NewPalette(hexes ...string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, errEmptyPalette
	}
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

// TolPalette returns SeriesPalette as a ColorFunction.
func TolPalette() Palette {
	p, err := NewPalette(SeriesPalette...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Palette) ColorAtStep(step int) color.RGBA { return p[step] }
func (p Palette) MaxSteps() int                   { return len(p) }

// Gradient interpolates between two colors in Lab space.
type Gradient struct {
	from, to colorful.Color
	steps    int
}

// NewGradient returns a gradient of steps colors running from one color to another.
func NewGradient(from, to color.Color, steps int) (*Gradient, error) {
	if steps < 1 {
		return nil, fmt.Errorf("gradient steps must be at least 1, got %d", steps)
	}
	f, _ := colorful.MakeColor(from)
	t, _ := colorful.MakeColor(to)
	return &Gradient{from: f, to: t, steps: steps}, nil
}

func (g *Gradient) ColorAtStep(step int) color.RGBA {
	if g.steps == 1 {
		return toRGBA(g.from)
	}
	return toRGBA(g.from.BlendLab(g.to, float64(step)/float64(g.steps-1)))
}

func (g *Gradient) MaxSteps() int { return g.steps }

// Wheel spaces colors evenly around the HCL hue circle at fixed chroma and
// luminance.
type Wheel struct {
	Steps     int
	Chroma    float64
	Luminance float64
}

// NewWheel returns a Wheel with chroma and luminance that read well on dark
// and light backgrounds alike.
func NewWheel(steps int) Wheel {
	return Wheel{Steps: max(steps, 1), Chroma: 0.6, Luminance: 0.65}
}

func (w Wheel) ColorAtStep(step int) color.RGBA {
	hue := 360 * float64(step) / float64(w.MaxSteps())
	return toRGBA(colorful.Hcl(hue, w.Chroma, w.Luminance))
}

func (w Wheel) MaxSteps() int { return max(w.Steps, 1) }

// Solid always returns one color.
type Solid color.RGBA

func (s Solid) ColorAtStep(int) color.RGBA { return color.RGBA(s) }
func (s Solid) MaxSteps() int              { return 1 }

// FallbackColor is what StepColor returns for a nil or empty color function.
var FallbackColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// StepColor returns the color for series index, wrapping around the
// function's steps so that any index is valid. A nil function, or one with
// no steps, yields FallbackColor.
func StepColor(fn ColorFunction, index int) color.RGBA {
	if fn == nil {
		return FallbackColor
	}
	steps := fn.MaxSteps()
	if steps <= 0 {
		return FallbackColor
	}
	index %= steps
	if index < 0 {
		index += steps
	}
	return fn.ColorAtStep(index)
}

// SeriesStyle returns a lipgloss style with the foreground color for the given series index.
func SeriesStyle(fn ColorFunction, index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(StepColor(fn, index))))
}

// Inverse returns the per-channel complement of c, keeping alpha.
func Inverse(c color.RGBA) color.RGBA {
	return color.RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// ParseColor parses "#rrggbb" or "#rgb" into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	return toRGBA(c), nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
