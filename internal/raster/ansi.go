package raster

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// upperHalf is drawn with the top pixel as foreground and the bottom pixel
// as background, packing two image rows into one terminal row.
const upperHalf = "▀"

// ANSI encodes img as terminal rows of colored half blocks. Each cell covers
// one column and two rows of pixels; an odd last row is paired with black.
func ANSI(img image.Image) string {
	b := img.Bounds()
	var s strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			s.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := hex(img.At(x, y))
			bottom := "#000000"
			if y+1 < b.Max.Y {
				bottom = hex(img.At(x, y+1))
			}
			s.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(upperHalf))
		}
	}
	return s.String()
}

// Blocks renders the canvas for a terminal of cols by rows cells.
func (c *Canvas) Blocks(cols, rows int) string {
	return ANSI(c.Scaled(max(cols, 1), max(rows, 1)*2))
}

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
