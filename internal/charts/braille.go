package charts

import (
	"image/color"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
)

// BrailleSurface is a Surface drawn into the terminal with braille runes.
// It addresses a virtual pixel space of width by height and maps it onto
// cols by rows terminal cells. Fills only set the background of the output.
type BrailleSurface struct {
	lc         linechart.Model
	width      int
	height     int
	style      lipgloss.Style
	background lipgloss.Style
}

// NewBrailleSurface creates a terminal surface of cols by rows cells that
// accepts coordinates in a width by height pixel space.
func NewBrailleSurface(cols, rows, width, height int) *BrailleSurface {
	cols, rows = max(cols, 1), max(rows, 1)
	lc := linechart.New(cols, rows, 0, float64(width), 0, float64(height))
	lc.AxisStyle = lipgloss.NewStyle().Foreground(AxisColor)
	lc.SetXStep(0)
	lc.SetYStep(0)
	return &BrailleSurface{
		lc:         lc,
		width:      width,
		height:     height,
		style:      lipgloss.NewStyle(),
		background: lipgloss.NewStyle(),
	}
}

// TerminalSize picks a cell grid for a terminal of the given width, keeping
// the chart's aspect ratio near width/ChartHeightRatio.
func TerminalSize(cols int) (int, int) {
	return cols, max(cols/ChartHeightRatio, MinChartHeight)
}

func (b *BrailleSurface) Size() (int, int) { return b.width, b.height }

// SetHints is a no-op: braille dots are neither antialiased nor rescaled.
func (b *BrailleSurface) SetHints(Hints) {}

// SetLineWidth is a no-op: braille lines are one dot wide.
func (b *BrailleSurface) SetLineWidth(float64) {}

func (b *BrailleSurface) SetColor(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	b.style = lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(rgba)))
}

// FillRect records the current color as the output background. Only a fill
// of the whole surface is meaningful here.
func (b *BrailleSurface) FillRect(_, _, _, _ float64) {
	b.background = lipgloss.NewStyle().Background(b.style.GetForeground())
}

func (b *BrailleSurface) DrawLine(x1, y1, x2, y2 float64) {
	b.lc.DrawBrailleLineWithStyle(b.point(x1, y1), b.point(x2, y2), b.style)
}

func (b *BrailleSurface) DrawPath(p Path) {
	pts := p.Flatten(curveSegments)
	for i := 1; i < len(pts); i++ {
		b.DrawLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
	}
}

// View renders the surface for display.
func (b *BrailleSurface) View() string {
	return b.background.Render(b.lc.View())
}

// point converts surface pixels to chart coordinates. The chart's Y axis
// grows upwards, so Y is flipped; points outside the surface are clamped.
func (b *BrailleSurface) point(x, y float64) canvas.Float64Point {
	x = min(max(x, 0), float64(b.width))
	y = min(max(y, 0), float64(b.height))
	return canvas.Float64Point{X: x, Y: float64(b.height) - y}
}
