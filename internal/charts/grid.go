package charts

import "image/color"

// gridParams is what drawGrid needs from one render pass.
type gridParams struct {
	width, height int
	seriesCount   int
	maxSample     int
	tickInterval  int
	geometry      Geometry
	// degenerate skips everything but the background and center axis.
	degenerate bool
}

// drawGrid paints the background and the guide marks. Marks use the inverse
// of the background so they stay visible on any background.
func drawGrid(s Surface, background color.RGBA, p gridParams) {
	w, h := float64(p.width), float64(p.height)

	s.SetColor(background)
	s.FillRect(0, 0, w, h)
	s.SetColor(Inverse(background))

	if !p.degenerate {
		hs, vs := p.geometry.HStep, p.geometry.VStep
		interval := max(p.tickInterval, 1)
		for i := 0; i < p.seriesCount; i++ {
			x0, x1 := hs*float64(i-1), hs*float64(i)
			s.DrawLine(x0, 0, x1, 0)
			if i%interval == 0 {
				s.DrawLine(x1, -vs, x1, vs)
			}
		}
	}

	s.DrawLine(w/2, 0, w/2, h)

	hs, vs := p.geometry.HStep, p.geometry.VStep
	if p.degenerate || p.maxSample <= 0 || !(vs > 0) {
		return
	}
	limit := h / (2 * float64(p.maxSample))
	// At most one minor tick per pixel row.
	for i := 0; i <= p.height && float64(i)*vs < limit; i++ {
		y := vs * float64(i)
		s.DrawLine(0, y, hs, y)
	}
}
