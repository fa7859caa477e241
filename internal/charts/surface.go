package charts

import "image/color"

// Hints carry rendering quality switches to a surface. Neither affects path
// geometry.
type Hints struct {
	Antialias bool
	// Bicubic asks for bicubic interpolation when the surface's image is
	// rescaled.
	Bicubic bool
}

// Surface is a drawing target of fixed pixel size. Coordinates are in
// pixels with the origin at the top left. Surfaces retain their own errors;
// drawing calls never fail.
type Surface interface {
	Size() (width, height int)
	SetHints(Hints)
	SetColor(color.Color)
	SetLineWidth(float64)
	FillRect(x, y, w, h float64)
	DrawLine(x1, y1, x2, y2 float64)
	DrawPath(Path)
}
