package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale resizes src to width by height. Bicubic selects Catmull-Rom
// interpolation; otherwise pixels are sampled nearest-neighbor.
func Scale(src image.Image, width, height int, bicubic bool) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	var scaler draw.Scaler = draw.NearestNeighbor
	if bicubic {
		scaler = draw.CatmullRom
	}
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
