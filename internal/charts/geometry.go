package charts

import (
	"fmt"
	"math"
)

// Geometry holds the pixel scale factors shared by every series.
type Geometry struct {
	// HStep is pixels per series index unit.
	HStep float64
	// VStep is pixels per unit of sample value.
	VStep float64
}

// ComputeGeometry derives the scale factors for a surface of width by height
// pixels. It fails with ErrDivisionByZero when seriesCount or valueRange is 0,
// and with ErrInvalidRange when valueRange is negative or not finite.
func ComputeGeometry(width, height, seriesCount int, valueRange float64) (Geometry, error) {
	if seriesCount == 0 {
		return Geometry{}, fmt.Errorf("horizontal step for %dpx over no series: %w", width, ErrDivisionByZero)
	}
	if valueRange == 0 {
		return Geometry{}, fmt.Errorf("vertical step for %dpx over a flat value range: %w", height, ErrDivisionByZero)
	}
	if valueRange < 0 || math.IsInf(valueRange, 0) || math.IsNaN(valueRange) {
		return Geometry{}, fmt.Errorf("vertical step over value range %v: %w", valueRange, ErrInvalidRange)
	}
	return Geometry{
		HStep: float64(width) / float64(seriesCount),
		VStep: float64(height) / valueRange,
	}, nil
}
