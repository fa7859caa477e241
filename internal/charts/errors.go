package charts

import "errors"

var (
	// ErrIndexOutOfRange is returned when a series index, or the target series
	// pointer, does not address a series in the data set.
	ErrIndexOutOfRange = errors.New("series index out of range")

	// ErrDivisionByZero reports degenerate geometry: no series, or a data set
	// whose samples are all equal. Render recovers from it by drawing the grid only.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidRange reports a value range that cannot scale a surface.
	ErrInvalidRange = errors.New("invalid value range")
)
