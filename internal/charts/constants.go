package charts

const (
	// ChartHeightRatio determines terminal chart height as width/ChartHeightRatio.
	ChartHeightRatio = 8

	// MinChartHeight is the floor for terminal chart height.
	MinChartHeight = 8

	// DefaultTickInterval draws a major tick on every fifth horizontal position.
	DefaultTickInterval = 5

	// DefaultLineWidth is the stroke width for series lines and grid marks.
	DefaultLineWidth = 1.5

	// curveSegments is how many line segments approximate one quadratic
	// segment on surfaces that cannot draw curves.
	curveSegments = 8
)
