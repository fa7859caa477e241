package tui

const (
	// DefaultTerminalWidth is used before the first window size message.
	DefaultTerminalWidth = 80

	// ChartWidthPadding is the border and padding around the chart pane.
	ChartWidthPadding = 4

	// ReservedRows is the height taken by everything but the chart and
	// legend rows: status, borders, append input, help.
	ReservedRows = 14

	// LegendMaxRows caps the legend table page.
	LegendMaxRows = 8
)
