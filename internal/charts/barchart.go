package charts

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
)

// Barchart draws one horizontal bar per series showing its latest sample,
// colored the way the line chart colors that series. Empty series are skipped.
func Barchart(data DataSet, names []string, fn ColorFunction, width int) string {
	barData := make([]barchart.BarData, 0, data.Len())
	for i, series := range data {
		if len(series) == 0 {
			continue
		}
		name := SeriesName(names, i)
		last := series[len(series)-1]
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%d)", name, last),
			Values: []barchart.BarValue{
				{Name: name, Value: float64(last), Style: SeriesStyle(fn, i)},
			},
		})
	}

	bc := barchart.New(width, max(len(barData)*2, 1), barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}

// SeriesName returns names[i], or a positional name when names has none.
func SeriesName(names []string, i int) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}
	return fmt.Sprintf("series %d", i)
}
