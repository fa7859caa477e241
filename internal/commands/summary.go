package commands

import (
	"context"
	"fmt"

	"github.com/akasprzok/multiline/internal/charts"
	"github.com/akasprzok/multiline/internal/source"
)

type SummaryCmd struct {
	SourceFlags `embed:""`
	RenderFlags `embed:""`

	Cols int `help:"Bar chart width in terminal cells. Defaults to the terminal width."`
}

func (s *SummaryCmd) Run(ctx *Context) error {
	series, warnings, err := s.Load(context.Background(), ctx.Timeout)
	if err != nil {
		return err
	}
	ctx.warn(warnings)

	chart, err := s.Chart(series)
	if err != nil {
		return err
	}
	cols := s.Cols
	if cols <= 0 {
		cols = terminalWidth()
	}

	fmt.Fprintln(ctx.Stdout, charts.Barchart(chart.Snapshot(), source.Names(series), chart.ColorFunction(), cols))
	return nil
}
