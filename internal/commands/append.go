package commands

import (
	"fmt"

	"github.com/akasprzok/multiline/internal/charts"
	"github.com/akasprzok/multiline/internal/source"
)

type AppendCmd struct {
	File    string `arg:"" help:"Data file to read." type:"existingfile"`
	Sheet   string `help:"Worksheet of an xlsx file. Defaults to the first one."`
	Header  string `help:"Whether the first row of an xlsx sheet names the series. Auto treats a row of numbers as samples." default:"auto" enum:"auto,yes,no"`
	Samples []int  `help:"Samples to append, comma separated." required:"" sep:","`
	Target  int    `help:"Series to append to." default:"0"`
	Output  string `name:"output" short:"o" help:"File to write. Defaults to the input file."`
}

func (a *AppendCmd) Run(ctx *Context) error {
	series, err := source.LoadFile(a.File, source.Workbook{Sheet: a.Sheet, Header: source.Header(a.Header)})
	if err != nil {
		return err
	}

	chart := charts.New()
	source.Fill(chart, series)
	if err := chart.SetTargetSeries(a.Target); err != nil {
		return err
	}
	if err := chart.AppendToTargetSeries(a.Samples...); err != nil {
		return err
	}

	out := a.Output
	if out == "" {
		out = a.File
	}
	if err := source.SaveFile(out, a.Sheet, source.FromDataSet(chart.Snapshot(), source.Names(series))); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Stdout, "Appended %d samples to series %d in %s\n", len(a.Samples), a.Target, out)
	return nil
}
