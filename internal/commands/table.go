package commands

import (
	"context"

	"github.com/akasprzok/multiline/internal/tables"
	tea "github.com/charmbracelet/bubbletea"
)

type TableCmd struct {
	SourceFlags `embed:""`
	RenderFlags `embed:""`
}

func (t *TableCmd) Run(ctx *Context) error {
	series, warnings, err := t.Load(context.Background(), ctx.Timeout)
	if err != nil {
		return err
	}
	ctx.warn(warnings)

	chart, err := t.Chart(series)
	if err != nil {
		return err
	}

	model := tables.New(series, chart.ColorFunction(), chart.TargetSeries())
	_, err = tea.NewProgram(model).Run()
	return err
}
