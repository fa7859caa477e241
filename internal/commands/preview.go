package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/akasprzok/multiline/internal/charts"
	"github.com/akasprzok/multiline/internal/tui"
	"golang.org/x/term"
)

type PreviewCmd struct {
	SourceFlags `embed:""`
	RenderFlags `embed:""`

	Mode string `help:"Terminal surface." default:"blocks" enum:"blocks,braille"`
	Cols int    `help:"Chart width in terminal cells. Defaults to the terminal width."`
	Rows int    `help:"Chart height in terminal cells. Defaults to a fraction of the width."`
}

func (p *PreviewCmd) Run(ctx *Context) error {
	series, warnings, err := p.Load(context.Background(), ctx.Timeout)
	if err != nil {
		return err
	}
	ctx.warn(warnings)

	cfg, err := p.Config()
	if err != nil {
		return err
	}
	chart, err := p.Chart(series)
	if err != nil {
		return err
	}
	mode, err := tui.ParseSurfaceMode(p.Mode)
	if err != nil {
		return err
	}

	cols, rows := p.size()
	out, err := tui.RenderTerminal(chart, cfg, mode, cols, rows)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout, out)
	return nil
}

func (p *PreviewCmd) size() (int, int) {
	cols := p.Cols
	if cols <= 0 {
		cols = terminalWidth()
	}
	_, rows := charts.TerminalSize(cols)
	if p.Rows > 0 {
		rows = p.Rows
	}
	return cols, rows
}

func terminalWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && termWidth > 0 {
		return termWidth
	}
	return tui.DefaultTerminalWidth
}
