package commands

import (
	"github.com/akasprzok/multiline/internal/charts"
	"github.com/akasprzok/multiline/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// TUICmd is the Kong command for the interactive viewer.
type TUICmd struct {
	SourceFlags `embed:""`
	RenderFlags `embed:""`

	Mode string `help:"Initial terminal surface." default:"blocks" enum:"blocks,braille"`
}

// Run starts the interactive viewer.
func (t *TUICmd) Run(ctx *Context) error {
	cfg, err := t.Config()
	if err != nil {
		return err
	}
	// The series count is unknown until the first load.
	palettes, err := t.Palettes(len(charts.SeriesPalette))
	if err != nil {
		return err
	}
	mode, err := tui.ParseSurfaceMode(t.Mode)
	if err != nil {
		return err
	}

	model := tui.NewTUIModel(t.Loader(ctx.Timeout), cfg, palettes, mode, ctx.Timeout)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
