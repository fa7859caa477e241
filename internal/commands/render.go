package commands

import (
	"context"
	"fmt"

	"github.com/akasprzok/multiline/internal/raster"
)

type RenderCmd struct {
	SourceFlags `embed:""`
	RenderFlags `embed:""`

	Output string  `name:"output" short:"o" help:"PNG file to write." default:"chart.png"`
	Scale  float64 `help:"Scale the image by this factor before writing." default:"1"`
}

func (r *RenderCmd) Run(ctx *Context) error {
	series, warnings, err := r.Load(context.Background(), ctx.Timeout)
	if err != nil {
		return err
	}
	ctx.warn(warnings)

	cfg, err := r.Config()
	if err != nil {
		return err
	}
	chart, err := r.Chart(series)
	if err != nil {
		return err
	}

	canvas := raster.New(r.Width, r.Height)
	defer canvas.Close()
	chart.Render(canvas, cfg)
	if err := canvas.Err(); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	if err := canvas.SavePNG(r.Output, r.Scale); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Stdout, "Wrote %d series to %s\n", chart.Len(), r.Output)
	return nil
}
