package commands

import (
	"context"

	"github.com/akasprzok/multiline/internal/source"
)

type DumpCmd struct {
	SourceFlags `embed:""`

	Output string `name:"output" short:"o" help:"Output format." default:"yaml" enum:"json,yaml"`
}

func (d *DumpCmd) Run(ctx *Context) error {
	series, warnings, err := d.Load(context.Background(), ctx.Timeout)
	if err != nil {
		return err
	}
	ctx.warn(warnings)
	return source.Encode(ctx.Stdout, source.Format(d.Output), series)
}
