package main

import (
	"os"

	"github.com/akasprzok/multiline/internal/commands"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := kong.Parse(&commands.Cli,
		kong.Name("multiline"),
		kong.Description("Multi-series line charts from data files and Prometheus, as PNG or in the terminal."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, commands.ConfigPaths...),
	)
	ctx.FatalIfErrorf(commands.SetupLogging(commands.Cli.LogLevel, os.Stderr))
	// Call the Run() method of the selected parsed command.
	err := ctx.Run(commands.NewContext(commands.Cli.Timeout))
	ctx.FatalIfErrorf(err)
}
