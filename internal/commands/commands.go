package commands

import (
	"io"
	"os"
	"time"
)

type Context struct {
	Timeout time.Duration
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewContext returns a Context writing to the process's standard streams.
func NewContext(timeout time.Duration) *Context {
	return &Context{Timeout: timeout, Stdout: os.Stdout, Stderr: os.Stderr}
}

// ConfigPaths are the JSON files flag defaults are read from, in order.
var ConfigPaths = []string{"~/.config/multiline/config.json", "multiline.json"}

// CLI is the command line of multiline.
type CLI struct {
	LogLevel string        `help:"Log level." default:"warn" enum:"debug,info,warn,error" env:"MULTILINE_LOG_LEVEL"`
	Timeout  time.Duration `help:"Timeout for Prometheus queries." default:"60s"`

	Render      RenderCmd      `cmd:"" help:"Render a chart to PNG."`
	Preview     PreviewCmd     `cmd:"" help:"Draw a chart in the terminal."`
	Summary     SummaryCmd     `cmd:"" help:"Show the latest sample of each series."`
	Table       TableCmd       `cmd:"" help:"Browse series in a table."`
	Dump        DumpCmd        `cmd:"" help:"Print the loaded series."`
	Append      AppendCmd      `cmd:"" help:"Append samples to a series of a data file."`
	TUI         TUICmd         `cmd:"" name:"tui" help:"Interactive chart viewer."`
	FormatQuery FormatQueryCmd `cmd:"" help:"Format query."`
}

var Cli CLI
