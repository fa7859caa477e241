package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akasprzok/multiline/internal/charts"
	"github.com/akasprzok/multiline/internal/prometheus"
	"github.com/akasprzok/multiline/internal/source"
	"github.com/akasprzok/multiline/internal/tui"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
)

var errNoSource = errors.New("no data source: pass --file, or --prometheus-url with --query")

// SourceFlags select where series come from.
type SourceFlags struct {
	File          string        `help:"Data file (.yaml, .yml, .json or .xlsx)." short:"f" type:"existingfile"`
	Sheet         string        `help:"Worksheet of an xlsx file. Defaults to the first one."`
	Header        string        `help:"Whether the first row of an xlsx sheet names the series. Auto treats a row of numbers as samples." default:"auto" enum:"auto,yes,no"`
	PrometheusURL string        `help:"URL of the Prometheus endpoint." env:"MULTILINE_PROMETHEUS_URL" name:"prometheus-url"`
	Query         string        `help:"PromQL range query." short:"q"`
	Range         time.Duration `name:"range" short:"r" help:"Range to query." default:"1h"`
	Step          time.Duration `name:"step" short:"s" help:"Step interval for range queries." default:"1m"`
}

// Load reads the selected source. A file wins over Prometheus.
func (f *SourceFlags) Load(ctx context.Context, timeout time.Duration) ([]source.Series, v1.Warnings, error) {
	if f.File != "" {
		series, err := source.LoadFile(f.File, source.Workbook{Sheet: f.Sheet, Header: source.Header(f.Header)})
		return series, nil, err
	}
	if f.PrometheusURL == "" || f.Query == "" {
		return nil, nil, errNoSource
	}
	client, err := prometheus.NewClient(f.PrometheusURL)
	if err != nil {
		return nil, nil, err
	}
	return source.Query(ctx, client, f.Query, prometheus.RangeEnding(time.Now(), f.Range, f.Step), timeout)
}

// Loader binds Load for the interactive viewer.
func (f *SourceFlags) Loader(timeout time.Duration) tui.Loader {
	return func(ctx context.Context) ([]source.Series, v1.Warnings, error) {
		return f.Load(ctx, timeout)
	}
}

// RenderFlags map onto a charts.Config and a color function.
type RenderFlags struct {
	Width        int     `help:"Image width in pixels." default:"800"`
	Height       int     `help:"Image height in pixels." default:"400"`
	Smooth       bool    `help:"Draw series as quadratic curves."`
	Antialias    bool    `help:"Antialias lines." default:"true" negatable:""`
	Bicubic      bool    `help:"Use bicubic interpolation when rescaling."`
	Background   string  `help:"Background color." default:"#000000"`
	Foreground   string  `help:"Series color when the palette has no colors." default:"#ffffff"`
	TickInterval int     `help:"Draw a major tick every N positions." default:"5"`
	LineWidth    float64 `help:"Stroke width." default:"1.5"`
	Palette      string  `help:"Series colors." default:"tol" enum:"tol,gradient,wheel"`
	GradientFrom string  `help:"First color of the gradient palette." default:"#4477aa"`
	GradientTo   string  `help:"Last color of the gradient palette." default:"#ee6677"`
	SampleBound  string  `help:"Which samples each line visits: the first series-count samples, or all of them." default:"series" enum:"series,samples"`
	Target       int     `help:"Series that appended samples go to." default:"0"`
}

// Config builds the render configuration.
func (f *RenderFlags) Config() (charts.Config, error) {
	cfg := charts.DefaultConfig()
	cfg.Smooth = f.Smooth
	cfg.Antialias = f.Antialias
	cfg.Bicubic = f.Bicubic
	cfg.TickInterval = f.TickInterval
	cfg.LineWidth = f.LineWidth

	var err error
	if cfg.Background, err = charts.ParseColor(f.Background); err != nil {
		return cfg, fmt.Errorf("--background: %w", err)
	}
	if cfg.Foreground, err = charts.ParseColor(f.Foreground); err != nil {
		return cfg, fmt.Errorf("--foreground: %w", err)
	}
	switch f.SampleBound {
	case charts.BoundSampleCount.String():
		cfg.SampleBound = charts.BoundSampleCount
	default:
		cfg.SampleBound = charts.BoundSeriesCount
	}
	return cfg, nil
}

// Palettes returns every palette sized for n series, with the selected one
// first.
func (f *RenderFlags) Palettes(n int) ([]tui.Palette, error) {
	from, err := charts.ParseColor(f.GradientFrom)
	if err != nil {
		return nil, fmt.Errorf("--gradient-from: %w", err)
	}
	to, err := charts.ParseColor(f.GradientTo)
	if err != nil {
		return nil, fmt.Errorf("--gradient-to: %w", err)
	}
	gradient, err := charts.NewGradient(from, to, max(n, 2))
	if err != nil {
		return nil, err
	}

	all := []tui.Palette{
		{Name: "tol", Colors: charts.TolPalette()},
		{Name: "gradient", Colors: gradient},
		{Name: "wheel", Colors: charts.NewWheel(n)},
	}
	for i, p := range all {
		if p.Name == f.Palette {
			all[0], all[i] = all[i], all[0]
			break
		}
	}
	return all, nil
}

// Chart builds a chart holding series, colored by the selected palette,
// with its target set.
func (f *RenderFlags) Chart(series []source.Series) (*charts.Chart, error) {
	palettes, err := f.Palettes(len(series))
	if err != nil {
		return nil, err
	}
	c := charts.New(charts.WithColorFunction(palettes[0].Colors))
	source.Fill(c, series)
	if err := c.SetTargetSeries(f.Target); err != nil {
		return nil, fmt.Errorf("--target: %w", err)
	}
	return c, nil
}

func (c *Context) warn(warnings v1.Warnings) {
	for _, w := range warnings {
		fmt.Fprintln(c.Stderr, tui.WarningStyle.Render("Warning: "+w))
	}
}
