package tui

import (
	"context"
	"time"

	"github.com/akasprzok/multiline/internal/charts"
	"github.com/akasprzok/multiline/internal/source"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
)

// Loader fetches the series to chart. It is called on start and on reload.
type Loader func(ctx context.Context) ([]source.Series, v1.Warnings, error)

// Palette is a named color function the viewer can cycle through.
type Palette struct {
	Name   string
	Colors charts.ColorFunction
}

// TUIState represents the current state of the TUI.
type TUIState int

const (
	StateLoading TUIState = iota
	StateReady
	StateError
)

// FocusedPane tracks which pane has focus.
type FocusedPane int

const (
	PaneChart FocusedPane = iota
	PaneAppend
)

// loadResultMsg carries the result of a Loader call.
type loadResultMsg struct {
	series   []source.Series
	warnings v1.Warnings
	err      error
}

// TUIModel is the Bubble Tea model of the chart viewer.
type TUIModel struct {
	load    Loader
	timeout time.Duration

	chart    *charts.Chart
	names    []string
	cfg      charts.Config
	palettes []Palette
	palette  int
	mode     SurfaceMode
	// dirty is set by the chart after every mutation.
	dirty *bool

	state    TUIState
	warnings v1.Warnings
	err      error

	appendInput textinput.Model
	appendErr   error

	chartContent string
	legendTable  teatable.Model

	width       int
	height      int
	focusedPane FocusedPane
	spinner     spinner.Model
}

// NewTUIModel creates a viewer that charts whatever load returns. Palettes
// must not be empty; the first one is active initially.
func NewTUIModel(load Loader, cfg charts.Config, palettes []Palette, mode SurfaceMode, timeout time.Duration) TUIModel {
	ti := textinput.New()
	ti.Placeholder = "samples, e.g. 4 8 15"
	ti.Width = 40

	if len(palettes) == 0 {
		palettes = []Palette{{Name: "tol", Colors: charts.TolPalette()}}
	}

	m := TUIModel{
		load:        load,
		timeout:     timeout,
		cfg:         cfg,
		palettes:    palettes,
		mode:        mode,
		dirty:       new(bool),
		state:       StateLoading,
		appendInput: ti,
		legendTable: teatable.New(legendColumns(nil)).WithPageSize(LegendMaxRows).Focused(true),
		focusedPane: PaneChart,
		spinner:     NewLoadingSpinner(),
	}
	m.chart = m.newChart(nil)
	return m
}

// Chart returns the chart being viewed.
func (m TUIModel) Chart() *charts.Chart { return m.chart }

// Config returns the active render configuration.
func (m TUIModel) Config() charts.Config { return m.cfg }

// State returns the load state.
func (m TUIModel) State() TUIState { return m.state }

func (m TUIModel) newChart(series []source.Series) *charts.Chart {
	dirty := m.dirty
	c := charts.New(
		charts.WithColorFunction(m.palettes[m.palette].Colors),
		charts.WithRedraw(func() { *dirty = true }),
	)
	source.Fill(c, series)
	return c
}

func (m TUIModel) chartSize() (int, int) {
	cols := DefaultTerminalWidth
	if m.width > 0 {
		cols = m.width
	}
	cols -= ChartWidthPadding
	_, rows := charts.TerminalSize(cols)
	if m.height > 0 {
		free := m.height - ReservedRows - min(m.chart.Len(), LegendMaxRows)
		rows = min(rows, max(free, charts.MinChartHeight))
	}
	return max(cols, 1), rows
}

func (m TUIModel) reload() tea.Cmd {
	load, timeout := m.load, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		series, warnings, err := load(ctx)
		return loadResultMsg{series: series, warnings: warnings, err: err}
	}
}
