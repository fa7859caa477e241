package tui

import (
	"fmt"
	"strconv"

	"github.com/akasprzok/multiline/internal/source"
	"github.com/akasprzok/multiline/internal/tables"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"
)

func (m TUIModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.reload(),
	)
}

func (m TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		*m.dirty = true

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case loadResultMsg:
		m = m.handleLoadResult(msg)

	case spinner.TickMsg:
		if m.state == StateLoading {
			m.spinner, cmd = m.spinner.Update(msg)
		}

	default:
		if m.focusedPane == PaneAppend {
			m.appendInput, cmd = m.appendInput.Update(msg)
		}
	}

	if *m.dirty {
		m = m.renderChart()
	}
	return m, cmd
}

func (m TUIModel) handleKeyMsg(msg tea.KeyMsg) (TUIModel, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.focusedPane == PaneAppend {
		return m.handleAppendKey(msg)
	}
	if m.state == StateLoading {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s":
		m.cfg.Smooth = !m.cfg.Smooth
	case "a":
		m.cfg.Antialias = !m.cfg.Antialias
	case "b":
		m.cfg.Bicubic = !m.cfg.Bicubic
	case "p":
		m.palette = (m.palette + 1) % len(m.palettes)
		m.chart.SetColorFunction(m.palettes[m.palette].Colors)
	case "m":
		if m.mode == ModeBlocks {
			m.mode = ModeBraille
		} else {
			m.mode = ModeBlocks
		}
	case "tab":
		return m.handleTabKey(), nil
	case "/":
		m.focusedPane = PaneAppend
		m.appendErr = nil
		return m, m.appendInput.Focus()
	case "r":
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, m.reload())
	default:
		var cmd tea.Cmd
		m.legendTable, cmd = m.legendTable.Update(msg)
		return m, cmd
	}

	*m.dirty = true
	return m, nil
}

// handleTabKey moves the append target to the next series, wrapping around.
func (m TUIModel) handleTabKey() TUIModel {
	if m.chart.Len() == 0 {
		return m
	}
	next := (m.chart.TargetSeries() + 1) % m.chart.Len()
	if err := m.chart.SetTargetSeries(next); err != nil {
		m.appendErr = err
		return m
	}
	*m.dirty = true
	return m
}

func (m TUIModel) handleAppendKey(msg tea.KeyMsg) (TUIModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focusedPane = PaneChart
		m.appendInput.Blur()
		return m, nil
	case "enter":
		samples, err := ParseSamples(m.appendInput.Value())
		if err != nil {
			m.appendErr = err
			return m, nil
		}
		if err := m.chart.AppendToTargetSeries(samples...); err != nil {
			m.appendErr = err
			return m, nil
		}
		m.appendErr = nil
		m.appendInput.SetValue("")
		m.appendInput.Blur()
		m.focusedPane = PaneChart
		return m, nil
	}

	var cmd tea.Cmd
	m.appendInput, cmd = m.appendInput.Update(msg)
	return m, cmd
}

func (m TUIModel) handleLoadResult(msg loadResultMsg) TUIModel {
	m.warnings = msg.warnings
	if msg.err != nil {
		m.state = StateError
		m.err = msg.err
		return m
	}

	m.state = StateReady
	m.err = nil
	target := m.chart.TargetSeries()
	m.chart = m.newChart(msg.series)
	m.names = source.Names(msg.series)
	if target >= m.chart.Len() {
		target = 0
	}
	if err := m.chart.SetTargetSeries(target); err != nil {
		m.appendErr = err
	}
	*m.dirty = true
	return m
}

func (m TUIModel) renderChart() TUIModel {
	*m.dirty = false
	if m.state != StateReady {
		return m
	}

	cols, rows := m.chartSize()
	content, err := RenderTerminal(m.chart, m.cfg, m.mode, cols, rows)
	if err != nil {
		content = ErrorStyle.Render("Render failed: ") + err.Error()
	}
	m.chartContent = content
	return m.updateLegendTable()
}

// updateLegendTable refreshes the legend in place, so the highlighted row and
// page survive a redraw.
func (m TUIModel) updateLegendTable() TUIModel {
	series := source.FromDataSet(m.chart.Snapshot(), m.names)
	m.legendTable = m.legendTable.
		WithColumns(legendColumns(series)).
		WithRows(tables.Rows(series, m.chart.ColorFunction(), m.chart.TargetSeries())).
		Focused(m.focusedPane == PaneChart)
	return m
}

func legendColumns(series []source.Series) []teatable.Column {
	columns := tables.Columns(series)
	return []teatable.Column{columns[1], columns[2], columns[3], columns[4], columns[7]}
}

func (m TUIModel) statusText() string {
	target := "-"
	if m.chart.Len() > 0 {
		target = strconv.Itoa(m.chart.TargetSeries())
	}
	return fmt.Sprintf("%s  %s  %s   palette: %s   surface: %s   target: %s   series: %d",
		toggle("smooth", m.cfg.Smooth),
		toggle("antialias", m.cfg.Antialias),
		toggle("bicubic", m.cfg.Bicubic),
		m.palettes[m.palette].Name,
		m.mode,
		target,
		m.chart.Len(),
	)
}
