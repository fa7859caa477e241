// Package tables shows a data set as an interactive table.
package tables

import (
	"strconv"
	"strings"

	"github.com/akasprzok/multiline/internal/charts"
	"github.com/akasprzok/multiline/internal/source"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evertras/bubble-table/table"
)

const pageSize = 10

// Column keys of a data set table.
const (
	KeyIndex  = "index"
	KeyColor  = "color"
	KeyTarget = "target"
	KeyName   = "name"
	KeyCount  = "count"
	KeyMin    = "min"
	KeyMax    = "max"
	KeyLast   = "last"
)

type Model struct {
	table           table.Model
	filterTextInput textinput.Model
}

// New builds a filterable table with one row per series.
func New(series []source.Series, fn charts.ColorFunction, target int) Model {
	return Model{
		table: table.
			New(Columns(series)).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(pageSize).
			WithRows(Rows(series, fn, target)),
		filterTextInput: textinput.New(),
	}
}

// Columns sizes the table columns to fit series.
func Columns(series []source.Series) []table.Column {
	names := source.Names(series)
	longestName := len("Series")
	widest := 1
	for i, s := range series {
		longestName = max(longestName, len(charts.SeriesName(names, i)))
		for _, v := range s.Samples {
			widest = max(widest, len(strconv.Itoa(v)))
		}
	}

	return []table.Column{
		table.NewColumn(KeyIndex, "#", 4),
		table.NewColumn(KeyColor, "", 3),
		table.NewColumn(KeyTarget, "", 3),
		table.NewColumn(KeyName, "Series", min(longestName+1, 60)).WithFiltered(true),
		table.NewColumn(KeyCount, "Samples", 9),
		table.NewColumn(KeyMin, "Min", max(widest+1, 5)),
		table.NewColumn(KeyMax, "Max", max(widest+1, 5)),
		table.NewColumn(KeyLast, "Last", max(widest+1, 6)),
	}
}

// Rows describes every series with its color swatch and sample statistics.
// The target series is marked with an arrow.
func Rows(series []source.Series, fn charts.ColorFunction, target int) []table.Row {
	names := source.Names(series)
	rows := make([]table.Row, 0, len(series))
	for i, s := range series {
		data := table.RowData{
			KeyIndex: strconv.Itoa(i),
			KeyColor: charts.SeriesStyle(fn, i).Render("█"),
			KeyName:  charts.SeriesName(names, i),
			KeyCount: strconv.Itoa(len(s.Samples)),
			KeyMin:   "-",
			KeyMax:   "-",
			KeyLast:  "-",
		}
		if i == target {
			data[KeyTarget] = "→"
		}
		if lo, hi, ok := (charts.DataSet{s.Samples}).Extent(); ok {
			data[KeyMin] = strconv.Itoa(lo)
			data[KeyMax] = strconv.Itoa(hi)
			data[KeyLast] = strconv.Itoa(s.Samples[len(s.Samples)-1])
		}
		rows = append(rows, table.NewRow(data))
	}
	return rows
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, nil
		}

		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			return m, tea.Quit
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + letters to start filtering, and q or ctrl+c to quit")

	return body.String()
}
