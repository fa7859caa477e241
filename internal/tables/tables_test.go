package tables

import (
	"strings"
	"testing"

	"github.com/akasprzok/multiline/internal/charts"
	"github.com/akasprzok/multiline/internal/source"
	tea "github.com/charmbracelet/bubbletea"
)

func TestRows(t *testing.T) {
	series := []source.Series{
		{Name: "cpu", Samples: []int{3, -1, 7, 2}},
		{Samples: []int{5}},
		{Name: "idle"},
	}
	rows := Rows(series, charts.TolPalette(), 1)

	if len(rows) != 3 {
		t.Fatalf("Rows() returned %d rows, want 3", len(rows))
	}

	tests := []struct {
		name string
		row  int
		key  string
		want any
	}{
		{name: "name", row: 0, key: KeyName, want: "cpu"},
		{name: "count", row: 0, key: KeyCount, want: "4"},
		{name: "min", row: 0, key: KeyMin, want: "-1"},
		{name: "max", row: 0, key: KeyMax, want: "7"},
		{name: "last", row: 0, key: KeyLast, want: "2"},
		{name: "positional name", row: 1, key: KeyName, want: "series 1"},
		{name: "target marker", row: 1, key: KeyTarget, want: "→"},
		{name: "empty series min", row: 2, key: KeyMin, want: "-"},
		{name: "empty series count", row: 2, key: KeyCount, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rows[tt.row].Data[tt.key]; got != tt.want {
				t.Errorf("row %d %s = %v, want %v", tt.row, tt.key, got, tt.want)
			}
		})
	}

	if _, ok := rows[0].Data[KeyTarget]; ok {
		t.Error("row 0 is marked as target")
	}
}

func TestRowsWithoutColorSteps(t *testing.T) {
	series := []source.Series{{Name: "a", Samples: []int{1}}, {Name: "b"}}
	for _, fn := range []charts.ColorFunction{nil, charts.Wheel{}, charts.Palette{}} {
		if rows := Rows(series, fn, 0); len(rows) != 2 {
			t.Errorf("Rows(%T) returned %d rows, want 2", fn, len(rows))
		}
	}
}

func TestColumns(t *testing.T) {
	long := strings.Repeat("x", 100)
	cols := Columns([]source.Series{{Name: long, Samples: []int{1}}})
	if len(cols) != 8 {
		t.Fatalf("Columns() returned %d columns, want 8", len(cols))
	}
	for _, c := range cols {
		if c.Key() == KeyName && c.Width() != 60 {
			t.Errorf("name column width = %d, want 60", c.Width())
		}
	}
}

func TestModel(t *testing.T) {
	series := []source.Series{
		{Name: "alpha", Samples: []int{1, 2}},
		{Name: "beta", Samples: []int{3}},
	}
	m := New(series, charts.TolPalette(), 0)

	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should return nil")
	}

	view := m.View()
	for _, want := range []string{"alpha", "beta", "Press /"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = updated.(Model)
	if !m.filterTextInput.Focused() {
		t.Fatal("'/' did not focus the filter input")
	}
	for _, r := range "bet" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	if got := m.filterTextInput.Value(); got != "bet" {
		t.Errorf("filter = %q, want %q", got, "bet")
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.filterTextInput.Focused() {
		t.Error("enter did not blur the filter input")
	}
	if strings.Contains(m.View(), "alpha") {
		t.Error("filtered View() still shows alpha")
	}
}

func TestModelQuit(t *testing.T) {
	m := New(nil, charts.TolPalette(), 0)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("Update(%q) returned nil command", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Update(%q) did not quit", key.String())
		}
	}
}
