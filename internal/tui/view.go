package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m TUIModel) View() string {
	var s strings.Builder

	s.WriteString(barStyle.Width(m.width).Render(m.statusText()))
	s.WriteString("\n")

	switch m.state {
	case StateLoading:
		s.WriteString(m.renderLoadingState())
	case StateError:
		s.WriteString(m.renderErrorState())
	case StateReady:
		s.WriteString(m.renderReadyState())
	}

	s.WriteString(m.renderHelpBar())
	return s.String()
}

func (m TUIModel) renderLoadingState() string {
	loadingStyle := lipgloss.NewStyle().Padding(2, 4)
	return loadingStyle.Render(m.spinner.View()+" Loading series...") + "\n"
}

func (m TUIModel) renderErrorState() string {
	errorStyle := lipgloss.NewStyle().Padding(1, 2)
	return errorStyle.Render(ErrorStyle.Render("Error: ")+m.err.Error()) + "\n"
}

func (m TUIModel) renderReadyState() string {
	var s strings.Builder

	if len(m.warnings) > 0 {
		s.WriteString(WarningStyle.Render("Warnings:\n"))
		for _, w := range m.warnings {
			s.WriteString(WarningStyle.Render(fmt.Sprintf("  - %s\n", w)))
		}
	}

	if m.chart.Len() == 0 {
		s.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(1, 2).Render("No Data"))
		s.WriteString("\n")
	}
	s.WriteString(paneStyle.Render(m.chartContent))
	s.WriteString("\n")
	if m.chart.Len() > 0 {
		s.WriteString(paneStyle.Render(m.legendTable.View()))
		s.WriteString("\n")
	}

	inputStyle := paneStyle
	if m.focusedPane == PaneAppend {
		inputStyle = inputStyle.BorderForeground(focusedBorder)
	}
	label := lipgloss.NewStyle().Bold(true).Render("Append: ")
	s.WriteString(inputStyle.Render(label + m.appendInput.View()))
	s.WriteString("\n")
	if m.appendErr != nil {
		s.WriteString(ErrorStyle.Render("  " + m.appendErr.Error()))
		s.WriteString("\n")
	}
	return s.String()
}

func (m TUIModel) renderHelpBar() string {
	var helpText string
	if m.focusedPane == PaneAppend {
		helpText = "  enter: append to target | esc: cancel | ctrl+c: quit"
	} else {
		helpText = "  s: smooth | a: antialias | b: bicubic | p: palette | m: surface | tab: target | /: append | r: reload | q: quit"
	}
	return barStyle.Width(m.width).Render(helpText)
}
