package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/monthkey"
)

const labelWidth = 20

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(monthkey.Title(m.year, m.month)))
	b.WriteString("\n\n")

	// Day header.
	b.WriteString(strings.Repeat(" ", labelWidth))
	for day := 0; day < m.days; day++ {
		cell := fmt.Sprintf("%2d ", day+1)
		if day == m.col {
			cell = cursorStyle.Render(cell)
		} else {
			cell = faintStyle.Render(cell)
		}
		b.WriteString(cell)
	}
	b.WriteString("\n")

	for i, h := range m.rec.Habits {
		b.WriteString(label(fmt.Sprintf("%s %s", h.Icon, h.Name)))
		for day := 0; day < m.days; day++ {
			mark := " · "
			style := faintStyle
			if day < len(h.Checks) && h.Checks[day] {
				mark = " ✓ "
				style = doneStyle
			}
			if i == m.row && day == m.col {
				style = cursorStyle
			}
			b.WriteString(style.Render(mark))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.ratingRow("Mood", habit.MoodSeries(m.rec.MentalState), len(m.rec.Habits)))
	b.WriteString(m.ratingRow("Motivation", habit.MotivationSeries(m.rec.MentalState), len(m.rec.Habits)+1))

	b.WriteString("\n")
	if m.mode == modeRename {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")

	return b.String()
}

func (m Model) ratingRow(name string, values []int, rowIdx int) string {
	var b strings.Builder
	b.WriteString(label(name))
	for day := 0; day < m.days && day < len(values); day++ {
		cell := " · "
		style := faintStyle
		if values[day] != 0 {
			cell = fmt.Sprintf("%2d ", values[day])
			style = doneStyle
		}
		if m.row == rowIdx && day == m.col {
			style = cursorStyle
		}
		b.WriteString(style.Render(cell))
	}
	b.WriteString("\n")
	return b.String()
}

func label(s string) string {
	if len([]rune(s)) > labelWidth-1 {
		s = string([]rune(s)[:labelWidth-1])
	}
	return labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, s))
}
