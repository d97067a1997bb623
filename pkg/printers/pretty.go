// Package printers renders month records for the terminal.
package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tally/pkg/habit"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Habits prints the habit table: icon, name, completion against goal, and
// progress percent. Progress reflects the stored goal, which may exceed 100.
func (pp *PrettyPrint) Habits(rec habit.Record) {
	if len(rec.Habits) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "HABIT", "DONE", "GOAL", "PROGRESS")
	for i, h := range rec.Habits {
		tbl.AddRow(
			fmt.Sprintf("%d %s", i+1, h.Icon),
			h.Name,
			fmt.Sprintf("%d", habit.Total(h)),
			fmt.Sprintf("%d", h.Goal),
			fmt.Sprintf("%.0f%%", habit.ProgressPercent(h)),
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Summary prints the month's overall completion.
func (pp *PrettyPrint) Summary(sum habit.SummaryStat) {
	f := color.New(color.Faint)
	percent := 0
	if sum.TotalPossible > 0 {
		percent = sum.TotalActual * 100 / sum.TotalPossible
	}
	_, _ = f.Printf("%d of %d checks complete (%d%%)\n", sum.TotalActual, sum.TotalPossible, percent)
}
