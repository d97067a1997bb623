// Package key prints the starter habit template legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tally/pkg/habit"
)

// Key prints the default template applied on first use.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ICON", "HABIT", "GOAL")
	for _, s := range habit.DefaultTemplate() {
		tbl.AddRow(s.Icon, s.Name, fmt.Sprintf("%d", habit.DefaultGoal))
	}

	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, "\nStarter habits")
	_, _ = fmt.Fprintln(color.Output, tbl)

	return nil
}
