// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/monthkey"
)

// MonthOptions selects the month a command operates on.
type MonthOptions struct {
	Month  string
	Offset int
}

// AddMonthArgs wires month-selection flags on the provided command.
func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Month to operate on, example: --month="2026-08". Defaults to the current month.`)
	cmd.Flags().IntVar(&o.Offset, "offset", 0,
		"Navigate relative to the selected month, example: --offset=-1.")
}

// Resolve returns the (year, month) the flags select.
func (o *MonthOptions) Resolve() (int, time.Month, error) {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if o.Month != "" {
		var err error
		year, month, err = monthkey.Parse(o.Month)
		if err != nil {
			return 0, 0, err
		}
	}
	if o.Offset != 0 {
		year, month = monthkey.Add(year, month, o.Offset)
	}
	return year, month, nil
}
