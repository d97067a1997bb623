package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/commands/options"
	"tableflip.dev/tally/pkg/runner/show"
	"tableflip.dev/tally/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	stats := false

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"month", "view"},
		Short:   "Show a month's habits and progress",
		Example: `
tally show
tally show --month 2026-07
tally show --offset -1 --stats
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := mo.Resolve()
			if err != nil {
				return err
			}
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := show.Show{
				Year:  year,
				Month: month,
				Stats: stats,
				Store: s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	cmd.Flags().BoolVar(&stats, "stats", false,
		"Include the daily completion chart and mood/motivation rows.")

	topLevel.AddCommand(cmd)
}
