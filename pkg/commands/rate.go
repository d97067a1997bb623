package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/commands/options"
	"tableflip.dev/tally/pkg/runner/rate"
	"tableflip.dev/tally/pkg/store"
)

func addRate(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	ro := &options.RateOptions{}
	day := 0

	cmd := &cobra.Command{
		Use:   "rate <day>",
		Short: "Record mood and motivation for a day",
		Example: `
tally rate 12 --mood 7
tally rate 12 --mood 7 --motivation 4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a day")
			}
			var err error
			day, err = strconv.Atoi(args[0])
			if err != nil {
				return errors.New("day must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := mo.Resolve()
			if err != nil {
				return err
			}
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := rate.Rate{
				Year:          year,
				Month:         month,
				Day:           day,
				Mood:          ro.Mood,
				SetMood:       cmd.Flags().Changed("mood"),
				Motivation:    ro.Motivation,
				SetMotivation: cmd.Flags().Changed("motivation"),
				Store:         s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddRateArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
