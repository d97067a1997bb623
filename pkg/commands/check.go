package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/commands/options"
	"tableflip.dev/tally/pkg/runner/check"
	"tableflip.dev/tally/pkg/store"
)

func addCheck(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	ho := &options.HabitOptions{}
	day := 0

	cmd := &cobra.Command{
		Use:     "check <habit> <day>",
		Aliases: []string{"toggle", "x"},
		Short:   "Toggle a habit's completion for a day",
		Example: `
tally check Exercise 12
tally check 3 12
tally check Read 1 --month 2026-07
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a habit and a day")
			}
			ho.Habit = args[0]
			var err error
			day, err = strconv.Atoi(args[1])
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
			r := check.Check{
				Year:  year,
				Month: month,
				Habit: ho.Habit,
				Day:   day,
				Store: s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
