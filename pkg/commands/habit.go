package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/commands/options"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/runner/habits"
	"tableflip.dev/tally/pkg/store"
)

func addHabit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage the month's habit list",
		Example: `
tally habit add --name "Floss" --icon 🦷
tally habit edit Floss --name "Floss twice"
tally habit rm Floss --yes
tally habit mv Floss up
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addHabitAdd(cmd)
	addHabitEdit(cmd)
	addHabitRemove(cmd)
	addHabitMove(cmd)

	topLevel.AddCommand(cmd)
}

func addHabitAdd(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	ho := &options.HabitOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a habit to the month",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := mo.Resolve()
			if err != nil {
				return err
			}
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := habits.Add{
				Year:  year,
				Month: month,
				Name:  ho.Name,
				Icon:  ho.Icon,
				Store: s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddNameIconArgs(cmd, ho)

	topLevel.AddCommand(cmd)
}

func addHabitEdit(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	ho := &options.HabitOptions{}

	cmd := &cobra.Command{
		Use:     "edit <habit>",
		Aliases: []string{"rename"},
		Short:   "Rename a habit or change its icon",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a habit")
			}
			ho.Habit = args[0]
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
			r := habits.Edit{
				Year:  year,
				Month: month,
				Habit: ho.Habit,
				Name:  ho.Name,
				Icon:  ho.Icon,
				Store: s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddNameIconArgs(cmd, ho)

	topLevel.AddCommand(cmd)
}

func addHabitRemove(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	ho := &options.HabitOptions{}

	cmd := &cobra.Command{
		Use:     "rm <habit>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a habit from the month",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a habit")
			}
			ho.Habit = args[0]
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
			r := habits.Remove{
				Year:      year,
				Month:     month,
				Habit:     ho.Habit,
				Confirmed: ho.Yes,
				Store:     s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddConfirmArg(cmd, ho)

	topLevel.AddCommand(cmd)
}

func addHabitMove(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	ho := &options.HabitOptions{}
	var dir habit.Direction

	cmd := &cobra.Command{
		Use:     "mv <habit> <up|down>",
		Aliases: []string{"move"},
		Short:   "Move a habit up or down the list",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a habit and a direction")
			}
			ho.Habit = args[0]
			var err error
			dir, err = habit.ParseDirection(args[1])
			return err
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
			r := habits.Move{
				Year:      year,
				Month:     month,
				Habit:     ho.Habit,
				Direction: dir,
				Store:     s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
