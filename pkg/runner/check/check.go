// Package check provides the runner that toggles a day's completion flag.
package check

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/tally/pkg/calendar"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/printers"
	"tableflip.dev/tally/pkg/store"
)

// Check toggles one habit's completion for one day. Habit accepts an id, a
// name, or a 1-based list position; Day is the 1-based day of the month.
type Check struct {
	Year  int
	Month time.Month
	Habit string
	Day   int
	Store *store.Store
}

// Do applies the toggle and reprints the habit's grid row.
func (n *Check) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not check, no store")
	}

	days := calendar.DaysIn(n.Year, n.Month)
	if n.Day < 1 || n.Day > days {
		return fmt.Errorf("day %d is outside %s", n.Day, n.Month)
	}

	rec, err := n.Store.Resolve(n.Year, n.Month)
	if err != nil {
		return err
	}
	id, ok := rec.Lookup(n.Habit)
	if !ok {
		return fmt.Errorf("no habit matches %q", n.Habit)
	}

	rec = habit.ToggleCheck(rec, id, n.Day-1)
	if err := n.Store.Save(n.Year, n.Month, rec); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	i := rec.Find(id)
	pp.Grid(n.Year, n.Month, habit.Record{Habits: []habit.Habit{rec.Habits[i]}})

	return nil
}
