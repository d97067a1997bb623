// Package show provides the runner that prints a month's full view.
package show

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/tally/pkg/calendar"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/monthkey"
	"tableflip.dev/tally/pkg/printers"
	"tableflip.dev/tally/pkg/store"
)

// Show prints the habit grid, the habit table, and (optionally) the daily
// completion chart and mental-state rows for one month.
type Show struct {
	Year  int
	Month time.Month
	Stats bool
	Store *store.Store
}

// Do resolves the month's record and prints it.
func (n *Show) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not show, no store")
	}

	rec, err := n.Store.Resolve(n.Year, n.Month)
	if err != nil {
		return err
	}
	days := calendar.DaysIn(n.Year, n.Month)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(monthkey.Title(n.Year, n.Month))
	pp.NewLine()
	pp.Grid(n.Year, n.Month, rec)
	pp.Habits(rec)
	pp.Summary(habit.Summary(rec.Habits, days))

	if n.Stats {
		pp.NewLine()
		pp.Title("Daily completion")
		pp.Daily(habit.DailySeries(rec.Habits, days))
		pp.Mental(rec.MentalState)
	}

	return nil
}
