// Package rate provides the runner that records a day's mood and motivation.
package rate

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

// Rate writes mood and/or motivation for one day. Values arrive as raw
// strings and are parsed leniently: empty or unparseable input reads as 0,
// everything clamps to 0-10.
type Rate struct {
	Year          int
	Month         time.Month
	Day           int
	Mood          string
	SetMood       bool
	Motivation    string
	SetMotivation bool
	Store         *store.Store
}

// Do applies the ratings and reprints the mental-state rows.
func (n *Rate) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not rate, no store")
	}
	if !n.SetMood && !n.SetMotivation {
		return errors.New("nothing to rate, set --mood or --motivation")
	}

	days := calendar.DaysIn(n.Year, n.Month)
	if n.Day < 1 || n.Day > days {
		return fmt.Errorf("day %d is outside %s", n.Day, n.Month)
	}

	rec, err := n.Store.Resolve(n.Year, n.Month)
	if err != nil {
		return err
	}
	if n.SetMood {
		rec = habit.SetMentalValue(rec, n.Day-1, habit.Mood, n.Mood)
	}
	if n.SetMotivation {
		rec = habit.SetMentalValue(rec, n.Day-1, habit.Motivation, n.Motivation)
	}
	if err := n.Store.Save(n.Year, n.Month, rec); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Mental(rec.MentalState)

	return nil
}
