// Package habits provides the runners that add, edit, remove, and reorder
// habits within a month's record.
package habits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tally/pkg/calendar"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/printers"
	"tableflip.dev/tally/pkg/store"
)

// Add appends a placeholder habit to the month.
type Add struct {
	Year  int
	Month time.Month
	Name  string
	Icon  string
	Store *store.Store
}

// Do adds the habit, applying name and icon when given, and reprints the
// habit table.
func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}

	rec, err := n.Store.Resolve(n.Year, n.Month)
	if err != nil {
		return err
	}
	rec = habit.Add(rec, calendar.DaysIn(n.Year, n.Month))
	if n.Name != "" || n.Icon != "" {
		added := rec.Habits[len(rec.Habits)-1]
		rec = habit.Rename(rec, added.ID, n.Name, n.Icon)
	}
	if err := n.Store.Save(n.Year, n.Month, rec); err != nil {
		return err
	}

	reprint(rec)
	return nil
}

// Edit replaces a habit's name and/or icon.
type Edit struct {
	Year  int
	Month time.Month
	Habit string
	Name  string
	Icon  string
	Store *store.Store
}

// Do renames the habit and reprints the habit table.
func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}
	if n.Name == "" && n.Icon == "" {
		return errors.New("nothing to change, set --name or --icon")
	}

	rec, err := n.Store.Resolve(n.Year, n.Month)
	if err != nil {
		return err
	}
	id, ok := rec.Lookup(n.Habit)
	if !ok {
		return fmt.Errorf("no habit matches %q", n.Habit)
	}

	rec = habit.Rename(rec, id, n.Name, n.Icon)
	if err := n.Store.Save(n.Year, n.Month, rec); err != nil {
		return err
	}

	reprint(rec)
	return nil
}

// Remove deletes a habit from the month's record. Deletion is irreversible
// and destroys the habit's checks for this month only, so it is gated on
// Confirmed.
type Remove struct {
	Year      int
	Month     time.Month
	Habit     string
	Confirmed bool
	Store     *store.Store
}

// Do deletes the habit once confirmed, or prints what confirmation would
// destroy.
func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}

	rec, err := n.Store.Resolve(n.Year, n.Month)
	if err != nil {
		return err
	}
	id, ok := rec.Lookup(n.Habit)
	if !ok {
		return fmt.Errorf("no habit matches %q", n.Habit)
	}

	h := rec.Habits[rec.Find(id)]
	if !n.Confirmed {
		w := color.New(color.FgHiYellow)
		_, _ = w.Printf("\nThis permanently deletes %s %s and its %d checks for this month.\n",
			h.Icon, h.Name, habit.Total(h))
		_, _ = w.Println("Other months are unaffected. Run again with --yes to confirm.")
		return nil
	}

	rec = habit.Delete(rec, id)
	if err := n.Store.Save(n.Year, n.Month, rec); err != nil {
		return err
	}

	reprint(rec)
	return nil
}

// Move swaps a habit with its neighbor in the display order.
type Move struct {
	Year      int
	Month     time.Month
	Habit     string
	Direction habit.Direction
	Store     *store.Store
}

// Do reorders the habit and reprints the habit table.
func (n *Move) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not move, no store")
	}

	rec, err := n.Store.Resolve(n.Year, n.Month)
	if err != nil {
		return err
	}
	id, ok := rec.Lookup(n.Habit)
	if !ok {
		return fmt.Errorf("no habit matches %q", n.Habit)
	}

	rec = habit.Move(rec, rec.Find(id), n.Direction)
	if err := n.Store.Save(n.Year, n.Month, rec); err != nil {
		return err
	}

	reprint(rec)
	return nil
}

func reprint(rec habit.Record) {
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Habits(rec)
}
